package util

import (
	"strconv"
	"time"
)

// DateTimeFormat is the default display format for record timestamps.
const DateTimeFormat = "2006-01-02 15:04"

const day = 24 * time.Hour

// FormatDateTime formats t with layout, or returns "-" for the zero time.
func FormatDateTime(t time.Time, layout string) string {
	if t.IsZero() {
		return "-"
	}
	if layout == "" {
		layout = DateTimeFormat
	}
	return t.Format(layout)
}

// ageUnits maps an age below limit to a count of unit-sized steps.
var ageUnits = []struct {
	limit time.Duration
	unit  time.Duration
	name  string
}{
	{time.Hour, time.Minute, "minute"},
	{day, time.Hour, "hour"},
	{7 * day, day, "day"},
	{30 * day, 7 * day, "week"},
	{365 * day, 30 * day, "month"},
}

// RelativeTimeString describes how long before now t was, e.g. "3 hours ago".
// Times in the future read as "just now".
func RelativeTimeString(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "never"
	}

	age := now.Sub(t)
	if age < time.Minute {
		return "just now"
	}

	for _, u := range ageUnits {
		if age < u.limit {
			n := int(age / u.unit)
			if u.unit == day && n == 1 {
				return "yesterday"
			}
			return ago(n, u.name)
		}
	}
	return ago(int(age/(365*day)), "year")
}

func ago(n int, unit string) string {
	if n != 1 {
		unit += "s"
	}
	return strconv.Itoa(n) + " " + unit + " ago"
}
