package components

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// rowPadding is the cells a table row spends outside its columns.
const rowPadding = 2

// ColumnSpec defines a column with proportional or fixed width.
type ColumnSpec struct {
	// MinWidth is the smallest width a weighted column is given.
	MinWidth int
	// Weight is the share of spare width a column receives.
	Weight float64
	// Fixed overrides Weight when positive.
	Fixed int
	// Priority orders columns for dropping; the lowest goes first.
	Priority int
}

func (s ColumnSpec) base() int {
	if s.Fixed > 0 {
		return s.Fixed
	}
	return s.MinWidth
}

// CalculateColumnWidths lays specs out across availableWidth, with separator
// cells between neighbouring columns. Columns that do not fit are dropped
// lowest priority first and get width 0; the last column is never dropped.
// Spare width goes to weighted columns in proportion to their Weight.
func CalculateColumnWidths(specs []ColumnSpec, availableWidth int, separator int) []int {
	visible := make([]bool, len(specs))
	for i := range visible {
		visible[i] = true
	}

	spare := func() (int, float64) {
		used, n, weight := rowPadding, 0, 0.0
		for i, s := range specs {
			if !visible[i] {
				continue
			}
			used += s.base()
			n++
			if s.Fixed <= 0 {
				weight += s.Weight
			}
		}
		if n > 1 {
			used += (n - 1) * separator
		}
		return availableWidth - used, weight
	}

	dropOrder := make([]int, len(specs))
	for i := range dropOrder {
		dropOrder[i] = i
	}
	slices.SortStableFunc(dropOrder, func(a, b int) int {
		return cmp.Compare(specs[a].Priority, specs[b].Priority)
	})

	remaining, weight := spare()
	for _, i := range dropOrder[:max(len(dropOrder)-1, 0)] {
		if remaining >= 0 {
			break
		}
		visible[i] = false
		remaining, weight = spare()
	}
	remaining = max(remaining, 0)

	widths := make([]int, len(specs))
	for i, s := range specs {
		if !visible[i] {
			continue
		}
		widths[i] = s.base()
		if s.Fixed <= 0 && weight > 0 {
			widths[i] += int(float64(remaining) * s.Weight / weight)
		}
	}
	return widths
}

// Truncate shortens s to at most maxWidth cells, ending it with an ellipsis
// when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// PadRight pads s with trailing spaces to width cells.
func PadRight(s string, width int) string {
	return s + fill(s, width)
}

// PadLeft pads s with leading spaces to width cells.
func PadLeft(s string, width int) string {
	return fill(s, width) + s
}

// PadCenter centers s within width cells, with any odd cell on the right.
func PadCenter(s string, width int) string {
	gap := fill(s, width)
	left := len(gap) / 2
	return gap[:left] + s + gap[left:]
}

func fill(s string, width int) string {
	return strings.Repeat(" ", max(width-ansi.StringWidth(s), 0))
}
