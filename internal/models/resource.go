package models

import "strconv"

// Stats maps attribute codes to quality values. A missing key means the
// attribute has no value, which is distinct from zero.
type Stats map[Attribute]int

// Get returns the value for a and whether it is set.
func (s Stats) Get(a Attribute) (int, bool) {
	v, ok := s[a]
	return v, ok
}

// Value returns the value for a, or 0 when unset.
func (s Stats) Value(a Attribute) int {
	return s[a]
}

// Display renders the value for a, or "-" when unset or zero.
func (s Stats) Display(a Attribute) string {
	v := s[a]
	if v == 0 {
		return "-"
	}
	return strconv.Itoa(v)
}

// Clone returns an independent copy of s.
func (s Stats) Clone() Stats {
	if s == nil {
		return nil
	}
	out := make(Stats, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Resource is a harvestable material spawn discovered in game.
type Resource struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Planet    Planet       `json:"planet"`
	Category  Category     `json:"category"`
	Type      ResourceType `json:"type"`
	InSpawn   bool         `json:"inSpawn"`
	Stats     Stats        `json:"stats"`
	Timestamp Timestamp    `json:"timestamp"`
}

// SpawnLabel returns "ACTIVE" or "DESPAWNED".
func (r *Resource) SpawnLabel() string {
	if r.InSpawn {
		return "ACTIVE"
	}
	return "DESPAWNED"
}
