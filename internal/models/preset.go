package models

import "strconv"

// Preset is a tip percentage offered for the tip-preselection field.
type Preset struct {
	// ID is the unique identifier for the preset (UUID format).
	ID string

	// Percent is the tip percentage, between 0 and 100 inclusive.
	Percent float64

	// Label is the text shown on the preset button (e.g., "15%").
	Label string

	// CreatedAt is the Unix timestamp when the preset was created.
	CreatedAt int64
}

// DefaultLabel returns the label used when a preset has none.
func DefaultLabel(percent float64) string {
	return strconv.FormatFloat(percent, 'f', -1, 64) + "%"
}
