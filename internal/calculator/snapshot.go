package calculator

import (
	"math"
	"strconv"
	"strings"
)

// Snapshot is a point-in-time set of parsed field values.
type Snapshot map[Field]float64

// NewSnapshot parses raw form values into a Snapshot.
func NewSnapshot(raw map[string]string) Snapshot {
	s := make(Snapshot, len(raw))
	for key, value := range raw {
		s[Field(key)] = ParseValue(value)
	}
	return s
}

// ParseValue converts raw input text to a number. Blank text is read as 0,
// and text that is not a finite decimal number is read as NaN.
func ParseValue(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return math.NaN()
	}
	return v
}

// get returns the value for key, or 0 when key is absent.
func (s Snapshot) get(key Field) float64 {
	return s[key]
}

// ResetDisabled reports whether every value in the snapshot is zero or NaN,
// in which case there is nothing for a reset control to clear.
func ResetDisabled(s Snapshot) bool {
	for _, v := range s {
		if v != 0 && !math.IsNaN(v) {
			return false
		}
	}
	return true
}
