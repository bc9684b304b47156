package calculator

import (
	"math"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantNaN bool
	}{
		{raw: "", want: 0},
		{raw: "   ", want: 0},
		{raw: "42", want: 42},
		{raw: " 12.5 ", want: 12.5},
		{raw: "-3", want: -3},
		{raw: "1e2", want: 100},
		{raw: "abc", wantNaN: true},
		{raw: "12abc", wantNaN: true},
		{raw: "Inf", wantNaN: true},
		{raw: "-inf", wantNaN: true},
		{raw: "NaN", wantNaN: true},
	}

	for _, tt := range tests {
		got := ParseValue(tt.raw)
		if tt.wantNaN {
			if !math.IsNaN(got) {
				t.Errorf("ParseValue(%q) = %v, want NaN", tt.raw, got)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseValue(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestNewSnapshot(t *testing.T) {
	s := NewSnapshot(map[string]string{
		"bill":       "100",
		"persons":    "",
		"tip-custom": "x",
		"extra":      "7",
	})

	if s[FieldBill] != 100 {
		t.Errorf("bill = %v, want 100", s[FieldBill])
	}
	if v, ok := s[FieldPersons]; !ok || v != 0 {
		t.Errorf("persons = %v (present %v), want 0 present", v, ok)
	}
	if !math.IsNaN(s[FieldTipCustom]) {
		t.Errorf("tip-custom = %v, want NaN", s[FieldTipCustom])
	}
	if s["extra"] != 7 {
		t.Errorf("extra = %v, want 7", s["extra"])
	}
	if _, ok := s[FieldTipPreselection]; ok {
		t.Error("tip-preselection should be absent")
	}
}

func TestResetDisabled(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
		want     bool
	}{
		{name: "empty snapshot", snapshot: Snapshot{}, want: true},
		{name: "all zero", snapshot: Snapshot{FieldBill: 0, FieldPersons: 0, FieldTipCustom: 0}, want: true},
		{name: "zero and NaN", snapshot: Snapshot{FieldBill: 0, FieldPersons: math.NaN()}, want: true},
		{name: "bill entered", snapshot: Snapshot{FieldBill: 12, FieldPersons: 0}, want: false},
		{name: "negative value entered", snapshot: Snapshot{FieldBill: -1}, want: false},
		{name: "preselection chosen", snapshot: Snapshot{FieldTipPreselection: 15}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResetDisabled(tt.snapshot); got != tt.want {
				t.Errorf("ResetDisabled() = %v, want %v", got, tt.want)
			}
		})
	}
}
