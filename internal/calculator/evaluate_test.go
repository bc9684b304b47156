package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		snapshot     Snapshot
		wantInvalid  []Field
		wantFirst    Field
		wantResult   *Result
		validateFunc func(t *testing.T, ev Evaluation)
	}{
		{
			name: "preselected tip split four ways",
			snapshot: Snapshot{
				FieldBill: 100, FieldPersons: 4, FieldTipPreselection: 15, FieldTipCustom: 0,
			},
			// tip = 100 * 0.15 / 4 = 3.75, total = 100 / 4 + 3.75 = 28.75
			wantResult: &Result{TipPerPerson: "3.75", TotalPerPerson: "28.75"},
		},
		{
			name: "custom tip overrides preselection",
			snapshot: Snapshot{
				FieldBill: 50, FieldPersons: 2, FieldTipPreselection: 15, FieldTipCustom: 10,
			},
			wantResult: &Result{TipPerPerson: "2.50", TotalPerPerson: "27.50"},
		},
		{
			name: "custom tip without preselection",
			snapshot: Snapshot{
				FieldBill: 50, FieldPersons: 2, FieldTipCustom: 10,
			},
			wantResult: &Result{TipPerPerson: "2.50", TotalPerPerson: "27.50"},
		},
		{
			name: "zero bill",
			snapshot: Snapshot{
				FieldBill: 0, FieldPersons: 5, FieldTipPreselection: 15, FieldTipCustom: 0,
			},
			wantResult: &Result{TipPerPerson: "0.00", TotalPerPerson: "0.00"},
		},
		{
			name: "no tip selected",
			snapshot: Snapshot{
				FieldBill: 10, FieldPersons: 3,
			},
			wantResult: &Result{TipPerPerson: "0.00", TotalPerPerson: "3.33"},
		},
		{
			name: "negative zero bill prints unsigned zero",
			snapshot: Snapshot{
				FieldBill: math.Copysign(0, -1), FieldPersons: 2, FieldTipPreselection: 15,
			},
			wantResult: &Result{TipPerPerson: "0.00", TotalPerPerson: "0.00"},
		},
		{
			name:       "persons absent falls back to zero placeholder",
			snapshot:   Snapshot{FieldBill: 100, FieldTipPreselection: 15},
			wantResult: &ZeroResult,
		},
		{
			name:        "negative bill",
			snapshot:    Snapshot{FieldBill: -5, FieldPersons: 2},
			wantInvalid: []Field{FieldBill},
			wantFirst:   FieldBill,
		},
		{
			name:        "zero persons and negative bill reports persons first",
			snapshot:    Snapshot{FieldBill: -5, FieldPersons: 0},
			wantInvalid: []Field{FieldPersons, FieldBill},
			wantFirst:   FieldPersons,
		},
		{
			name:        "every validated field invalid",
			snapshot:    Snapshot{FieldTipCustom: 101, FieldBill: -1, FieldPersons: -3},
			wantInvalid: []Field{FieldPersons, FieldBill, FieldTipCustom},
			wantFirst:   FieldPersons,
		},
		{
			name:        "custom tip above range",
			snapshot:    Snapshot{FieldBill: 10, FieldPersons: 1, FieldTipCustom: 100.5},
			wantInvalid: []Field{FieldTipCustom},
			wantFirst:   FieldTipCustom,
		},
		{
			name:        "unparsable persons",
			snapshot:    NewSnapshot(map[string]string{"bill": "20", "persons": "two"}),
			wantInvalid: []Field{FieldPersons},
			wantFirst:   FieldPersons,
		},
		{
			name:     "preselection is never validated",
			snapshot: Snapshot{FieldBill: 10, FieldPersons: 1, FieldTipPreselection: -20},
			validateFunc: func(t *testing.T, ev Evaluation) {
				if !ev.Valid() {
					t.Errorf("expected valid evaluation, got errors %v", ev.Errors.Fields())
				}
			},
		},
		{
			name:     "unknown keys pass through",
			snapshot: Snapshot{FieldBill: 10, FieldPersons: 2, "note": math.NaN()},
			validateFunc: func(t *testing.T, ev Evaluation) {
				if ev.Result == nil {
					t.Fatal("expected a result")
				}
				if ev.Result.TotalPerPerson != "5.00" {
					t.Errorf("total = %s, want 5.00", ev.Result.TotalPerPerson)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Evaluate(tt.snapshot)

			if diff := cmp.Diff(tt.wantInvalid, ev.Errors.Fields()); diff != "" && tt.validateFunc == nil {
				t.Errorf("invalid fields mismatch (-want +got):\n%s", diff)
			}

			first, ok := ev.FirstInvalid()
			if tt.wantFirst != "" {
				if !ok || first != tt.wantFirst {
					t.Errorf("FirstInvalid() = %q, %v, want %q", first, ok, tt.wantFirst)
				}
				if ev.Result != nil {
					t.Errorf("expected no result for invalid snapshot, got %+v", *ev.Result)
				}
			}

			if tt.wantResult != nil {
				if ev.Result == nil {
					t.Fatalf("expected result %+v, got none (errors %v)", *tt.wantResult, ev.Errors.Fields())
				}
				if diff := cmp.Diff(*tt.wantResult, *ev.Result); diff != "" {
					t.Errorf("result mismatch (-want +got):\n%s", diff)
				}
			}

			if tt.validateFunc != nil {
				tt.validateFunc(t, ev)
			}
		})
	}
}

func TestEvaluate_PersonsBoundary(t *testing.T) {
	for _, persons := range []float64{0, -1, -0.5, -1000, math.NaN()} {
		ev := Evaluate(Snapshot{FieldPersons: persons, FieldBill: 10})
		if !ev.Errors.Has(FieldPersons) {
			t.Errorf("persons=%v: expected persons to be invalid", persons)
		}
		if ev.Result != nil {
			t.Errorf("persons=%v: expected no result", persons)
		}
	}
}

func TestEvaluate_BillBoundary(t *testing.T) {
	for _, bill := range []float64{-0.01, -1, -1e9} {
		if ev := Evaluate(Snapshot{FieldBill: bill, FieldPersons: 1}); !ev.Errors.Has(FieldBill) {
			t.Errorf("bill=%v: expected bill to be invalid", bill)
		}
	}
	for _, bill := range []float64{0, 0.01, 1e9} {
		if ev := Evaluate(Snapshot{FieldBill: bill, FieldPersons: 1}); ev.Errors.Has(FieldBill) {
			t.Errorf("bill=%v: expected bill to be valid", bill)
		}
	}
}

func TestEvaluate_CustomTipRange(t *testing.T) {
	for _, tip := range []float64{0, 0.5, 15, 99.99, 100} {
		if ev := Evaluate(Snapshot{FieldTipCustom: tip}); ev.Errors.Has(FieldTipCustom) {
			t.Errorf("tip-custom=%v: expected valid", tip)
		}
	}
	for _, tip := range []float64{-0.01, -10, 100.01, 250, math.NaN()} {
		if ev := Evaluate(Snapshot{FieldTipCustom: tip}); !ev.Errors.Has(FieldTipCustom) {
			t.Errorf("tip-custom=%v: expected invalid", tip)
		}
	}
}

func TestEvaluate_TipFormula(t *testing.T) {
	tests := []struct {
		bill, persons, preselection, custom float64
	}{
		{bill: 142.55, persons: 5, preselection: 15},
		{bill: 142.55, persons: 5, preselection: 15, custom: 18},
		{bill: 73.2, persons: 3, preselection: 25},
		{bill: 1, persons: 7, custom: 50},
		{bill: 0.99, persons: 1, preselection: 5},
	}

	for _, tt := range tests {
		ev := Evaluate(Snapshot{
			FieldBill: tt.bill, FieldPersons: tt.persons,
			FieldTipPreselection: tt.preselection, FieldTipCustom: tt.custom,
		})
		if ev.Result == nil {
			t.Fatalf("%+v: expected result, got errors %v", tt, ev.Errors.Fields())
		}

		fraction := tt.preselection / 100
		if tt.custom != 0 {
			fraction = tt.custom / 100
		}
		wantTip := tt.bill * fraction / tt.persons
		wantTotal := tt.bill/tt.persons + wantTip

		if got := ParseValue(ev.Result.TipPerPerson); math.Abs(got-wantTip) > 0.005 {
			t.Errorf("%+v: tip = %v, want %v", tt, got, wantTip)
		}
		if got := ParseValue(ev.Result.TotalPerPerson); math.Abs(got-wantTotal) > 0.005 {
			t.Errorf("%+v: total = %v, want %v", tt, got, wantTotal)
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	snapshots := []Snapshot{
		{FieldBill: 100, FieldPersons: 4, FieldTipPreselection: 15},
		{FieldBill: -5, FieldPersons: 0, FieldTipCustom: 150},
	}
	for _, s := range snapshots {
		first := Evaluate(s)
		second := Evaluate(s)
		if diff := cmp.Diff(first.Errors.Fields(), second.Errors.Fields()); diff != "" {
			t.Errorf("errors differ between calls:\n%s", diff)
		}
		if (first.Result == nil) != (second.Result == nil) {
			t.Fatalf("result presence differs between calls")
		}
		if first.Result != nil && *first.Result != *second.Result {
			t.Errorf("results differ: %+v vs %+v", *first.Result, *second.Result)
		}
	}
}

func TestEvaluationErr(t *testing.T) {
	valid := Evaluate(Snapshot{FieldBill: 1, FieldPersons: 1})
	if err := valid.Err(); err != nil {
		t.Errorf("expected nil error for valid evaluation, got %v", err)
	}

	ev := Evaluate(Snapshot{FieldBill: -1, FieldPersons: 0})
	err := ev.Err()
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}

	var fieldErr *InvalidFieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected *InvalidFieldError, got %T", err)
	}
	if fieldErr.Field != FieldPersons || fieldErr.Message != "Can't be zero" {
		t.Errorf("first error = %+v, want persons/Can't be zero", fieldErr)
	}
}

func TestCalculateTip_ZeroPersons(t *testing.T) {
	got := CalculateTip(Snapshot{FieldBill: 0, FieldPersons: 0, FieldTipPreselection: 15})
	if got != ZeroResult {
		t.Errorf("CalculateTip() = %+v, want %+v", got, ZeroResult)
	}
	got = CalculateTip(Snapshot{FieldBill: 80})
	if got != ZeroResult {
		t.Errorf("CalculateTip() without persons = %+v, want %+v", got, ZeroResult)
	}
}

func TestValidateFieldAndMessage(t *testing.T) {
	tests := []struct {
		key         Field
		value       float64
		wantValid   bool
		wantMessage string
	}{
		{FieldPersons, 0, false, "Can't be zero"},
		{FieldPersons, 1, true, "Can't be zero"},
		{FieldBill, -1, false, "Can't be negative"},
		{FieldBill, 0, true, "Can't be negative"},
		{FieldTipCustom, 101, false, "Can't be below 0 or above 100"},
		{FieldTipCustom, 100, true, "Can't be below 0 or above 100"},
		{FieldTipPreselection, -50, true, ""},
		{FieldTipPreselection, math.NaN(), true, ""},
	}

	for _, tt := range tests {
		if got := ValidateField(tt.key, tt.value); got != tt.wantValid {
			t.Errorf("ValidateField(%s, %v) = %v, want %v", tt.key, tt.value, got, tt.wantValid)
		}
		if got := Message(tt.key); got != tt.wantMessage {
			t.Errorf("Message(%s) = %q, want %q", tt.key, got, tt.wantMessage)
		}
	}

	if diff := cmp.Diff([]Field{FieldPersons, FieldBill, FieldTipCustom}, ValidatedFields()); diff != "" {
		t.Errorf("ValidatedFields() mismatch (-want +got):\n%s", diff)
	}
}
