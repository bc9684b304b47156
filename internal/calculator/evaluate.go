// Package calculator validates tip form values and computes per-person
// amounts. Every function is pure: results depend only on the snapshot
// passed in, and nothing is retained between calls.
package calculator

// Evaluation is the outcome of evaluating one snapshot.
type Evaluation struct {
	Errors ErrorSet
	// Result is nil unless Errors is empty.
	Result *Result
}

// Valid reports whether every validated field passed.
func (e Evaluation) Valid() bool { return e.Errors.Empty() }

// FirstInvalid returns the field adapters should focus, if any.
func (e Evaluation) FirstInvalid() (Field, bool) { return e.Errors.First() }

// Err returns the joined validation errors, or nil when valid.
func (e Evaluation) Err() error { return e.Errors.Err() }

// Evaluate validates every validated field present in s and, when all of
// them pass, computes the tip. Failures are aggregated rather than stopping
// at the first one.
func Evaluate(s Snapshot) Evaluation {
	var ev Evaluation
	for _, key := range checkOrder {
		value, present := s[key]
		if !present {
			continue
		}
		if !ValidateField(key, value) {
			ev.Errors.add(key)
		}
	}
	if ev.Errors.Empty() {
		result := CalculateTip(s)
		ev.Result = &result
	}
	return ev
}
