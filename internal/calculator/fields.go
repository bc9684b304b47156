package calculator

// Field is the key of a form field in a Snapshot.
type Field string

// Form field keys.
const (
	FieldBill            Field = "bill"
	FieldPersons         Field = "persons"
	FieldTipPreselection Field = "tip-preselection"
	FieldTipCustom       Field = "tip-custom"
)

// rule pairs a validation predicate with the message shown when it fails.
type rule struct {
	valid   func(value float64) bool
	message string
}

// NaN compares false against everything, so it fails every predicate below.
func isPositive(value float64) bool       { return value > 0 }
func isZeroOrPositive(value float64) bool { return value >= 0 }
func isPercentage(value float64) bool     { return value >= 0 && value <= 100 }

// rules is the closed table of validated fields. Fields missing from it are
// never validated.
var rules = map[Field]rule{
	FieldPersons:   {valid: isPositive, message: "Can't be zero"},
	FieldBill:      {valid: isZeroOrPositive, message: "Can't be negative"},
	FieldTipCustom: {valid: isPercentage, message: "Can't be below 0 or above 100"},
}

// checkOrder is the priority order used to pick the first invalid field.
var checkOrder = [...]Field{FieldPersons, FieldBill, FieldTipCustom}

// ValidatedFields returns the validated field keys in priority order.
func ValidatedFields() []Field {
	return append([]Field(nil), checkOrder[:]...)
}

// ValidateField reports whether value is acceptable for key.
// Keys without a rule are always valid.
func ValidateField(key Field, value float64) bool {
	r, ok := rules[key]
	if !ok {
		return true
	}
	return r.valid(value)
}

// Message returns the message displayed when key is invalid, or "" when key
// is not validated.
func Message(key Field) string {
	return rules[key].message
}
