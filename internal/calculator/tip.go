package calculator

import "strconv"

// Result is the per-person tip and total, formatted with two decimals.
type Result struct {
	TipPerPerson   string
	TotalPerPerson string
}

// ZeroResult is displayed before the first successful evaluation and after
// a reset.
var ZeroResult = Result{TipPerPerson: "0.00", TotalPerPerson: "0.00"}

// CalculateTip computes the per-person tip and total for a snapshot.
// A non-zero custom tip takes precedence over the preselected one, and a
// zero person count yields ZeroResult instead of a non-finite amount.
//
//	tip_fraction   = (custom != 0 ? custom : preselection) / 100
//	tipPerPerson   = bill * tip_fraction / persons
//	totalPerPerson = bill / persons + tipPerPerson
func CalculateTip(s Snapshot) Result {
	persons := s.get(FieldPersons)
	if persons == 0 {
		return ZeroResult
	}

	bill := s.get(FieldBill)
	percent := s.get(FieldTipCustom)
	if percent == 0 {
		percent = s.get(FieldTipPreselection)
	}
	fraction := percent / 100

	tipPerPerson := bill * fraction / persons
	totalPerPerson := bill/persons + tipPerPerson

	return Result{
		TipPerPerson:   formatAmount(tipPerPerson),
		TotalPerPerson: formatAmount(totalPerPerson),
	}
}

// formatAmount renders v with exactly two fractional digits.
func formatAmount(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
