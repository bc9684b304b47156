package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mmynk/tipcalc/internal/calculator"
)

var errInvalidInput = errors.New("invalid input")

// calcFlags maps each calc flag to the form field it fills in.
var calcFlags = []struct {
	name  string
	field calculator.Field
	usage string
}{
	{"bill", calculator.FieldBill, "Bill amount"},
	{"persons", calculator.FieldPersons, "Number of people"},
	{"tip", calculator.FieldTipPreselection, "Preset tip percentage"},
	{"custom-tip", calculator.FieldTipCustom, "Custom tip percentage (overrides --tip when non-zero)"},
}

// calcCmd evaluates one set of values
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Evaluate one set of values and print the result",
	Long: `Evaluate the given values the way the form does and print the tip and
total per person. Only the flags that are set take part in validation.
Exits with status 1 when a value is invalid.`,
	Example: `  tipcalc calc --bill 100 --persons 4 --tip 15`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := make(map[string]string)
		for _, f := range calcFlags {
			if cmd.Flags().Changed(f.name) {
				value, _ := cmd.Flags().GetString(f.name)
				raw[string(f.field)] = value
			}
		}
		return runCalc(cmd.OutOrStdout(), raw)
	},
}

func init() {
	for _, f := range calcFlags {
		calcCmd.Flags().String(f.name, "", f.usage)
	}
}

var (
	calcLabelStyle   = lipgloss.NewStyle().Width(21)
	calcAmountStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("43"))
	calcFieldStyle   = lipgloss.NewStyle().Bold(true)
	calcMessageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// runCalc prints the result for raw, or the invalid fields in priority order.
func runCalc(w io.Writer, raw map[string]string) error {
	ev := calculator.Evaluate(calculator.NewSnapshot(raw))

	if !ev.Valid() {
		for _, f := range ev.Errors.Fields() {
			fmt.Fprintf(w, "%s %s\n", calcFieldStyle.Render(string(f)+":"), calcMessageStyle.Render(calculator.Message(f)))
		}
		return errInvalidInput
	}

	fmt.Fprintln(w, calcLabelStyle.Render("Tip Amount / person")+calcAmountStyle.Render("$"+ev.Result.TipPerPerson))
	fmt.Fprintln(w, calcLabelStyle.Render("Total / person")+calcAmountStyle.Render("$"+ev.Result.TotalPerPerson))
	return nil
}
