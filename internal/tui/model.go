// Package tui is a terminal rendition of the tip calculator form.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/tipcalc/internal/calculator"
	"github.com/mmynk/tipcalc/internal/models"
)

// slot is a focusable position in the form.
type slot int

const (
	slotBill slot = iota
	slotPreset
	slotCustom
	slotPersons
	slotCount
)

var slotFields = [slotCount]calculator.Field{
	calculator.FieldBill,
	calculator.FieldTipPreselection,
	calculator.FieldTipCustom,
	calculator.FieldPersons,
}

var slotLabels = [slotCount]string{"Bill", "Select Tip %", "Custom", "Number of People"}

// Leaving one of these blank fills it with "0".
func autofills(s slot) bool { return s == slotBill || s == slotPersons }

// Model is the bubbletea model for the form.
type Model struct {
	inputs    [slotCount]textinput.Model // slotPreset is unused
	presets   []*models.Preset
	presetIdx int // -1 when no preset is selected
	focus     slot

	// touched holds the fields that have received input; only they are
	// part of the snapshot.
	touched map[calculator.Field]bool

	eval          calculator.Evaluation
	result        calculator.Result
	resetDisabled bool

	styles styles
}

type styles struct {
	label    lipgloss.Style
	focused  lipgloss.Style
	error    lipgloss.Style
	amount   lipgloss.Style
	selected lipgloss.Style
	preset   lipgloss.Style
	help     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("43")).Bold(true),
		error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		amount:   lipgloss.NewStyle().Foreground(lipgloss.Color("43")).Bold(true),
		selected: lipgloss.NewStyle().Background(lipgloss.Color("43")).Foreground(lipgloss.Color("23")).Padding(0, 1),
		preset:   lipgloss.NewStyle().Background(lipgloss.Color("23")).Foreground(lipgloss.Color("255")).Padding(0, 1),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// New creates the form with the given preselection choices.
func New(presets []*models.Preset) Model {
	m := Model{
		presets:       presets,
		presetIdx:     -1,
		touched:       make(map[calculator.Field]bool),
		result:        calculator.ZeroResult,
		resetDisabled: true,
		styles:        defaultStyles(),
	}
	for s := slot(0); s < slotCount; s++ {
		if s == slotPreset {
			continue
		}
		in := textinput.New()
		in.Placeholder = "0"
		in.CharLimit = 16
		in.Width = 16
		in.Prompt = "> "
		m.inputs[s] = in
	}
	m.inputs[slotBill].Focus()
	return m
}

// Run starts the form in the terminal and blocks until the user quits.
func Run(presets []*models.Preset) error {
	_, err := tea.NewProgram(New(presets)).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocusedInput(msg)
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		return m, m.leave((m.focus + 1) % slotCount)
	case "shift+tab", "up":
		return m, m.leave((m.focus + slotCount - 1) % slotCount)
	case "ctrl+r":
		if !m.resetDisabled {
			return m, m.reset()
		}
		return m, nil
	}

	if m.focus == slotPreset {
		return m, m.updatePreset(key)
	}

	before := m.inputs[m.focus].Value()
	cmd := m.updateFocusedInput(msg)
	if m.inputs[m.focus].Value() != before {
		m.touched[slotFields[m.focus]] = true
		return m, tea.Batch(cmd, m.evaluate())
	}
	return m, cmd
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if m.focus == slotPreset {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *Model) updatePreset(key tea.KeyMsg) tea.Cmd {
	if len(m.presets) == 0 {
		return nil
	}
	switch key.String() {
	case "left", "h":
		if m.presetIdx <= 0 {
			m.presetIdx = len(m.presets) - 1
		} else {
			m.presetIdx--
		}
	case "right", "l", " ":
		m.presetIdx = (m.presetIdx + 1) % len(m.presets)
	default:
		return nil
	}
	m.touched[calculator.FieldTipPreselection] = true
	return m.evaluate()
}

// leave moves focus to next. A blank bill or persons field is filled with
// "0" on the way out, which counts as input.
func (m *Model) leave(next slot) tea.Cmd {
	prev := m.focus
	cmd := m.setFocus(next)
	if autofills(prev) && m.inputs[prev].Value() == "" {
		m.inputs[prev].SetValue("0")
		m.touched[slotFields[prev]] = true
		return tea.Batch(cmd, m.evaluate())
	}
	return cmd
}

func (m *Model) setFocus(s slot) tea.Cmd {
	m.focus = s
	var cmd tea.Cmd
	for i := range m.inputs {
		if slot(i) == slotPreset {
			continue
		}
		if slot(i) == s {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

// snapshot builds a snapshot of the touched fields. Blank text reads as "0".
func (m *Model) snapshot() calculator.Snapshot {
	raw := make(map[string]string, len(m.touched))
	for s := slot(0); s < slotCount; s++ {
		field := slotFields[s]
		if !m.touched[field] {
			continue
		}
		if s == slotPreset {
			if m.presetIdx >= 0 {
				raw[string(field)] = fmt.Sprint(m.presets[m.presetIdx].Percent)
			}
			continue
		}
		value := m.inputs[s].Value()
		if value == "" {
			value = "0"
		}
		raw[string(field)] = value
	}
	return calculator.NewSnapshot(raw)
}

// evaluate re-runs the engine. On failure the previous result stays on
// screen and focus moves to the first invalid field.
func (m *Model) evaluate() tea.Cmd {
	snapshot := m.snapshot()
	m.eval = calculator.Evaluate(snapshot)
	m.resetDisabled = calculator.ResetDisabled(snapshot)

	if m.eval.Result != nil {
		m.result = *m.eval.Result
		return nil
	}
	first, _ := m.eval.FirstInvalid()
	for s := slot(0); s < slotCount; s++ {
		if slotFields[s] == first && s != m.focus {
			return m.setFocus(s)
		}
	}
	return nil
}

func (m *Model) reset() tea.Cmd {
	for i := range m.inputs {
		if slot(i) != slotPreset {
			m.inputs[i].SetValue("")
		}
	}
	m.presetIdx = -1
	m.touched = make(map[calculator.Field]bool)
	m.eval = calculator.Evaluation{}
	m.result = calculator.ZeroResult
	m.resetDisabled = true
	return m.setFocus(slotBill)
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	for s := slot(0); s < slotCount; s++ {
		label := m.styles.label
		if s == m.focus {
			label = m.styles.focused
		}
		b.WriteString(label.Render(slotLabels[s]))
		b.WriteString("\n")

		if s == slotPreset {
			b.WriteString(m.presetsView())
		} else {
			b.WriteString(m.inputs[s].View())
		}
		b.WriteString("\n")

		if msg := m.message(slotFields[s]); msg != "" {
			b.WriteString(m.styles.error.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Tip Amount / person  %s\n", m.styles.amount.Render("$"+m.result.TipPerPerson))
	fmt.Fprintf(&b, "Total / person       %s\n\n", m.styles.amount.Render("$"+m.result.TotalPerPerson))

	help := "tab/shift+tab move • ←/→ choose tip • esc quit"
	if !m.resetDisabled {
		help = "ctrl+r reset • " + help
	}
	b.WriteString(m.styles.help.Render(help))
	b.WriteString("\n")
	return b.String()
}

func (m Model) presetsView() string {
	if len(m.presets) == 0 {
		return m.styles.help.Render("(no presets)")
	}
	parts := make([]string, len(m.presets))
	for i, p := range m.presets {
		style := m.styles.preset
		if i == m.presetIdx {
			style = m.styles.selected
		}
		parts[i] = style.Render(p.Label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// message returns the invalidation message for field, or "".
func (m Model) message(field calculator.Field) string {
	if m.eval.Errors.Has(field) {
		return calculator.Message(field)
	}
	return ""
}
