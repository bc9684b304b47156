// Package web renders the tip calculator form and evaluates its submissions
// on the server.
package web

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mmynk/tipcalc/internal/calculator"
	"github.com/mmynk/tipcalc/internal/models"
)

//go:embed templates/*.html static/*
var assets embed.FS

// PresetLister provides the tip preselection choices.
type PresetLister interface {
	ListPresets(ctx context.Context) ([]*models.Preset, error)
}

// EvaluationObserver records engine evaluations.
type EvaluationObserver interface {
	ObserveEvaluation(source string, ev calculator.Evaluation)
}

// Handler serves the form page and its static assets.
type Handler struct {
	presets  PresetLister
	observer EvaluationObserver
	tpl      *template.Template
	mux      *http.ServeMux
}

// NewHandler creates the form handler. observer may be nil.
func NewHandler(presets PresetLister, observer EvaluationObserver) *Handler {
	h := &Handler{
		presets:  presets,
		observer: observer,
		tpl:      template.Must(template.ParseFS(assets, "templates/index.html")),
		mux:      http.NewServeMux(),
	}

	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	h.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	h.mux.HandleFunc("/", h.index)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type fieldView struct {
	Name      string
	Label     string
	Value     string
	Message   string
	Invalid   bool
	Autofocus bool
}

type presetView struct {
	Value   string
	Label   string
	Checked bool
}

type pageData struct {
	Bill    fieldView
	Persons fieldView
	Custom  fieldView
	Presets []presetView

	TipPerPerson   string
	TotalPerPerson string
	ResetDisabled  bool
}

// formFields lists the inputs read from a submission.
var formFields = []calculator.Field{
	calculator.FieldBill,
	calculator.FieldPersons,
	calculator.FieldTipPreselection,
	calculator.FieldTipCustom,
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	raw := submittedFields(r.URL.Query())
	data := pageData{
		Bill:    fieldView{Name: string(calculator.FieldBill), Label: "Bill", Value: raw[string(calculator.FieldBill)]},
		Persons: fieldView{Name: string(calculator.FieldPersons), Label: "Number of People", Value: raw[string(calculator.FieldPersons)]},
		Custom:  fieldView{Name: string(calculator.FieldTipCustom), Label: "Custom", Value: raw[string(calculator.FieldTipCustom)]},

		TipPerPerson:   calculator.ZeroResult.TipPerPerson,
		TotalPerPerson: calculator.ZeroResult.TotalPerPerson,
		ResetDisabled:  true,
	}

	presets, err := h.presets.ListPresets(r.Context())
	if err != nil {
		slog.Error("Failed to list presets", "error", err)
		http.Error(w, "failed to load presets", http.StatusInternalServerError)
		return
	}
	selected := raw[string(calculator.FieldTipPreselection)]
	for _, p := range presets {
		value := strconv.FormatFloat(p.Percent, 'f', -1, 64)
		data.Presets = append(data.Presets, presetView{
			Value:   value,
			Label:   p.Label,
			Checked: selected != "" && calculator.ParseValue(selected) == p.Percent,
		})
	}

	if len(raw) > 0 {
		h.evaluate(raw, &data)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tpl.Execute(w, data); err != nil {
		slog.Error("Failed to render form", "error", err)
	}
}

// evaluate runs the engine on a submission and fills in messages, focus and
// amounts.
func (h *Handler) evaluate(raw map[string]string, data *pageData) {
	snapshot := calculator.NewSnapshot(raw)
	ev := calculator.Evaluate(snapshot)
	if h.observer != nil {
		h.observer.ObserveEvaluation("web", ev)
	}

	data.ResetDisabled = calculator.ResetDisabled(snapshot)

	first, _ := ev.FirstInvalid()
	for _, field := range []*fieldView{&data.Bill, &data.Persons, &data.Custom} {
		key := calculator.Field(field.Name)
		if ev.Errors.Has(key) {
			field.Invalid = true
			field.Message = calculator.Message(key)
			field.Autofocus = key == first
		}
	}

	if ev.Result != nil {
		data.TipPerPerson = ev.Result.TipPerPerson
		data.TotalPerPerson = ev.Result.TotalPerPerson
	}
}

// submittedFields returns the raw values of the form fields present in q.
func submittedFields(q url.Values) map[string]string {
	raw := make(map[string]string)
	for _, f := range formFields {
		if values, ok := q[string(f)]; ok && len(values) > 0 {
			raw[string(f)] = values[0]
		}
	}
	return raw
}
