package api

// EvaluateRequest carries the raw text of each form field, keyed by field
// name (bill, persons, tip-preselection, tip-custom).
type EvaluateRequest struct {
	Fields map[string]string `json:"fields"`
}

// FieldError describes one invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CalculationResult holds the per-person amounts with two decimals.
type CalculationResult struct {
	TipPerPerson   string `json:"tip_per_person"`
	TotalPerPerson string `json:"total_per_person"`
}

type EvaluateResponse struct {
	// Errors lists invalid fields in priority order.
	Errors []*FieldError `json:"errors,omitempty"`
	// FirstInvalid is the field a client should focus, if any.
	FirstInvalid string `json:"first_invalid,omitempty"`
	// Result is set only when Errors is empty.
	Result        *CalculationResult `json:"result,omitempty"`
	ResetDisabled bool               `json:"reset_disabled"`
}

type Preset struct {
	ID        string  `json:"id"`
	Percent   float64 `json:"percent"`
	Label     string  `json:"label"`
	CreatedAt int64   `json:"created_at"`
}

type ListPresetsRequest struct{}

type ListPresetsResponse struct {
	Presets []*Preset `json:"presets"`
}

type CreatePresetRequest struct {
	Percent float64 `json:"percent"`
	Label   string  `json:"label,omitempty"`
}

type CreatePresetResponse struct {
	Preset *Preset `json:"preset"`
}

type DeletePresetRequest struct {
	PresetID string `json:"preset_id"`
}

type DeletePresetResponse struct{}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	// ExpiresAt is the Unix timestamp after which Token is rejected.
	ExpiresAt int64 `json:"expires_at"`
}
