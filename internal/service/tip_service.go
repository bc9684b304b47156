package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tipcalc/internal/auth"
	"github.com/mmynk/tipcalc/internal/calculator"
	"github.com/mmynk/tipcalc/internal/middleware"
	"github.com/mmynk/tipcalc/internal/models"
	"github.com/mmynk/tipcalc/internal/storage"
	"github.com/mmynk/tipcalc/pkg/api"
)

// EvaluationObserver records engine evaluations.
type EvaluationObserver interface {
	ObserveEvaluation(source string, ev calculator.Evaluation)
}

// Ensure TipService implements api.TipServiceHandler
var _ api.TipServiceHandler = (*TipService)(nil)

// TipService implements the Connect TipService.
type TipService struct {
	store    storage.Store
	observer EvaluationObserver
}

// NewTipService creates a new TipService. observer may be nil.
func NewTipService(store storage.Store, observer EvaluationObserver) *TipService {
	return &TipService{store: store, observer: observer}
}

// Evaluate validates the submitted fields and computes the tip. Invalid
// fields are reported in the response, not as an RPC error.
func (s *TipService) Evaluate(ctx context.Context, req *connect.Request[api.EvaluateRequest]) (*connect.Response[api.EvaluateResponse], error) {
	snapshot := calculator.NewSnapshot(req.Msg.Fields)
	ev := calculator.Evaluate(snapshot)
	if s.observer != nil {
		s.observer.ObserveEvaluation("rpc", ev)
	}

	resp := &api.EvaluateResponse{
		ResetDisabled: calculator.ResetDisabled(snapshot),
	}
	for _, f := range ev.Errors.Fields() {
		resp.Errors = append(resp.Errors, &api.FieldError{
			Field:   string(f),
			Message: calculator.Message(f),
		})
	}
	if first, ok := ev.FirstInvalid(); ok {
		resp.FirstInvalid = string(first)
	}
	if ev.Result != nil {
		resp.Result = &api.CalculationResult{
			TipPerPerson:   ev.Result.TipPerPerson,
			TotalPerPerson: ev.Result.TotalPerPerson,
		}
	}

	slog.Debug("Evaluated fields",
		"fields", len(req.Msg.Fields),
		"invalid", len(resp.Errors),
		"first_invalid", resp.FirstInvalid,
	)
	return connect.NewResponse(resp), nil
}

// ListPresets returns the tip presets offered for preselection.
func (s *TipService) ListPresets(ctx context.Context, req *connect.Request[api.ListPresetsRequest]) (*connect.Response[api.ListPresetsResponse], error) {
	presets, err := s.store.ListPresets(ctx)
	if err != nil {
		slog.Error("ListPresets failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &api.ListPresetsResponse{Presets: make([]*api.Preset, len(presets))}
	for i, p := range presets {
		resp.Presets[i] = toAPIPreset(p)
	}
	return connect.NewResponse(resp), nil
}

// CreatePreset adds a tip preset. Requires an authenticated operator.
func (s *TipService) CreatePreset(ctx context.Context, req *connect.Request[api.CreatePresetRequest]) (*connect.Response[api.CreatePresetResponse], error) {
	operator := middleware.GetOperatorName(ctx)
	if operator == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	// A preset is subject to the same range as a custom tip.
	if !calculator.ValidateField(calculator.FieldTipCustom, req.Msg.Percent) {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("percent %v: %s", req.Msg.Percent, calculator.Message(calculator.FieldTipCustom)))
	}

	preset := &models.Preset{
		Percent: req.Msg.Percent,
		Label:   req.Msg.Label,
	}
	if err := s.store.CreatePreset(ctx, preset); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		}
		slog.Error("CreatePreset failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Preset created", "preset_id", preset.ID, "percent", preset.Percent, "operator", operator)
	return connect.NewResponse(&api.CreatePresetResponse{Preset: toAPIPreset(preset)}), nil
}

// DeletePreset removes a tip preset. Requires an authenticated operator.
func (s *TipService) DeletePreset(ctx context.Context, req *connect.Request[api.DeletePresetRequest]) (*connect.Response[api.DeletePresetResponse], error) {
	operator := middleware.GetOperatorName(ctx)
	if operator == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	if req.Msg.PresetID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("preset_id required"))
	}

	if err := s.store.DeletePreset(ctx, req.Msg.PresetID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		slog.Error("DeletePreset failed", "preset_id", req.Msg.PresetID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Preset deleted", "preset_id", req.Msg.PresetID, "operator", operator)
	return connect.NewResponse(&api.DeletePresetResponse{}), nil
}

func toAPIPreset(p *models.Preset) *api.Preset {
	return &api.Preset{
		ID:        p.ID,
		Percent:   p.Percent,
		Label:     p.Label,
		CreatedAt: p.CreatedAt,
	}
}
