// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tipcalc/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a record violates a uniqueness constraint.
	ErrDuplicate = errors.New("already exists")
)

// Store defines the interface for preset and operator storage.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// ListPresets returns all presets ordered by percent.
	ListPresets(ctx context.Context) ([]*models.Preset, error)

	// CreatePreset persists a new preset. ID, CreatedAt and an empty Label
	// are filled in by the store. Returns ErrDuplicate if the percent is
	// already offered.
	CreatePreset(ctx context.Context, preset *models.Preset) error

	// DeletePreset removes a preset by ID.
	// Returns ErrNotFound if the preset does not exist.
	DeletePreset(ctx context.Context, presetID string) error

	// SeedPresets inserts the given percents when no preset exists yet.
	SeedPresets(ctx context.Context, percents []float64) error

	// CreateOperator persists a new operator.
	// Returns ErrDuplicate if the name is taken.
	CreateOperator(ctx context.Context, operator *models.Operator) error

	// GetOperatorByName retrieves an operator by name.
	// Returns nil and no error if the operator does not exist.
	GetOperatorByName(ctx context.Context, name string) (*models.Operator, error)

	// Close releases any resources held by the store.
	Close() error
}
