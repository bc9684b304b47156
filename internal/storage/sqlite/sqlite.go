// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/tipcalc/internal/models"
	"github.com/mmynk/tipcalc/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ListPresets returns every preset ordered by percent.
func (s *SQLiteStore) ListPresets(ctx context.Context) ([]*models.Preset, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, percent, label, created_at FROM presets ORDER BY percent",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	defer rows.Close()

	var presets []*models.Preset
	for rows.Next() {
		p := &models.Preset{}
		if err := rows.Scan(&p.ID, &p.Percent, &p.Label, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan preset: %w", err)
		}
		presets = append(presets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate presets: %w", err)
	}

	return presets, nil
}

// CreatePreset persists a new preset.
func (s *SQLiteStore) CreatePreset(ctx context.Context, preset *models.Preset) error {
	return insertPreset(ctx, s.db, preset)
}

// DeletePreset removes a preset by ID.
func (s *SQLiteStore) DeletePreset(ctx context.Context, presetID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM presets WHERE id = ?", presetID)
	if err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("preset %s: %w", presetID, storage.ErrNotFound)
	}
	return nil
}

// SeedPresets inserts the default presets when the table is empty.
func (s *SQLiteStore) SeedPresets(ctx context.Context, percents []float64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM presets").Scan(&count); err != nil {
		return fmt.Errorf("failed to count presets: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, percent := range percents {
		if err := insertPreset(ctx, tx, &models.Preset{Percent: percent}); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CreateOperator persists a new operator.
func (s *SQLiteStore) CreateOperator(ctx context.Context, operator *models.Operator) error {
	if operator.ID == "" {
		operator.ID = uuid.New().String()
	}
	if operator.CreatedAt == 0 {
		operator.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO operators (id, name, password_hash, created_at) VALUES (?, ?, ?, ?)",
		operator.ID, operator.Name, operator.PasswordHash, operator.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("operator %q: %w", operator.Name, storage.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to create operator: %w", err)
	}
	return nil
}

// GetOperatorByName retrieves an operator by name.
func (s *SQLiteStore) GetOperatorByName(ctx context.Context, name string) (*models.Operator, error) {
	op := &models.Operator{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, password_hash, created_at FROM operators WHERE name = ?",
		name,
	).Scan(&op.ID, &op.Name, &op.PasswordHash, &op.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil // Operator not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get operator by name: %w", err)
	}
	return op, nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertPreset(ctx context.Context, db execer, preset *models.Preset) error {
	if preset.ID == "" {
		preset.ID = uuid.New().String()
	}
	if preset.CreatedAt == 0 {
		preset.CreatedAt = time.Now().Unix()
	}
	if preset.Label == "" {
		preset.Label = models.DefaultLabel(preset.Percent)
	}

	_, err := db.ExecContext(ctx,
		"INSERT INTO presets (id, percent, label, created_at) VALUES (?, ?, ?, ?)",
		preset.ID, preset.Percent, preset.Label, preset.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("preset %s: %w", preset.Label, storage.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to insert preset: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
