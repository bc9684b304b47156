package models

import (
	"time"

	"github.com/google/uuid"
)

// Operator is an account allowed to manage presets.
type Operator struct {
	// ID is the unique identifier for the operator (UUID format).
	ID string

	// Name is the login name (unique).
	Name string

	// PasswordHash is the bcrypt hash of the operator's password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the operator was registered.
	CreatedAt int64
}

// NewOperator creates an operator with a fresh ID and creation time.
func NewOperator(name, passwordHash string) *Operator {
	return &Operator{
		ID:           uuid.New().String(),
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
