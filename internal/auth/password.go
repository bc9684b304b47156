package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/tipcalc/internal/models"
	"github.com/mmynk/tipcalc/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid name or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrOperatorExists     = errors.New("operator already registered")
	ErrMissingName        = errors.New("operator name required")
)

// OperatorStorage defines the persistence the authenticator needs.
type OperatorStorage interface {
	CreateOperator(ctx context.Context, operator *models.Operator) error
	GetOperatorByName(ctx context.Context, name string) (*models.Operator, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage OperatorStorage
	cost    int
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage OperatorStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: storage,
		cost:    bcrypt.DefaultCost,
	}
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a new operator with a hashed password.
func (a *PasswordAuthenticator) Register(ctx context.Context, name, credential string) (*models.Operator, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	existing, err := a.storage.GetOperatorByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up operator: %w", err)
	}
	if existing != nil {
		return nil, ErrOperatorExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(credential), a.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	operator := models.NewOperator(name, string(hashed))
	if err := a.storage.CreateOperator(ctx, operator); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, ErrOperatorExists
		}
		return nil, fmt.Errorf("failed to create operator: %w", err)
	}

	return operator, nil
}

// Authenticate verifies the name and password, returning the operator if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, name, credential string) (*models.Operator, error) {
	operator, err := a.storage.GetOperatorByName(ctx, name)
	if err != nil || operator == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return operator, nil
}
