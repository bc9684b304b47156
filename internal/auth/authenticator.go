package auth

import (
	"context"

	"github.com/mmynk/tipcalc/internal/models"
)

// Authenticator defines the interface for operator authentication.
// Implementations may verify passwords, tokens from an identity provider, etc.
type Authenticator interface {
	// Register creates a new operator with the given name and credential.
	Register(ctx context.Context, name, credential string) (*models.Operator, error)

	// Authenticate verifies the operator's credential and returns the
	// operator if successful.
	Authenticate(ctx context.Context, name, credential string) (*models.Operator, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
