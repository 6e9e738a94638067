package auth

import (
	"context"

	"splitledger/internal/models"
)

// Authenticator abstracts the authentication method so the service layer
// does not care whether credentials are passwords, OAuth tokens or
// anything else.
type Authenticator interface {
	// Register creates a new user account with the given email and
	// credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the credentials and returns the user.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks that the credential meets the
	// implementation's requirements.
	ValidateCredential(credential string) error
}
