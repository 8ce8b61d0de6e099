package ports

import (
	"context"

	"github.com/DanielMb24/SchoolManager/internal/core/domain"
)

// RegisterInput carries the raw registration form. Secret and
// SecretConfirmation are plaintext; they are hashed and discarded inside the
// service and must not be retained by callers.
type RegisterInput struct {
	Surname            string
	GivenName          string
	Role               domain.Role
	Identifier         string
	Secret             string
	SecretConfirmation string
}

type AuthService interface {
	// Register validates the input, hashes the secret and creates the
	// account. Returns the new account id.
	Register(ctx context.Context, input RegisterInput) (string, error)
	// Login verifies the credentials and mints a session token. Unknown
	// identifier and wrong secret both fail with
	// domain.ErrInvalidCredentials so callers cannot enumerate identifiers.
	Login(ctx context.Context, identifier, secret string) (string, *domain.Principal, error)
}
