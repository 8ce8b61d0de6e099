package ports

import (
	"context"

	"github.com/DanielMb24/SchoolManager/internal/core/domain"
)

// AccountRepository owns account persistence. Implementations must enforce
// identifier uniqueness at the storage boundary: Create is a single
// constraint-backed insert, never a check followed by an insert, so that two
// concurrent registrations with the same identifier cannot both succeed.
type AccountRepository interface {
	// FindByIdentifier looks up an account by its normalized identifier.
	// Returns domain.ErrAccountNotFound when no account matches.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.Account, error)
	// FindByID looks up an account by its opaque id.
	// Returns domain.ErrAccountNotFound when no account matches.
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// Create inserts the account and returns its assigned id. Returns
	// domain.ErrIdentifierTaken when the identifier is already in use.
	Create(ctx context.Context, account *domain.Account) (string, error)
}
