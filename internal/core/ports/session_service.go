package ports

import (
	"context"

	"github.com/DanielMb24/SchoolManager/internal/core/domain"
)

// SessionIssuer mints signed, time-bounded session tokens for an account.
type SessionIssuer interface {
	Issue(account *domain.Account) (string, error)
}

// SessionVerifier checks a session token against the signing secret, the
// clock and current account storage. An empty token means "no session" and
// is not an error; invalid or expired tokens degrade to unauthenticated.
type SessionVerifier interface {
	Check(ctx context.Context, token string) (domain.SessionState, error)
}
