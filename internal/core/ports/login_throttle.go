package ports

import "context"

// LoginThrottle counts failed login attempts per identifier so the auth
// service can refuse further attempts inside the throttle window.
// Implementations should fail open: an unavailable counter must not lock
// every account out.
type LoginThrottle interface {
	// TooMany reports whether identifier has exceeded the failure budget.
	TooMany(ctx context.Context, identifier string) (bool, error)
	// RecordFailure registers one failed attempt for identifier.
	RecordFailure(ctx context.Context, identifier string) error
	// Reset clears the failure counter, called after a successful login.
	Reset(ctx context.Context, identifier string) error
}
