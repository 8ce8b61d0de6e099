package ports

import (
	"context"

	"github.com/DanielMb24/SchoolManager/internal/core/domain"
)

// AuditSink accepts auth events for asynchronous recording. Enqueue is
// best-effort and must never block the request path.
type AuditSink interface {
	Enqueue(event domain.AuthEvent)
}

// AuditService persists a single auth event. It sits behind the dispatcher's
// worker pool.
type AuditService interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}

// AuditRepository stores auth events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
	// ListBySubject returns the most recent events for a subject, newest
	// first, capped at limit.
	ListBySubject(ctx context.Context, subject string, limit int) ([]domain.AuthEvent, error)
}
