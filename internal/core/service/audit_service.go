package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/DanielMb24/SchoolManager/internal/api/metrics"
	"github.com/DanielMb24/SchoolManager/internal/core/domain"
	"github.com/DanielMb24/SchoolManager/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists auth events. It runs
// behind the dispatcher's worker pool, off the request path.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, event domain.AuthEvent) error {
	if event.Kind == "" || event.Subject == "" {
		return fmt.Errorf("audit event incomplete: kind=%q subject=%q", event.Kind, event.Subject)
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}

	metrics.AuditEventsTotal.WithLabelValues(string(event.Kind)).Inc()
	s.log.Debug().Str("kind", string(event.Kind)).Str("subject", event.Subject).Msg("audit event recorded")
	return nil
}
