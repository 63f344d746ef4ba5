// Package scheduler runs the periodic retention sweep: audit entries
// past their retention window and expired refresh sessions are purged
// on a fixed interval.
package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"kabataan-backend/internal/config"
	"kabataan-backend/internal/repository"
	"kabataan-backend/internal/service/audit"
)

type Scheduler struct {
	auditSvc    audit.Service
	sessionRepo repository.SessionRepository
	cfg         *config.Config
	log         zerolog.Logger
	ctx         context.Context
	cancel      context.CancelFunc
}

func New(auditSvc audit.Service, sessionRepo repository.SessionRepository, cfg *config.Config, log zerolog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		auditSvc:    auditSvc,
		sessionRepo: sessionRepo,
		cfg:         cfg,
		log:         log.With().Str("component", "scheduler").Logger(),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start runs an immediate sweep and then repeats on the configured
// interval until Stop is called.
func (s *Scheduler) Start() {
	go func() {
		s.sweep()

		ticker := time.NewTicker(s.cfg.RetentionSweepEvery)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()

	s.log.Info().
		Dur("interval", s.cfg.RetentionSweepEvery).
		Int("audit_retention_days", s.cfg.AuditRetentionDays).
		Msg("Retention sweep scheduled")
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.log.Info().Msg("Scheduler stopped")
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(s.ctx, time.Minute)
	defer cancel()

	purged, err := s.auditSvc.PurgeExpired(ctx, s.cfg.AuditRetentionDays)
	if err != nil {
		s.log.Error().Err(err).Msg("Audit retention sweep failed")
	} else if purged > 0 {
		s.log.Info().Int64("purged", purged).Msg("Purged expired audit entries")
	}

	sessions, err := s.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Session cleanup failed")
	} else if sessions > 0 {
		s.log.Info().Int64("purged", sessions).Msg("Purged expired sessions")
	}
}
