// Package audit is the single entry point for writing the append-only
// activity trail. Workflow services call Record explicitly after every
// mutation instead of relying on implicit persistence hooks, so each
// logging site is visible in the caller.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"kabataan-backend/internal/domain"
	"kabataan-backend/internal/repository"
)

// Meta carries request-scoped client details from the handler layer.
type Meta struct {
	IPAddress string
	UserAgent string
}

// Entry is one recorded mutation. OldValue/NewValue hold the full prior
// and new attribute sets, not a diff.
type Entry struct {
	ActorID    uuid.UUID
	Action     string
	EntityType string
	EntityID   uuid.UUID
	OldValue   interface{}
	NewValue   interface{}
	Meta       Meta
}

type Service interface {
	Record(ctx context.Context, entry Entry)
	GetRecentActivities(ctx context.Context, limit int) ([]domain.AuditLog, error)
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error)
	PurgeExpired(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	auditRepo repository.AuditLogRepository
	log       zerolog.Logger
}

func NewService(auditRepo repository.AuditLogRepository, log zerolog.Logger) Service {
	return &service{
		auditRepo: auditRepo,
		log:       log.With().Str("service", "audit").Logger(),
	}
}

// Record appends one trail entry. Failures are logged and swallowed: an
// audit write must never fail the mutation it describes.
func (s *service) Record(ctx context.Context, entry Entry) {
	oldValueJSON, _ := json.Marshal(entry.OldValue)
	newValueJSON, _ := json.Marshal(entry.NewValue)

	logRow := &domain.AuditLog{
		ID:         uuid.New(),
		UserID:     entry.ActorID,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		OldValue:   oldValueJSON,
		NewValue:   newValueJSON,
	}
	if entry.Meta.IPAddress != "" {
		logRow.IPAddress = &entry.Meta.IPAddress
	}
	if entry.Meta.UserAgent != "" {
		logRow.UserAgent = &entry.Meta.UserAgent
	}

	if err := s.auditRepo.Create(ctx, logRow); err != nil {
		s.log.Error().Err(err).
			Str("action", entry.Action).
			Str("entity_type", entry.EntityType).
			Str("entity_id", entry.EntityID.String()).
			Msg("Failed to write audit log entry")
	}
}

func (s *service) GetRecentActivities(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	params := domain.PaginationParams{
		Page:     1,
		PageSize: limit,
	}

	logs, _, err := s.auditRepo.List(ctx, params)
	return logs, err
}

func (s *service) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error) {
	logs, total, err := s.auditRepo.ListByEntity(ctx, entityType, entityID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.AuditLog]{}, err
	}
	return domain.NewPaginatedResponse(logs, params.Page, params.PageSize, total), nil
}

func (s *service) PurgeExpired(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return s.auditRepo.DeleteOlderThan(ctx, cutoff)
}
