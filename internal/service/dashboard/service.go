package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"kabataan-backend/internal/domain"
	"kabataan-backend/internal/repository"
)

type Stats struct {
	TotalProfiles    int64      `json:"total_profiles"`
	PendingProfiles  int64      `json:"pending_profiles"`
	ApprovedProfiles int64      `json:"approved_profiles"`
	RejectedProfiles int64      `json:"rejected_profiles"`

	TotalProposals    int64 `json:"total_proposals"`
	PendingProposals  int64 `json:"pending_proposals"`
	ApprovedProposals int64 `json:"approved_proposals"`
	RejectedProposals int64 `json:"rejected_proposals"`

	ActiveUsers    int64      `json:"active_users"`
	LastActivityAt *time.Time `json:"last_activity_at"`
}

type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type service struct {
	profileRepo  repository.YouthProfileRepository
	proposalRepo repository.ProposalRepository
	userRepo     repository.UserRepository
	redis        *redis.Client
}

func NewService(profileRepo repository.YouthProfileRepository, proposalRepo repository.ProposalRepository, userRepo repository.UserRepository, redis *redis.Client) Service {
	return &service{
		profileRepo:  profileRepo,
		proposalRepo: proposalRepo,
		userRepo:     userRepo,
		redis:        redis,
	}
}

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	cacheKey := "dashboard:stats"

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats Stats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	stats := &Stats{}

	profileCounts := map[domain.Status]*int64{
		domain.StatusPending:  &stats.PendingProfiles,
		domain.StatusApproved: &stats.ApprovedProfiles,
		domain.StatusRejected: &stats.RejectedProfiles,
	}
	for status, dest := range profileCounts {
		count, err := s.profileRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		*dest = count
		stats.TotalProfiles += count
	}
	draftProfiles, err := s.profileRepo.CountByStatus(ctx, domain.StatusDraft)
	if err != nil {
		return nil, err
	}
	stats.TotalProfiles += draftProfiles

	proposalCounts := map[domain.Status]*int64{
		domain.StatusPending:  &stats.PendingProposals,
		domain.StatusApproved: &stats.ApprovedProposals,
		domain.StatusRejected: &stats.RejectedProposals,
	}
	for status, dest := range proposalCounts {
		count, err := s.proposalRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		*dest = count
		stats.TotalProposals += count
	}
	draftProposals, err := s.proposalRepo.CountByStatus(ctx, domain.StatusDraft)
	if err != nil {
		return nil, err
	}
	stats.TotalProposals += draftProposals

	activeUsers, err := s.userRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	stats.ActiveUsers = activeUsers

	stats.LastActivityAt, _ = s.profileRepo.GetLastActivityAt(ctx)

	if s.redis != nil {
		if statsJSON, err := json.Marshal(stats); err == nil {
			_ = s.redis.Set(ctx, cacheKey, statsJSON, 5*time.Minute).Err()
		}
	}

	return stats, nil
}
