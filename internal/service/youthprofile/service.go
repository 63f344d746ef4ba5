// Package youthprofile owns the youth record lifecycle: drafts created
// by residents, review by admins, and the shared transition rules
// enforced through the workflow guard.
package youthprofile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"kabataan-backend/internal/domain"
	"kabataan-backend/internal/repository"
	"kabataan-backend/internal/service/audit"
	"kabataan-backend/internal/service/notification"
	"kabataan-backend/internal/service/workflow"
)

var (
	ErrProfileNotFound = errors.New("youth profile not found")
	ErrNotOwner        = errors.New("you do not own this profile")
	ErrNotEditable     = errors.New("only draft or rejected profiles can be edited")
)

// TransitionError is a refused status change, carrying the guard's
// classification for boundary translation (422 vs 403).
type TransitionError struct {
	Reason workflow.DenialReason
	From   domain.Status
	To     domain.Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transition %s -> %s refused: %s", e.From, e.To, e.Reason)
}

type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, input domain.YouthProfileInput) (*domain.YouthProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.YouthProfile, error)
	Update(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.YouthProfileInput) (*domain.YouthProfile, error)
	Submit(ctx context.Context, actor *domain.User, id uuid.UUID, meta audit.Meta) (*domain.YouthProfile, error)
	Approve(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.ReviewInput, meta audit.Meta) (*domain.YouthProfile, error)
	Reject(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.ReviewInput, meta audit.Meta) (*domain.YouthProfile, error)
	List(ctx context.Context, actor *domain.User, filter domain.YouthProfileFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.YouthProfile], error)
}

type service struct {
	profileRepo repository.YouthProfileRepository
	transitions workflow.TransitionTable
	auditSvc    audit.Service
	notifSvc    notification.Service
}

func NewService(
	profileRepo repository.YouthProfileRepository,
	auditSvc audit.Service,
	notifSvc notification.Service,
) Service {
	return &service{
		profileRepo: profileRepo,
		transitions: workflow.DefaultTransitions(),
		auditSvc:    auditSvc,
		notifSvc:    notifSvc,
	}
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, input domain.YouthProfileInput) (*domain.YouthProfile, error) {
	profile := &domain.YouthProfile{
		ID:     uuid.New(),
		UserID: &ownerID,
		Status: domain.StatusDraft,
		Source: domain.ProfileSourceRegistration,
	}
	applyInput(profile, input)

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.YouthProfile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// Update edits the record fields. Only the owner may edit, and only
// while the record is draft or rejected.
func (s *service) Update(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.YouthProfileInput) (*domain.YouthProfile, error) {
	profile, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isOwner(profile, actor.ID) {
		return nil, ErrNotOwner
	}
	if profile.Status != domain.StatusDraft && profile.Status != domain.StatusRejected {
		return nil, ErrNotEditable
	}

	applyInput(profile, input)
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Submit moves a draft or rejected profile into the review queue.
func (s *service) Submit(ctx context.Context, actor *domain.User, id uuid.UUID, meta audit.Meta) (*domain.YouthProfile, error) {
	profile, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	decision := workflow.Evaluate(s.transitions, profile.Status, domain.StatusPending, workflow.Actor{
		ID:          actor.ID,
		Role:        domain.UserRole(actor.Role),
		IsSubmitter: isOwner(profile, actor.ID),
	})
	if !decision.Allowed {
		return nil, &TransitionError{Reason: decision.Reason, From: profile.Status, To: domain.StatusPending}
	}

	previous := *profile
	if err := s.profileRepo.UpdateStatus(ctx, id, domain.StatusPending, nil, nil); err != nil {
		return nil, err
	}
	profile.Status = domain.StatusPending

	s.auditSvc.Record(ctx, audit.Entry{
		ActorID:    actor.ID,
		Action:     "SUBMIT",
		EntityType: domain.EntityYouthProfile,
		EntityID:   id,
		OldValue:   previous,
		NewValue:   profile,
		Meta:       meta,
	})
	s.notifSvc.NotifyProfileSubmitted(ctx, profile, actor.FullName)

	return profile, nil
}

func (s *service) Approve(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.ReviewInput, meta audit.Meta) (*domain.YouthProfile, error) {
	return s.review(ctx, actor, id, domain.StatusApproved, input.Note, meta)
}

func (s *service) Reject(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.ReviewInput, meta audit.Meta) (*domain.YouthProfile, error) {
	return s.review(ctx, actor, id, domain.StatusRejected, input.Note, meta)
}

func (s *service) review(ctx context.Context, actor *domain.User, id uuid.UUID, outcome domain.Status, note *string, meta audit.Meta) (*domain.YouthProfile, error) {
	profile, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	decision := workflow.Evaluate(s.transitions, profile.Status, outcome, workflow.Actor{
		ID:          actor.ID,
		Role:        domain.UserRole(actor.Role),
		IsSubmitter: isOwner(profile, actor.ID),
	})
	if !decision.Allowed {
		return nil, &TransitionError{Reason: decision.Reason, From: profile.Status, To: outcome}
	}

	previous := *profile
	if err := s.profileRepo.UpdateStatus(ctx, id, outcome, &actor.ID, note); err != nil {
		return nil, err
	}
	profile.Status = outcome
	profile.ReviewedBy = &actor.ID
	profile.ReviewNote = note

	action := "APPROVE"
	if outcome == domain.StatusRejected {
		action = "REJECT"
	}
	s.auditSvc.Record(ctx, audit.Entry{
		ActorID:    actor.ID,
		Action:     action,
		EntityType: domain.EntityYouthProfile,
		EntityID:   id,
		OldValue:   previous,
		NewValue:   profile,
		Meta:       meta,
	})
	s.notifSvc.NotifyProfileReviewed(ctx, profile, outcome == domain.StatusApproved, note)

	return profile, nil
}

// List scopes results by role: plain users see their own records only,
// reviewers see everything and may filter by status.
func (s *service) List(ctx context.Context, actor *domain.User, filter domain.YouthProfileFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.YouthProfile], error) {
	if !actor.HasRole("admin") {
		filter.UserID = &actor.ID
	}

	profiles, total, err := s.profileRepo.List(ctx, filter, params)
	if err != nil {
		return domain.PaginatedResponse[domain.YouthProfile]{}, err
	}
	return domain.NewPaginatedResponse(profiles, params.Page, params.PageSize, total), nil
}

func isOwner(profile *domain.YouthProfile, userID uuid.UUID) bool {
	return profile.UserID != nil && *profile.UserID == userID
}

func applyInput(profile *domain.YouthProfile, input domain.YouthProfileInput) {
	profile.FullName = input.FullName
	profile.Birthdate = input.Birthdate
	profile.Gender = input.Gender
	profile.CivilStatus = input.CivilStatus
	profile.ContactNumber = input.ContactNumber
	profile.Email = input.Email
	profile.Barangay = input.Barangay
	profile.Purok = input.Purok
	profile.FatherName = input.FatherName
	profile.MotherName = input.MotherName
	profile.HouseholdSize = input.HouseholdSize
	profile.MonthlyIncome = input.MonthlyIncome
	profile.EducationAttainment = input.EducationAttainment
	profile.WorkStatus = input.WorkStatus
	profile.RegisteredSKVoter = input.RegisteredSKVoter
	profile.RegisteredNationalVoter = input.RegisteredNationalVoter
	profile.AttendedAssembly = input.AttendedAssembly
}
