package proposal

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
	ErrProposalNotFound = errors.New("proposal not found")
	ErrCategoryNotFound = errors.New("proposal category not found")
	ErrNotSubmitter     = errors.New("you did not submit this proposal")
	ErrNotEditable      = errors.New("only draft or rejected proposals can be edited")
)

type TransitionError struct {
	Reason workflow.DenialReason
	From   domain.Status
	To     domain.Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transition %s -> %s refused: %s", e.From, e.To, e.Reason)
}

type Service interface {
	Create(ctx context.Context, submitterID uuid.UUID, input domain.ProposalInput) (*domain.Proposal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	Update(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.ProposalInput) (*domain.Proposal, error)
	Submit(ctx context.Context, actor *domain.User, id uuid.UUID, meta audit.Meta) (*domain.Proposal, error)
	Approve(ctx context.Context, actor *domain.User, id uuid.UUID, meta audit.Meta) (*domain.Proposal, error)
	Reject(ctx context.Context, actor *domain.User, id uuid.UUID, reason *string, meta audit.Meta) (*domain.Proposal, error)
	List(ctx context.Context, actor *domain.User, filter domain.ProposalFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Proposal], error)

	CreateCategory(ctx context.Context, name string) (*domain.ProposalCategory, error)
	ListCategories(ctx context.Context) ([]domain.ProposalCategory, error)
}

type service struct {
	proposalRepo repository.ProposalRepository
	categoryRepo repository.ProposalCategoryRepository
	transitions  workflow.TransitionTable
	auditSvc     audit.Service
	notifSvc     notification.Service
}

func NewService(
	proposalRepo repository.ProposalRepository,
	categoryRepo repository.ProposalCategoryRepository,
	auditSvc audit.Service,
	notifSvc notification.Service,
) Service {
	return &service{
		proposalRepo: proposalRepo,
		categoryRepo: categoryRepo,
		transitions:  workflow.DefaultTransitions(),
		auditSvc:     auditSvc,
		notifSvc:     notifSvc,
	}
}

func (s *service) Create(ctx context.Context, submitterID uuid.UUID, input domain.ProposalInput) (*domain.Proposal, error) {
	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	proposal := &domain.Proposal{
		ID:          uuid.New(),
		CategoryID:  input.CategoryID,
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		Status:      domain.StatusDraft,
		SubmittedBy: submitterID,
	}

	if err := s.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, ErrProposalNotFound
	}
	return proposal, nil
}

func (s *service) Update(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.ProposalInput) (*domain.Proposal, error) {
	proposal, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proposal.SubmittedBy != actor.ID {
		return nil, ErrNotSubmitter
	}
	if proposal.Status != domain.StatusDraft && proposal.Status != domain.StatusRejected {
		return nil, ErrNotEditable
	}

	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	proposal.CategoryID = input.CategoryID
	proposal.Title = input.Title
	proposal.Description = input.Description
	proposal.Budget = input.Budget

	if err := s.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

// Submit covers both first submission (draft) and resubmission after a
// rejection. Either way only the original submitter may move the
// proposal into review.
func (s *service) Submit(ctx context.Context, actor *domain.User, id uuid.UUID, meta audit.Meta) (*domain.Proposal, error) {
	proposal, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	decision := workflow.Evaluate(s.transitions, proposal.Status, domain.StatusPending, workflow.Actor{
		ID:          actor.ID,
		Role:        domain.UserRole(actor.Role),
		IsSubmitter: proposal.SubmittedBy == actor.ID,
	})
	if !decision.Allowed {
		return nil, &TransitionError{Reason: decision.Reason, From: proposal.Status, To: domain.StatusPending}
	}

	previous := *proposal
	if err := s.proposalRepo.UpdateStatus(ctx, id, domain.StatusPending, nil, nil); err != nil {
		return nil, err
	}
	proposal.Status = domain.StatusPending
	proposal.RejectionReason = nil

	s.auditSvc.Record(ctx, audit.Entry{
		ActorID:    actor.ID,
		Action:     "SUBMIT",
		EntityType: domain.EntityProposal,
		EntityID:   id,
		OldValue:   previous,
		NewValue:   proposal,
		Meta:       meta,
	})
	s.notifSvc.NotifyProposalSubmitted(ctx, proposal, actor.FullName)

	return proposal, nil
}

func (s *service) Approve(ctx context.Context, actor *domain.User, id uuid.UUID, meta audit.Meta) (*domain.Proposal, error) {
	return s.review(ctx, actor, id, domain.StatusApproved, nil, meta)
}

func (s *service) Reject(ctx context.Context, actor *domain.User, id uuid.UUID, reason *string, meta audit.Meta) (*domain.Proposal, error) {
	return s.review(ctx, actor, id, domain.StatusRejected, reason, meta)
}

func (s *service) review(ctx context.Context, actor *domain.User, id uuid.UUID, outcome domain.Status, reason *string, meta audit.Meta) (*domain.Proposal, error) {
	proposal, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	decision := workflow.Evaluate(s.transitions, proposal.Status, outcome, workflow.Actor{
		ID:          actor.ID,
		Role:        domain.UserRole(actor.Role),
		IsSubmitter: proposal.SubmittedBy == actor.ID,
	})
	if !decision.Allowed {
		return nil, &TransitionError{Reason: decision.Reason, From: proposal.Status, To: outcome}
	}

	previous := *proposal
	var approvedBy *uuid.UUID
	if outcome == domain.StatusApproved {
		approvedBy = &actor.ID
	}
	if err := s.proposalRepo.UpdateStatus(ctx, id, outcome, approvedBy, reason); err != nil {
		return nil, err
	}
	proposal.Status = outcome
	proposal.ApprovedBy = approvedBy
	proposal.RejectionReason = reason

	action := "APPROVE"
	if outcome == domain.StatusRejected {
		action = "REJECT"
	}
	s.auditSvc.Record(ctx, audit.Entry{
		ActorID:    actor.ID,
		Action:     action,
		EntityType: domain.EntityProposal,
		EntityID:   id,
		OldValue:   previous,
		NewValue:   proposal,
		Meta:       meta,
	})
	s.notifSvc.NotifyProposalReviewed(ctx, proposal, outcome == domain.StatusApproved, reason)

	return proposal, nil
}

func (s *service) List(ctx context.Context, actor *domain.User, filter domain.ProposalFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Proposal], error) {
	if !actor.HasRole("admin") {
		filter.SubmittedBy = &actor.ID
	}

	proposals, total, err := s.proposalRepo.List(ctx, filter, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Proposal]{}, err
	}
	return domain.NewPaginatedResponse(proposals, params.Page, params.PageSize, total), nil
}

func (s *service) CreateCategory(ctx context.Context, name string) (*domain.ProposalCategory, error) {
	category := &domain.ProposalCategory{
		ID:   uuid.New(),
		Name: name,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *service) ListCategories(ctx context.Context) ([]domain.ProposalCategory, error) {
	return s.categoryRepo.List(ctx)
}
