package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"kabataan-backend/internal/domain"
)

type ProposalRepository interface {
	Create(ctx context.Context, proposal *domain.Proposal) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	Update(ctx context.Context, proposal *domain.Proposal) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, approvedBy *uuid.UUID, rejectionReason *string) error
	List(ctx context.Context, filter domain.ProposalFilter, params domain.PaginationParams) ([]domain.Proposal, int64, error)
	CountByStatus(ctx context.Context, status domain.Status) (int64, error)
	ListAll(ctx context.Context) ([]domain.Proposal, error)
}

type proposalRepository struct {
	db *sqlx.DB
}

func NewProposalRepository(db *sqlx.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

func (r *proposalRepository) Create(ctx context.Context, p *domain.Proposal) error {
	query := `
		INSERT INTO proposals (id, category_id, title, description, budget, status, submitted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		p.ID, p.CategoryID, p.Title, p.Description, p.Budget, p.Status, p.SubmittedBy,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *proposalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	var proposal domain.Proposal
	query := `SELECT * FROM proposals WHERE id = $1`
	err := r.db.GetContext(ctx, &proposal, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

func (r *proposalRepository) Update(ctx context.Context, p *domain.Proposal) error {
	query := `
		UPDATE proposals
		SET category_id = :category_id, title = :title, description = :description,
			budget = :budget, updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, p)
	return err
}

func (r *proposalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, approvedBy *uuid.UUID, rejectionReason *string) error {
	query := `
		UPDATE proposals
		SET status = $2, approved_by = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status, approvedBy, rejectionReason)
	return err
}

func (r *proposalRepository) List(ctx context.Context, filter domain.ProposalFilter, params domain.PaginationParams) ([]domain.Proposal, int64, error) {
	params.Validate()

	where := " WHERE 1=1"
	args := []interface{}{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += " AND status = $" + strconv.Itoa(len(args))
	}
	if filter.SubmittedBy != nil {
		args = append(args, *filter.SubmittedBy)
		where += " AND submitted_by = $" + strconv.Itoa(len(args))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		where += " AND category_id = $" + strconv.Itoa(len(args))
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM proposals"+where, args...); err != nil {
		return nil, 0, err
	}

	args = append(args, params.PageSize, params.Offset())
	query := "SELECT * FROM proposals" + where +
		" ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args))

	var proposals []domain.Proposal
	err := r.db.SelectContext(ctx, &proposals, query, args...)
	return proposals, total, err
}

func (r *proposalRepository) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM proposals WHERE status = $1`
	err := r.db.GetContext(ctx, &count, query, status)
	return count, err
}

func (r *proposalRepository) ListAll(ctx context.Context) ([]domain.Proposal, error) {
	var proposals []domain.Proposal
	query := `SELECT * FROM proposals ORDER BY created_at`
	err := r.db.SelectContext(ctx, &proposals, query)
	return proposals, err
}
