package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"kabataan-backend/internal/domain"
)

type ProposalCategoryRepository interface {
	Create(ctx context.Context, category *domain.ProposalCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ProposalCategory, error)
	List(ctx context.Context) ([]domain.ProposalCategory, error)
}

type proposalCategoryRepository struct {
	db *sqlx.DB
}

func NewProposalCategoryRepository(db *sqlx.DB) ProposalCategoryRepository {
	return &proposalCategoryRepository{db: db}
}

func (r *proposalCategoryRepository) Create(ctx context.Context, c *domain.ProposalCategory) error {
	query := `
		INSERT INTO proposal_categories (id, name)
		VALUES ($1, $2)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query, c.ID, c.Name).Scan(&c.CreatedAt)
}

func (r *proposalCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProposalCategory, error) {
	var category domain.ProposalCategory
	query := `SELECT * FROM proposal_categories WHERE id = $1`
	err := r.db.GetContext(ctx, &category, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *proposalCategoryRepository) List(ctx context.Context) ([]domain.ProposalCategory, error) {
	var categories []domain.ProposalCategory
	query := `SELECT * FROM proposal_categories ORDER BY name`
	err := r.db.SelectContext(ctx, &categories, query)
	return categories, err
}
