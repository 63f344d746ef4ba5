package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"kabataan-backend/internal/domain"
)

type YouthProfileRepository interface {
	Create(ctx context.Context, profile *domain.YouthProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.YouthProfile, error)
	Update(ctx context.Context, profile *domain.YouthProfile) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, reviewedBy *uuid.UUID, note *string) error
	List(ctx context.Context, filter domain.YouthProfileFilter, params domain.PaginationParams) ([]domain.YouthProfile, int64, error)
	ExistsPendingByNameAndBirthdate(ctx context.Context, fullName, birthdate string) (bool, error)
	CountByStatus(ctx context.Context, status domain.Status) (int64, error)
	GetLastActivityAt(ctx context.Context) (*time.Time, error)
	ListAll(ctx context.Context) ([]domain.YouthProfile, error)
}

type youthProfileRepository struct {
	db *sqlx.DB
}

func NewYouthProfileRepository(db *sqlx.DB) YouthProfileRepository {
	return &youthProfileRepository{db: db}
}

func (r *youthProfileRepository) Create(ctx context.Context, p *domain.YouthProfile) error {
	query := `
		INSERT INTO youth_profiles (
			id, user_id, status, source,
			full_name, birthdate, gender, civil_status, contact_number, email, barangay, purok,
			father_name, mother_name, household_size, monthly_income,
			education_attainment, work_status, registered_sk_voter, registered_national_voter, attended_assembly
		)
		VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16,
			$17, $18, $19, $20, $21
		)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		p.ID, p.UserID, p.Status, p.Source,
		p.FullName, p.Birthdate, p.Gender, p.CivilStatus, p.ContactNumber, p.Email, p.Barangay, p.Purok,
		p.FatherName, p.MotherName, p.HouseholdSize, p.MonthlyIncome,
		p.EducationAttainment, p.WorkStatus, p.RegisteredSKVoter, p.RegisteredNationalVoter, p.AttendedAssembly,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *youthProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.YouthProfile, error) {
	var profile domain.YouthProfile
	query := `SELECT * FROM youth_profiles WHERE id = $1`
	err := r.db.GetContext(ctx, &profile, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *youthProfileRepository) Update(ctx context.Context, p *domain.YouthProfile) error {
	query := `
		UPDATE youth_profiles
		SET full_name = :full_name, birthdate = :birthdate, gender = :gender,
			civil_status = :civil_status, contact_number = :contact_number, email = :email,
			barangay = :barangay, purok = :purok,
			father_name = :father_name, mother_name = :mother_name,
			household_size = :household_size, monthly_income = :monthly_income,
			education_attainment = :education_attainment, work_status = :work_status,
			registered_sk_voter = :registered_sk_voter,
			registered_national_voter = :registered_national_voter,
			attended_assembly = :attended_assembly,
			updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, p)
	return err
}

func (r *youthProfileRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, reviewedBy *uuid.UUID, note *string) error {
	query := `
		UPDATE youth_profiles
		SET status = $2, reviewed_by = $3, reviewed_at = NOW(), review_note = $4, updated_at = NOW()
		WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status, reviewedBy, note)
	return err
}

func (r *youthProfileRepository) List(ctx context.Context, filter domain.YouthProfileFilter, params domain.PaginationParams) ([]domain.YouthProfile, int64, error) {
	params.Validate()

	where := " WHERE 1=1"
	args := []interface{}{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += " AND status = $" + strconv.Itoa(len(args))
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		where += " AND user_id = $" + strconv.Itoa(len(args))
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM youth_profiles"+where, args...); err != nil {
		return nil, 0, err
	}

	args = append(args, params.PageSize, params.Offset())
	query := "SELECT * FROM youth_profiles" + where +
		" ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args))

	var profiles []domain.YouthProfile
	err := r.db.SelectContext(ctx, &profiles, query, args...)
	return profiles, total, err
}

func (r *youthProfileRepository) ExistsPendingByNameAndBirthdate(ctx context.Context, fullName, birthdate string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM youth_profiles WHERE status = 'pending' AND full_name = $1 AND birthdate = $2)`
	err := r.db.GetContext(ctx, &exists, query, fullName, birthdate)
	return exists, err
}

func (r *youthProfileRepository) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM youth_profiles WHERE status = $1`
	err := r.db.GetContext(ctx, &count, query, status)
	return count, err
}

func (r *youthProfileRepository) GetLastActivityAt(ctx context.Context) (*time.Time, error) {
	var last sql.NullTime
	query := `SELECT MAX(updated_at) FROM youth_profiles`
	if err := r.db.GetContext(ctx, &last, query); err != nil {
		return nil, err
	}
	if !last.Valid {
		return nil, nil
	}
	return &last.Time, nil
}

func (r *youthProfileRepository) ListAll(ctx context.Context) ([]domain.YouthProfile, error) {
	var profiles []domain.YouthProfile
	query := `SELECT * FROM youth_profiles ORDER BY created_at`
	err := r.db.SelectContext(ctx, &profiles, query)
	return profiles, err
}
