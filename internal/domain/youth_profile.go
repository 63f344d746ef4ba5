package domain

import (
	"time"

	"github.com/google/uuid"
)

type YouthProfile struct {
	ID     uuid.UUID  `json:"id" db:"id"`
	UserID *uuid.UUID `json:"user_id,omitempty" db:"user_id"`
	Status Status     `json:"status" db:"status"`
	Source string     `json:"source" db:"source"`

	FullName      string  `json:"full_name" db:"full_name"`
	Birthdate     string  `json:"birthdate" db:"birthdate"`
	Gender        string  `json:"gender" db:"gender"`
	CivilStatus   string  `json:"civil_status" db:"civil_status"`
	ContactNumber *string `json:"contact_number,omitempty" db:"contact_number"`
	Email         *string `json:"email,omitempty" db:"email"`
	Barangay      string  `json:"barangay" db:"barangay"`
	Purok         *string `json:"purok,omitempty" db:"purok"`

	FatherName    *string  `json:"father_name,omitempty" db:"father_name"`
	MotherName    *string  `json:"mother_name,omitempty" db:"mother_name"`
	HouseholdSize *int     `json:"household_size,omitempty" db:"household_size"`
	MonthlyIncome *float64 `json:"monthly_income,omitempty" db:"monthly_income"`

	EducationAttainment     string `json:"education_attainment" db:"education_attainment"`
	WorkStatus              string `json:"work_status" db:"work_status"`
	RegisteredSKVoter       bool   `json:"registered_sk_voter" db:"registered_sk_voter"`
	RegisteredNationalVoter bool   `json:"registered_national_voter" db:"registered_national_voter"`
	AttendedAssembly        bool   `json:"attended_assembly" db:"attended_assembly"`

	ReviewedBy *uuid.UUID `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty" db:"reviewed_at"`
	ReviewNote *string    `json:"review_note,omitempty" db:"review_note"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Owner    *User `json:"owner,omitempty" db:"-"`
	Reviewer *User `json:"reviewer,omitempty" db:"-"`
}

const (
	ProfileSourceRegistration = "registration"
	ProfileSourceImport       = "import"
)

type YouthProfileInput struct {
	FullName      string  `json:"full_name" validate:"required,max=150"`
	Birthdate     string  `json:"birthdate" validate:"required,datetime=2006-01-02"`
	Gender        string  `json:"gender" validate:"required,oneof=male female"`
	CivilStatus   string  `json:"civil_status" validate:"required,oneof=single married widowed separated live-in"`
	ContactNumber *string `json:"contact_number,omitempty" validate:"omitempty,max=13"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Barangay      string  `json:"barangay" validate:"required,max=100"`
	Purok         *string `json:"purok,omitempty" validate:"omitempty,max=100"`

	FatherName    *string  `json:"father_name,omitempty" validate:"omitempty,max=150"`
	MotherName    *string  `json:"mother_name,omitempty" validate:"omitempty,max=150"`
	HouseholdSize *int     `json:"household_size,omitempty" validate:"omitempty,min=1"`
	MonthlyIncome *float64 `json:"monthly_income,omitempty" validate:"omitempty,min=0"`

	EducationAttainment     string `json:"education_attainment" validate:"required,oneof=elementary high-school senior-high vocational college postgraduate out-of-school"`
	WorkStatus              string `json:"work_status" validate:"required,oneof=employed unemployed self-employed student"`
	RegisteredSKVoter       bool   `json:"registered_sk_voter"`
	RegisteredNationalVoter bool   `json:"registered_national_voter"`
	AttendedAssembly        bool   `json:"attended_assembly"`
}

type ReviewInput struct {
	Note *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

type YouthProfileFilter struct {
	Status *Status
	UserID *uuid.UUID
}
