package domain

import (
	"time"

	"github.com/google/uuid"
)

type Proposal struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	CategoryID      uuid.UUID  `json:"category_id" db:"category_id"`
	Title           string     `json:"title" db:"title"`
	Description     string     `json:"description" db:"description"`
	Budget          *float64   `json:"budget,omitempty" db:"budget"`
	Status          Status     `json:"status" db:"status"`
	SubmittedBy     uuid.UUID  `json:"submitted_by" db:"submitted_by"`
	ApprovedBy      *uuid.UUID `json:"approved_by,omitempty" db:"approved_by"`
	RejectionReason *string    `json:"rejection_reason,omitempty" db:"rejection_reason"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`

	Category  *ProposalCategory `json:"category,omitempty" db:"-"`
	Submitter *User             `json:"submitter,omitempty" db:"-"`
	Approver  *User             `json:"approver,omitempty" db:"-"`
}

type ProposalCategory struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type ProposalInput struct {
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required,max=5000"`
	Budget      *float64  `json:"budget,omitempty" validate:"omitempty,min=0"`
}

type ProposalFilter struct {
	Status      *Status
	SubmittedBy *uuid.UUID
	CategoryID  *uuid.UUID
}
