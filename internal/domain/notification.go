package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Data      json.RawMessage  `json:"data,omitempty" db:"data"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	ReadAt    *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

type NotificationType string

const (
	NotifProfileSubmitted  NotificationType = "PROFILE_SUBMITTED"
	NotifProfileApproved   NotificationType = "PROFILE_APPROVED"
	NotifProfileRejected   NotificationType = "PROFILE_REJECTED"
	NotifProposalSubmitted NotificationType = "PROPOSAL_SUBMITTED"
	NotifProposalApproved  NotificationType = "PROPOSAL_APPROVED"
	NotifProposalRejected  NotificationType = "PROPOSAL_REJECTED"
	NotifImportCompleted   NotificationType = "IMPORT_COMPLETED"
	NotifRoleChanged       NotificationType = "ROLE_CHANGED"
	NotifAccountActivated  NotificationType = "ACCOUNT_ACTIVATED"
)

// Channel is a delivery medium for one notification event.
type Channel string

const (
	ChannelDatabase Channel = "database"
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
)
