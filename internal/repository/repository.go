package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User             UserRepository
	YouthProfile     YouthProfileRepository
	Proposal         ProposalRepository
	ProposalCategory ProposalCategoryRepository
	Notification     NotificationRepository
	AuditLog         AuditLogRepository
	Session          SessionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:             NewUserRepository(db),
		YouthProfile:     NewYouthProfileRepository(db),
		Proposal:         NewProposalRepository(db),
		ProposalCategory: NewProposalCategoryRepository(db),
		Notification:     NewNotificationRepository(db),
		AuditLog:         NewAuditLogRepository(db),
		Session:          NewSessionRepository(db),
	}
}
