package handler

import (
	"kabataan-backend/internal/config"
	"kabataan-backend/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	YouthProfile *YouthProfileHandler
	Proposal     *ProposalHandler
	Notification *NotificationHandler
	Audit        *AuditHandler
	Dashboard    *DashboardHandler
	Backup       *BackupHandler
	Webhook      *WebhookHandler
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		YouthProfile: NewYouthProfileHandler(services.YouthProfile),
		Proposal:     NewProposalHandler(services.Proposal),
		Notification: NewNotificationHandler(services.Notification),
		Audit:        NewAuditHandler(services.Audit),
		Dashboard:    NewDashboardHandler(services.Dashboard),
		Backup:       NewBackupHandler(services.Backup),
		Webhook:      NewWebhookHandler(services.Importer, cfg),
	}
}
