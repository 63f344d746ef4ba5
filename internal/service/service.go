package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"kabataan-backend/internal/config"
	"kabataan-backend/internal/repository"
	"kabataan-backend/internal/service/audit"
	"kabataan-backend/internal/service/auth"
	"kabataan-backend/internal/service/backup"
	"kabataan-backend/internal/service/dashboard"
	"kabataan-backend/internal/service/email"
	"kabataan-backend/internal/service/importer"
	"kabataan-backend/internal/service/notification"
	"kabataan-backend/internal/service/proposal"
	"kabataan-backend/internal/service/sms"
	"kabataan-backend/internal/service/user"
	"kabataan-backend/internal/service/youthprofile"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	YouthProfile youthprofile.Service
	Proposal     proposal.Service
	Notification notification.Service
	Importer     importer.Service
	Audit        audit.Service
	Backup       backup.Service
	Dashboard    dashboard.Service
	Email        email.Service
	SMS          sms.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config, log zerolog.Logger) *Services {
	emailService := email.NewService(cfg)
	smsService := sms.NewService(cfg)

	auditService := audit.NewService(repos.AuditLog, log)
	notificationService := notification.NewService(repos.Notification, repos.User, emailService, smsService, log)

	authService := auth.NewService(repos.User, repos.Session, emailService, cfg, log)
	userService := user.NewService(repos.User, auditService, notificationService)
	profileService := youthprofile.NewService(repos.YouthProfile, auditService, notificationService)
	proposalService := proposal.NewService(repos.Proposal, repos.ProposalCategory, auditService, notificationService)

	progressStore := importer.NewRedisProgressStore(redis, cfg.ImportProgressTTL)
	importerService := importer.NewService(repos.YouthProfile, progressStore, notificationService, log)

	backupService := backup.NewService(repos.User, repos.YouthProfile, repos.Proposal, repos.ProposalCategory, minioClient, cfg)
	dashboardService := dashboard.NewService(repos.YouthProfile, repos.Proposal, repos.User, redis)

	return &Services{
		Auth:         authService,
		User:         userService,
		YouthProfile: profileService,
		Proposal:     proposalService,
		Notification: notificationService,
		Importer:     importerService,
		Audit:        auditService,
		Backup:       backupService,
		Dashboard:    dashboardService,
		Email:        emailService,
		SMS:          smsService,
	}
}
