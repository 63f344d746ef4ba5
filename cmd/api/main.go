package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"kabataan-backend/internal/config"
	"kabataan-backend/internal/handler"
	"kabataan-backend/internal/middleware"
	"kabataan-backend/internal/pkg/logger"
	"kabataan-backend/internal/repository"
	"kabataan-backend/internal/scheduler"
	"kabataan-backend/internal/service"
	authsvc "kabataan-backend/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	zlog := logger.New(cfg.Environment)

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (backups will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, cfg, zlog)
	handlers := handler.NewHandlers(services, cfg)

	sweeper := scheduler.New(services.Audit, repos.Session, cfg, zlog)
	sweeper.Start()
	defer sweeper.Stop()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Api-Key",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	app.Use(middleware.RequestInfo())

	setupRoutes(app, handlers, services.Auth, cfg)

	zlog.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService authsvc.Service, cfg *config.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.RefreshToken)
	auth.Post("/logout", h.Auth.Logout)
	auth.Post("/forgot-password", h.Auth.ForgotPassword)
	auth.Post("/reset-password", h.Auth.ResetPassword)

	webhooks := v1.Group("/webhooks", middleware.APIKeyRequired(cfg.ImportAPIKey))
	webhooks.Post("/import", h.Webhook.Import)

	protected := v1.Group("", middleware.AuthRequired(authService))

	protected.Get("/auth/me", h.Auth.Me)

	users := protected.Group("/users")
	users.Put("/me", h.User.UpdateMe)
	users.Get("/", middleware.RequireRole("admin"), h.User.List)
	users.Get("/:userId", middleware.RequireRole("admin"), h.User.Get)
	users.Post("/:userId/activate", middleware.RequireRole("admin"), h.User.Activate)
	users.Post("/:userId/deactivate", middleware.RequireRole("admin"), h.User.Deactivate)
	users.Put("/:userId/role", middleware.RequireRole("superadmin"), h.User.SetRole)
	users.Delete("/:userId", middleware.RequireRole("superadmin"), h.User.Delete)

	profiles := protected.Group("/youth-profiles")
	profiles.Post("/", h.YouthProfile.Create)
	profiles.Get("/", h.YouthProfile.List)
	profiles.Get("/:profileId", h.YouthProfile.Get)
	profiles.Put("/:profileId", h.YouthProfile.Update)
	profiles.Post("/:profileId/submit", h.YouthProfile.Submit)
	profiles.Post("/:profileId/approve", middleware.RequireRole("admin"), h.YouthProfile.Approve)
	profiles.Post("/:profileId/reject", middleware.RequireRole("admin"), h.YouthProfile.Reject)

	proposals := protected.Group("/proposals")
	proposals.Post("/", h.Proposal.Create)
	proposals.Get("/", h.Proposal.List)
	proposals.Get("/categories", h.Proposal.ListCategories)
	proposals.Post("/categories", middleware.RequireRole("admin"), h.Proposal.CreateCategory)
	proposals.Get("/:proposalId", h.Proposal.Get)
	proposals.Put("/:proposalId", h.Proposal.Update)
	proposals.Post("/:proposalId/submit", h.Proposal.Submit)
	proposals.Post("/:proposalId/approve", middleware.RequireRole("admin"), h.Proposal.Approve)
	proposals.Post("/:proposalId/reject", middleware.RequireRole("admin"), h.Proposal.Reject)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Patch("/:notificationId/read", h.Notification.MarkAsRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)
	notifications.Delete("/clear", h.Notification.ClearAll)
	notifications.Delete("/:notificationId", h.Notification.Delete)

	protected.Get("/imports/status", h.Webhook.GetStatus)

	auditGroup := protected.Group("/audit", middleware.RequireRole("admin"))
	auditGroup.Get("/recent", h.Audit.GetRecentActivities)
	auditGroup.Get("/:entityType/:entityId", h.Audit.ListByEntity)

	protected.Get("/dashboard/stats", middleware.RequireRole("admin"), h.Dashboard.GetStats)

	backups := protected.Group("/backups", middleware.RequireRole("superadmin"))
	backups.Post("/", h.Backup.Create)
	backups.Get("/", h.Backup.List)
}
