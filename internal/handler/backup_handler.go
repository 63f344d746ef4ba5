package handler

import (
	"github.com/gofiber/fiber/v2"

	"kabataan-backend/internal/service/backup"
)

type BackupHandler struct {
	backupService backup.Service
}

func NewBackupHandler(backupService backup.Service) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

func (h *BackupHandler) Create(c *fiber.Ctx) error {
	info, err := h.backupService.Create(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

func (h *BackupHandler) List(c *fiber.Ctx) error {
	backups, err := h.backupService.List(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(backups)
}
