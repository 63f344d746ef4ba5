package handler

import (
	"github.com/gofiber/fiber/v2"

	"kabataan-backend/internal/middleware"
	"kabataan-backend/internal/service/audit"
)

type AuditHandler struct {
	auditService audit.Service
}

func NewAuditHandler(auditService audit.Service) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) GetRecentActivities(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	activities, err := h.auditService.GetRecentActivities(c.Context(), limit)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(activities)
}

func (h *AuditHandler) ListByEntity(c *fiber.Ctx) error {
	entityType := c.Params("entityType")
	switch entityType {
	case "users", "youth-profiles", "proposals":
	default:
		return middleware.BadRequest("Invalid entity type")
	}

	entityID, err := parseUUIDParam(c, "entityId")
	if err != nil {
		return err
	}

	result, err := h.auditService.ListByEntity(c.Context(), entityTypeFromPath(entityType), entityID, getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func entityTypeFromPath(segment string) string {
	switch segment {
	case "users":
		return "USER"
	case "youth-profiles":
		return "YOUTH_PROFILE"
	case "proposals":
		return "PROPOSAL"
	default:
		return segment
	}
}
