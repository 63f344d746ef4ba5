package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kabataan-backend/internal/config"
	"kabataan-backend/internal/domain"
	"kabataan-backend/internal/middleware"
	"kabataan-backend/internal/service/importer"
)

type WebhookHandler struct {
	importerService importer.Service
	cfg             *config.Config
}

func NewWebhookHandler(importerService importer.Service, cfg *config.Config) *WebhookHandler {
	return &WebhookHandler{importerService: importerService, cfg: cfg}
}

// importPayload is the Zapier-style webhook body: the automation carries
// the id of the account the batch is imported on behalf of. Only the
// envelope is validated here; record-level validation happens inside the
// batch job so one bad row cannot reject the whole payload.
type importPayload struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Format  string    `json:"format" validate:"required,oneof=csv excel json"`
	Records []domain.ImportRecord `json:"records" validate:"required,min=1"`
}

// Import accepts a batch, initializes the progress counter, and kicks
// off the background job. The 202 body is the initial counter snapshot.
func (h *WebhookHandler) Import(c *fiber.Ctx) error {
	var payload importPayload
	if err := c.BodyParser(&payload); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validateStruct(payload); err != nil {
		return err
	}

	progress, err := h.importerService.Start(c.Context(), payload.UserID, domain.ImportRequest{
		Format:  payload.Format,
		Records: payload.Records,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(progress)
}

// GetStatus reads the current user's counter. 404 when no batch ran
// within the counter TTL.
func (h *WebhookHandler) GetStatus(c *fiber.Ctx) error {
	progress, err := h.importerService.GetProgress(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}
	if progress == nil {
		return middleware.NotFound("No import in progress")
	}
	return c.Status(fiber.StatusOK).JSON(progress)
}
