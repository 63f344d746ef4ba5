package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kabataan-backend/internal/domain"
	"kabataan-backend/internal/middleware"
	"kabataan-backend/internal/service/proposal"
	"kabataan-backend/internal/service/workflow"
)

type ProposalHandler struct {
	proposalService proposal.Service
}

func NewProposalHandler(proposalService proposal.Service) *ProposalHandler {
	return &ProposalHandler{proposalService: proposalService}
}

func (h *ProposalHandler) Create(c *fiber.Ctx) error {
	var input domain.ProposalInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validateStruct(input); err != nil {
		return err
	}

	created, err := h.proposalService.Create(c.Context(), middleware.GetCurrentUserID(c), input)
	if err != nil {
		return translateProposalError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ProposalHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "proposalId")
	if err != nil {
		return err
	}

	found, err := h.proposalService.GetByID(c.Context(), id)
	if err != nil {
		return translateProposalError(err)
	}

	actor := middleware.GetCurrentUser(c)
	if !actor.HasRole("admin") && found.SubmittedBy != actor.ID {
		return middleware.Forbidden("You did not submit this proposal")
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *ProposalHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	var filter domain.ProposalFilter
	if statusQuery := c.Query("status"); statusQuery != "" {
		status := domain.Status(statusQuery)
		if !status.IsValid() {
			return middleware.BadRequest("Invalid status filter")
		}
		filter.Status = &status
	}
	if categoryQuery := c.Query("category_id"); categoryQuery != "" {
		categoryID, err := uuid.Parse(categoryQuery)
		if err != nil {
			return middleware.BadRequest("Invalid category_id")
		}
		filter.CategoryID = &categoryID
	}

	result, err := h.proposalService.List(c.Context(), middleware.GetCurrentUser(c), filter, params)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ProposalHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "proposalId")
	if err != nil {
		return err
	}

	var input domain.ProposalInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validateStruct(input); err != nil {
		return err
	}

	updated, err := h.proposalService.Update(c.Context(), middleware.GetCurrentUser(c), id, input)
	if err != nil {
		return translateProposalError(err)
	}
	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *ProposalHandler) Submit(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "proposalId")
	if err != nil {
		return err
	}

	submitted, err := h.proposalService.Submit(c.Context(), middleware.GetCurrentUser(c), id, auditMeta(c))
	if err != nil {
		return translateProposalError(err)
	}
	return c.Status(fiber.StatusOK).JSON(submitted)
}

func (h *ProposalHandler) Approve(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "proposalId")
	if err != nil {
		return err
	}

	approved, err := h.proposalService.Approve(c.Context(), middleware.GetCurrentUser(c), id, auditMeta(c))
	if err != nil {
		return translateProposalError(err)
	}
	return c.Status(fiber.StatusOK).JSON(approved)
}

func (h *ProposalHandler) Reject(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "proposalId")
	if err != nil {
		return err
	}

	var input struct {
		Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return middleware.BadRequest("Invalid request body")
		}
		if err := validateStruct(input); err != nil {
			return err
		}
	}

	rejected, err := h.proposalService.Reject(c.Context(), middleware.GetCurrentUser(c), id, input.Reason, auditMeta(c))
	if err != nil {
		return translateProposalError(err)
	}
	return c.Status(fiber.StatusOK).JSON(rejected)
}

func (h *ProposalHandler) CreateCategory(c *fiber.Ctx) error {
	var input struct {
		Name string `json:"name" validate:"required,max=100"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validateStruct(input); err != nil {
		return err
	}

	category, err := h.proposalService.CreateCategory(c.Context(), input.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *ProposalHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.proposalService.ListCategories(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(categories)
}

func translateProposalError(err error) error {
	var transitionErr *proposal.TransitionError
	if errors.As(err, &transitionErr) {
		if transitionErr.Reason == workflow.ReasonInsufficientRole {
			return middleware.Forbidden(transitionErr.Error())
		}
		return middleware.UnprocessableEntity(transitionErr.Error())
	}

	switch {
	case errors.Is(err, proposal.ErrProposalNotFound):
		return middleware.NotFound("Proposal not found")
	case errors.Is(err, proposal.ErrCategoryNotFound):
		return middleware.NotFound("Proposal category not found")
	case errors.Is(err, proposal.ErrNotSubmitter):
		return middleware.Forbidden(err.Error())
	case errors.Is(err, proposal.ErrNotEditable):
		return middleware.UnprocessableEntity(err.Error())
	default:
		return err
	}
}
