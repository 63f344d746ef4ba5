package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"kabataan-backend/internal/domain"
	"kabataan-backend/internal/middleware"
	"kabataan-backend/internal/service/workflow"
	"kabataan-backend/internal/service/youthprofile"
)

type YouthProfileHandler struct {
	profileService youthprofile.Service
}

func NewYouthProfileHandler(profileService youthprofile.Service) *YouthProfileHandler {
	return &YouthProfileHandler{profileService: profileService}
}

func (h *YouthProfileHandler) Create(c *fiber.Ctx) error {
	var input domain.YouthProfileInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validateStruct(input); err != nil {
		return err
	}

	profile, err := h.profileService.Create(c.Context(), middleware.GetCurrentUserID(c), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (h *YouthProfileHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "profileId")
	if err != nil {
		return err
	}

	profile, err := h.profileService.GetByID(c.Context(), id)
	if err != nil {
		return translateProfileError(err)
	}

	// Plain users may only read their own records.
	actor := middleware.GetCurrentUser(c)
	if !actor.HasRole("admin") && (profile.UserID == nil || *profile.UserID != actor.ID) {
		return middleware.Forbidden("You do not own this profile")
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *YouthProfileHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	var filter domain.YouthProfileFilter
	if statusQuery := c.Query("status"); statusQuery != "" {
		status := domain.Status(statusQuery)
		if !status.IsValid() {
			return middleware.BadRequest("Invalid status filter")
		}
		filter.Status = &status
	}

	result, err := h.profileService.List(c.Context(), middleware.GetCurrentUser(c), filter, params)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *YouthProfileHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "profileId")
	if err != nil {
		return err
	}

	var input domain.YouthProfileInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validateStruct(input); err != nil {
		return err
	}

	profile, err := h.profileService.Update(c.Context(), middleware.GetCurrentUser(c), id, input)
	if err != nil {
		return translateProfileError(err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *YouthProfileHandler) Submit(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "profileId")
	if err != nil {
		return err
	}

	profile, err := h.profileService.Submit(c.Context(), middleware.GetCurrentUser(c), id, auditMeta(c))
	if err != nil {
		return translateProfileError(err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *YouthProfileHandler) Approve(c *fiber.Ctx) error {
	return h.review(c, true)
}

func (h *YouthProfileHandler) Reject(c *fiber.Ctx) error {
	return h.review(c, false)
}

func (h *YouthProfileHandler) review(c *fiber.Ctx, approve bool) error {
	id, err := parseUUIDParam(c, "profileId")
	if err != nil {
		return err
	}

	var input domain.ReviewInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return middleware.BadRequest("Invalid request body")
		}
		if err := validateStruct(input); err != nil {
			return err
		}
	}

	actor := middleware.GetCurrentUser(c)
	var profile *domain.YouthProfile
	if approve {
		profile, err = h.profileService.Approve(c.Context(), actor, id, input, auditMeta(c))
	} else {
		profile, err = h.profileService.Reject(c.Context(), actor, id, input, auditMeta(c))
	}
	if err != nil {
		return translateProfileError(err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

func translateProfileError(err error) error {
	var transitionErr *youthprofile.TransitionError
	if errors.As(err, &transitionErr) {
		if transitionErr.Reason == workflow.ReasonInsufficientRole {
			return middleware.Forbidden(transitionErr.Error())
		}
		return middleware.UnprocessableEntity(transitionErr.Error())
	}

	switch {
	case errors.Is(err, youthprofile.ErrProfileNotFound):
		return middleware.NotFound("Youth profile not found")
	case errors.Is(err, youthprofile.ErrNotOwner):
		return middleware.Forbidden(err.Error())
	case errors.Is(err, youthprofile.ErrNotEditable):
		return middleware.UnprocessableEntity(err.Error())
	default:
		return err
	}
}
