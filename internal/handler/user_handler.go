package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"kabataan-backend/internal/domain"
	"kabataan-backend/internal/middleware"
	"kabataan-backend/internal/service/user"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.userService.List(c.Context(), params)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "userId")
	if err != nil {
		return err
	}

	found, err := h.userService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return middleware.NotFound("User not found")
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	var input domain.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validateStruct(input); err != nil {
		return err
	}

	updated, err := h.userService.UpdateProfile(c.Context(), middleware.GetCurrentUserID(c), input)
	if err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			return middleware.Conflict("Email already registered")
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *UserHandler) Activate(c *fiber.Ctx) error {
	return h.setActive(c, true)
}

func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	return h.setActive(c, false)
}

func (h *UserHandler) setActive(c *fiber.Ctx, active bool) error {
	id, err := parseUUIDParam(c, "userId")
	if err != nil {
		return err
	}

	actor := middleware.GetCurrentUser(c)
	if err := h.userService.SetActive(c.Context(), actor, id, active, auditMeta(c)); err != nil {
		return translateUserError(err)
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *UserHandler) SetRole(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "userId")
	if err != nil {
		return err
	}

	var input struct {
		Role string `json:"role" validate:"required,oneof=user admin superadmin"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validateStruct(input); err != nil {
		return err
	}

	actor := middleware.GetCurrentUser(c)
	if err := h.userService.SetRole(c.Context(), actor, id, domain.UserRole(input.Role), auditMeta(c)); err != nil {
		return translateUserError(err)
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "userId")
	if err != nil {
		return err
	}

	actor := middleware.GetCurrentUser(c)
	if err := h.userService.Delete(c.Context(), actor, id, auditMeta(c)); err != nil {
		return translateUserError(err)
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func translateUserError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return middleware.NotFound("User not found")
	case errors.Is(err, user.ErrSuperAdminProtected):
		return middleware.Forbidden(err.Error())
	case errors.Is(err, user.ErrCannotChangeSelf):
		return middleware.Forbidden(err.Error())
	case errors.Is(err, user.ErrInvalidRole):
		return middleware.BadRequest(err.Error())
	default:
		return err
	}
}
