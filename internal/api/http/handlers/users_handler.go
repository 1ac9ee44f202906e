package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/places-service/internal/api/dto"
	"github.com/spec-kit/places-service/internal/api/validation"
	"github.com/spec-kit/places-service/internal/auth"
	"github.com/spec-kit/places-service/internal/service"
	apperrors "github.com/spec-kit/places-service/pkg/util"
)

// UsersHandler exposes member profile endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponses(users)})
}

// Me handles GET /users/me.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authorization required")
	}

	user, err := h.users.GetByID(c.UserContext(), identity.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// GetOne handles GET /users/:userId.
func (h *UsersHandler) GetOne(c *fiber.Ctx) error {
	user, err := h.users.GetByID(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// UpdateProfile handles PATCH /users/me. The target row is always the
// caller's own; the route carries no user identifier.
func (h *UsersHandler) UpdateProfile(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authorization required")
	}
	req := validation.BodyFromContext[dto.UpdateProfileRequest](c)

	user, err := h.users.UpdateProfile(c.UserContext(), identity.SubjectID, req.Name, req.About)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// UpdateAvatar handles PATCH /users/me/avatar.
func (h *UsersHandler) UpdateAvatar(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authorization required")
	}
	req := validation.BodyFromContext[dto.UpdateAvatarRequest](c)

	user, err := h.users.UpdateAvatar(c.UserContext(), identity.SubjectID, req.Avatar)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}
