package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/places-service/internal/api/dto"
	"github.com/spec-kit/places-service/internal/api/validation"
	"github.com/spec-kit/places-service/internal/service"
)

// AuthHandler exposes the public credential endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	req := validation.BodyFromContext[dto.SignupRequest](c)

	user, err := h.auth.Register(c.UserContext(), req.Email, req.Password, req.Name, req.About, req.Avatar)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewUserResponse(user),
	})
}

// Signin handles POST /signin.
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	req := validation.BodyFromContext[dto.SigninRequest](c)

	token, expiresAt, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.TokenResponse{Token: token, ExpiresAt: expiresAt})
}
