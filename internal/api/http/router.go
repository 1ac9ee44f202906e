package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/places-service/internal/api/dto"
	"github.com/spec-kit/places-service/internal/api/http/handlers"
	"github.com/spec-kit/places-service/internal/api/validation"
	"github.com/spec-kit/places-service/internal/auth"
	apperrors "github.com/spec-kit/places-service/pkg/util"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
	Users  *handlers.UsersHandler
	Cards  *handlers.CardsHandler
	Gate   *auth.Middleware
}

// RegisterRoutes wires HTTP routes. The public whitelist is exactly the two
// credential endpoints and the health probes; everything else passes the gate.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/signup", validation.Body[dto.SignupRequest](), cfg.Auth.Signup)
	app.Post("/signin", validation.Body[dto.SigninRequest](), cfg.Auth.Signin)

	users := app.Group("/users", cfg.Gate.Handle)
	users.Get("/", cfg.Users.List)
	users.Get("/me", cfg.Users.Me)
	users.Patch("/me", validation.Body[dto.UpdateProfileRequest](), cfg.Users.UpdateProfile)
	users.Patch("/me/avatar", validation.Body[dto.UpdateAvatarRequest](), cfg.Users.UpdateAvatar)
	users.Get("/:userId", validation.IDParam("userId"), cfg.Users.GetOne)

	cards := app.Group("/cards", cfg.Gate.Handle)
	cards.Get("/", cfg.Cards.List)
	cards.Post("/", validation.Body[dto.CreateCardRequest](), cfg.Cards.Create)
	cards.Delete("/:cardId", validation.IDParam("cardId"), cfg.Cards.Delete)
	cards.Put("/:cardId/likes", validation.IDParam("cardId"), cfg.Cards.Like)
	cards.Delete("/:cardId/likes", validation.IDParam("cardId"), cfg.Cards.Unlike)

	// Unknown routes flow through the same finalizer as everything else.
	app.Use(func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("route")
	})
}
