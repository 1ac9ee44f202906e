// Package validation is the declarative request-shape gate. It runs as route
// middleware before the handler and raises taxonomy failures into the same
// terminal error middleware as every other stage. Schemas are the validate
// tags on the dto structs.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	apperrors "github.com/spec-kit/places-service/pkg/util"
)

var validate = validator.New()

const validatedBodyKey = "validated_body"

// Body parses and validates the request body against T, then stores the
// struct for the handler.
func Body[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req T
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewBadRequest("invalid request body")
		}
		if err := validate.Struct(&req); err != nil {
			return apperrors.NewBadRequest(validationMessage(err))
		}
		c.Locals(validatedBodyKey, &req)
		return c.Next()
	}
}

// BodyFromContext retrieves the struct stored by Body. Calling it on a route
// without the matching gate is a programming error.
func BodyFromContext[T any](c *fiber.Ctx) *T {
	body, _ := c.Locals(validatedBodyKey).(*T)
	return body
}

// IDParam rejects non-ID-shaped path parameters before they reach storage,
// so a malformed identifier reads as 400 rather than 500.
func IDParam(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := uuid.Parse(c.Params(name)); err != nil {
			return apperrors.NewBadRequest(fmt.Sprintf("malformed %s", name))
		}
		return c.Next()
	}
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return fmt.Sprintf("invalid fields: %s", strings.Join(fields, ", "))
	}
	return "invalid request body"
}
