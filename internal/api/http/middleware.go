package http

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/places-service/internal/observability"
	apperrors "github.com/spec-kit/places-service/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and
// logging. The request logger sits outermost so it observes the status the
// error stage finally writes, not the pre-failure default.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	app.Use(observability.RequestLogger(logger, metrics))
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware is the terminal stage for every failure raised in
// the pipeline. It writes exactly one {"message": ...} body with the status
// fixed by the error's kind; internal causes are logged, never sent.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := toDomainError(err)
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), string(domainErr.Kind))
				}
				if domainErr.HTTPStatus() >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
				c.Status(domainErr.HTTPStatus())
				_ = c.JSON(fiber.Map{"message": domainErr.ClientMessage()})
				err = nil
			}
		}()
		return c.Next()
	}
}

// toDomainError folds transport-level fiber errors into the taxonomy before
// falling back to the generic conversion.
func toDomainError(err error) *apperrors.DomainError {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case http.StatusBadRequest:
			return apperrors.ToDomainError(apperrors.NewBadRequest(fiberErr.Message))
		case http.StatusUnauthorized:
			return apperrors.ToDomainError(apperrors.NewUnauthenticated(fiberErr.Message))
		case http.StatusNotFound:
			return apperrors.ToDomainError(apperrors.NewNotFound("resource"))
		case http.StatusConflict:
			return apperrors.ToDomainError(apperrors.NewConflict(fiberErr.Message))
		default:
			return apperrors.ToDomainError(apperrors.NewInternalError(fiberErr))
		}
	}
	return apperrors.ToDomainError(err)
}
