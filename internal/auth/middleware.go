package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/places-service/pkg/util"
)

const identityKey = "auth_identity"

// Scheme is case-sensitive with exactly one space before the token.
const bearerPrefix = "Bearer "

const unauthenticatedMessage = "authorization required"

// Middleware validates bearer tokens and attaches the resolved identity.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the gate middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. Every failure path
// returns immediately; no downstream handler runs after a rejection, and the
// underlying verification error is never sent to the client.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return apperrors.NewUnauthenticated(unauthenticatedMessage)
	}

	token := authHeader[len(bearerPrefix):]
	if token == "" {
		return apperrors.NewUnauthenticated(unauthenticatedMessage)
	}

	identity, err := m.tokens.VerifyToken(token)
	if err != nil {
		return apperrors.NewUnauthenticated(unauthenticatedMessage)
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated caller.
func IdentityFromContext(c *fiber.Ctx) (Identity, bool) {
	identity, ok := c.Locals(identityKey).(Identity)
	return identity, ok
}
