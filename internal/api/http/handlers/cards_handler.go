package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/places-service/internal/api/dto"
	"github.com/spec-kit/places-service/internal/api/validation"
	"github.com/spec-kit/places-service/internal/auth"
	"github.com/spec-kit/places-service/internal/service"
	apperrors "github.com/spec-kit/places-service/pkg/util"
)

// CardsHandler exposes the card feed and its mutations. Every mutation is
// evaluated against the resolved identity from the gate; nothing here trusts
// an identity from the request body.
type CardsHandler struct {
	cards *service.CardService
}

// NewCardsHandler constructs handler.
func NewCardsHandler(cardService *service.CardService) *CardsHandler {
	return &CardsHandler{cards: cardService}
}

// List handles GET /cards.
func (h *CardsHandler) List(c *fiber.Ctx) error {
	cards, err := h.cards.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCardResponses(cards)})
}

// Create handles POST /cards.
func (h *CardsHandler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authorization required")
	}
	req := validation.BodyFromContext[dto.CreateCardRequest](c)

	card, err := h.cards.Create(c.UserContext(), identity.SubjectID, req.Name, req.Link)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCardResponse(card)})
}

// Delete handles DELETE /cards/:cardId.
func (h *CardsHandler) Delete(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authorization required")
	}

	if err := h.cards.Delete(c.UserContext(), identity.SubjectID, c.Params("cardId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "card deleted"})
}

// Like handles PUT /cards/:cardId/likes.
func (h *CardsHandler) Like(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authorization required")
	}

	card, err := h.cards.Like(c.UserContext(), identity.SubjectID, c.Params("cardId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCardResponse(card)})
}

// Unlike handles DELETE /cards/:cardId/likes.
func (h *CardsHandler) Unlike(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authorization required")
	}

	card, err := h.cards.Unlike(c.UserContext(), identity.SubjectID, c.Params("cardId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCardResponse(card)})
}
