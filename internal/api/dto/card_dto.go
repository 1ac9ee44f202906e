package dto

import (
	"time"

	"github.com/spec-kit/places-service/internal/domain"
)

// CreateCardRequest payload for POST /cards. The owner is never part of the
// payload; it comes from the authenticated identity.
type CreateCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,url"`
}

// CardResponse is the wire shape of a card with its like set.
type CardResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCardResponse maps a domain card to its wire shape.
func NewCardResponse(card *domain.Card) CardResponse {
	likes := card.Likes
	if likes == nil {
		likes = []string{}
	}
	return CardResponse{
		ID:        card.ID,
		Name:      card.Name,
		Link:      card.Link,
		Owner:     card.OwnerID,
		Likes:     likes,
		CreatedAt: card.CreatedAt,
	}
}

// NewCardResponses maps a slice of domain cards.
func NewCardResponses(cards []domain.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for i := range cards {
		out = append(out, NewCardResponse(&cards[i]))
	}
	return out
}
