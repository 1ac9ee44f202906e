package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/places-service/internal/cache"
	"github.com/spec-kit/places-service/internal/domain"
	"github.com/spec-kit/places-service/internal/events"
	"github.com/spec-kit/places-service/internal/repository"
	apperrors "github.com/spec-kit/places-service/pkg/util"
)

// CardService serves the card feed and its mutations. The owner of a new card
// and the member added to a like set always come from the resolved identity
// of the request, never from the payload.
type CardService struct {
	cards      repository.CardRepository
	feed       cache.FeedCache
	dispatcher events.Dispatcher
}

// NewCardService builds the service.
func NewCardService(cards repository.CardRepository, feed cache.FeedCache, dispatcher events.Dispatcher) *CardService {
	return &CardService{cards: cards, feed: feed, dispatcher: dispatcher}
}

// List returns the full card feed, served from cache when fresh.
func (s *CardService) List(ctx context.Context) ([]domain.Card, error) {
	if s.feed != nil {
		if cards, ok := s.feed.Get(ctx); ok {
			return cards, nil
		}
	}

	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, apperrors.TranslateStorageError("card", err)
	}
	if s.feed != nil {
		s.feed.Set(ctx, cards)
	}
	return cards, nil
}

// Create publishes a new card owned by the caller.
func (s *CardService) Create(ctx context.Context, callerID, name, link string) (*domain.Card, error) {
	card := &domain.Card{
		Name:    name,
		Link:    link,
		OwnerID: callerID,
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, apperrors.TranslateStorageError("card", err)
	}

	s.publish(ctx, events.EventCardCreated, callerID, events.CardPayload{CardID: card.ID, OwnerID: callerID})
	return card, nil
}

// Delete removes a card owned by the caller. A card owned by someone else is
// not addressable for deletion and reads as not found.
func (s *CardService) Delete(ctx context.Context, callerID, cardID string) error {
	if err := s.cards.DeleteOwned(ctx, cardID, callerID); err != nil {
		return apperrors.TranslateStorageError("card", err)
	}

	s.publish(ctx, events.EventCardDeleted, callerID, events.CardPayload{CardID: cardID, OwnerID: callerID})
	return nil
}

// Like adds the caller to the card's like set. Liking twice is a no-op.
func (s *CardService) Like(ctx context.Context, callerID, cardID string) (*domain.Card, error) {
	card, err := s.cards.Like(ctx, cardID, callerID)
	if err != nil {
		return nil, apperrors.TranslateStorageError("card", err)
	}

	s.publish(ctx, events.EventCardLiked, callerID, events.CardPayload{CardID: cardID})
	return card, nil
}

// Unlike removes the caller from the card's like set.
func (s *CardService) Unlike(ctx context.Context, callerID, cardID string) (*domain.Card, error) {
	card, err := s.cards.Unlike(ctx, cardID, callerID)
	if err != nil {
		return nil, apperrors.TranslateStorageError("card", err)
	}

	s.publish(ctx, events.EventCardUnliked, callerID, events.CardPayload{CardID: cardID})
	return card, nil
}

func (s *CardService) publish(ctx context.Context, eventType events.EventType, subjectID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
