// Package worker wires event subscribers at startup.
package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/places-service/internal/cache"
	"github.com/spec-kit/places-service/internal/events"
)

// StartFeedWorker subscribes the feed-cache invalidation and audit handlers
// to card lifecycle events.
func StartFeedWorker(dispatcher events.Dispatcher, feed cache.FeedCache, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}

	invalidate := func(ctx context.Context, event events.Event) error {
		if feed != nil {
			feed.Invalidate(ctx)
		}
		return nil
	}

	audit := func(_ context.Context, event events.Event) error {
		logger.Info("domain event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.String("subject_id", event.SubjectID),
		)
		return nil
	}

	for _, eventType := range []events.EventType{
		events.EventCardCreated,
		events.EventCardDeleted,
		events.EventCardLiked,
		events.EventCardUnliked,
	} {
		dispatcher.Subscribe(eventType, invalidate)
		dispatcher.Subscribe(eventType, audit)
	}
	dispatcher.Subscribe(events.EventUserRegistered, audit)
}
