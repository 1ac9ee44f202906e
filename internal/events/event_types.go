package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventCardCreated    EventType = "card_created"
	EventCardDeleted    EventType = "card_deleted"
	EventCardLiked      EventType = "card_liked"
	EventCardUnliked    EventType = "card_unliked"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// CardPayload accompanies card lifecycle events.
type CardPayload struct {
	CardID  string `json:"card_id"`
	OwnerID string `json:"owner_id,omitempty"`
}

// UserRegisteredPayload accompanies registration events.
type UserRegisteredPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
