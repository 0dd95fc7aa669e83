package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

// Publisher delivers outbox events to whoever notifies users and store owners.
type Publisher interface {
	Publish(ctx context.Context, event model.Event) error
	Close() error
}

// message is the wire form shared by every publisher.
type message struct {
	EventID     string          `json:"eventId"`
	Type        string          `json:"type"`
	AggregateID int64           `json:"aggregateId"`
	RecipientID *int64          `json:"recipientId,omitempty"`
	Payload     json.RawMessage `json:"payload"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func newMessage(event model.Event) message {
	payload := event.Payload
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	return message{
		EventID:     event.EventID,
		Type:        string(event.Type),
		AggregateID: event.AggregateID,
		RecipientID: event.RecipientID,
		Payload:     payload,
		CreatedAt:   event.CreatedAt.UTC(),
	}
}
