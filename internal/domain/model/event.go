package model

import (
	"encoding/json"
	"time"
)

// EventType names a notification emitted through the outbox.
type EventType string

const (
	EventOrderStatusChanged EventType = "order.status_changed"
	EventStoreApproved      EventType = "store.approved"
	EventStoreRejected      EventType = "store.rejected"
)

// Event is an outbox record written in the same transaction as the change it describes.
type Event struct {
	ID          int64
	EventID     string
	Type        EventType
	AggregateID int64
	RecipientID *int64
	Payload     json.RawMessage
	CreatedAt   time.Time
	Attempts    int
}

// OrderStatusChanged is the payload of EventOrderStatusChanged.
type OrderStatusChanged struct {
	OrderID   int64       `json:"orderId"`
	UserID    int64       `json:"userId"`
	From      OrderStatus `json:"from"`
	To        OrderStatus `json:"to"`
	ActorID   int64       `json:"actorId"`
	ActorRole Role        `json:"actorRole"`
}

// StoreDecision is the payload of store approval events.
type StoreDecision struct {
	StoreID   int64       `json:"storeId"`
	OwnerID   int64       `json:"ownerId"`
	StoreName string      `json:"storeName"`
	Status    StoreStatus `json:"status"`
	ActorID   int64       `json:"actorId"`
}
