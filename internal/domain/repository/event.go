package repository

import (
	"context"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

// EventRepository is the outbox consumed by the dispatcher.
type EventRepository interface {
	ClaimBatch(ctx context.Context, limit int) ([]model.Event, error)
	MarkSent(ctx context.Context, id int64) error
	Release(ctx context.Context, id int64) error
}
