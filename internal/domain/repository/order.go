package repository

import (
	"context"
	"time"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

// OrderFilter narrows an order listing.
// A restricted filter with no product ids matches nothing.
type OrderFilter struct {
	Restricted bool
	ProductIDs []int64
	Since      *time.Time
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, error)
	// UpdateStatus sets next only while the stored status still equals expected.
	// The event, when given, is stored in the same transaction.
	UpdateStatus(ctx context.Context, id int64, expected, next model.OrderStatus, event *model.Event) error
}
