package repository

import (
	"context"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

// StoreRepository manages admin storefronts.
type StoreRepository interface {
	GetByOwner(ctx context.Context, ownerID int64) (*model.Store, error)
	GetByID(ctx context.Context, id int64) (*model.Store, error)
	List(ctx context.Context, status *model.StoreStatus) ([]model.Store, error)
	UpdateStatus(ctx context.Context, id int64, status model.StoreStatus, event *model.Event) error
}
