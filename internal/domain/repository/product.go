package repository

import (
	"context"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

// ProductRepository reads the catalog.
type ProductRepository interface {
	ListByAdmin(ctx context.Context, adminID int64) ([]model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
}
