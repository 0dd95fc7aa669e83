package postgres

import (
	"context"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

type productRepository struct {
	storage *Storage
}

const productSelect = `SELECT id, admin_id, store_id, title, category, price, total_stock, image FROM products`

func (r *productRepository) ListByAdmin(ctx context.Context, adminID int64) ([]model.Product, error) {
	return r.list(ctx, productSelect+` WHERE admin_id=$1 ORDER BY id`, adminID)
}

func (r *productRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	return r.list(ctx, productSelect+` ORDER BY id`)
}

func (r *productRepository) list(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.AdminID, &p.StoreID, &p.Title, &p.Category, &p.Price, &p.TotalStock, &p.Image); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
