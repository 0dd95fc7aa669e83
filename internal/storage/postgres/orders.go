package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/SwatiP012/Momo-Muffin-backend/internal/domain/errors"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/repository"
)

type orderRepository struct {
	storage *Storage
}

type cartItemRecord struct {
	ProductID int64           `json:"productId"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

const orderSelect = `SELECT o.id, o.user_id, COALESCE(u.user_name, ''), o.cart_items, o.order_status, o.total_amount, o.order_date
                     FROM orders o LEFT JOIN users u ON u.id = o.user_id`

func decodeCartItems(raw []byte) ([]model.CartItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var records []cartItemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	items := make([]model.CartItem, 0, len(records))
	for _, r := range records {
		items = append(items, model.CartItem{
			ProductID: r.ProductID,
			Title:     r.Title,
			Price:     r.Price,
			Quantity:  r.Quantity,
			Image:     r.Image,
		})
	}
	return items, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o   model.Order
		raw []byte
	)
	if err := row.Scan(&o.ID, &o.UserID, &o.UserName, &raw, &o.Status, &o.TotalAmount, &o.OrderDate); err != nil {
		return nil, err
	}
	items, err := decodeCartItems(raw)
	if err != nil {
		return nil, err
	}
	o.CartItems = items
	return &o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, orderSelect+` WHERE o.id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func buildOrderQuery(filter repository.OrderFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.Restricted {
		args = append(args, filter.ProductIDs)
		conds = append(conds, fmt.Sprintf(`EXISTS (SELECT 1 FROM jsonb_array_elements(o.cart_items) item
                   WHERE (item->>'productId')::bigint = ANY($%d))`, len(args)))
	}
	if filter.Since != nil {
		args = append(args, *filter.Since)
		conds = append(conds, fmt.Sprintf(`o.order_date >= $%d`, len(args)))
	}

	var b strings.Builder
	b.WriteString(orderSelect)
	if len(conds) > 0 {
		b.WriteString(` WHERE `)
		b.WriteString(strings.Join(conds, ` AND `))
	}
	b.WriteString(` ORDER BY o.order_date DESC, o.id DESC`)
	return b.String(), args
}

func (r *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	if filter.Restricted && len(filter.ProductIDs) == 0 {
		return nil, nil
	}

	query, args := buildOrderQuery(filter)
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, expected, next model.OrderStatus, event *model.Event) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const updateQuery = `UPDATE orders SET order_status=$1, updated_at=NOW() WHERE id=$2 AND order_status=$3`
		tag, err := tx.Exec(ctx, updateQuery, next, id, expected)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id=$1)`, id).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return domainErrors.ErrNotFound
			}
			r.storage.logger.Debug("order status changed concurrently",
				slog.Int64("order_id", id), slog.String("expected", string(expected)))
			return domainErrors.ErrConflict
		}

		if event != nil {
			return insertEvent(ctx, tx, event)
		}
		return nil
	})
}
