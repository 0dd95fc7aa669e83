package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/SwatiP012/Momo-Muffin-backend/internal/domain/errors"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

type storeRepository struct {
	storage *Storage
}

const storeSelect = `SELECT id, owner_id, store_name, store_description, status, created_at FROM stores`

func scanStore(row pgx.Row) (*model.Store, error) {
	var s model.Store
	if err := row.Scan(&s.ID, &s.OwnerID, &s.StoreName, &s.StoreDescription, &s.Status, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *storeRepository) GetByOwner(ctx context.Context, ownerID int64) (*model.Store, error) {
	return r.get(ctx, storeSelect+` WHERE owner_id=$1`, ownerID)
}

func (r *storeRepository) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	return r.get(ctx, storeSelect+` WHERE id=$1`, id)
}

func (r *storeRepository) get(ctx context.Context, query string, arg any) (*model.Store, error) {
	store, err := scanStore(r.storage.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return store, nil
}

func (r *storeRepository) List(ctx context.Context, status *model.StoreStatus) ([]model.Store, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if status != nil {
		rows, err = r.storage.pool.Query(ctx, storeSelect+` WHERE status=$1 ORDER BY created_at DESC, id DESC`, *status)
	} else {
		rows, err = r.storage.pool.Query(ctx, storeSelect+` ORDER BY created_at DESC, id DESC`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Store
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *store)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *storeRepository) UpdateStatus(ctx context.Context, id int64, status model.StoreStatus, event *model.Event) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE stores SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		if event != nil {
			return insertEvent(ctx, tx, event)
		}
		return nil
	})
}
