package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

type eventRepository struct {
	storage *Storage
}

// Claimed rows not acknowledged within this period become eligible again.
const claimTimeout = "1 minute"

func insertEvent(ctx context.Context, tx pgx.Tx, event *model.Event) error {
	const query = `INSERT INTO events (event_id, event_type, aggregate_id, recipient_id, payload)
                   VALUES ($1, $2, $3, $4, $5)`
	_, err := tx.Exec(ctx, query, event.EventID, event.Type, event.AggregateID, event.RecipientID, []byte(event.Payload))
	return err
}

func (r *eventRepository) ClaimBatch(ctx context.Context, limit int) ([]model.Event, error) {
	const selectQuery = `SELECT id, event_id::text, event_type, aggregate_id, recipient_id, payload, created_at, attempts
                         FROM events
                         WHERE sent_at IS NULL AND (claimed_at IS NULL OR claimed_at < NOW() - INTERVAL '` + claimTimeout + `')
                         ORDER BY id
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`

	var events []model.Event
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				e       model.Event
				payload []byte
			)
			if err := rows.Scan(&e.ID, &e.EventID, &e.Type, &e.AggregateID, &e.RecipientID, &payload, &e.CreatedAt, &e.Attempts); err != nil {
				return err
			}
			e.Payload = payload
			events = append(events, e)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}

		ids := make([]int64, 0, len(events))
		for _, e := range events {
			ids = append(ids, e.ID)
		}
		_, err = tx.Exec(ctx, `UPDATE events SET claimed_at=NOW() WHERE id = ANY($1)`, ids)
		return err
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) MarkSent(ctx context.Context, id int64) error {
	_, err := r.storage.pool.Exec(ctx, `UPDATE events SET sent_at=NOW() WHERE id=$1`, id)
	return err
}

func (r *eventRepository) Release(ctx context.Context, id int64) error {
	_, err := r.storage.pool.Exec(ctx, `UPDATE events SET claimed_at=NULL, attempts=attempts+1 WHERE id=$1`, id)
	return err
}
