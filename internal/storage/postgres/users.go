package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/SwatiP012/Momo-Muffin-backend/internal/domain/errors"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

const userSelect = `SELECT id, user_name, phone_number, password_hash, role, created_at FROM users`

func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	return r.get(ctx, userSelect+` WHERE phone_number=$1`, phone)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.get(ctx, userSelect+` WHERE id=$1`, id)
}

func (r *userRepository) CountByRole(ctx context.Context) (map[model.Role]int, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.Role]int)
	for rows.Next() {
		var (
			role  model.Role
			count int
		)
		if err := rows.Scan(&role, &count); err != nil {
			return nil, err
		}
		counts[role] = count
	}
	return counts, rows.Err()
}

func (r *userRepository) get(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.UserName, &u.PhoneNumber, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
