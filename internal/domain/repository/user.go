package repository

import (
	"context"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	GetByPhone(ctx context.Context, phone string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	CountByRole(ctx context.Context) (map[model.Role]int, error)
}
