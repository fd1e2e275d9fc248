package repository

import (
	"context"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context, filter model.UserFilter) ([]model.User, error)
	// Update, Delete and the bulk writes never touch manager accounts.
	Update(ctx context.Context, user model.User) error
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
	SetRoleMany(ctx context.Context, ids []int64, role model.Role) (int64, error)
}
