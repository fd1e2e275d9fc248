package usecase

import (
	"context"
	"log/slog"
	"strings"

	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	"github.com/pvlbrzn/ITSchool/internal/domain/repository"
)

// UserUseCase is the back-office view of student and teacher accounts.
// Manager accounts are read-only here.
type UserUseCase struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, logger *slog.Logger) *UserUseCase {
	return &UserUseCase{users: users, logger: logger}
}

// List returns students and teachers matching the filter.
func (u *UserUseCase) List(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Role != "" && !ValidAssignableRole(filter.Role) {
		return nil, domainErrors.ErrInvalidUser
	}
	return u.users.List(ctx, filter)
}

// Update edits name, email and role of a student or teacher.
func (u *UserUseCase) Update(ctx context.Context, user model.User) (*model.User, error) {
	if !ValidAssignableRole(user.Role) {
		return nil, domainErrors.ErrInvalidUser
	}
	existing, err := u.editable(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	previous := existing.Role
	updated := *existing
	updated.FullName = strings.TrimSpace(user.FullName)
	updated.Email = strings.TrimSpace(user.Email)
	updated.Role = user.Role
	if err := u.users.Update(ctx, updated); err != nil {
		return nil, err
	}
	if previous != updated.Role {
		u.logger.Info("user role changed",
			slog.Int64("user_id", updated.ID),
			slog.String("from", string(previous)),
			slog.String("to", string(updated.Role)),
		)
	}
	return &updated, nil
}

func (u *UserUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := u.editable(ctx, id); err != nil {
		return err
	}
	return u.users.Delete(ctx, id)
}

// BulkApply deletes or promotes selected accounts to teachers. Managers
// among ids are skipped; the result counts changed accounts.
func (u *UserUseCase) BulkApply(ctx context.Context, action model.UserAction, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, domainErrors.ErrNothingSelected
	}

	var (
		affected int64
		err      error
	)
	switch action {
	case model.UserActionDelete:
		affected, err = u.users.DeleteMany(ctx, ids)
	case model.UserActionPromote:
		affected, err = u.users.SetRoleMany(ctx, ids, model.RoleTeacher)
	default:
		return 0, domainErrors.ErrInvalidAction
	}
	if err != nil {
		return 0, err
	}

	u.logger.Info("user bulk action",
		slog.String("action", string(action)),
		slog.Int("selected", len(ids)),
		slog.Int64("affected", affected),
	)
	return affected, nil
}

func (u *UserUseCase) editable(ctx context.Context, id int64) (*model.User, error) {
	existing, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.IsManager() {
		return nil, domainErrors.ErrForbidden
	}
	return existing, nil
}
