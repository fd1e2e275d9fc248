package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

const userColumns = `id, login, full_name, email, role, password_hash, created_at`

func (r *userRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	const query = `INSERT INTO users (login, full_name, email, role, password_hash)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	if user.Role == "" {
		user.Role = model.RoleStudent
	}
	err := r.storage.pool.QueryRow(ctx, query, user.Login, user.FullName, user.Email, user.Role, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE login=$1`, login)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(&u.ID, &u.Login, &u.FullName, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	err := scanUser(r.storage.pool.QueryRow(ctx, query, arg), &u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users
                   WHERE role <> 'manager'
                     AND ($1 = '' OR login ILIKE '%' || $1 || '%' OR full_name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
                     AND ($2 = '' OR role = $2)
                   ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, filter.Search, string(filter.Role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) Update(ctx context.Context, user model.User) error {
	const query = `UPDATE users SET full_name=$1, email=$2, role=$3 WHERE id=$4 AND role <> 'manager'`
	tag, err := r.storage.pool.Exec(ctx, query, user.FullName, user.Email, user.Role, user.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM users WHERE id=$1 AND role <> 'manager'`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM users WHERE id = ANY($1) AND role <> 'manager'`, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *userRepository) SetRoleMany(ctx context.Context, ids []int64, role model.Role) (int64, error) {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE users SET role=$1 WHERE id = ANY($2) AND role <> 'manager'`, role, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
