package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

type courseRepository struct {
	storage *Storage
}

// Money columns are NUMERIC(10,2); they travel as BIGINT kopecks.
const courseColumns = `id, title, description, duration_months, start_date, end_date, (price * 100)::BIGINT, language, type, created_at`

func scanCourse(row pgx.Row, c *model.Course) error {
	return row.Scan(&c.ID, &c.Title, &c.Description, &c.DurationMonths, &c.StartDate, &c.EndDate,
		&c.Price, &c.Language, &c.Type, &c.CreatedAt)
}

func (r *courseRepository) Create(ctx context.Context, course model.Course) (*model.Course, error) {
	const query = `INSERT INTO courses (title, description, duration_months, start_date, end_date, price, language, type)
                   VALUES ($1, $2, $3, $4, $5, $6::NUMERIC / 100, $7, $8) RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		course.Title, course.Description, course.DurationMonths, course.StartDate, course.EndDate,
		course.Price, course.Language, course.Type,
	).Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) Update(ctx context.Context, course model.Course) error {
	const query = `UPDATE courses
                   SET title=$1, description=$2, duration_months=$3, start_date=$4, end_date=$5,
                       price=$6::NUMERIC / 100, language=$7, type=$8
                   WHERE id=$9`
	tag, err := r.storage.pool.Exec(ctx, query,
		course.Title, course.Description, course.DurationMonths, course.StartDate, course.EndDate,
		course.Price, course.Language, course.Type, course.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *courseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM courses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *courseRepository) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	var c model.Course
	err := scanCourse(r.storage.pool.QueryRow(ctx, `SELECT `+courseColumns+` FROM courses WHERE id=$1`, id), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *courseRepository) List(ctx context.Context, filter model.CourseFilter) ([]model.Course, error) {
	const query = `SELECT ` + courseColumns + ` FROM courses
                   WHERE ($1 = '' OR title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
                     AND ($2 = '' OR language = $2)
                   ORDER BY start_date, id`
	rows, err := r.storage.pool.Query(ctx, query, filter.Search, string(filter.Language))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Course
	for rows.Next() {
		var c model.Course
		if err := scanCourse(rows, &c); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *courseRepository) Students(ctx context.Context, courseID int64) ([]model.User, error) {
	const query = `SELECT u.id, u.login, u.full_name, u.email, u.role, u.created_at
                   FROM users u JOIN course_students cs ON cs.user_id = u.id
                   WHERE cs.course_id=$1 ORDER BY u.full_name, u.id`
	rows, err := r.storage.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Login, &u.FullName, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
