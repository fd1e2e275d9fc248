package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

type lessonRepository struct {
	storage *Storage
}

const lessonColumns = `id, course_id, title, content, teacher_id`

func scanLesson(row pgx.Row, l *model.Lesson) error {
	return row.Scan(&l.ID, &l.CourseID, &l.Title, &l.Content, &l.TeacherID)
}

func (r *lessonRepository) Create(ctx context.Context, lesson model.Lesson) (*model.Lesson, error) {
	const query = `INSERT INTO lessons (course_id, title, content, teacher_id)
                   VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, lesson.CourseID, lesson.Title, lesson.Content, lesson.TeacherID).
		Scan(&lesson.ID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &lesson, nil
}

func (r *lessonRepository) Update(ctx context.Context, lesson model.Lesson) error {
	const query = `UPDATE lessons SET title=$1, content=$2, teacher_id=$3 WHERE id=$4`
	tag, err := r.storage.pool.Exec(ctx, query, lesson.Title, lesson.Content, lesson.TeacherID, lesson.ID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return domainErrors.ErrNotFound
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *lessonRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM lessons WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *lessonRepository) GetByID(ctx context.Context, id int64) (*model.Lesson, error) {
	var l model.Lesson
	err := scanLesson(r.storage.pool.QueryRow(ctx, `SELECT `+lessonColumns+` FROM lessons WHERE id=$1`, id), &l)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *lessonRepository) ListByCourse(ctx context.Context, courseID int64) ([]model.Lesson, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT `+lessonColumns+` FROM lessons WHERE course_id=$1 ORDER BY id`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Lesson
	for rows.Next() {
		var l model.Lesson
		if err := scanLesson(rows, &l); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *lessonRepository) DeleteMany(ctx context.Context, courseID int64, ids []int64) (int64, error) {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM lessons WHERE course_id=$1 AND id = ANY($2)`, courseID, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
