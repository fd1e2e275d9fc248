package postgres

import (
	"context"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

type paymentRepository struct {
	storage *Storage
}

const paymentColumns = `id, (amount * 100)::BIGINT, paid_at, is_successful, method, comment, student_id, course_id`

func (r *paymentRepository) List(ctx context.Context) ([]model.Payment, error) {
	return r.list(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY paid_at DESC, id DESC`)
}

func (r *paymentRepository) ListByStudent(ctx context.Context, studentID int64) ([]model.Payment, error) {
	return r.list(ctx, `SELECT `+paymentColumns+` FROM payments WHERE student_id=$1 ORDER BY paid_at DESC, id DESC`, studentID)
}

func (r *paymentRepository) list(ctx context.Context, query string, args ...any) ([]model.Payment, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.Amount, &p.PaidAt, &p.Successful, &p.Method, &p.Comment, &p.StudentID, &p.CourseID); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *paymentRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM payments WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
