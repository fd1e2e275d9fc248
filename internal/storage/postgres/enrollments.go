package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

type enrollmentRepository struct {
	storage *Storage
}

const enrollmentColumns = `id, user_id, course_id, status, created_at`

func (r *enrollmentRepository) Create(ctx context.Context, userID, courseID int64) (*model.EnrollmentRequest, error) {
	const query = `INSERT INTO enrollment_requests (user_id, course_id, status)
                   VALUES ($1, $2, $3) RETURNING id, status, created_at`
	req := model.EnrollmentRequest{UserID: userID, CourseID: courseID}
	err := r.storage.pool.QueryRow(ctx, query, userID, courseID, model.EnrollmentStatusPending).
		Scan(&req.ID, &req.Status, &req.CreatedAt)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return nil, domainErrors.ErrDuplicateRequest
		case pgForeignKeyViolation:
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id int64) (*model.EnrollmentRequest, error) {
	var req model.EnrollmentRequest
	err := r.storage.pool.QueryRow(ctx, `SELECT `+enrollmentColumns+` FROM enrollment_requests WHERE id=$1`, id).
		Scan(&req.ID, &req.UserID, &req.CourseID, &req.Status, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *enrollmentRepository) List(ctx context.Context, status model.EnrollmentStatus) ([]model.EnrollmentRequest, error) {
	const query = `SELECT ` + enrollmentColumns + ` FROM enrollment_requests
                   WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, string(status))
}

func (r *enrollmentRepository) ListByUser(ctx context.Context, userID int64) ([]model.EnrollmentRequest, error) {
	const query = `SELECT ` + enrollmentColumns + ` FROM enrollment_requests
                   WHERE user_id=$1 ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, userID)
}

func (r *enrollmentRepository) list(ctx context.Context, query string, arg any) ([]model.EnrollmentRequest, error) {
	rows, err := r.storage.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.EnrollmentRequest
	for rows.Next() {
		var req model.EnrollmentRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.CourseID, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *enrollmentRepository) Transition(ctx context.Context, id int64, status model.EnrollmentStatus) (bool, error) {
	const update = `UPDATE enrollment_requests SET status=$1 WHERE id=$2 AND status='pending'`
	tag, err := r.storage.pool.Exec(ctx, update, status, id)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	var exists bool
	if err := r.storage.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM enrollment_requests WHERE id=$1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	if !exists {
		return false, domainErrors.ErrNotFound
	}
	return false, nil
}

func (r *enrollmentRepository) TransitionMany(ctx context.Context, ids []int64, status model.EnrollmentStatus) (int64, error) {
	const update = `UPDATE enrollment_requests SET status=$1 WHERE id = ANY($2) AND status='pending'`
	tag, err := r.storage.pool.Exec(ctx, update, status, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *enrollmentRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM enrollment_requests WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *enrollmentRepository) CompletePayment(ctx context.Context, requestID, actingUserID int64, method string) (*model.Payment, error) {
	const lockRequest = `SELECT r.user_id, r.course_id, r.status, (c.price * 100)::BIGINT
                         FROM enrollment_requests r JOIN courses c ON c.id = r.course_id
                         WHERE r.id=$1
                         FOR UPDATE OF r`
	const insertPayment = `INSERT INTO payments (amount, is_successful, method, comment, student_id, course_id)
                           VALUES ($1::NUMERIC / 100, TRUE, $2, '', $3, $4)
                           RETURNING id, paid_at`
	const addStudent = `INSERT INTO course_students (course_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	const deleteRequest = `DELETE FROM enrollment_requests WHERE id=$1`

	var payment model.Payment
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var (
			ownerID int64
			status  model.EnrollmentStatus
		)
		err := tx.QueryRow(ctx, lockRequest, requestID).Scan(&ownerID, &payment.CourseID, &status, &payment.Amount)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if ownerID != actingUserID {
			return domainErrors.ErrForbidden
		}
		if status != model.EnrollmentStatusApproved {
			return domainErrors.ErrNotApproved
		}

		payment.StudentID = actingUserID
		payment.Method = method
		payment.Successful = true
		if err := tx.QueryRow(ctx, insertPayment, payment.Amount, method, payment.StudentID, payment.CourseID).
			Scan(&payment.ID, &payment.PaidAt); err != nil {
			return fmt.Errorf("%w: %v", domainErrors.ErrPaymentWrite, err)
		}

		if _, err := tx.Exec(ctx, addStudent, payment.CourseID, actingUserID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, deleteRequest, requestID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
