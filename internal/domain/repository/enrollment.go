package repository

import (
	"context"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

// EnrollmentRepository persists enrollment requests and their transitions.
type EnrollmentRepository interface {
	// Create inserts a pending request. A second request for the same
	// user and course fails with ErrDuplicateRequest.
	Create(ctx context.Context, userID, courseID int64) (*model.EnrollmentRequest, error)
	GetByID(ctx context.Context, id int64) (*model.EnrollmentRequest, error)
	List(ctx context.Context, status model.EnrollmentStatus) ([]model.EnrollmentRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]model.EnrollmentRequest, error)
	// Transition moves a pending request to status. It reports false when
	// the request exists but is no longer pending.
	Transition(ctx context.Context, id int64, status model.EnrollmentStatus) (bool, error)
	TransitionMany(ctx context.Context, ids []int64, status model.EnrollmentStatus) (int64, error)
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
	// CompletePayment records the payment, grants course membership and
	// removes the request in a single transaction.
	CompletePayment(ctx context.Context, requestID, actingUserID int64, method string) (*model.Payment, error)
}
