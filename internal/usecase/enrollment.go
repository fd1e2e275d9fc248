package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pvlbrzn/ITSchool/internal/config"
	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	"github.com/pvlbrzn/ITSchool/internal/domain/repository"
)

// ManagerEnrollmentsPath is the back-office page linked from notifications.
const ManagerEnrollmentsPath = "/manager/enrollments"

// EventPublisher hands enrollment events to an asynchronous consumer.
// Publish must not block the caller.
type EventPublisher interface {
	Publish(event model.EnrollmentEvent)
}

// EnrollmentUseCase drives requests through review and payment.
type EnrollmentUseCase struct {
	enrollments repository.EnrollmentRepository
	courses     repository.CourseRepository
	users       repository.UserRepository
	payments    repository.PaymentRepository
	events      EventPublisher
	manageURL   string
	logger      *slog.Logger
	now         func() time.Time
}

// NewEnrollmentUseCase constructs EnrollmentUseCase.
func NewEnrollmentUseCase(
	enrollments repository.EnrollmentRepository,
	courses repository.CourseRepository,
	users repository.UserRepository,
	payments repository.PaymentRepository,
	events EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) *EnrollmentUseCase {
	return &EnrollmentUseCase{
		enrollments: enrollments,
		courses:     courses,
		users:       users,
		payments:    payments,
		events:      events,
		manageURL:   cfg.PublicBaseURL + ManagerEnrollmentsPath,
		logger:      logger,
		now:         time.Now,
	}
}

// Submit files a pending request and announces it to managers.
func (u *EnrollmentUseCase) Submit(ctx context.Context, userID, courseID int64) (*model.EnrollmentRequest, error) {
	course, err := u.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	req, err := u.enrollments.Create(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	u.events.Publish(model.EnrollmentEvent{
		EventID:       uuid.NewString(),
		RequestID:     req.ID,
		RequesterName: u.requesterName(ctx, userID),
		CourseTitle:   course.Title,
		CreatedAt:     u.now(),
		ManageURL:     u.manageURL,
	})

	return req, nil
}

func (u *EnrollmentUseCase) requesterName(ctx context.Context, userID int64) string {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		u.logger.Warn("resolve requester name failed", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return fmt.Sprintf("user #%d", userID)
	}
	return usr.DisplayName()
}

// Approve moves a pending request to approved.
func (u *EnrollmentUseCase) Approve(ctx context.Context, requestID int64) error {
	return u.transition(ctx, requestID, model.EnrollmentStatusApproved)
}

// Reject moves a pending request to rejected.
func (u *EnrollmentUseCase) Reject(ctx context.Context, requestID int64) error {
	return u.transition(ctx, requestID, model.EnrollmentStatusRejected)
}

func (u *EnrollmentUseCase) transition(ctx context.Context, requestID int64, status model.EnrollmentStatus) error {
	changed, err := u.enrollments.Transition(ctx, requestID, status)
	if err != nil {
		return err
	}
	if !changed {
		return domainErrors.ErrAlreadyProcessed
	}
	return nil
}

// StartPayment settles an approved request owned by actingUserID.
func (u *EnrollmentUseCase) StartPayment(ctx context.Context, requestID, actingUserID int64) (*model.Payment, error) {
	payment, err := u.enrollments.CompletePayment(ctx, requestID, actingUserID, model.PaymentMethodManual)
	if err != nil {
		return nil, err
	}
	u.logger.Info("enrollment paid",
		slog.Int64("request_id", requestID),
		slog.Int64("payment_id", payment.ID),
		slog.Int64("course_id", payment.CourseID),
	)
	return payment, nil
}

// List returns requests newest first, optionally narrowed by status.
func (u *EnrollmentUseCase) List(ctx context.Context, status model.EnrollmentStatus) ([]model.EnrollmentRequest, error) {
	if !ValidEnrollmentStatus(status) {
		return nil, domainErrors.ErrInvalidAction
	}
	return u.enrollments.List(ctx, status)
}

// ListByUser returns the requests filed by a user.
func (u *EnrollmentUseCase) ListByUser(ctx context.Context, userID int64) ([]model.EnrollmentRequest, error) {
	return u.enrollments.ListByUser(ctx, userID)
}

// BulkApply runs a back-office action over selected requests and returns
// the number of rows it changed.
func (u *EnrollmentUseCase) BulkApply(ctx context.Context, action model.EnrollmentAction, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, domainErrors.ErrNothingSelected
	}
	switch action {
	case model.EnrollmentActionApprove:
		return u.enrollments.TransitionMany(ctx, ids, model.EnrollmentStatusApproved)
	case model.EnrollmentActionReject:
		return u.enrollments.TransitionMany(ctx, ids, model.EnrollmentStatusRejected)
	case model.EnrollmentActionDelete:
		return u.enrollments.DeleteMany(ctx, ids)
	default:
		return 0, domainErrors.ErrInvalidAction
	}
}

// Payments returns the whole ledger newest first.
func (u *EnrollmentUseCase) Payments(ctx context.Context) ([]model.Payment, error) {
	return u.payments.List(ctx)
}

// PaymentsByStudent returns the ledger entries of one student.
func (u *EnrollmentUseCase) PaymentsByStudent(ctx context.Context, studentID int64) ([]model.Payment, error) {
	return u.payments.ListByStudent(ctx, studentID)
}

// DeletePayments removes selected ledger entries and returns how many were removed.
func (u *EnrollmentUseCase) DeletePayments(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, domainErrors.ErrNothingSelected
	}
	removed, err := u.payments.DeleteMany(ctx, ids)
	if err != nil {
		return 0, err
	}
	u.logger.Info("payments deleted", slog.Int("selected", len(ids)), slog.Int64("removed", removed))
	return removed, nil
}
