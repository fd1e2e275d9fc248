package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/pvlbrzn/ITSchool/internal/config"
	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	testhelpers "github.com/pvlbrzn/ITSchool/internal/test"
)

type enrollmentFixture struct {
	uc          *EnrollmentUseCase
	users       *testhelpers.UserRepositoryStub
	courses     *testhelpers.CourseRepositoryStub
	enrollments *testhelpers.EnrollmentRepositoryStub
	payments    *testhelpers.PaymentRepositoryStub
	events      *testhelpers.EventPublisherStub
	student     *model.User
	course      *model.Course
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEnrollmentFixture(t *testing.T) *enrollmentFixture {
	t.Helper()

	f := &enrollmentFixture{
		users:    testhelpers.NewUserRepositoryStub(),
		courses:  testhelpers.NewCourseRepositoryStub(),
		payments: &testhelpers.PaymentRepositoryStub{},
		events:   &testhelpers.EventPublisherStub{},
	}
	f.enrollments = testhelpers.NewEnrollmentRepositoryStub(f.courses, f.payments)

	cfg := &config.Config{PublicBaseURL: "https://school.example"}
	f.uc = NewEnrollmentUseCase(f.enrollments, f.courses, f.users, f.payments, f.events, cfg, discardLogger())
	f.uc.now = func() time.Time { return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC) }

	ctx := context.Background()
	var err error
	f.student, err = f.users.Create(ctx, model.User{Login: "ivan", FullName: "Ivan Petrov", Role: model.RoleStudent})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	f.course, err = f.courses.Create(ctx, validCourse())
	if err != nil {
		t.Fatalf("create course: %v", err)
	}
	return f
}

func TestEnrollmentSubmit(t *testing.T) {
	f := newEnrollmentFixture(t)

	req, err := f.uc.Submit(context.Background(), f.student.ID, f.course.ID)
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if req.Status != model.EnrollmentStatusPending {
		t.Fatalf("expected pending, got %q", req.Status)
	}

	events := f.events.Events()
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
	event := events[0]
	if event.EventID == "" {
		t.Fatal("expected event id")
	}
	if event.RequestID != req.ID || event.RequesterName != "Ivan Petrov" || event.CourseTitle != f.course.Title {
		t.Fatalf("unexpected event %+v", event)
	}
	if event.ManageURL != "https://school.example/manager/enrollments" {
		t.Fatalf("unexpected manage url %q", event.ManageURL)
	}
}

func TestEnrollmentSubmitDuplicate(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()

	if _, err := f.uc.Submit(ctx, f.student.ID, f.course.ID); err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if _, err := f.uc.Submit(ctx, f.student.ID, f.course.ID); !errors.Is(err, domainErrors.ErrDuplicateRequest) {
		t.Fatalf("expected duplicate, got %v", err)
	}

	reqs, _ := f.enrollments.ListByUser(ctx, f.student.ID)
	if len(reqs) != 1 {
		t.Fatalf("expected single stored request, got %d", len(reqs))
	}
	if len(f.events.Events()) != 1 {
		t.Fatal("duplicate must not publish an event")
	}
}

func TestEnrollmentSubmitDuplicateAfterRejection(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()

	req, _ := f.uc.Submit(ctx, f.student.ID, f.course.ID)
	if err := f.uc.Reject(ctx, req.ID); err != nil {
		t.Fatalf("reject returned error: %v", err)
	}
	if _, err := f.uc.Submit(ctx, f.student.ID, f.course.ID); !errors.Is(err, domainErrors.ErrDuplicateRequest) {
		t.Fatalf("expected duplicate, got %v", err)
	}
}

func TestEnrollmentSubmitConcurrentSingleWinner(t *testing.T) {
	f := newEnrollmentFixture(t)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		dupes     int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Submit(context.Background(), f.student.ID, f.course.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domainErrors.ErrDuplicateRequest):
				dupes++
			}
		}()
	}
	wg.Wait()

	if successes != 1 || dupes != workers-1 {
		t.Fatalf("expected 1 success and %d duplicates, got %d/%d", workers-1, successes, dupes)
	}
}

func TestEnrollmentSubmitUnknownCourse(t *testing.T) {
	f := newEnrollmentFixture(t)
	if _, err := f.uc.Submit(context.Background(), f.student.ID, 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(f.events.Events()) != 0 {
		t.Fatal("no event expected")
	}
}

func TestEnrollmentSubmitUnknownRequesterFallsBack(t *testing.T) {
	f := newEnrollmentFixture(t)
	if _, err := f.uc.Submit(context.Background(), 77, f.course.ID); err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if got := f.events.Events()[0].RequesterName; got != "user #77" {
		t.Fatalf("unexpected requester name %q", got)
	}
}

func TestEnrollmentApproveReject(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()

	req, _ := f.uc.Submit(ctx, f.student.ID, f.course.ID)
	if err := f.uc.Approve(ctx, req.ID); err != nil {
		t.Fatalf("approve returned error: %v", err)
	}
	if err := f.uc.Approve(ctx, req.ID); !errors.Is(err, domainErrors.ErrAlreadyProcessed) {
		t.Fatalf("expected already processed, got %v", err)
	}
	if err := f.uc.Reject(ctx, req.ID); !errors.Is(err, domainErrors.ErrAlreadyProcessed) {
		t.Fatalf("expected already processed, got %v", err)
	}

	stored, _ := f.enrollments.GetByID(ctx, req.ID)
	if stored.Status != model.EnrollmentStatusApproved {
		t.Fatalf("expected approved, got %q", stored.Status)
	}

	if err := f.uc.Approve(ctx, 999); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEnrollmentConcurrentReviewSingleWinner(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	req, _ := f.uc.Submit(ctx, f.student.ID, f.course.ID)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				err = f.uc.Approve(ctx, req.ID)
			} else {
				err = f.uc.Reject(ctx, req.ID)
			}
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if successes != 1 {
		t.Fatalf("expected exactly one successful review, got %d", successes)
	}
}

func TestEnrollmentStartPayment(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()

	req, _ := f.uc.Submit(ctx, f.student.ID, f.course.ID)
	if err := f.uc.Approve(ctx, req.ID); err != nil {
		t.Fatalf("approve returned error: %v", err)
	}

	payment, err := f.uc.StartPayment(ctx, req.ID, f.student.ID)
	if err != nil {
		t.Fatalf("start payment returned error: %v", err)
	}
	if payment.Amount != f.course.Price || payment.Method != model.PaymentMethodManual || !payment.Successful {
		t.Fatalf("unexpected payment %+v", payment)
	}
	if payment.StudentID != f.student.ID || payment.CourseID != f.course.ID {
		t.Fatalf("unexpected payment parties %+v", payment)
	}
	if !f.courses.HasStudent(f.course.ID, f.student.ID) {
		t.Fatal("student must join the course")
	}
	if _, err := f.enrollments.GetByID(ctx, req.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("request must be removed after payment, got %v", err)
	}

	history, err := f.uc.PaymentsByStudent(ctx, f.student.ID)
	if err != nil || len(history) != 1 {
		t.Fatalf("expected one ledger entry, got %d (%v)", len(history), err)
	}
}

func TestEnrollmentStartPaymentPendingRejected(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()

	req, _ := f.uc.Submit(ctx, f.student.ID, f.course.ID)
	if _, err := f.uc.StartPayment(ctx, req.ID, f.student.ID); !errors.Is(err, domainErrors.ErrNotApproved) {
		t.Fatalf("expected not approved, got %v", err)
	}
	if f.payments.Len() != 0 {
		t.Fatal("no payment must be recorded")
	}
	if f.courses.HasStudent(f.course.ID, f.student.ID) {
		t.Fatal("student must not join the course")
	}

	stored, err := f.enrollments.GetByID(ctx, req.ID)
	if err != nil || stored.Status != model.EnrollmentStatusPending {
		t.Fatalf("request must stay pending, got %+v (%v)", stored, err)
	}
}

func TestEnrollmentStartPaymentForeignRequest(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()

	req, _ := f.uc.Submit(ctx, f.student.ID, f.course.ID)
	_ = f.uc.Approve(ctx, req.ID)

	if _, err := f.uc.StartPayment(ctx, req.ID, f.student.ID+100); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if f.payments.Len() != 0 {
		t.Fatal("no payment must be recorded")
	}
}

func TestEnrollmentStartPaymentWriteFailure(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()

	req, _ := f.uc.Submit(ctx, f.student.ID, f.course.ID)
	_ = f.uc.Approve(ctx, req.ID)
	f.enrollments.PaymentErr = errors.New("disk full")

	if _, err := f.uc.StartPayment(ctx, req.ID, f.student.ID); !errors.Is(err, domainErrors.ErrPaymentWrite) {
		t.Fatalf("expected payment write error, got %v", err)
	}
	if _, err := f.enrollments.GetByID(ctx, req.ID); err != nil {
		t.Fatalf("request must survive failed payment: %v", err)
	}
	if f.courses.HasStudent(f.course.ID, f.student.ID) {
		t.Fatal("membership must not be granted")
	}
}

func TestEnrollmentList(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()

	other, _ := f.courses.Create(ctx, validCourse())
	first, _ := f.uc.Submit(ctx, f.student.ID, f.course.ID)
	second, _ := f.uc.Submit(ctx, f.student.ID, other.ID)
	_ = f.uc.Approve(ctx, first.ID)

	all, err := f.uc.List(ctx, "")
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 requests, got %d (%v)", len(all), err)
	}
	if all[0].ID != second.ID {
		t.Fatal("expected newest first")
	}

	pending, err := f.uc.List(ctx, model.EnrollmentStatusPending)
	if err != nil || len(pending) != 1 || pending[0].ID != second.ID {
		t.Fatalf("unexpected pending list %+v (%v)", pending, err)
	}

	if _, err := f.uc.List(ctx, "paid"); !errors.Is(err, domainErrors.ErrInvalidAction) {
		t.Fatalf("expected invalid action, got %v", err)
	}

	mine, err := f.uc.ListByUser(ctx, f.student.ID)
	if err != nil || len(mine) != 2 {
		t.Fatalf("expected 2 own requests, got %d (%v)", len(mine), err)
	}
}

func TestEnrollmentBulkApply(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 3; i++ {
		course, _ := f.courses.Create(ctx, validCourse())
		req, err := f.uc.Submit(ctx, f.student.ID, course.ID)
		if err != nil {
			t.Fatalf("submit returned error: %v", err)
		}
		ids = append(ids, req.ID)
	}
	_ = f.uc.Reject(ctx, ids[0])

	affected, err := f.uc.BulkApply(ctx, model.EnrollmentActionApprove, ids)
	if err != nil || affected != 2 {
		t.Fatalf("expected 2 approved, got %d (%v)", affected, err)
	}

	affected, err = f.uc.BulkApply(ctx, model.EnrollmentActionReject, ids)
	if err != nil || affected != 0 {
		t.Fatalf("expected nothing to reject, got %d (%v)", affected, err)
	}

	affected, err = f.uc.BulkApply(ctx, model.EnrollmentActionDelete, append(ids, 999))
	if err != nil || affected != 3 {
		t.Fatalf("expected 3 deleted, got %d (%v)", affected, err)
	}

	if _, err := f.uc.BulkApply(ctx, model.EnrollmentActionApprove, nil); !errors.Is(err, domainErrors.ErrNothingSelected) {
		t.Fatalf("expected nothing selected, got %v", err)
	}
	if _, err := f.uc.BulkApply(ctx, "archive", ids); !errors.Is(err, domainErrors.ErrInvalidAction) {
		t.Fatalf("expected invalid action, got %v", err)
	}
}

func TestEnrollmentFullScenario(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()

	req, err := f.uc.Submit(ctx, f.student.ID, f.course.ID)
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if len(f.events.Events()) != 1 {
		t.Fatal("expected notification event")
	}
	if err := f.uc.Approve(ctx, req.ID); err != nil {
		t.Fatalf("approve returned error: %v", err)
	}
	if _, err := f.uc.StartPayment(ctx, req.ID, f.student.ID); err != nil {
		t.Fatalf("payment returned error: %v", err)
	}

	ledger, err := f.uc.Payments(ctx)
	if err != nil || len(ledger) != 1 || ledger[0].Amount != f.course.Price {
		t.Fatalf("unexpected ledger %+v (%v)", ledger, err)
	}
	if _, err := f.uc.StartPayment(ctx, req.ID, f.student.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected second payment to fail with not found, got %v", err)
	}
	if f.payments.Len() != 1 {
		t.Fatal("payment must be recorded once")
	}
}

func TestEnrollmentDeletePayments(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	first := f.payments.Append(model.Payment{Amount: 120000, StudentID: f.student.ID, CourseID: f.course.ID})
	second := f.payments.Append(model.Payment{Amount: 99050, StudentID: f.student.ID, CourseID: f.course.ID})

	if _, err := f.uc.DeletePayments(ctx, nil); !errors.Is(err, domainErrors.ErrNothingSelected) {
		t.Fatalf("expected nothing selected, got %v", err)
	}

	removed, err := f.uc.DeletePayments(ctx, []int64{first.ID, 404})
	if err != nil || removed != 1 {
		t.Fatalf("unexpected delete result %d (%v)", removed, err)
	}
	ledger, _ := f.uc.Payments(ctx)
	if len(ledger) != 1 || ledger[0].ID != second.ID || ledger[0].Amount != 99050 {
		t.Fatalf("unexpected ledger after delete %+v", ledger)
	}

	f.payments.Err = errors.New("db")
	if _, err := f.uc.DeletePayments(ctx, []int64{second.ID}); err == nil {
		t.Fatal("expected repository error")
	}
}
