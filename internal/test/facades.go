package test

import (
	"context"
	"time"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

// CatalogFacadeStub provides controllable behaviour for course endpoints.
type CatalogFacadeStub struct {
	CoursesFn        func(context.Context, model.CourseFilter) ([]model.Course, error)
	CourseFn         func(context.Context, int64) (*model.Course, error)
	CreateCourseFn   func(context.Context, model.Course) (*model.Course, error)
	UpdateCourseFn   func(context.Context, model.Course) error
	DeleteCourseFn   func(context.Context, int64) error
	CourseStudentsFn func(context.Context, int64) ([]model.User, error)
}

// SampleCourse returns a course running through 2026.
func SampleCourse(id int64) model.Course {
	return model.Course{
		ID:             id,
		Title:          "Go Developer",
		Description:    "Backend development in Go",
		DurationMonths: 6,
		StartDate:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Price:          120000,
		Language:       model.LanguageGo,
		Type:           model.CourseTypeBackend,
	}
}

func (s CatalogFacadeStub) Courses(ctx context.Context, filter model.CourseFilter) ([]model.Course, error) {
	if s.CoursesFn != nil {
		return s.CoursesFn(ctx, filter)
	}
	return []model.Course{SampleCourse(1)}, nil
}

func (s CatalogFacadeStub) Course(ctx context.Context, id int64) (*model.Course, error) {
	if s.CourseFn != nil {
		return s.CourseFn(ctx, id)
	}
	course := SampleCourse(id)
	return &course, nil
}

func (s CatalogFacadeStub) CreateCourse(ctx context.Context, course model.Course) (*model.Course, error) {
	if s.CreateCourseFn != nil {
		return s.CreateCourseFn(ctx, course)
	}
	course.ID = 1
	return &course, nil
}

func (s CatalogFacadeStub) UpdateCourse(ctx context.Context, course model.Course) error {
	if s.UpdateCourseFn != nil {
		return s.UpdateCourseFn(ctx, course)
	}
	return nil
}

func (s CatalogFacadeStub) DeleteCourse(ctx context.Context, id int64) error {
	if s.DeleteCourseFn != nil {
		return s.DeleteCourseFn(ctx, id)
	}
	return nil
}

func (s CatalogFacadeStub) CourseStudents(ctx context.Context, courseID int64) ([]model.User, error) {
	if s.CourseStudentsFn != nil {
		return s.CourseStudentsFn(ctx, courseID)
	}
	return []model.User{{ID: 1, Login: "student", FullName: "Student One"}}, nil
}

// EnrollmentFacadeStub simulates enrollment and payment operations.
type EnrollmentFacadeStub struct {
	SubmitFn         func(context.Context, int64, int64) (*model.EnrollmentRequest, error)
	MyEnrollmentsFn  func(context.Context, int64) ([]model.EnrollmentRequest, error)
	PayFn            func(context.Context, int64, int64) (*model.Payment, error)
	MyPaymentsFn     func(context.Context, int64) ([]model.Payment, error)
	EnrollmentsFn    func(context.Context, model.EnrollmentStatus) ([]model.EnrollmentRequest, error)
	ApproveFn        func(context.Context, int64) error
	RejectFn         func(context.Context, int64) error
	BulkFn           func(context.Context, model.EnrollmentAction, []int64) (int64, error)
	PaymentsFn       func(context.Context) ([]model.Payment, error)
	DeletePaymentsFn func(context.Context, []int64) (int64, error)
}

func (s EnrollmentFacadeStub) SubmitEnrollment(ctx context.Context, userID, courseID int64) (*model.EnrollmentRequest, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, userID, courseID)
	}
	return &model.EnrollmentRequest{ID: 1, UserID: userID, CourseID: courseID, Status: model.EnrollmentStatusPending, CreatedAt: time.Unix(0, 0)}, nil
}

func (s EnrollmentFacadeStub) MyEnrollments(ctx context.Context, userID int64) ([]model.EnrollmentRequest, error) {
	if s.MyEnrollmentsFn != nil {
		return s.MyEnrollmentsFn(ctx, userID)
	}
	return []model.EnrollmentRequest{{ID: 1, UserID: userID, CourseID: 1, Status: model.EnrollmentStatusApproved, CreatedAt: time.Unix(0, 0)}}, nil
}

func (s EnrollmentFacadeStub) PayEnrollment(ctx context.Context, requestID, userID int64) (*model.Payment, error) {
	if s.PayFn != nil {
		return s.PayFn(ctx, requestID, userID)
	}
	return &model.Payment{ID: 1, Amount: 120000, PaidAt: time.Unix(0, 0), Successful: true, Method: model.PaymentMethodManual, StudentID: userID, CourseID: 1}, nil
}

func (s EnrollmentFacadeStub) MyPayments(ctx context.Context, userID int64) ([]model.Payment, error) {
	if s.MyPaymentsFn != nil {
		return s.MyPaymentsFn(ctx, userID)
	}
	return nil, nil
}

func (s EnrollmentFacadeStub) Enrollments(ctx context.Context, status model.EnrollmentStatus) ([]model.EnrollmentRequest, error) {
	if s.EnrollmentsFn != nil {
		return s.EnrollmentsFn(ctx, status)
	}
	return nil, nil
}

func (s EnrollmentFacadeStub) ApproveEnrollment(ctx context.Context, requestID int64) error {
	if s.ApproveFn != nil {
		return s.ApproveFn(ctx, requestID)
	}
	return nil
}

func (s EnrollmentFacadeStub) RejectEnrollment(ctx context.Context, requestID int64) error {
	if s.RejectFn != nil {
		return s.RejectFn(ctx, requestID)
	}
	return nil
}

func (s EnrollmentFacadeStub) BulkEnrollments(ctx context.Context, action model.EnrollmentAction, ids []int64) (int64, error) {
	if s.BulkFn != nil {
		return s.BulkFn(ctx, action, ids)
	}
	return int64(len(ids)), nil
}

func (s EnrollmentFacadeStub) Payments(ctx context.Context) ([]model.Payment, error) {
	if s.PaymentsFn != nil {
		return s.PaymentsFn(ctx)
	}
	return nil, nil
}

func (s EnrollmentFacadeStub) DeletePayments(ctx context.Context, ids []int64) (int64, error) {
	if s.DeletePaymentsFn != nil {
		return s.DeletePaymentsFn(ctx, ids)
	}
	return int64(len(ids)), nil
}

// BlogFacadeStub simulates blog posts, their authoring and the ingestion trigger.
type BlogFacadeStub struct {
	BlogPostsFn      func(context.Context) ([]model.BlogPost, error)
	BlogPostFn       func(context.Context, int64) (*model.BlogPost, error)
	CreateBlogPostFn func(context.Context, model.BlogPost) (*model.BlogPost, error)
	UpdateBlogPostFn func(context.Context, model.BlogPost) error
	DeleteBlogPostFn func(context.Context, int64) error
	IngestFn         func(context.Context, model.IngestOptions) (*model.IngestReport, error)
}

func (s BlogFacadeStub) CreateBlogPost(ctx context.Context, post model.BlogPost) (*model.BlogPost, error) {
	if s.CreateBlogPostFn != nil {
		return s.CreateBlogPostFn(ctx, post)
	}
	post.ID = 1
	post.Date = time.Unix(0, 0)
	return &post, nil
}

func (s BlogFacadeStub) UpdateBlogPost(ctx context.Context, post model.BlogPost) error {
	if s.UpdateBlogPostFn != nil {
		return s.UpdateBlogPostFn(ctx, post)
	}
	return nil
}

func (s BlogFacadeStub) BlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	if s.BlogPostsFn != nil {
		return s.BlogPostsFn(ctx)
	}
	return []model.BlogPost{{ID: 1, Title: "Post", Date: time.Unix(0, 0)}}, nil
}

func (s BlogFacadeStub) BlogPost(ctx context.Context, id int64) (*model.BlogPost, error) {
	if s.BlogPostFn != nil {
		return s.BlogPostFn(ctx, id)
	}
	return &model.BlogPost{ID: id, Title: "Post", Date: time.Unix(0, 0)}, nil
}

func (s BlogFacadeStub) DeleteBlogPost(ctx context.Context, id int64) error {
	if s.DeleteBlogPostFn != nil {
		return s.DeleteBlogPostFn(ctx, id)
	}
	return nil
}

func (s BlogFacadeStub) IngestBlog(ctx context.Context, opts model.IngestOptions) (*model.IngestReport, error) {
	if s.IngestFn != nil {
		return s.IngestFn(ctx, opts)
	}
	return &model.IngestReport{}, nil
}

// UserAdminFacadeStub simulates back-office account management.
type UserAdminFacadeStub struct {
	UsersFn      func(context.Context, model.UserFilter) ([]model.User, error)
	UpdateUserFn func(context.Context, model.User) (*model.User, error)
	DeleteUserFn func(context.Context, int64) error
	BulkUsersFn  func(context.Context, model.UserAction, []int64) (int64, error)
}

func (s UserAdminFacadeStub) Users(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx, filter)
	}
	return []model.User{{ID: 2, Login: "student", FullName: "Student One", Role: model.RoleStudent, CreatedAt: time.Unix(0, 0)}}, nil
}

func (s UserAdminFacadeStub) UpdateUser(ctx context.Context, user model.User) (*model.User, error) {
	if s.UpdateUserFn != nil {
		return s.UpdateUserFn(ctx, user)
	}
	user.Login = "student"
	user.CreatedAt = time.Unix(0, 0)
	return &user, nil
}

func (s UserAdminFacadeStub) DeleteUser(ctx context.Context, id int64) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, id)
	}
	return nil
}

func (s UserAdminFacadeStub) BulkUsers(ctx context.Context, action model.UserAction, ids []int64) (int64, error) {
	if s.BulkUsersFn != nil {
		return s.BulkUsersFn(ctx, action, ids)
	}
	return int64(len(ids)), nil
}

// LessonFacadeStub simulates lesson operations.
type LessonFacadeStub struct {
	LessonsFn           func(context.Context, int64) ([]model.Lesson, error)
	LessonFn            func(context.Context, int64) (*model.Lesson, error)
	CreateLessonFn      func(context.Context, model.Lesson) (*model.Lesson, error)
	UpdateLessonFn      func(context.Context, model.Lesson) error
	DeleteLessonFn      func(context.Context, int64) error
	BulkDeleteLessonsFn func(context.Context, int64, []int64) (int64, error)
}

func (s LessonFacadeStub) Lessons(ctx context.Context, courseID int64) ([]model.Lesson, error) {
	if s.LessonsFn != nil {
		return s.LessonsFn(ctx, courseID)
	}
	return []model.Lesson{{ID: 1, CourseID: courseID, Title: "Intro"}}, nil
}

func (s LessonFacadeStub) Lesson(ctx context.Context, id int64) (*model.Lesson, error) {
	if s.LessonFn != nil {
		return s.LessonFn(ctx, id)
	}
	return &model.Lesson{ID: id, CourseID: 1, Title: "Intro"}, nil
}

func (s LessonFacadeStub) CreateLesson(ctx context.Context, lesson model.Lesson) (*model.Lesson, error) {
	if s.CreateLessonFn != nil {
		return s.CreateLessonFn(ctx, lesson)
	}
	lesson.ID = 1
	return &lesson, nil
}

func (s LessonFacadeStub) UpdateLesson(ctx context.Context, lesson model.Lesson) error {
	if s.UpdateLessonFn != nil {
		return s.UpdateLessonFn(ctx, lesson)
	}
	return nil
}

func (s LessonFacadeStub) DeleteLesson(ctx context.Context, id int64) error {
	if s.DeleteLessonFn != nil {
		return s.DeleteLessonFn(ctx, id)
	}
	return nil
}

func (s LessonFacadeStub) BulkDeleteLessons(ctx context.Context, courseID int64, ids []int64) (int64, error) {
	if s.BulkDeleteLessonsFn != nil {
		return s.BulkDeleteLessonsFn(ctx, courseID, ids)
	}
	return int64(len(ids)), nil
}

// SchoolFacadeStub aggregates facade dependencies for HTTP layer tests.
type SchoolFacadeStub struct {
	AuthFacadeStub
	UserAdminFacadeStub
	CatalogFacadeStub
	LessonFacadeStub
	EnrollmentFacadeStub
	BlogFacadeStub
}
