package handlers

import (
	"context"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	pkgAuth "github.com/pvlbrzn/ITSchool/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, in model.Registration) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (pkgAuth.Claims, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
}

// UserAdminFacade exposes back-office account management.
type UserAdminFacade interface {
	Users(ctx context.Context, filter model.UserFilter) ([]model.User, error)
	UpdateUser(ctx context.Context, user model.User) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
	BulkUsers(ctx context.Context, action model.UserAction, ids []int64) (int64, error)
}

// CatalogFacade exposes course management.
type CatalogFacade interface {
	Courses(ctx context.Context, filter model.CourseFilter) ([]model.Course, error)
	Course(ctx context.Context, id int64) (*model.Course, error)
	CreateCourse(ctx context.Context, course model.Course) (*model.Course, error)
	UpdateCourse(ctx context.Context, course model.Course) error
	DeleteCourse(ctx context.Context, id int64) error
	CourseStudents(ctx context.Context, courseID int64) ([]model.User, error)
}

// LessonFacade exposes course lessons.
type LessonFacade interface {
	Lessons(ctx context.Context, courseID int64) ([]model.Lesson, error)
	Lesson(ctx context.Context, id int64) (*model.Lesson, error)
	CreateLesson(ctx context.Context, lesson model.Lesson) (*model.Lesson, error)
	UpdateLesson(ctx context.Context, lesson model.Lesson) error
	DeleteLesson(ctx context.Context, id int64) error
	BulkDeleteLessons(ctx context.Context, courseID int64, ids []int64) (int64, error)
}

// EnrollmentFacade drives enrollment requests and the payment ledger.
type EnrollmentFacade interface {
	SubmitEnrollment(ctx context.Context, userID, courseID int64) (*model.EnrollmentRequest, error)
	MyEnrollments(ctx context.Context, userID int64) ([]model.EnrollmentRequest, error)
	PayEnrollment(ctx context.Context, requestID, userID int64) (*model.Payment, error)
	MyPayments(ctx context.Context, userID int64) ([]model.Payment, error)
	Enrollments(ctx context.Context, status model.EnrollmentStatus) ([]model.EnrollmentRequest, error)
	ApproveEnrollment(ctx context.Context, requestID int64) error
	RejectEnrollment(ctx context.Context, requestID int64) error
	BulkEnrollments(ctx context.Context, action model.EnrollmentAction, ids []int64) (int64, error)
	Payments(ctx context.Context) ([]model.Payment, error)
	DeletePayments(ctx context.Context, ids []int64) (int64, error)
}

// BlogFacade exposes blog posts, their authoring and ingestion.
type BlogFacade interface {
	BlogPosts(ctx context.Context) ([]model.BlogPost, error)
	BlogPost(ctx context.Context, id int64) (*model.BlogPost, error)
	CreateBlogPost(ctx context.Context, post model.BlogPost) (*model.BlogPost, error)
	UpdateBlogPost(ctx context.Context, post model.BlogPost) error
	DeleteBlogPost(ctx context.Context, id int64) error
	IngestBlog(ctx context.Context, opts model.IngestOptions) (*model.IngestReport, error)
}

// SchoolFacade aggregates the full set of operations used across handlers.
type SchoolFacade interface {
	AuthFacade
	UserAdminFacade
	CatalogFacade
	LessonFacade
	EnrollmentFacade
	BlogFacade
}

// HealthChecker reports backing storage availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
