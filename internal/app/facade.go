package app

import (
	"context"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	pkgAuth "github.com/pvlbrzn/ITSchool/internal/pkg/auth"
	"github.com/pvlbrzn/ITSchool/internal/usecase"
)

// SchoolFacade is the single entry point the HTTP layer and workers talk to.
type SchoolFacade struct {
	auth        *usecase.AuthUseCase
	users       *usecase.UserUseCase
	catalog     *usecase.CatalogUseCase
	lessons     *usecase.LessonUseCase
	enrollments *usecase.EnrollmentUseCase
	blogs       *usecase.BlogUseCase
	ingestion   *usecase.IngestionUseCase
}

func NewSchoolFacade(
	auth *usecase.AuthUseCase,
	users *usecase.UserUseCase,
	catalog *usecase.CatalogUseCase,
	lessons *usecase.LessonUseCase,
	enrollments *usecase.EnrollmentUseCase,
	blogs *usecase.BlogUseCase,
	ingestion *usecase.IngestionUseCase,
) *SchoolFacade {
	return &SchoolFacade{
		auth:        auth,
		users:       users,
		catalog:     catalog,
		lessons:     lessons,
		enrollments: enrollments,
		blogs:       blogs,
		ingestion:   ingestion,
	}
}

func (f *SchoolFacade) Register(ctx context.Context, in model.Registration) (string, error) {
	_, token, err := f.auth.Register(ctx, in)
	return token, err
}

func (f *SchoolFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *SchoolFacade) ParseToken(token string) (pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *SchoolFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *SchoolFacade) EnsureManager(ctx context.Context, login, password, fullName string) (bool, error) {
	return f.auth.EnsureManager(ctx, login, password, fullName)
}

func (f *SchoolFacade) Users(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	return f.users.List(ctx, filter)
}

func (f *SchoolFacade) UpdateUser(ctx context.Context, user model.User) (*model.User, error) {
	return f.users.Update(ctx, user)
}

func (f *SchoolFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.users.Delete(ctx, id)
}

func (f *SchoolFacade) BulkUsers(ctx context.Context, action model.UserAction, ids []int64) (int64, error) {
	return f.users.BulkApply(ctx, action, ids)
}

func (f *SchoolFacade) Courses(ctx context.Context, filter model.CourseFilter) ([]model.Course, error) {
	return f.catalog.List(ctx, filter)
}

func (f *SchoolFacade) Course(ctx context.Context, id int64) (*model.Course, error) {
	return f.catalog.Get(ctx, id)
}

func (f *SchoolFacade) CreateCourse(ctx context.Context, course model.Course) (*model.Course, error) {
	return f.catalog.Create(ctx, course)
}

func (f *SchoolFacade) UpdateCourse(ctx context.Context, course model.Course) error {
	return f.catalog.Update(ctx, course)
}

func (f *SchoolFacade) DeleteCourse(ctx context.Context, id int64) error {
	return f.catalog.Delete(ctx, id)
}

func (f *SchoolFacade) CourseStudents(ctx context.Context, courseID int64) ([]model.User, error) {
	return f.catalog.Students(ctx, courseID)
}

func (f *SchoolFacade) Lessons(ctx context.Context, courseID int64) ([]model.Lesson, error) {
	return f.lessons.List(ctx, courseID)
}

func (f *SchoolFacade) Lesson(ctx context.Context, id int64) (*model.Lesson, error) {
	return f.lessons.Get(ctx, id)
}

func (f *SchoolFacade) CreateLesson(ctx context.Context, lesson model.Lesson) (*model.Lesson, error) {
	return f.lessons.Create(ctx, lesson)
}

func (f *SchoolFacade) UpdateLesson(ctx context.Context, lesson model.Lesson) error {
	return f.lessons.Update(ctx, lesson)
}

func (f *SchoolFacade) DeleteLesson(ctx context.Context, id int64) error {
	return f.lessons.Delete(ctx, id)
}

func (f *SchoolFacade) BulkDeleteLessons(ctx context.Context, courseID int64, ids []int64) (int64, error) {
	return f.lessons.BulkDelete(ctx, courseID, ids)
}

func (f *SchoolFacade) SubmitEnrollment(ctx context.Context, userID, courseID int64) (*model.EnrollmentRequest, error) {
	return f.enrollments.Submit(ctx, userID, courseID)
}

func (f *SchoolFacade) MyEnrollments(ctx context.Context, userID int64) ([]model.EnrollmentRequest, error) {
	return f.enrollments.ListByUser(ctx, userID)
}

func (f *SchoolFacade) PayEnrollment(ctx context.Context, requestID, userID int64) (*model.Payment, error) {
	return f.enrollments.StartPayment(ctx, requestID, userID)
}

func (f *SchoolFacade) MyPayments(ctx context.Context, userID int64) ([]model.Payment, error) {
	return f.enrollments.PaymentsByStudent(ctx, userID)
}

func (f *SchoolFacade) Enrollments(ctx context.Context, status model.EnrollmentStatus) ([]model.EnrollmentRequest, error) {
	return f.enrollments.List(ctx, status)
}

func (f *SchoolFacade) ApproveEnrollment(ctx context.Context, requestID int64) error {
	return f.enrollments.Approve(ctx, requestID)
}

func (f *SchoolFacade) RejectEnrollment(ctx context.Context, requestID int64) error {
	return f.enrollments.Reject(ctx, requestID)
}

func (f *SchoolFacade) BulkEnrollments(ctx context.Context, action model.EnrollmentAction, ids []int64) (int64, error) {
	return f.enrollments.BulkApply(ctx, action, ids)
}

func (f *SchoolFacade) Payments(ctx context.Context) ([]model.Payment, error) {
	return f.enrollments.Payments(ctx)
}

func (f *SchoolFacade) DeletePayments(ctx context.Context, ids []int64) (int64, error) {
	return f.enrollments.DeletePayments(ctx, ids)
}

func (f *SchoolFacade) BlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	return f.blogs.List(ctx)
}

func (f *SchoolFacade) BlogPost(ctx context.Context, id int64) (*model.BlogPost, error) {
	return f.blogs.Get(ctx, id)
}

func (f *SchoolFacade) CreateBlogPost(ctx context.Context, post model.BlogPost) (*model.BlogPost, error) {
	return f.blogs.Create(ctx, post)
}

func (f *SchoolFacade) UpdateBlogPost(ctx context.Context, post model.BlogPost) error {
	return f.blogs.Update(ctx, post)
}

func (f *SchoolFacade) DeleteBlogPost(ctx context.Context, id int64) error {
	return f.blogs.Delete(ctx, id)
}

func (f *SchoolFacade) IngestBlog(ctx context.Context, opts model.IngestOptions) (*model.IngestReport, error) {
	return f.ingestion.Ingest(ctx, opts)
}
