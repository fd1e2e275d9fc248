package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	"github.com/pvlbrzn/ITSchool/internal/domain/repository"
)

// LessonUseCase manages the lessons of catalog courses.
type LessonUseCase struct {
	lessons repository.LessonRepository
	courses repository.CourseRepository
	users   repository.UserRepository
}

// NewLessonUseCase constructs LessonUseCase.
func NewLessonUseCase(lessons repository.LessonRepository, courses repository.CourseRepository, users repository.UserRepository) *LessonUseCase {
	return &LessonUseCase{lessons: lessons, courses: courses, users: users}
}

// List returns the lessons of an existing course.
func (u *LessonUseCase) List(ctx context.Context, courseID int64) ([]model.Lesson, error) {
	if _, err := u.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return u.lessons.ListByCourse(ctx, courseID)
}

func (u *LessonUseCase) Get(ctx context.Context, id int64) (*model.Lesson, error) {
	return u.lessons.GetByID(ctx, id)
}

// Create adds a lesson to a course. A teacher, when given, must hold the teacher role.
func (u *LessonUseCase) Create(ctx context.Context, lesson model.Lesson) (*model.Lesson, error) {
	lesson.Title = strings.TrimSpace(lesson.Title)
	if !ValidateLesson(lesson) {
		return nil, domainErrors.ErrInvalidLesson
	}
	if _, err := u.courses.GetByID(ctx, lesson.CourseID); err != nil {
		return nil, err
	}
	if err := u.checkTeacher(ctx, lesson.TeacherID); err != nil {
		return nil, err
	}
	return u.lessons.Create(ctx, lesson)
}

// Update replaces title, content and teacher. The owning course never changes.
func (u *LessonUseCase) Update(ctx context.Context, lesson model.Lesson) error {
	lesson.Title = strings.TrimSpace(lesson.Title)
	if !ValidateLesson(lesson) {
		return domainErrors.ErrInvalidLesson
	}
	if err := u.checkTeacher(ctx, lesson.TeacherID); err != nil {
		return err
	}
	return u.lessons.Update(ctx, lesson)
}

func (u *LessonUseCase) Delete(ctx context.Context, id int64) error {
	return u.lessons.Delete(ctx, id)
}

// BulkDelete removes selected lessons of one course. Ids of other courses are ignored.
func (u *LessonUseCase) BulkDelete(ctx context.Context, courseID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, domainErrors.ErrNothingSelected
	}
	return u.lessons.DeleteMany(ctx, courseID, ids)
}

func (u *LessonUseCase) checkTeacher(ctx context.Context, teacherID *int64) error {
	if teacherID == nil {
		return nil
	}
	teacher, err := u.users.GetByID(ctx, *teacherID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.ErrInvalidLesson
		}
		return err
	}
	if teacher.Role != model.RoleTeacher {
		return domainErrors.ErrInvalidLesson
	}
	return nil
}
