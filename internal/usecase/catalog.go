package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	"github.com/pvlbrzn/ITSchool/internal/domain/repository"
)

// CatalogUseCase manages courses and their rosters.
type CatalogUseCase struct {
	courses repository.CourseRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(courses repository.CourseRepository) *CatalogUseCase {
	return &CatalogUseCase{courses: courses}
}

// Create stores a new course after validation.
func (u *CatalogUseCase) Create(ctx context.Context, course model.Course) (*model.Course, error) {
	course.Title = strings.TrimSpace(course.Title)
	if !ValidateCourse(course) {
		return nil, domainErrors.ErrInvalidCourse
	}
	return u.courses.Create(ctx, course)
}

// Update replaces editable fields of an existing course.
func (u *CatalogUseCase) Update(ctx context.Context, course model.Course) error {
	course.Title = strings.TrimSpace(course.Title)
	if !ValidateCourse(course) {
		return domainErrors.ErrInvalidCourse
	}
	return u.courses.Update(ctx, course)
}

func (u *CatalogUseCase) Delete(ctx context.Context, id int64) error {
	return u.courses.Delete(ctx, id)
}

func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Course, error) {
	return u.courses.GetByID(ctx, id)
}

// List returns courses matching the filter. An unknown language yields ErrInvalidCourse.
func (u *CatalogUseCase) List(ctx context.Context, filter model.CourseFilter) ([]model.Course, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Language != "" && !model.ValidLanguage(filter.Language) {
		return nil, domainErrors.ErrInvalidCourse
	}
	return u.courses.List(ctx, filter)
}

// Students returns the roster of a course.
func (u *CatalogUseCase) Students(ctx context.Context, courseID int64) ([]model.User, error) {
	if _, err := u.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return u.courses.Students(ctx, courseID)
}
