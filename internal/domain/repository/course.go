package repository

import (
	"context"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

// CourseRepository describes catalog persistence.
type CourseRepository interface {
	Create(ctx context.Context, course model.Course) (*model.Course, error)
	Update(ctx context.Context, course model.Course) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Course, error)
	List(ctx context.Context, filter model.CourseFilter) ([]model.Course, error)
	Students(ctx context.Context, courseID int64) ([]model.User, error)
}
