package repository

import (
	"context"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

// LessonRepository persists course lessons.
type LessonRepository interface {
	Create(ctx context.Context, lesson model.Lesson) (*model.Lesson, error)
	Update(ctx context.Context, lesson model.Lesson) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Lesson, error)
	ListByCourse(ctx context.Context, courseID int64) ([]model.Lesson, error)
	// DeleteMany removes the selected lessons of one course only.
	DeleteMany(ctx context.Context, courseID int64, ids []int64) (int64, error)
}
