package repository

import (
	"context"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

// BlogRepository stores ingested blog posts keyed by title.
type BlogRepository interface {
	// InsertIfAbsent stores post unless a post with the same title exists.
	// It reports whether a row was created.
	InsertIfAbsent(ctx context.Context, post model.BlogPost) (bool, error)
	// Create and Update fail with ErrAlreadyExists on a taken title.
	Create(ctx context.Context, post model.BlogPost) (*model.BlogPost, error)
	Update(ctx context.Context, post model.BlogPost) error
	Clear(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]model.BlogPost, error)
	GetByID(ctx context.Context, id int64) (*model.BlogPost, error)
	Delete(ctx context.Context, id int64) error
}
