package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	"github.com/pvlbrzn/ITSchool/internal/domain/repository"
)

// BlogUseCase serves blog posts and lets managers author them by hand.
type BlogUseCase struct {
	blogs repository.BlogRepository
	now   func() time.Time
}

// NewBlogUseCase constructs BlogUseCase.
func NewBlogUseCase(blogs repository.BlogRepository) *BlogUseCase {
	return &BlogUseCase{blogs: blogs, now: time.Now}
}

func (u *BlogUseCase) List(ctx context.Context) ([]model.BlogPost, error) {
	return u.blogs.List(ctx)
}

func (u *BlogUseCase) Get(ctx context.Context, id int64) (*model.BlogPost, error) {
	return u.blogs.GetByID(ctx, id)
}

// Create publishes a post dated now. Titles stay unique across authored
// and ingested posts.
func (u *BlogUseCase) Create(ctx context.Context, post model.BlogPost) (*model.BlogPost, error) {
	post.Title = strings.TrimSpace(post.Title)
	if !ValidateBlogPost(post) {
		return nil, domainErrors.ErrInvalidPost
	}
	post.Date = u.now().UTC()
	return u.blogs.Create(ctx, post)
}

// Update edits a post in place; its publication date is kept.
func (u *BlogUseCase) Update(ctx context.Context, post model.BlogPost) error {
	post.Title = strings.TrimSpace(post.Title)
	if !ValidateBlogPost(post) {
		return domainErrors.ErrInvalidPost
	}
	return u.blogs.Update(ctx, post)
}

func (u *BlogUseCase) Delete(ctx context.Context, id int64) error {
	return u.blogs.Delete(ctx, id)
}
