package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

type blogRepository struct {
	storage *Storage
}

const blogColumns = `id, title, annotation, content, image, date, author`

func (r *blogRepository) InsertIfAbsent(ctx context.Context, post model.BlogPost) (bool, error) {
	const query = `INSERT INTO blog_posts (title, annotation, content, image, date, author)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   ON CONFLICT (title) DO NOTHING
                   RETURNING id`
	var id int64
	err := r.storage.pool.QueryRow(ctx, query, post.Title, post.Annotation, post.Content, post.Image, post.Date, post.Author).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *blogRepository) Create(ctx context.Context, post model.BlogPost) (*model.BlogPost, error) {
	const query = `INSERT INTO blog_posts (title, annotation, content, image, date, author)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, post.Title, post.Annotation, post.Content, post.Image, post.Date, post.Author).
		Scan(&post.ID)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) Update(ctx context.Context, post model.BlogPost) error {
	const query = `UPDATE blog_posts SET title=$1, annotation=$2, content=$3, image=$4, author=$5 WHERE id=$6`
	tag, err := r.storage.pool.Exec(ctx, query, post.Title, post.Annotation, post.Content, post.Image, post.Author, post.ID)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *blogRepository) Clear(ctx context.Context) (int64, error) {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM blog_posts`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *blogRepository) List(ctx context.Context) ([]model.BlogPost, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT `+blogColumns+` FROM blog_posts ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.BlogPost
	for rows.Next() {
		var p model.BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Annotation, &p.Content, &p.Image, &p.Date, &p.Author); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *blogRepository) GetByID(ctx context.Context, id int64) (*model.BlogPost, error) {
	var p model.BlogPost
	err := r.storage.pool.QueryRow(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE id=$1`, id).
		Scan(&p.ID, &p.Title, &p.Annotation, &p.Content, &p.Image, &p.Date, &p.Author)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *blogRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
