package dto

import (
	"time"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

// BlogPostRequest describes a manager-authored post.
type BlogPostRequest struct {
	Title      string `json:"title" binding:"required,notblank,max=255"`
	Annotation string `json:"annotation"`
	Content    string `json:"content"`
	Image      string `json:"image" binding:"omitempty,url"`
	Author     string `json:"author" binding:"max=150"`
}

func (r BlogPostRequest) ToModel() model.BlogPost {
	return model.BlogPost{
		Title:      r.Title,
		Annotation: r.Annotation,
		Content:    r.Content,
		Image:      r.Image,
		Author:     r.Author,
	}
}

// BlogPostResponse describes a blog article.
type BlogPostResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Annotation string    `json:"annotation"`
	Content    string    `json:"content,omitempty"`
	Image      string    `json:"image,omitempty"`
	Date       time.Time `json:"date"`
	Author     string    `json:"author"`
}

// NewBlogPostResponse maps post; content is dropped for listings.
func NewBlogPostResponse(p model.BlogPost, withContent bool) BlogPostResponse {
	resp := BlogPostResponse{
		ID:         p.ID,
		Title:      p.Title,
		Annotation: p.Annotation,
		Image:      p.Image,
		Date:       p.Date,
		Author:     p.Author,
	}
	if withContent {
		resp.Content = p.Content
	}
	return resp
}

// IngestReportResponse summarizes an ingestion run.
type IngestReportResponse struct {
	Links    int `json:"links"`
	Created  int `json:"created"`
	Existing int `json:"existing"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

func NewIngestReportResponse(r model.IngestReport) IngestReportResponse {
	return IngestReportResponse{
		Links:    r.Links,
		Created:  r.Created,
		Existing: r.Existing,
		Skipped:  r.Skipped,
		Failed:   r.Failed,
	}
}

// ErrorResponse carries a client-facing error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
