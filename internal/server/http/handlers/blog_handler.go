package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	"github.com/pvlbrzn/ITSchool/internal/server/http/dto"
)

// ingestRunTimeout bounds a manual run: up to 15 articles at 30s each
// plus the index page.
const ingestRunTimeout = 10 * time.Minute

// BlogHandler serves blog posts, their authoring and ingestion.
type BlogHandler struct {
	facade     BlogFacade
	runTimeout time.Duration
}

// NewBlogHandler constructs BlogHandler.
func NewBlogHandler(facade BlogFacade) *BlogHandler {
	return &BlogHandler{facade: facade, runTimeout: ingestRunTimeout}
}

// List handles GET /api/blog.
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.facade.BlogPosts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if len(posts) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	resp := make([]dto.BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, dto.NewBlogPostResponse(p, false))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/blog/:id.
func (h *BlogHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := h.facade.BlogPost(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBlogPostResponse(*post, true))
}

// Create handles POST /api/manager/blog.
func (h *BlogHandler) Create(c *gin.Context) {
	var req dto.BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	post, err := h.facade.CreateBlogPost(c.Request.Context(), req.ToModel())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewBlogPostResponse(*post, true))
}

// Update handles PUT /api/manager/blog/:id.
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	post := req.ToModel()
	post.ID = id
	if err := h.facade.UpdateBlogPost(c.Request.Context(), post); err != nil {
		writeError(c, err)
		return
	}
	updated, err := h.facade.BlogPost(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBlogPostResponse(*updated, true))
}

// Delete handles DELETE /api/manager/blog/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteBlogPost(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Ingest handles POST /api/manager/blog/ingest?full=true|false.
func (h *BlogHandler) Ingest(c *gin.Context) {
	var opts model.IngestOptions
	if raw := c.Query("full"); raw != "" {
		full, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, errors.New("full must be a boolean"))
			return
		}
		opts.FullRefresh = full
	}

	// The run outlives a disconnected client; only the timeout stops it.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), h.runTimeout)
	defer cancel()

	report, err := h.facade.IngestBlog(ctx, opts)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewIngestReportResponse(*report))
}
