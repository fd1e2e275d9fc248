package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	"github.com/pvlbrzn/ITSchool/internal/server/http/dto"
)

// LessonHandler serves course lessons and their back-office.
type LessonHandler struct {
	facade LessonFacade
}

func NewLessonHandler(facade LessonFacade) *LessonHandler {
	return &LessonHandler{facade: facade}
}

// List handles GET /api/courses/:id/lessons.
func (h *LessonHandler) List(c *gin.Context) {
	courseID, ok := pathID(c)
	if !ok {
		return
	}
	lessons, err := h.facade.Lessons(c.Request.Context(), courseID)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(lessons) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	resp := make([]dto.LessonResponse, 0, len(lessons))
	for _, l := range lessons {
		resp = append(resp, dto.NewLessonResponse(l))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/lessons/:id.
func (h *LessonHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	lesson, err := h.facade.Lesson(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLessonResponse(*lesson))
}

// Create handles POST /api/manager/courses/:id/lessons.
func (h *LessonHandler) Create(c *gin.Context) {
	courseID, ok := pathID(c)
	if !ok {
		return
	}
	lesson, ok := bindLesson(c)
	if !ok {
		return
	}
	lesson.CourseID = courseID
	created, err := h.facade.CreateLesson(c.Request.Context(), lesson)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewLessonResponse(*created))
}

// Update handles PUT /api/manager/lessons/:id.
func (h *LessonHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	lesson, ok := bindLesson(c)
	if !ok {
		return
	}
	lesson.ID = id
	if err := h.facade.UpdateLesson(c.Request.Context(), lesson); err != nil {
		writeError(c, err)
		return
	}
	updated, err := h.facade.Lesson(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLessonResponse(*updated))
}

// Delete handles DELETE /api/manager/lessons/:id.
func (h *LessonHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteLesson(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkDelete handles POST /api/manager/courses/:id/lessons/bulk-delete.
func (h *LessonHandler) BulkDelete(c *gin.Context) {
	courseID, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	removed, err := h.facade.BulkDeleteLessons(c.Request.Context(), courseID, req.IDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkResponse{Affected: removed})
}

func bindLesson(c *gin.Context) (model.Lesson, bool) {
	var req dto.LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return model.Lesson{}, false
	}
	return req.ToModel(), true
}
