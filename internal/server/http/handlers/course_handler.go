package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	"github.com/pvlbrzn/ITSchool/internal/server/http/dto"
)

// CourseHandler serves the public catalog and its back-office.
type CourseHandler struct {
	facade CatalogFacade
	now    func() time.Time
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(facade CatalogFacade) *CourseHandler {
	return &CourseHandler{facade: facade, now: time.Now}
}

// List handles GET /api/courses.
func (h *CourseHandler) List(c *gin.Context) {
	filter := model.CourseFilter{
		Search:   c.Query("search"),
		Language: model.Language(strings.ToLower(c.Query("language"))),
	}
	courses, err := h.facade.Courses(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(courses) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	now := h.now()
	resp := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, dto.NewCourseResponse(course, now))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/courses/:id.
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	course, err := h.facade.Course(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCourseResponse(*course, h.now()))
}

// Create handles POST /api/manager/courses.
func (h *CourseHandler) Create(c *gin.Context) {
	course, ok := h.bindCourse(c)
	if !ok {
		return
	}
	created, err := h.facade.CreateCourse(c.Request.Context(), course)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCourseResponse(*created, h.now()))
}

// Update handles PUT /api/manager/courses/:id.
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	course, ok := h.bindCourse(c)
	if !ok {
		return
	}
	course.ID = id
	if err := h.facade.UpdateCourse(c.Request.Context(), course); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCourseResponse(course, h.now()))
}

// Delete handles DELETE /api/manager/courses/:id.
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteCourse(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Students handles GET /api/manager/courses/:id/students.
func (h *CourseHandler) Students(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	students, err := h.facade.CourseStudents(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(students) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.StudentResponse, 0, len(students))
	for _, s := range students {
		resp = append(resp, dto.StudentResponse{ID: s.ID, Login: s.Login, FullName: s.FullName, Email: s.Email})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CourseHandler) bindCourse(c *gin.Context) (model.Course, bool) {
	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return model.Course{}, false
	}
	course, err := req.ToModel()
	if err != nil {
		badRequest(c, err)
		return model.Course{}, false
	}
	return course, true
}
