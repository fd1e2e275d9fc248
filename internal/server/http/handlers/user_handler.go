package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	"github.com/pvlbrzn/ITSchool/internal/server/http/dto"
)

// UserHandler serves back-office account management.
type UserHandler struct {
	facade UserAdminFacade
}

func NewUserHandler(facade UserAdminFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// List handles GET /api/manager/users?search=&role=.
func (h *UserHandler) List(c *gin.Context) {
	filter := model.UserFilter{
		Search: c.Query("search"),
		Role:   model.Role(strings.ToLower(c.Query("role"))),
	}
	users, err := h.facade.Users(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(users) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.NewUserResponse(u))
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/manager/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.facade.UpdateUser(c.Request.Context(), model.User{
		ID:       id,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     model.Role(req.Role),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(*updated))
}

// Delete handles DELETE /api/manager/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteUser(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Bulk handles POST /api/manager/users/bulk.
func (h *UserHandler) Bulk(c *gin.Context) {
	var req dto.BulkUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	affected, err := h.facade.BulkUsers(c.Request.Context(), model.UserAction(req.Action), req.IDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkResponse{Affected: affected})
}
