package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	"github.com/pvlbrzn/ITSchool/internal/server/http/dto"
)

// EnrollmentHandler manages enrollment requests and payments.
type EnrollmentHandler struct {
	facade EnrollmentFacade
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(facade EnrollmentFacade) *EnrollmentHandler {
	return &EnrollmentHandler{facade: facade}
}

// Submit handles POST /api/enrollments.
func (h *EnrollmentHandler) Submit(c *gin.Context) {
	var req dto.EnrollmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	created, err := h.facade.SubmitEnrollment(c.Request.Context(), CurrentUserID(c), req.CourseID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewEnrollmentResponse(*created))
}

// Mine handles GET /api/enrollments.
func (h *EnrollmentHandler) Mine(c *gin.Context) {
	requests, err := h.facade.MyEnrollments(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	writeEnrollments(c, requests)
}

// Pay handles POST /api/enrollments/:id/pay.
func (h *EnrollmentHandler) Pay(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	payment, err := h.facade.PayEnrollment(c.Request.Context(), id, CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaymentResponse(*payment))
}

// MyPayments handles GET /api/payments.
func (h *EnrollmentHandler) MyPayments(c *gin.Context) {
	payments, err := h.facade.MyPayments(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	writePayments(c, payments)
}

// List handles GET /api/manager/enrollments.
func (h *EnrollmentHandler) List(c *gin.Context) {
	status := model.EnrollmentStatus(c.Query("status"))
	requests, err := h.facade.Enrollments(c.Request.Context(), status)
	if err != nil {
		writeError(c, err)
		return
	}
	writeEnrollments(c, requests)
}

// Approve handles POST /api/manager/enrollments/:id/approve.
func (h *EnrollmentHandler) Approve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.ApproveEnrollment(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reject handles POST /api/manager/enrollments/:id/reject.
func (h *EnrollmentHandler) Reject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.RejectEnrollment(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Bulk handles POST /api/manager/enrollments/bulk.
func (h *EnrollmentHandler) Bulk(c *gin.Context) {
	var req dto.BulkEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	affected, err := h.facade.BulkEnrollments(c.Request.Context(), model.EnrollmentAction(req.Action), req.IDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkResponse{Affected: affected})
}

// Payments handles GET /api/manager/payments.
func (h *EnrollmentHandler) Payments(c *gin.Context) {
	payments, err := h.facade.Payments(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	writePayments(c, payments)
}

// DeletePayments handles POST /api/manager/payments/bulk-delete.
func (h *EnrollmentHandler) DeletePayments(c *gin.Context) {
	var req dto.IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	removed, err := h.facade.DeletePayments(c.Request.Context(), req.IDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkResponse{Affected: removed})
}

func writeEnrollments(c *gin.Context, requests []model.EnrollmentRequest) {
	if len(requests) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	resp := make([]dto.EnrollmentResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, dto.NewEnrollmentResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

func writePayments(c *gin.Context, payments []model.Payment) {
	if len(payments) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	resp := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, dto.NewPaymentResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}
