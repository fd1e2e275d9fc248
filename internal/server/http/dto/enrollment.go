package dto

import (
	"time"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

// EnrollmentCreateRequest describes enrollment submission payload.
type EnrollmentCreateRequest struct {
	CourseID int64 `json:"course_id" binding:"required,gt=0"`
}

// BulkEnrollmentRequest describes back-office bulk action.
type BulkEnrollmentRequest struct {
	Action string  `json:"action" binding:"required"`
	IDs    []int64 `json:"ids" binding:"omitempty,dive,gt=0"`
}

// IDsRequest selects records for a bulk delete.
type IDsRequest struct {
	IDs []int64 `json:"ids" binding:"omitempty,dive,gt=0"`
}

// BulkResponse reports how many records changed.
type BulkResponse struct {
	Affected int64 `json:"affected"`
}

// EnrollmentResponse describes a stored request.
type EnrollmentResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CourseID  int64     `json:"course_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewEnrollmentResponse(r model.EnrollmentRequest) EnrollmentResponse {
	return EnrollmentResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		CourseID:  r.CourseID,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

// PaymentResponse describes ledger entry.
type PaymentResponse struct {
	ID         int64     `json:"id"`
	Amount     Amount    `json:"amount"`
	PaidAt     time.Time `json:"paid_at"`
	Successful bool      `json:"is_successful"`
	Method     string    `json:"method"`
	Comment    string    `json:"comment,omitempty"`
	StudentID  int64     `json:"student_id"`
	CourseID   int64     `json:"course_id"`
}

func NewPaymentResponse(p model.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		Amount:     Amount(p.Amount),
		PaidAt:     p.PaidAt,
		Successful: p.Successful,
		Method:     p.Method,
		Comment:    p.Comment,
		StudentID:  p.StudentID,
		CourseID:   p.CourseID,
	}
}
