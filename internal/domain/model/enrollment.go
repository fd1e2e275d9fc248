package model

import "time"

// EnrollmentStatus describes manager review outcome of a request.
type EnrollmentStatus string

const (
	EnrollmentStatusPending  EnrollmentStatus = "pending"
	EnrollmentStatusApproved EnrollmentStatus = "approved"
	EnrollmentStatusRejected EnrollmentStatus = "rejected"
)

// EnrollmentRequest is a user's intent to join a course. A paid request is
// deleted, so there is no stored "paid" status.
type EnrollmentRequest struct {
	ID        int64
	UserID    int64
	CourseID  int64
	Status    EnrollmentStatus
	CreatedAt time.Time
}

// IsPending reports whether the request still awaits a manager decision.
func (r EnrollmentRequest) IsPending() bool {
	return r.Status == EnrollmentStatusPending
}

// EnrollmentAction is a bulk back-office operation over requests.
type EnrollmentAction string

const (
	EnrollmentActionApprove EnrollmentAction = "approve"
	EnrollmentActionReject  EnrollmentAction = "reject"
	EnrollmentActionDelete  EnrollmentAction = "delete"
)

// EnrollmentEvent is published when a new request is submitted.
type EnrollmentEvent struct {
	EventID       string
	RequestID     int64
	RequesterName string
	CourseTitle   string
	CreatedAt     time.Time
	ManageURL     string
}
