package dto

import (
	"fmt"
	"time"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

// DateLayout is the wire format of course dates.
const DateLayout = "2006-01-02"

// CourseRequest describes course create/update payload.
type CourseRequest struct {
	Title          string  `json:"title" binding:"required,notblank,max=150"`
	Description    string  `json:"description"`
	DurationMonths float64 `json:"duration_months" binding:"gte=0"`
	StartDate      string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate        string  `json:"end_date" binding:"required,datetime=2006-01-02"`
	Price          Amount  `json:"price" binding:"gte=0"`
	Language       string  `json:"language" binding:"required,course_language"`
	Type           string  `json:"type" binding:"required,course_type"`
}

// ToModel converts payload into a course.
func (r CourseRequest) ToModel() (model.Course, error) {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return model.Course{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return model.Course{}, fmt.Errorf("end_date: %w", err)
	}
	return model.Course{
		Title:          r.Title,
		Description:    r.Description,
		DurationMonths: r.DurationMonths,
		StartDate:      start,
		EndDate:        end,
		Price:          model.Money(r.Price),
		Language:       model.Language(r.Language),
		Type:           model.CourseType(r.Type),
	}, nil
}

// CourseResponse describes catalog entry.
type CourseResponse struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	DurationMonths float64 `json:"duration_months"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Price          Amount  `json:"price"`
	Language       string  `json:"language"`
	Type           string  `json:"type"`
	IsActive       bool    `json:"is_active"`
}

// NewCourseResponse maps course for output; now decides IsActive.
func NewCourseResponse(c model.Course, now time.Time) CourseResponse {
	return CourseResponse{
		ID:             c.ID,
		Title:          c.Title,
		Description:    c.Description,
		DurationMonths: c.DurationMonths,
		StartDate:      c.StartDate.Format(DateLayout),
		EndDate:        c.EndDate.Format(DateLayout),
		Price:          Amount(c.Price),
		Language:       string(c.Language),
		Type:           string(c.Type),
		IsActive:       c.IsActive(now),
	}
}

// StudentResponse describes course roster member.
type StudentResponse struct {
	ID       int64  `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}
