package usecase

import (
	"strings"
	"unicode/utf8"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

const (
	maxCourseTitleLength = 150
	maxLessonTitleLength = 255
	maxPostTitleLength   = 255
)

// ValidateCourse checks catalog invariants before a course is stored.
func ValidateCourse(c model.Course) bool {
	title := strings.TrimSpace(c.Title)
	if title == "" || utf8.RuneCountInString(title) > maxCourseTitleLength {
		return false
	}
	if !model.ValidLanguage(c.Language) || !model.ValidCourseType(c.Type) {
		return false
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() || c.EndDate.Before(c.StartDate) {
		return false
	}
	return c.Price >= 0 && c.DurationMonths >= 0
}

// ValidEnrollmentStatus reports whether s is a known request status.
// The empty status selects every request.
func ValidEnrollmentStatus(s model.EnrollmentStatus) bool {
	switch s {
	case "", model.EnrollmentStatusPending, model.EnrollmentStatusApproved, model.EnrollmentStatusRejected:
		return true
	}
	return false
}

// ValidateLesson checks a lesson title before it is stored.
func ValidateLesson(l model.Lesson) bool {
	return validTitle(l.Title, maxLessonTitleLength)
}

// ValidateBlogPost checks a manager-authored post before it is stored.
func ValidateBlogPost(p model.BlogPost) bool {
	return validTitle(p.Title, maxPostTitleLength)
}

// ValidAssignableRole reports whether the back office may give an account role r.
// Manager accounts are only seeded from configuration.
func ValidAssignableRole(r model.Role) bool {
	return r == model.RoleStudent || r == model.RoleTeacher
}

func validTitle(title string, limit int) bool {
	title = strings.TrimSpace(title)
	return title != "" && utf8.RuneCountInString(title) <= limit
}
