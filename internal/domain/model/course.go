package model

import "time"

// Language is the programming language a course teaches.
type Language string

const (
	LanguagePython Language = "python"
	LanguageJava   Language = "java"
	LanguageJS     Language = "js"
	LanguageCSharp Language = "csharp"
	LanguageGo     Language = "go"
)

// CourseType is the track a course belongs to.
type CourseType string

const (
	CourseTypeFrontend CourseType = "frontend"
	CourseTypeBackend  CourseType = "backend"
	CourseTypeTest     CourseType = "test"
	CourseTypeDevops   CourseType = "devops"
	CourseTypeSecurity CourseType = "security"
	CourseTypeML       CourseType = "ml"
)

// Course is a catalog entry students can enroll in.
type Course struct {
	ID             int64
	Title          string
	Description    string
	DurationMonths float64
	StartDate      time.Time
	EndDate        time.Time
	Price          Money
	Language       Language
	Type           CourseType
	CreatedAt      time.Time
}

// IsActive reports whether the course runs on the given day.
func (c Course) IsActive(now time.Time) bool {
	day := truncateDay(now)
	return !day.Before(truncateDay(c.StartDate)) && !day.After(truncateDay(c.EndDate))
}

// CourseFilter narrows catalog listings.
type CourseFilter struct {
	Search   string
	Language Language
}

// ValidLanguage reports whether l is a known course language.
func ValidLanguage(l Language) bool {
	switch l {
	case LanguagePython, LanguageJava, LanguageJS, LanguageCSharp, LanguageGo:
		return true
	}
	return false
}

// ValidCourseType reports whether t is a known course track.
func ValidCourseType(t CourseType) bool {
	switch t {
	case CourseTypeFrontend, CourseTypeBackend, CourseTypeTest, CourseTypeDevops, CourseTypeSecurity, CourseTypeML:
		return true
	}
	return false
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
