package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

func validCourse() model.Course {
	return model.Course{
		Title:          "Python developer",
		DurationMonths: 5,
		StartDate:      time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Price:          990,
		Language:       model.LanguagePython,
		Type:           model.CourseTypeBackend,
	}
}

func TestValidateCourse(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.Course)
		want   bool
	}{
		{name: "valid", mutate: func(*model.Course) {}, want: true},
		{name: "blank title", mutate: func(c *model.Course) { c.Title = "   " }},
		{name: "long title", mutate: func(c *model.Course) { c.Title = strings.Repeat("x", 151) }},
		{name: "unknown language", mutate: func(c *model.Course) { c.Language = "rust" }},
		{name: "unknown type", mutate: func(c *model.Course) { c.Type = "design" }},
		{name: "missing start", mutate: func(c *model.Course) { c.StartDate = time.Time{} }},
		{name: "end before start", mutate: func(c *model.Course) { c.EndDate = c.StartDate.Add(-24 * time.Hour) }},
		{name: "same day", mutate: func(c *model.Course) { c.EndDate = c.StartDate }, want: true},
		{name: "negative price", mutate: func(c *model.Course) { c.Price = -1 }},
		{name: "free course", mutate: func(c *model.Course) { c.Price = 0 }, want: true},
		{name: "negative duration", mutate: func(c *model.Course) { c.DurationMonths = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCourse()
			tc.mutate(&c)
			if got := ValidateCourse(c); got != tc.want {
				t.Fatalf("ValidateCourse = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidEnrollmentStatus(t *testing.T) {
	for _, s := range []model.EnrollmentStatus{"", model.EnrollmentStatusPending, model.EnrollmentStatusApproved, model.EnrollmentStatusRejected} {
		if !ValidEnrollmentStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if ValidEnrollmentStatus("paid") {
		t.Fatal("paid is not a stored status")
	}
}

func TestValidateLessonAndPost(t *testing.T) {
	if !ValidateLesson(model.Lesson{Title: "Intro"}) || ValidateLesson(model.Lesson{Title: " \t"}) {
		t.Fatal("unexpected lesson title validation")
	}
	if ValidateLesson(model.Lesson{Title: strings.Repeat("ы", 256)}) {
		t.Fatal("lesson title is limited to 255 characters")
	}
	if !ValidateBlogPost(model.BlogPost{Title: strings.Repeat("ы", 255)}) || ValidateBlogPost(model.BlogPost{}) {
		t.Fatal("unexpected post title validation")
	}
}

func TestValidAssignableRole(t *testing.T) {
	if !ValidAssignableRole(model.RoleStudent) || !ValidAssignableRole(model.RoleTeacher) {
		t.Fatal("students and teachers are assignable")
	}
	if ValidAssignableRole(model.RoleManager) || ValidAssignableRole("admin") {
		t.Fatal("manager role must not be assignable")
	}
}
