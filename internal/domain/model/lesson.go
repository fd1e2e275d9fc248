package model

// Lesson is a unit of course material, optionally led by a teacher.
type Lesson struct {
	ID        int64
	CourseID  int64
	Title     string
	Content   string
	TeacherID *int64
}
