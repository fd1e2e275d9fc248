package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Courses() CourseRepository
	Lessons() LessonRepository
	Enrollments() EnrollmentRepository
	Payments() PaymentRepository
	Blogs() BlogRepository
}
