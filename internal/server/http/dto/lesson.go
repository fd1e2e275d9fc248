package dto

import "github.com/pvlbrzn/ITSchool/internal/domain/model"

// LessonRequest describes lesson create/update payload.
type LessonRequest struct {
	Title     string `json:"title" binding:"required,notblank,max=255"`
	Content   string `json:"content"`
	TeacherID *int64 `json:"teacher_id" binding:"omitempty,gt=0"`
}

func (r LessonRequest) ToModel() model.Lesson {
	return model.Lesson{Title: r.Title, Content: r.Content, TeacherID: r.TeacherID}
}

// LessonResponse describes a course lesson.
type LessonResponse struct {
	ID        int64  `json:"id"`
	CourseID  int64  `json:"course_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	TeacherID *int64 `json:"teacher_id"`
}

func NewLessonResponse(l model.Lesson) LessonResponse {
	return LessonResponse{
		ID:        l.ID,
		CourseID:  l.CourseID,
		Title:     l.Title,
		Content:   l.Content,
		TeacherID: l.TeacherID,
	}
}
