package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	testhelpers "github.com/pvlbrzn/ITSchool/internal/test"
)

type lessonFixture struct {
	uc      *LessonUseCase
	lessons *testhelpers.LessonRepositoryStub
	course  *model.Course
	teacher *model.User
	student *model.User
}

func newLessonFixture(t *testing.T) *lessonFixture {
	t.Helper()
	courses := testhelpers.NewCourseRepositoryStub()
	users := testhelpers.NewUserRepositoryStub()
	f := &lessonFixture{lessons: testhelpers.NewLessonRepositoryStub()}
	f.uc = NewLessonUseCase(f.lessons, courses, users)

	ctx := context.Background()
	var err error
	if f.course, err = courses.Create(ctx, validCourse()); err != nil {
		t.Fatalf("create course: %v", err)
	}
	if f.teacher, err = users.Create(ctx, model.User{Login: "anna", Role: model.RoleTeacher}); err != nil {
		t.Fatalf("create teacher: %v", err)
	}
	if f.student, err = users.Create(ctx, model.User{Login: "ivan", Role: model.RoleStudent}); err != nil {
		t.Fatalf("create student: %v", err)
	}
	return f
}

func TestLessonCreateAndList(t *testing.T) {
	f := newLessonFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, model.Lesson{CourseID: f.course.ID, Title: "  Variables ", TeacherID: &f.teacher.ID})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.ID == 0 || created.Title != "Variables" || *created.TeacherID != f.teacher.ID {
		t.Fatalf("unexpected lesson %+v", created)
	}
	if _, err := f.uc.Create(ctx, model.Lesson{CourseID: f.course.ID, Title: "Loops"}); err != nil {
		t.Fatalf("lesson without teacher returned error: %v", err)
	}

	lessons, err := f.uc.List(ctx, f.course.ID)
	if err != nil || len(lessons) != 2 || lessons[0].Title != "Variables" {
		t.Fatalf("unexpected lessons %+v (%v)", lessons, err)
	}
	if _, err := f.uc.List(ctx, 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown course, got %v", err)
	}
}

func TestLessonCreateRejects(t *testing.T) {
	f := newLessonFixture(t)
	ctx := context.Background()
	missing := int64(404)

	cases := []struct {
		name   string
		lesson model.Lesson
		want   error
	}{
		{"blank title", model.Lesson{CourseID: f.course.ID, Title: "  "}, domainErrors.ErrInvalidLesson},
		{"unknown course", model.Lesson{CourseID: 404, Title: "Intro"}, domainErrors.ErrNotFound},
		{"student as teacher", model.Lesson{CourseID: f.course.ID, Title: "Intro", TeacherID: &f.student.ID}, domainErrors.ErrInvalidLesson},
		{"unknown teacher", model.Lesson{CourseID: f.course.ID, Title: "Intro", TeacherID: &missing}, domainErrors.ErrInvalidLesson},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.uc.Create(ctx, tc.lesson); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if len(f.lessons.Lessons) != 0 {
		t.Fatal("rejected lessons must not be stored")
	}
}

func TestLessonUpdateAndDelete(t *testing.T) {
	f := newLessonFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, model.Lesson{CourseID: f.course.ID, Title: "Intro", TeacherID: &f.teacher.ID})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	update := model.Lesson{ID: created.ID, Title: "Intro to Go", Content: "hello"}
	if err := f.uc.Update(ctx, update); err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	got, err := f.uc.Get(ctx, created.ID)
	if err != nil || got.Title != "Intro to Go" || got.TeacherID != nil || got.CourseID != f.course.ID {
		t.Fatalf("unexpected lesson after update %+v (%v)", got, err)
	}

	update.TeacherID = &f.student.ID
	if err := f.uc.Update(ctx, update); !errors.Is(err, domainErrors.ErrInvalidLesson) {
		t.Fatalf("expected invalid lesson, got %v", err)
	}
	if err := f.uc.Update(ctx, model.Lesson{ID: 404, Title: "x"}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := f.uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if err := f.uc.Delete(ctx, created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestLessonBulkDeleteScopedToCourse(t *testing.T) {
	f := newLessonFixture(t)
	ctx := context.Background()

	own, _ := f.uc.Create(ctx, model.Lesson{CourseID: f.course.ID, Title: "Own"})
	foreign, _ := f.lessons.Create(ctx, model.Lesson{CourseID: f.course.ID + 1, Title: "Foreign"})

	if _, err := f.uc.BulkDelete(ctx, f.course.ID, nil); !errors.Is(err, domainErrors.ErrNothingSelected) {
		t.Fatalf("expected nothing selected, got %v", err)
	}
	removed, err := f.uc.BulkDelete(ctx, f.course.ID, []int64{own.ID, foreign.ID})
	if err != nil || removed != 1 {
		t.Fatalf("unexpected bulk delete %d (%v)", removed, err)
	}
	if _, err := f.lessons.GetByID(ctx, foreign.ID); err != nil {
		t.Fatal("lesson of another course must survive")
	}
}
