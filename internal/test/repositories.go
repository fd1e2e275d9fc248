package test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	"github.com/pvlbrzn/ITSchool/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
	mu    sync.Mutex
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[user.Login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := user
	stored.ID = s.Next
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	s.Next++
	s.Users[stored.Login] = &stored
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns non-manager accounts matching filter ordered by id.
func (s *UserRepositoryStub) List(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	search := strings.ToLower(filter.Search)
	var result []model.User
	for _, user := range s.ByID {
		if user.Role == model.RoleManager || (filter.Role != "" && user.Role != filter.Role) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(user.Login), search) &&
			!strings.Contains(strings.ToLower(user.FullName), search) &&
			!strings.Contains(strings.ToLower(user.Email), search) {
			continue
		}
		result = append(result, *user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Update changes profile fields and role of a non-manager account.
func (s *UserRepositoryStub) Update(ctx context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	stored, ok := s.ByID[user.ID]
	if !ok || stored.Role == model.RoleManager {
		return domainErrors.ErrNotFound
	}
	stored.FullName = user.FullName
	stored.Email = user.Email
	stored.Role = user.Role
	return nil
}

// Delete removes a non-manager account.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if !s.removeLocked(id) {
		return domainErrors.ErrNotFound
	}
	return nil
}

// DeleteMany removes non-manager accounts among ids and counts them.
func (s *UserRepositoryStub) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	var affected int64
	for _, id := range ids {
		if s.removeLocked(id) {
			affected++
		}
	}
	return affected, nil
}

// SetRoleMany assigns role to non-manager accounts among ids.
func (s *UserRepositoryStub) SetRoleMany(ctx context.Context, ids []int64, role model.Role) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	var affected int64
	for _, id := range ids {
		if user, ok := s.ByID[id]; ok && user.Role != model.RoleManager {
			user.Role = role
			affected++
		}
	}
	return affected, nil
}

func (s *UserRepositoryStub) removeLocked(id int64) bool {
	user, ok := s.ByID[id]
	if !ok || user.Role == model.RoleManager {
		return false
	}
	delete(s.ByID, id)
	delete(s.Users, user.Login)
	return true
}

// LessonRepositoryStub keeps lessons in memory.
type LessonRepositoryStub struct {
	Lessons map[int64]*model.Lesson
	Next    int64
	Err     error
	mu      sync.Mutex
}

// NewLessonRepositoryStub constructs an empty lesson store.
func NewLessonRepositoryStub() *LessonRepositoryStub {
	return &LessonRepositoryStub{Lessons: make(map[int64]*model.Lesson), Next: 1}
}

// Create stores lesson with a fresh identifier.
func (s *LessonRepositoryStub) Create(ctx context.Context, lesson model.Lesson) (*model.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := lesson
	stored.ID = s.Next
	s.Next++
	s.Lessons[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

// Update replaces title, content and teacher of a stored lesson.
func (s *LessonRepositoryStub) Update(ctx context.Context, lesson model.Lesson) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	stored, ok := s.Lessons[lesson.ID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	stored.Title = lesson.Title
	stored.Content = lesson.Content
	stored.TeacherID = lesson.TeacherID
	return nil
}

// Delete removes lesson or returns not found.
func (s *LessonRepositoryStub) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Lessons[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Lessons, id)
	return nil
}

// GetByID fetches lesson or returns not found.
func (s *LessonRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if lesson, ok := s.Lessons[id]; ok {
		copied := *lesson
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByCourse returns lessons of a course ordered by id.
func (s *LessonRepositoryStub) ListByCourse(ctx context.Context, courseID int64) ([]model.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Lesson
	for _, lesson := range s.Lessons {
		if lesson.CourseID == courseID {
			result = append(result, *lesson)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// DeleteMany removes lessons among ids that belong to courseID.
func (s *LessonRepositoryStub) DeleteMany(ctx context.Context, courseID int64, ids []int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	var affected int64
	for _, id := range ids {
		if lesson, ok := s.Lessons[id]; ok && lesson.CourseID == courseID {
			delete(s.Lessons, id)
			affected++
		}
	}
	return affected, nil
}

// CourseRepositoryStub keeps catalog and rosters in memory.
type CourseRepositoryStub struct {
	Courses map[int64]*model.Course
	Roster  map[int64][]int64
	Next    int64
	Err     error
	mu      sync.Mutex
}

// NewCourseRepositoryStub constructs empty catalog.
func NewCourseRepositoryStub() *CourseRepositoryStub {
	return &CourseRepositoryStub{
		Courses: make(map[int64]*model.Course),
		Roster:  make(map[int64][]int64),
		Next:    1,
	}
}

// Create stores course with a fresh identifier.
func (s *CourseRepositoryStub) Create(ctx context.Context, course model.Course) (*model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := course
	stored.ID = s.Next
	s.Next++
	s.Courses[stored.ID] = &stored
	return &stored, nil
}

// Update replaces stored course.
func (s *CourseRepositoryStub) Update(ctx context.Context, course model.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Courses[course.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := course
	s.Courses[course.ID] = &stored
	return nil
}

// Delete removes course and its roster.
func (s *CourseRepositoryStub) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Courses[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Courses, id)
	delete(s.Roster, id)
	return nil
}

// GetByID fetches course or returns not found.
func (s *CourseRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if course, ok := s.Courses[id]; ok {
		copied := *course
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List filters courses by language and case-insensitive search.
func (s *CourseRepositoryStub) List(ctx context.Context, filter model.CourseFilter) ([]model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	search := strings.ToLower(filter.Search)
	var result []model.Course
	for _, course := range s.Courses {
		if filter.Language != "" && course.Language != filter.Language {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(course.Title), search) &&
			!strings.Contains(strings.ToLower(course.Description), search) {
			continue
		}
		result = append(result, *course)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Students returns roster members as bare users.
func (s *CourseRepositoryStub) Students(ctx context.Context, courseID int64) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.User
	for _, id := range s.Roster[courseID] {
		result = append(result, model.User{ID: id})
	}
	return result, nil
}

// AddStudent appends user to the roster unless already present.
func (s *CourseRepositoryStub) AddStudent(courseID, userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.Roster[courseID] {
		if id == userID {
			return
		}
	}
	s.Roster[courseID] = append(s.Roster[courseID], userID)
}

// HasStudent reports roster membership.
func (s *CourseRepositoryStub) HasStudent(courseID, userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.Roster[courseID] {
		if id == userID {
			return true
		}
	}
	return false
}

// PaymentRepositoryStub is an in-memory ledger.
type PaymentRepositoryStub struct {
	Entries []model.Payment
	Next    int64
	Err     error
	mu      sync.Mutex
}

// Append records payment and assigns identifier.
func (s *PaymentRepositoryStub) Append(p model.Payment) model.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Next == 0 {
		s.Next = 1
	}
	p.ID = s.Next
	s.Next++
	if p.PaidAt.IsZero() {
		p.PaidAt = time.Now()
	}
	s.Entries = append(s.Entries, p)
	return p
}

// List returns entries newest first.
func (s *PaymentRepositoryStub) List(ctx context.Context) ([]model.Payment, error) {
	return s.filter(func(model.Payment) bool { return true })
}

// ListByStudent returns entries of one student newest first.
func (s *PaymentRepositoryStub) ListByStudent(ctx context.Context, studentID int64) ([]model.Payment, error) {
	return s.filter(func(p model.Payment) bool { return p.StudentID == studentID })
}

// DeleteMany removes entries among ids and counts them.
func (s *PaymentRepositoryStub) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	selected := make(map[int64]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}
	kept := s.Entries[:0]
	for _, p := range s.Entries {
		if !selected[p.ID] {
			kept = append(kept, p)
		}
	}
	affected := int64(len(s.Entries) - len(kept))
	s.Entries = kept
	return affected, nil
}

// Len returns number of recorded payments.
func (s *PaymentRepositoryStub) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Entries)
}

func (s *PaymentRepositoryStub) filter(keep func(model.Payment) bool) ([]model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Payment
	for i := len(s.Entries) - 1; i >= 0; i-- {
		if keep(s.Entries[i]) {
			result = append(result, s.Entries[i])
		}
	}
	return result, nil
}

// EnrollmentRepositoryStub emulates request storage including the
// uniqueness constraint, conditional transitions and the payment transaction.
type EnrollmentRepositoryStub struct {
	Requests   map[int64]*model.EnrollmentRequest
	Courses    *CourseRepositoryStub
	Payments   *PaymentRepositoryStub
	Next       int64
	Err        error
	PaymentErr error
	mu         sync.Mutex
}

// NewEnrollmentRepositoryStub links request storage with catalog and ledger stubs.
func NewEnrollmentRepositoryStub(courses *CourseRepositoryStub, payments *PaymentRepositoryStub) *EnrollmentRepositoryStub {
	return &EnrollmentRepositoryStub{
		Requests: make(map[int64]*model.EnrollmentRequest),
		Courses:  courses,
		Payments: payments,
		Next:     1,
	}
}

// Create inserts pending request unless the pair already has one.
func (s *EnrollmentRepositoryStub) Create(ctx context.Context, userID, courseID int64) (*model.EnrollmentRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, req := range s.Requests {
		if req.UserID == userID && req.CourseID == courseID {
			return nil, domainErrors.ErrDuplicateRequest
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	req := &model.EnrollmentRequest{
		ID:        s.Next,
		UserID:    userID,
		CourseID:  courseID,
		Status:    model.EnrollmentStatusPending,
		CreatedAt: time.Now(),
	}
	s.Next++
	s.Requests[req.ID] = req
	copied := *req
	return &copied, nil
}

// GetByID fetches request or returns not found.
func (s *EnrollmentRepositoryStub) GetByID(ctx context.Context, id int64) (*model.EnrollmentRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if req, ok := s.Requests[id]; ok {
		copied := *req
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns requests newest first, optionally filtered by status.
func (s *EnrollmentRepositoryStub) List(ctx context.Context, status model.EnrollmentStatus) ([]model.EnrollmentRequest, error) {
	return s.filter(func(r model.EnrollmentRequest) bool { return status == "" || r.Status == status })
}

// ListByUser returns requests of one user newest first.
func (s *EnrollmentRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.EnrollmentRequest, error) {
	return s.filter(func(r model.EnrollmentRequest) bool { return r.UserID == userID })
}

func (s *EnrollmentRepositoryStub) filter(keep func(model.EnrollmentRequest) bool) ([]model.EnrollmentRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.EnrollmentRequest
	for _, req := range s.Requests {
		if keep(*req) {
			result = append(result, *req)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// Transition changes status of a pending request only.
func (s *EnrollmentRepositoryStub) Transition(ctx context.Context, id int64, status model.EnrollmentStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	req, ok := s.Requests[id]
	if !ok {
		return false, domainErrors.ErrNotFound
	}
	if req.Status != model.EnrollmentStatusPending {
		return false, nil
	}
	req.Status = status
	return true, nil
}

// TransitionMany changes pending requests among ids and counts them.
func (s *EnrollmentRepositoryStub) TransitionMany(ctx context.Context, ids []int64, status model.EnrollmentStatus) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	var affected int64
	for _, id := range ids {
		if req, ok := s.Requests[id]; ok && req.Status == model.EnrollmentStatusPending {
			req.Status = status
			affected++
		}
	}
	return affected, nil
}

// DeleteMany removes requests among ids and counts them.
func (s *EnrollmentRepositoryStub) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	var affected int64
	for _, id := range ids {
		if _, ok := s.Requests[id]; ok {
			delete(s.Requests, id)
			affected++
		}
	}
	return affected, nil
}

// CompletePayment applies the payment transaction atomically: nothing
// changes unless every step succeeds.
func (s *EnrollmentRepositoryStub) CompletePayment(ctx context.Context, requestID, actingUserID int64, method string) (*model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	req, ok := s.Requests[requestID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if req.UserID != actingUserID {
		return nil, domainErrors.ErrForbidden
	}
	if req.Status != model.EnrollmentStatusApproved {
		return nil, domainErrors.ErrNotApproved
	}
	if s.PaymentErr != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrPaymentWrite, s.PaymentErr)
	}

	var price model.Money
	if s.Courses != nil {
		course, err := s.Courses.GetByID(ctx, req.CourseID)
		if err != nil {
			return nil, err
		}
		price = course.Price
	}

	payment := model.Payment{
		Amount:     price,
		Successful: true,
		Method:     method,
		StudentID:  actingUserID,
		CourseID:   req.CourseID,
	}
	if s.Payments != nil {
		payment = s.Payments.Append(payment)
	}
	if s.Courses != nil {
		s.Courses.AddStudent(req.CourseID, actingUserID)
	}
	delete(s.Requests, requestID)
	return &payment, nil
}

// BlogRepositoryStub stores posts in insertion order with unique titles.
type BlogRepositoryStub struct {
	Posts     []model.BlogPost
	Next      int64
	Err       error
	InsertErr error
	ClearErr  error
	mu        sync.Mutex
}

// InsertIfAbsent stores post unless the title is taken.
func (s *BlogRepositoryStub) InsertIfAbsent(ctx context.Context, post model.BlogPost) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.InsertErr != nil {
		return false, s.InsertErr
	}
	for _, existing := range s.Posts {
		if existing.Title == post.Title {
			return false, nil
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	post.ID = s.Next
	s.Next++
	s.Posts = append(s.Posts, post)
	return true, nil
}

// Create stores post or fails on a taken title.
func (s *BlogRepositoryStub) Create(ctx context.Context, post model.BlogPost) (*model.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Posts {
		if existing.Title == post.Title {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	post.ID = s.Next
	s.Next++
	s.Posts = append(s.Posts, post)
	return &post, nil
}

// Update replaces editable fields; the publication date is kept.
func (s *BlogRepositoryStub) Update(ctx context.Context, post model.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	idx := -1
	for i, existing := range s.Posts {
		if existing.ID == post.ID {
			idx = i
		} else if existing.Title == post.Title {
			return domainErrors.ErrAlreadyExists
		}
	}
	if idx < 0 {
		return domainErrors.ErrNotFound
	}
	post.Date = s.Posts[idx].Date
	s.Posts[idx] = post
	return nil
}

// Clear drops all posts and returns how many were removed.
func (s *BlogRepositoryStub) Clear(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ClearErr != nil {
		return 0, s.ClearErr
	}
	removed := int64(len(s.Posts))
	s.Posts = nil
	return removed, nil
}

// List returns posts newest first.
func (s *BlogRepositoryStub) List(ctx context.Context) ([]model.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.BlogPost, 0, len(s.Posts))
	for i := len(s.Posts) - 1; i >= 0; i-- {
		result = append(result, s.Posts[i])
	}
	return result, nil
}

// GetByID fetches post or returns not found.
func (s *BlogRepositoryStub) GetByID(ctx context.Context, id int64) (*model.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, post := range s.Posts {
		if post.ID == id {
			copied := post
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes post or returns not found.
func (s *BlogRepositoryStub) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for i, post := range s.Posts {
		if post.ID == id {
			s.Posts = append(s.Posts[:i], s.Posts[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Titles returns stored titles in insertion order.
func (s *BlogRepositoryStub) Titles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	titles := make([]string, 0, len(s.Posts))
	for _, post := range s.Posts {
		titles = append(titles, post.Title)
	}
	return titles
}

var (
	_ repository.UserRepository       = (*UserRepositoryStub)(nil)
	_ repository.CourseRepository     = (*CourseRepositoryStub)(nil)
	_ repository.LessonRepository     = (*LessonRepositoryStub)(nil)
	_ repository.EnrollmentRepository = (*EnrollmentRepositoryStub)(nil)
	_ repository.PaymentRepository    = (*PaymentRepositoryStub)(nil)
	_ repository.BlogRepository       = (*BlogRepositoryStub)(nil)
)
