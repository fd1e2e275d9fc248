package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidCourse      = errors.New("invalid course")
	ErrInvalidLesson      = errors.New("invalid lesson")
	ErrInvalidUser        = errors.New("invalid user")
	ErrInvalidPost        = errors.New("invalid blog post")
	ErrInvalidAction      = errors.New("invalid action")
	ErrNothingSelected    = errors.New("nothing selected")

	ErrDuplicateRequest = errors.New("enrollment request already exists")
	ErrAlreadyProcessed = errors.New("enrollment request already processed")
	ErrNotApproved      = errors.New("enrollment request is not approved")
	ErrForbidden        = errors.New("forbidden")
	ErrPaymentWrite     = errors.New("payment write failed")

	ErrIngestionFetch   = errors.New("ingestion index fetch failed")
	ErrIngestionRunning = errors.New("ingestion already running")
)
