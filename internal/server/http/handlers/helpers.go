package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	pkgAuth "github.com/pvlbrzn/ITSchool/internal/pkg/auth"
	"github.com/pvlbrzn/ITSchool/internal/server/http/dto"
	"github.com/pvlbrzn/ITSchool/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrDuplicateRequest),
		errors.Is(err, domainErrors.ErrAlreadyProcessed),
		errors.Is(err, domainErrors.ErrAlreadyExists),
		errors.Is(err, domainErrors.ErrIngestionRunning):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrForbidden),
		errors.Is(err, domainErrors.ErrNotApproved):
		return http.StatusForbidden
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrInvalidCourse),
		errors.Is(err, domainErrors.ErrInvalidLesson),
		errors.Is(err, domainErrors.ErrInvalidUser),
		errors.Is(err, domainErrors.ErrInvalidPost),
		errors.Is(err, domainErrors.ErrInvalidAction),
		errors.Is(err, domainErrors.ErrNothingSelected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrInvalidCredentials),
		errors.Is(err, pkgAuth.ErrWeakPassword):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrPaymentWrite),
		errors.Is(err, domainErrors.ErrIngestionFetch):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps domain errors onto HTTP responses. Internal failures are
// attached to the context for the request logger and not echoed.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		message = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}
