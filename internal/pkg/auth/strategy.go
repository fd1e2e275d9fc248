package auth

import (
	"time"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

// Claims is the identity carried by a session token.
type Claims struct {
	UserID int64
	Role   model.Role
}

// IsManager reports whether the token grants back-office access.
func (c Claims) IsManager() bool {
	return c.Role == model.RoleManager
}

type Strategy interface {
	IssueToken(claims Claims) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
