package model

import "time"

// Role describes what a user is allowed to do on the platform.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleManager Role = "manager"
)

// User represents a registered account.
type User struct {
	ID           int64
	Login        string
	FullName     string
	Email        string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
}

// DisplayName returns the full name when known and falls back to login.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Login
}

// IsManager reports whether the user may operate the back office.
func (u User) IsManager() bool {
	return u.Role == RoleManager
}

// ValidRole reports whether r is a known account role.
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleManager:
		return true
	}
	return false
}

// UserFilter narrows the back-office user listing. Managers are never listed.
type UserFilter struct {
	Search string
	Role   Role
}

// UserAction is a bulk back-office operation over selected accounts.
type UserAction string

const (
	UserActionDelete  UserAction = "delete"
	UserActionPromote UserAction = "promote"
)

// Registration carries the fields of a new student account.
type Registration struct {
	Login    string
	Password string
	FullName string
	Email    string
}
