package dto

import (
	"time"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

// RegisterRequest describes sign-up payload.
type RegisterRequest struct {
	Login    string `json:"login" binding:"required,notblank,max=150"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"max=150"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// LoginRequest describes login/password payload.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// ProfileResponse describes the authenticated account.
type ProfileResponse struct {
	ID       int64  `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// UserUpdateRequest describes back-office account edit payload.
type UserUpdateRequest struct {
	FullName string `json:"full_name" binding:"max=150"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role" binding:"required,oneof=student teacher"`
}

// BulkUserRequest describes back-office bulk action over accounts.
type BulkUserRequest struct {
	Action string  `json:"action" binding:"required"`
	IDs    []int64 `json:"ids" binding:"omitempty,dive,gt=0"`
}

// UserResponse describes an account in back-office listings.
type UserResponse struct {
	ID        int64     `json:"id"`
	Login     string    `json:"login"`
	FullName  string    `json:"full_name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Login:     u.Login,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
