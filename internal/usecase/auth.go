package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/pvlbrzn/ITSchool/internal/domain/errors"
	"github.com/pvlbrzn/ITSchool/internal/domain/model"
	"github.com/pvlbrzn/ITSchool/internal/domain/repository"
	pkgAuth "github.com/pvlbrzn/ITSchool/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a student account and returns auth token.
func (u *AuthUseCase) Register(ctx context.Context, in model.Registration) (*model.User, string, error) {
	login := strings.TrimSpace(in.Login)
	if login == "" || in.Password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, model.User{
		Login:        login,
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.TrimSpace(in.Email),
		Role:         model.RoleStudent,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.issue(usr)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.issue(usr)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// EnsureManager creates a manager account unless the login is already taken.
// It reports whether an account was created.
func (u *AuthUseCase) EnsureManager(ctx context.Context, login, password, fullName string) (bool, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return false, nil
	}

	if _, err := u.users.GetByLogin(ctx, login); err == nil {
		return false, nil
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return false, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return false, err
	}

	_, err = u.users.Create(ctx, model.User{
		Login:        login,
		FullName:     fullName,
		Role:         model.RoleManager,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ParseToken extracts identity from provided token.
func (u *AuthUseCase) ParseToken(token string) (pkgAuth.Claims, error) {
	if token == "" {
		return pkgAuth.Claims{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func (u *AuthUseCase) issue(usr *model.User) (string, error) {
	return u.tokens.IssueToken(pkgAuth.Claims{UserID: usr.ID, Role: usr.Role})
}
