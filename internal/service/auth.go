package service

import (
	"context"
	"errors"

	"github.com/Shivanand-hulikatti/event-management/internal/apperror"
	"github.com/Shivanand-hulikatti/event-management/internal/auth"
	"github.com/Shivanand-hulikatti/event-management/internal/model"
	"github.com/Shivanand-hulikatti/event-management/internal/repository"
)

// AuthService orchestrates account signup and login.
type AuthService struct {
	store  repository.Store
	tokens *auth.TokenIssuer
}

// NewAuthService constructs an AuthService.
func NewAuthService(store repository.Store, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

// Register creates a user account with the given role.
func (s *AuthService) Register(ctx context.Context, req model.SignupRequest) (*model.User, error) {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback(ctx)

	exists, err := uow.Users().EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("user", "email already exists")
	}
	role, ok := auth.ParseRole(req.Role)
	if !ok {
		return nil, apperror.Conflict("user", "invalid user role")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user, err := model.NewUser(req.Email, hash, role)
	if err != nil {
		return nil, err
	}

	if err := uow.Users().Add(ctx, user); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a signed token. Unknown email,
// deactivated account, and wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback(ctx)

	user, err := uow.Users().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized("invalid credentials")
		}
		return nil, err
	}
	if !user.IsActive || !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{Token: token, User: user}, nil
}
