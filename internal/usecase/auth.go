package usecase

import (
	"context"
	"errors"

	"staybook/internal/domain/user"
	"staybook/internal/pkg/jwt"
	"staybook/internal/pkg/password"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, email user.Email, pass user.Password) (string, *queries.AuthorizedUserView, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email user.Email, pass user.Password) (string, *queries.AuthorizedUserView, error) {
	view, hashed, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil || view == nil {
		return "", nil, ErrUserNotFound
	}

	if !view.IsActive {
		return "", nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashed, pass.Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return "", nil, ErrTokenValidation
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, view, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, err := a.userRepo.FindByID(ctx, userID)
	if err != nil || view == nil {
		return nil, ErrUserNotFound
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return view, nil
}
