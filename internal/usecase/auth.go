package usecase

import (
	"context"
	"errors"

	"bookmarket/internal/domain/user"
	"bookmarket/internal/pkg/jwt"
	"bookmarket/internal/pkg/password"
	"bookmarket/internal/usecase/readmodel"

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
	FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, email user.Email, plainPassword string) (string, *readmodel.AuthorizedUserRM, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type authUseCaseImpl struct {
	users      UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(users UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		users:      users,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email user.Email, plainPassword string) (string, *readmodel.AuthorizedUserRM, error) {
	rm, hashed, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !rm.IsActive {
		return "", nil, ErrUserInactive
	}

	if err := password.Compare(hashed, plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(rm.Role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	token, err := a.jwtService.GenerateToken(rm.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, rm, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	rm, err := a.users.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if !rm.IsActive {
		return nil, ErrUserInactive
	}
	return rm, nil
}

// TokenValidator is the narrow interface the auth middleware depends on.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, role, nil
}
