// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tutoria/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput carries the issued bearer token and the authenticated user.
type LoginOutput struct {
	Token *entity.IssuedToken
	User  *entity.User
}

// UserUsecase defines the account operations exposed to the delivery layer.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)
	UpdateName(ctx context.Context, userID int64, name string) (*entity.User, error)
	UpdatePassword(ctx context.Context, userID int64, password string) (*entity.User, error)
}
