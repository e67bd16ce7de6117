package dto

import "tutoria/internal/domain/entity"

// Account bodies are checked by the user use case, which owns their messages.

type RegisterRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type UpdateNameRequest struct {
	Nome string `json:"nome"`
}

type UpdatePasswordRequest struct {
	Senha string `json:"senha"`
}

// UserResponse is the public view of an account. The password hash is never included.
type UserResponse struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Nome:  user.Name,
		Email: user.Email,
	}
}
