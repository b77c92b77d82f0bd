package model

import "ecoscope/internal/domain/entity"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is soft-fail: a wrong email or password still answers 200
// with Success false and no user.
type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *entity.User `json:"user,omitempty"`
	Role    string       `json:"role,omitempty"`
	Token   string       `json:"token,omitempty"`
}

type RegisterAdminRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
