package auth

import (
	"context"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
	"ecoscope/internal/infra/security"
)

type UseCase interface {
	// Login is soft-fail: unknown email or wrong password return Success false with no error
	Login(ctx context.Context, request model.LoginRequest) (*model.LoginResponse, error)

	// Me returns the user behind a token, or model.ErrUserNotFound
	Me(ctx context.Context, userID int64) (*entity.User, error)

	// RegisterAdmin creates the first admin; it fails with model.ErrAdminExists afterwards
	RegisterAdmin(ctx context.Context, request model.RegisterAdminRequest) (*entity.User, error)

	// SeedPrimaryAdmin creates the configured admin when the users table is empty
	SeedPrimaryAdmin(ctx context.Context, name, email, password string) error

	// Authenticate validates a bearer token
	Authenticate(token string) (*security.Claims, error)
}
