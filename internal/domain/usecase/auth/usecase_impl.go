package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/gateway/db"
	"ecoscope/internal/domain/model"
	"ecoscope/internal/infra/security"
	"ecoscope/pkg/log"
	"ecoscope/pkg/msg"
)

type authUseCase struct {
	userGateway db.UserGateway
	hasher      security.PasswordHasher
	tokens      *security.TokenIssuer
	now         func() time.Time
}

func NewAuthUseCase(userGateway db.UserGateway, hasher security.PasswordHasher, tokens *security.TokenIssuer) UseCase {
	return &authUseCase{
		userGateway: userGateway,
		hasher:      hasher,
		tokens:      tokens,
		now:         time.Now,
	}
}

func (useCase *authUseCase) Login(ctx context.Context, request model.LoginRequest) (*model.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	user, err := useCase.userGateway.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		log.Info(msg.GetMessage("auth.login-unknown", email))
		return &model.LoginResponse{Success: false, Message: msg.GetMessage("auth.email-not-registered")}, nil
	}

	if err := useCase.hasher.Compare(user.PasswordHash, request.Password); err != nil {
		log.Info(msg.GetMessage("auth.login-wrong-password", email))
		return &model.LoginResponse{Success: false, Message: msg.GetMessage("auth.wrong-password")}, nil
	}

	token, err := useCase.tokens.Issue(user.UserID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	now := useCase.now()
	if err := useCase.userGateway.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		// A stale last_login is not worth failing the login for.
		log.Warn(msg.GetMessage("auth.last-login-failed", user.UserID), zap.Error(err))
	} else {
		user.LastLogin = &now
	}

	return &model.LoginResponse{
		Success: true,
		Message: msg.GetMessage("auth.login-success"),
		User:    user,
		Role:    user.Role,
		Token:   token,
	}, nil
}

func (useCase *authUseCase) Me(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := useCase.userGateway.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (useCase *authUseCase) RegisterAdmin(ctx context.Context, request model.RegisterAdminRequest) (*entity.User, error) {
	admins, err := useCase.userGateway.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if admins > 0 {
		return nil, model.ErrAdminExists
	}
	return useCase.createAdmin(ctx, request.Name, request.Email, request.Password)
}

func (useCase *authUseCase) SeedPrimaryAdmin(ctx context.Context, name, email, password string) error {
	count, err := useCase.userGateway.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	user, err := useCase.createAdmin(ctx, name, email, password)
	if err != nil {
		return err
	}
	log.Info(msg.GetMessage("auth.admin-seeded", user.Email))
	return nil
}

func (useCase *authUseCase) createAdmin(ctx context.Context, name, email, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := useCase.userGateway.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrEmailTaken
	}

	hash, err := useCase.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
	}
	if err := useCase.userGateway.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (useCase *authUseCase) Authenticate(token string) (*security.Claims, error) {
	return useCase.tokens.Parse(token)
}
