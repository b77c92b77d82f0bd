package user

import (
	"context"
	"fmt"
	"strings"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/gateway/db"
	"ecoscope/internal/domain/model"
	"ecoscope/internal/infra/security"
)

const maxPageSize = 500

type userUseCase struct {
	userGateway db.UserGateway
	hasher      security.PasswordHasher
}

func NewUserUseCase(userGateway db.UserGateway, hasher security.PasswordHasher) UseCase {
	return &userUseCase{userGateway: userGateway, hasher: hasher}
}

func (useCase *userUseCase) List(ctx context.Context, filter model.UserFilter) (*model.Page[entity.User], error) {
	if filter.Page < 0 {
		filter.Page = 0
	}
	if filter.Size <= 0 || filter.Size > maxPageSize {
		filter.Size = 100
	}

	users, total, err := useCase.userGateway.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return model.NewPage(users, filter.Page, filter.Size, total), nil
}

func (useCase *userUseCase) Get(ctx context.Context, id int64) (*entity.User, error) {
	user, err := useCase.userGateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (useCase *userUseCase) Create(ctx context.Context, request model.CreateUserRequest) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existing, err := useCase.userGateway.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrEmailTaken
	}

	hash, err := useCase.hasher.Hash(request.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := request.Role
	if role == "" {
		role = entity.RoleModerator
	}

	user := &entity.User{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := useCase.userGateway.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (useCase *userUseCase) Update(ctx context.Context, id int64, request model.UpdateUserRequest) (*entity.User, error) {
	user, err := useCase.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*request.Email))
		if email != user.Email {
			existing, err := useCase.userGateway.FindByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.UserID != id {
				return nil, model.ErrEmailTaken
			}
			user.Email = email
		}
	}
	if request.Name != nil {
		user.Name = strings.TrimSpace(*request.Name)
	}
	if request.Role != nil {
		user.Role = *request.Role
	}
	if request.Password != nil {
		hash, err := useCase.hasher.Hash(*request.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := useCase.userGateway.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (useCase *userUseCase) Delete(ctx context.Context, id int64) error {
	if id == entity.PrimaryAdminID {
		return model.ErrPrimaryAdmin
	}

	deleted, err := useCase.userGateway.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrUserNotFound
	}
	return nil
}
