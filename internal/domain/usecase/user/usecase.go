package user

import (
	"context"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
)

type UseCase interface {
	// List returns users newest first, filtered by a name/email search and role
	List(ctx context.Context, filter model.UserFilter) (*model.Page[entity.User], error)

	Get(ctx context.Context, id int64) (*entity.User, error)
	Create(ctx context.Context, request model.CreateUserRequest) (*entity.User, error)
	Update(ctx context.Context, id int64, request model.UpdateUserRequest) (*entity.User, error)

	// Delete refuses the primary admin with model.ErrPrimaryAdmin
	Delete(ctx context.Context, id int64) error
}
