package db

import (
	"context"
	"time"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
)

type UserGateway interface {
	// FindAll returns one page of users matching the filter and the total match count
	FindAll(ctx context.Context, filter model.UserFilter) ([]entity.User, int64, error)

	// FindByID returns nil when the user does not exist
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail returns nil when no user has the (lowercased) email
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	CountByRole(ctx context.Context, role string) (int64, error)
	Count(ctx context.Context) (int64, error)

	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error

	// Delete reports whether a row was removed
	Delete(ctx context.Context, id int64) (bool, error)
}
