package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
)

type GormUserGateway struct {
	DB *gorm.DB
}

var _ UserGateway = (*GormUserGateway)(nil)

func NewGormUserGateway(db *gorm.DB) *GormUserGateway {
	return &GormUserGateway{DB: db}
}

func (gateway *GormUserGateway) FindAll(ctx context.Context, filter model.UserFilter) ([]entity.User, int64, error) {
	query := gateway.DB.WithContext(ctx).Model(&entity.User{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	users := make([]entity.User, 0)
	err := query.
		Order("created_at DESC").
		Offset(filter.Page * filter.Size).
		Limit(filter.Size).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (gateway *GormUserGateway) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.WithContext(ctx).First(&user, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.WithContext(ctx).First(&user, "email = ?", strings.ToLower(email)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) CountByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := gateway.DB.WithContext(ctx).Model(&entity.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (gateway *GormUserGateway) Count(ctx context.Context) (int64, error) {
	var count int64
	err := gateway.DB.WithContext(ctx).Model(&entity.User{}).Count(&count).Error
	return count, err
}

func (gateway *GormUserGateway) Create(ctx context.Context, user *entity.User) error {
	return gateway.DB.WithContext(ctx).Create(user).Error
}

// Update writes every column, so callers pass a fully loaded user.
func (gateway *GormUserGateway) Update(ctx context.Context, user *entity.User) error {
	return gateway.DB.WithContext(ctx).Save(user).Error
}

func (gateway *GormUserGateway) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return gateway.DB.WithContext(ctx).
		Model(&entity.User{}).
		Where("user_id = ?", id).
		Update("last_login", at).Error
}

func (gateway *GormUserGateway) Delete(ctx context.Context, id int64) (bool, error) {
	result := gateway.DB.WithContext(ctx).Delete(&entity.User{}, "user_id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
