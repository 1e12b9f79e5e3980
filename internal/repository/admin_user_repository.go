package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "psisite/internal/errors"
	"psisite/internal/model"
)

// AdminUserRepository defines persistence operations for dashboard users.
type AdminUserRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	Create(ctx context.Context, user *model.AdminUser) error
	Count(ctx context.Context) (int64, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

type adminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository returns a GORM backed admin user repository.
func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &adminUserRepository{db: db}
}

func (r *adminUserRepository) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var user model.AdminUser
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("admin %s: %w", username, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (r *adminUserRepository) Create(ctx context.Context, user *model.AdminUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *adminUserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.AdminUser{}).Count(&n).Error
	return n, err
}

func (r *adminUserRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&model.AdminUser{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("admin %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
