package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/repositories"
)

type AdminUserRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) repositories.AdminUserRepository {
	return &AdminUserRepositoryImpl{db: db}
}

func (r *AdminUserRepositoryImpl) Create(ctx context.Context, admin *models.AdminUser) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *AdminUserRepositoryImpl) Update(ctx context.Context, admin *models.AdminUser) error {
	return r.db.WithContext(ctx).Save(admin).Error
}

func (r *AdminUserRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &admin, nil
}

func (r *AdminUserRepositoryImpl) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &admin, nil
}

func (r *AdminUserRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AdminUser{}).Count(&count).Error
	return count, err
}
