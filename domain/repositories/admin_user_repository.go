package repositories

import (
	"context"

	"github.com/DsDac0/Website/domain/models"
)

type AdminUserRepository interface {
	Create(ctx context.Context, admin *models.AdminUser) error
	Update(ctx context.Context, admin *models.AdminUser) error
	GetByID(ctx context.Context, id uint) (*models.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	Count(ctx context.Context) (int64, error)
}
