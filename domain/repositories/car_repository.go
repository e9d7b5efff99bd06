package repositories

import (
	"context"

	"github.com/DsDac0/Website/domain/models"
)

type CarRepository interface {
	CreateBrand(ctx context.Context, brand *models.CarBrand) error
	CreateModel(ctx context.Context, model *models.CarModel) error
	GetBrandByID(ctx context.Context, id uint) (*models.CarBrand, error)
	ListBrands(ctx context.Context) ([]*models.CarBrand, error)
	ListModelsByBrand(ctx context.Context, brandID uint) ([]*models.CarModel, error)
	CountBrands(ctx context.Context) (int64, error)
}
