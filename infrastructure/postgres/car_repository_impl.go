package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/repositories"
)

type CarRepositoryImpl struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) repositories.CarRepository {
	return &CarRepositoryImpl{db: db}
}

func (r *CarRepositoryImpl) CreateBrand(ctx context.Context, brand *models.CarBrand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *CarRepositoryImpl) CreateModel(ctx context.Context, model *models.CarModel) error {
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *CarRepositoryImpl) GetBrandByID(ctx context.Context, id uint) (*models.CarBrand, error) {
	var brand models.CarBrand
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&brand).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &brand, nil
}

func (r *CarRepositoryImpl) ListBrands(ctx context.Context) ([]*models.CarBrand, error) {
	var brands []*models.CarBrand
	err := r.db.WithContext(ctx).Order("name ASC").Find(&brands).Error
	return brands, err
}

func (r *CarRepositoryImpl) ListModelsByBrand(ctx context.Context, brandID uint) ([]*models.CarModel, error) {
	var carModels []*models.CarModel
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("name ASC").
		Find(&carModels).Error
	return carModels, err
}

func (r *CarRepositoryImpl) CountBrands(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CarBrand{}).Count(&count).Error
	return count, err
}
