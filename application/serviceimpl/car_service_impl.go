package serviceimpl

import (
	"context"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/domain/repositories"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/logger"
)

const carBrandsCacheKey = "catalog:car-brands"

type CarServiceImpl struct {
	carRepo repositories.CarRepository
	cache   ports.CachePort // optional
}

func NewCarService(carRepo repositories.CarRepository, cache ports.CachePort) services.CarService {
	return &CarServiceImpl{
		carRepo: carRepo,
		cache:   cache,
	}
}

func (s *CarServiceImpl) ListBrands(ctx context.Context) ([]*models.CarBrand, error) {
	if s.cache == nil {
		return s.carRepo.ListBrands(ctx)
	}

	var brands []*models.CarBrand
	err := s.cache.GetOrSet(ctx, carBrandsCacheKey, &brands, catalogCacheTTL, func() (interface{}, error) {
		return s.carRepo.ListBrands(ctx)
	})
	if err != nil {
		logger.WarnContext(ctx, "Car brand cache unavailable, reading database", "error", err)
		return s.carRepo.ListBrands(ctx)
	}
	return brands, nil
}

func (s *CarServiceImpl) ListModels(ctx context.Context, brandID uint) ([]*models.CarModel, error) {
	carModels, err := s.carRepo.ListModelsByBrand(ctx, brandID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list car models", "brand_id", brandID, "error", err)
		return nil, err
	}
	return carModels, nil
}
