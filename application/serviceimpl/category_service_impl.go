package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/gosimple/slug"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/domain/repositories"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/logger"
)

const (
	categoriesCacheKey = "catalog:categories"
	catalogCacheTTL    = 10 * time.Minute
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
	cache        ports.CachePort // optional
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, cache ports.CachePort) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

func (s *CategoryServiceImpl) List(ctx context.Context) ([]*models.Category, error) {
	if s.cache == nil {
		return s.categoryRepo.List(ctx)
	}

	var categories []*models.Category
	err := s.cache.GetOrSet(ctx, categoriesCacheKey, &categories, catalogCacheTTL, func() (interface{}, error) {
		return s.categoryRepo.List(ctx)
	})
	if err != nil {
		logger.WarnContext(ctx, "Category cache unavailable, reading database", "error", err)
		return s.categoryRepo.List(ctx)
	}
	return categories, nil
}

func (s *CategoryServiceImpl) GetBySlug(ctx context.Context, slugStr string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug.Make(slugStr))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Category not found", "slug", slugStr)
			return nil, services.ErrCategoryNotFound
		}
		logger.ErrorContext(ctx, "Failed to get category", "slug", slugStr, "error", err)
		return nil, err
	}
	return category, nil
}
