package services

import (
	"context"

	"github.com/DsDac0/Website/domain/models"
)

type CarService interface {
	ListBrands(ctx context.Context) ([]*models.CarBrand, error)
	// ListModels returns the models of a brand; an unknown brand yields an empty list.
	ListModels(ctx context.Context, brandID uint) ([]*models.CarModel, error)
}
