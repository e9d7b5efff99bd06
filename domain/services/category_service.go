package services

import (
	"context"

	"github.com/DsDac0/Website/domain/models"
)

type CategoryService interface {
	List(ctx context.Context) ([]*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
}
