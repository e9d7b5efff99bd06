package services

import (
	"context"
	"io"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/repositories"
)

type ProductService interface {
	// List returns the products matching every non-empty filter field.
	List(ctx context.Context, filter repositories.ProductFilter) ([]*models.Product, error)

	// Featured returns the showcase products for the home page.
	Featured(ctx context.Context) ([]*models.Product, error)

	GetByID(ctx context.Context, id uint) (*models.Product, error)

	// UploadImage stores a product photo and points the product's image URL at it.
	UploadImage(ctx context.Context, id uint, file io.Reader, filename, contentType string) (*models.Product, error)
}
