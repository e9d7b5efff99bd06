package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/domain/repositories"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/logger"
)

// FeaturedLimit is how many products the home page showcase gets.
const FeaturedLimit = 8

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type ProductServiceImpl struct {
	productRepo repositories.ProductRepository
	storage     ports.StoragePort
}

func NewProductService(productRepo repositories.ProductRepository, storage ports.StoragePort) services.ProductService {
	return &ProductServiceImpl{
		productRepo: productRepo,
		storage:     storage,
	}
}

func (s *ProductServiceImpl) List(ctx context.Context, filter repositories.ProductFilter) ([]*models.Product, error) {
	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list products", "error", err)
		return nil, err
	}
	return products, nil
}

func (s *ProductServiceImpl) Featured(ctx context.Context) ([]*models.Product, error) {
	products, err := s.productRepo.ListFeatured(ctx, FeaturedLimit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list featured products", "error", err)
		return nil, err
	}
	return products, nil
}

func (s *ProductServiceImpl) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrProductNotFound
		}
		logger.ErrorContext(ctx, "Failed to get product", "product_id", id, "error", err)
		return nil, err
	}
	return product, nil
}

func (s *ProductServiceImpl) UploadImage(ctx context.Context, id uint, file io.Reader, filename, contentType string) (*models.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mimeType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	ext, ok := imageExtensions[mimeType]
	if !ok {
		logger.WarnContext(ctx, "Rejected product image", "product_id", id, "filename", filename, "content_type", contentType)
		return nil, services.ErrUnsupportedImage
	}

	objectPath := path.Join("products", fmt.Sprintf("%d", id), uuid.New().String()+ext)
	url, err := s.storage.UploadFile(file, objectPath, mimeType)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to upload product image", "product_id", id, "path", objectPath, "error", err)
		return nil, err
	}

	product.ImageURL = url
	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.ErrorContext(ctx, "Failed to save product image, removing upload", "product_id", id, "error", err)
		if delErr := s.storage.DeleteFile(objectPath); delErr != nil {
			logger.WarnContext(ctx, "Failed to remove orphaned upload", "path", objectPath, "error", delErr)
		}
		return nil, err
	}

	logger.InfoContext(ctx, "Product image uploaded", "product_id", id, "provider", s.storage.GetProviderName(), "url", url)
	return product, nil
}
