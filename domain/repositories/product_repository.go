package repositories

import (
	"context"

	"github.com/DsDac0/Website/domain/models"
)

// ProductFilter holds the optional catalog filters. Zero values mean "no constraint";
// every present filter narrows the result (AND).
type ProductFilter struct {
	CategoryID      uint
	BrandID         uint // accepted for API compatibility, not applied
	Search          string
	CompatibleBrand string
	CompatibleModel string
	CompatibleYear  string
}

func (f ProductFilter) IsEmpty() bool {
	return f.CategoryID == 0 && f.Search == "" &&
		f.CompatibleBrand == "" && f.CompatibleModel == "" && f.CompatibleYear == ""
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*models.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*models.Product, error)
	ListFeatured(ctx context.Context, limit int) ([]*models.Product, error)
	Count(ctx context.Context) (int64, error)
}
