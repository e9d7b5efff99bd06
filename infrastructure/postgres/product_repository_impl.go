package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/repositories"
)

type ProductRepositoryImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Omit("Category").Save(product).Error
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) (map[uint]*models.Product, error) {
	out := make(map[uint]*models.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var products []*models.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

// List applies every present filter. Search and compatibility matching are
// case-sensitive substring matches; compatibility lists are matched against
// their stored JSON text.
func (r *ProductRepositoryImpl) List(ctx context.Context, filter repositories.ProductFilter) ([]*models.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(name LIKE ? OR description LIKE ? OR part_number LIKE ?)", pattern, pattern, pattern)
	}
	if filter.CompatibleBrand != "" {
		query = query.Where("compatible_brands LIKE ?", "%"+filter.CompatibleBrand+"%")
	}
	if filter.CompatibleModel != "" {
		query = query.Where("compatible_models LIKE ?", "%"+filter.CompatibleModel+"%")
	}
	if filter.CompatibleYear != "" {
		query = query.Where("compatible_years LIKE ?", "%"+filter.CompatibleYear+"%")
	}

	var products []*models.Product
	err := query.Order("id ASC").Find(&products).Error
	return products, err
}

func (r *ProductRepositoryImpl) ListFeatured(ctx context.Context, limit int) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithContext(ctx).Order("id ASC").Limit(limit).Find(&products).Error
	return products, err
}

func (r *ProductRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	return count, err
}
