package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/repositories"
)

type OrderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repositories.OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// CreateWithItems inserts the order, then its lines, atomically.
func (r *OrderRepositoryImpl) CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(order).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].ID = 0
			items[i].OrderID = order.ID
		}
		return tx.Omit("Product").Create(&items).Error
	})
}

func (r *OrderRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) GetWithItems(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.withItems(ctx).Where("id = ?", id).First(&order).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) ListWithItems(ctx context.Context) ([]*models.Order, error) {
	var orders []*models.Order
	err := r.withItems(ctx).Order("created_at DESC, id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *OrderRepositoryImpl) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Product")
}
