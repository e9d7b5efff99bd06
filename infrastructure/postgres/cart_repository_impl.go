package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/repositories"
)

type CartRepositoryImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repositories.CartRepository {
	return &CartRepositoryImpl{db: db}
}

func (r *CartRepositoryImpl) ListBySession(ctx context.Context, sessionID string) ([]*models.CartItem, error) {
	var items []*models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *CartRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).Preload("Product").Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

// AddOrIncrement upserts on the (session_id, product_id) key, so concurrent
// first adds of the same product still end up on one line.
func (r *CartRepositoryImpl) AddOrIncrement(ctx context.Context, sessionID string, productID uint, quantity int) (*models.CartItem, error) {
	increment := map[string]interface{}{"quantity": gorm.Expr("cart_items.quantity + excluded.quantity")}
	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(increment),
	}

	item := &models.CartItem{SessionID: sessionID, ProductID: productID, Quantity: quantity}
	err := r.db.WithContext(ctx).Omit("Product").Clauses(upsert).Create(item).Error
	if err != nil {
		return nil, err
	}

	var line models.CartItem
	err = r.db.WithContext(ctx).
		Preload("Product").
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&line).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &line, nil
}

func (r *CartRepositoryImpl) UpdateQuantity(ctx context.Context, id uint, quantity int) (*models.CartItem, error) {
	result := r.db.WithContext(ctx).Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, repositories.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *CartRepositoryImpl) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CartItem{})
	return result.RowsAffected > 0, result.Error
}

func (r *CartRepositoryImpl) ClearSession(ctx context.Context, sessionID string) (int64, error) {
	result := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}
