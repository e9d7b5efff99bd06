package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/repositories"
)

type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) repositories.ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *ContactRepositoryImpl) List(ctx context.Context) ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&messages).Error
	return messages, err
}
