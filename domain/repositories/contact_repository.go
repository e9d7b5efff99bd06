package repositories

import (
	"context"

	"github.com/DsDac0/Website/domain/models"
)

type ContactRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	List(ctx context.Context) ([]*models.ContactMessage, error)
}
