package services

import (
	"context"

	"github.com/DsDac0/Website/domain/dto"
	"github.com/DsDac0/Website/domain/models"
)

type ContactService interface {
	Submit(ctx context.Context, req *dto.CreateContactMessageRequest) (*models.ContactMessage, error)
	List(ctx context.Context) ([]*models.ContactMessage, error)
}
