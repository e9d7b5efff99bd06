package serviceimpl

import (
	"context"

	"github.com/DsDac0/Website/domain/dto"
	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/domain/repositories"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/logger"
	"github.com/DsDac0/Website/pkg/metrics"
)

type ContactServiceImpl struct {
	contactRepo repositories.ContactRepository
	notifier    ports.NotifierPort
	metrics     *metrics.AppMetrics
}

func NewContactService(contactRepo repositories.ContactRepository, notifier ports.NotifierPort, m *metrics.AppMetrics) services.ContactService {
	if m == nil {
		m = metrics.NewNoop()
	}
	return &ContactServiceImpl{
		contactRepo: contactRepo,
		notifier:    notifier,
		metrics:     m,
	}
}

func (s *ContactServiceImpl) Submit(ctx context.Context, req *dto.CreateContactMessageRequest) (*models.ContactMessage, error) {
	message := dto.CreateContactRequestToModel(req)
	if err := s.contactRepo.Create(ctx, message); err != nil {
		logger.ErrorContext(ctx, "Failed to save contact message", "email", message.Email, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Contact message received", "contact_id", message.ID, "email", message.Email)
	s.metrics.RecordContactMessage(ctx)

	if s.notifier != nil && s.notifier.IsEnabled() {
		if err := s.notifier.SendContactMessageAlert(ctx, message); err != nil {
			logger.WarnContext(ctx, "Staff contact alert failed", "contact_id", message.ID, "error", err)
		}
	}
	return message, nil
}

func (s *ContactServiceImpl) List(ctx context.Context) ([]*models.ContactMessage, error) {
	messages, err := s.contactRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list contact messages", "error", err)
		return nil, err
	}
	return messages, nil
}
