package ports

import (
	"context"

	"github.com/DsDac0/Website/domain/models"
)

// OrderMailerPort sends the customer-facing order confirmation.
type OrderMailerPort interface {
	SendOrderConfirmation(ctx context.Context, order *models.Order) error
}

// NotifierPort pushes short alerts to shop staff (Telegram).
type NotifierPort interface {
	SendNewOrderAlert(ctx context.Context, order *models.Order) error
	SendContactMessageAlert(ctx context.Context, message *models.ContactMessage) error
	IsEnabled() bool
}
