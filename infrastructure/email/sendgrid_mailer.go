package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/pkg/logger"
)

type Config struct {
	APIKey      string
	FromAddress string
	FromName    string
}

// SendGridMailer sends order confirmations through SendGrid. Without an API key
// it only logs what would have been sent.
type SendGridMailer struct {
	cfg    Config
	client *sendgrid.Client
}

func NewSendGridMailer(cfg Config) ports.OrderMailerPort {
	m := &SendGridMailer{cfg: cfg}
	if cfg.APIKey != "" {
		m.client = sendgrid.NewSendClient(cfg.APIKey)
	} else {
		logger.Warn("SENDGRID_API_KEY not set, order emails will only be logged")
	}
	return m
}

func (m *SendGridMailer) SendOrderConfirmation(ctx context.Context, order *models.Order) error {
	msg, err := BuildOrderConfirmation(order)
	if err != nil {
		return err
	}
	return m.send(ctx, msg)
}

func (m *SendGridMailer) send(ctx context.Context, msg *Message) error {
	if m.client == nil {
		logger.InfoContext(ctx, "Email would be sent", "to", msg.To, "subject", msg.Subject)
		return nil
	}

	from := mail.NewEmail(m.cfg.FromName, m.cfg.FromAddress)
	to := mail.NewEmail("", msg.To)
	resp, err := m.client.SendWithContext(ctx, mail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML))
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	logger.InfoContext(ctx, "Email sent", "to", msg.To, "subject", msg.Subject, "status", resp.StatusCode)
	return nil
}
