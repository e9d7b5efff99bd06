package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/pkg/logger"
)

const defaultAPIBase = "https://api.telegram.org"

// Config for the staff channel. APIBase is overridable for tests.
type Config struct {
	BotToken string
	ChatID   string
	Enabled  bool
	APIBase  string
}

// TelegramNotifier posts short staff alerts to a Telegram chat.
type TelegramNotifier struct {
	cfg        Config
	httpClient *http.Client
}

func NewTelegramNotifier(cfg Config) ports.NotifierPort {
	if cfg.APIBase == "" {
		cfg.APIBase = defaultAPIBase
	}
	return &TelegramNotifier{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *TelegramNotifier) IsEnabled() bool {
	return n.cfg.Enabled && n.cfg.BotToken != "" && n.cfg.ChatID != ""
}

func (n *TelegramNotifier) SendNewOrderAlert(ctx context.Context, order *models.Order) error {
	return n.sendMessage(ctx, FormatOrderAlert(order))
}

func (n *TelegramNotifier) SendContactMessageAlert(ctx context.Context, message *models.ContactMessage) error {
	text := fmt.Sprintf("✉️ <b>Нова порака</b>\n\n👤 %s\n📧 %s\n\n%s",
		html.EscapeString(message.Name),
		html.EscapeString(message.Email),
		html.EscapeString(truncate(message.Message, 1000)),
	)
	return n.sendMessage(ctx, text)
}

// FormatOrderAlert renders the staff summary of a new order.
func FormatOrderAlert(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛒 <b>Нова нарачка #%d</b>\n\n", order.ID)
	fmt.Fprintf(&b, "👤 %s %s\n", html.EscapeString(order.FirstName), html.EscapeString(order.LastName))
	fmt.Fprintf(&b, "📞 %s\n", html.EscapeString(order.Phone))
	fmt.Fprintf(&b, "📍 %s, %s %s\n", html.EscapeString(order.Address), html.EscapeString(order.PostalCode), html.EscapeString(order.City))
	fmt.Fprintf(&b, "💳 %s\n\n", order.PaymentMethod.Label())
	for _, item := range order.Items {
		name := fmt.Sprintf("#%d", item.ProductID)
		if item.Product != nil {
			name = item.Product.Name
		}
		fmt.Fprintf(&b, "• %s × %d\n", html.EscapeString(name), item.Quantity)
	}
	fmt.Fprintf(&b, "\n<b>Вкупно: %s ден.</b>", order.Total.StringFixed(2))
	return b.String()
}

func (n *TelegramNotifier) sendMessage(ctx context.Context, text string) error {
	if !n.IsEnabled() {
		logger.DebugContext(ctx, "Telegram notification disabled, skipping")
		return nil
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimSuffix(n.cfg.APIBase, "/"), n.cfg.BotToken)
	body, err := json.Marshal(map[string]interface{}{
		"chat_id":    n.cfg.ChatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}

	logger.InfoContext(ctx, "Telegram notification sent")
	return nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}
