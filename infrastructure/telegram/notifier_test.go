package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/DsDac0/Website/domain/models"
)

func testOrder() *models.Order {
	return &models.Order{
		ID:            12,
		FirstName:     "Marko",
		LastName:      "<Markovski>",
		Phone:         "070111222",
		Address:       "Ilindenska 5",
		City:          "Tetovo",
		PostalCode:    "1200",
		PaymentMethod: models.PaymentMethodCard,
		Total:         decimal.RequireFromString("3050"),
		Items: []models.OrderItem{
			{ProductID: 1, Quantity: 2, Product: &models.Product{Name: "Oil Filter"}},
			{ProductID: 9, Quantity: 1},
		},
	}
}

func TestFormatOrderAlert(t *testing.T) {
	text := FormatOrderAlert(testOrder())
	for _, want := range []string{"#12", "&lt;Markovski&gt;", "Картичка", "• Oil Filter × 2", "• #9 × 1", "Вкупно: 3050.00 ден."} {
		if !strings.Contains(text, want) {
			t.Errorf("alert missing %q:\n%s", want, text)
		}
	}
}

func TestSendNewOrderAlert(t *testing.T) {
	var got map[string]interface{}
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewTelegramNotifier(Config{BotToken: "tok", ChatID: "42", Enabled: true, APIBase: srv.URL})
	if err := n.SendNewOrderAlert(context.Background(), testOrder()); err != nil {
		t.Fatalf("SendNewOrderAlert: %v", err)
	}
	if path != "/bottok/sendMessage" {
		t.Errorf("path = %q", path)
	}
	if got["chat_id"] != "42" || got["parse_mode"] != "HTML" {
		t.Errorf("unexpected payload %v", got)
	}
}

func TestDisabledNotifierDoesNothing(t *testing.T) {
	n := NewTelegramNotifier(Config{BotToken: "tok", ChatID: "", Enabled: true, APIBase: "http://127.0.0.1:1"})
	if n.IsEnabled() {
		t.Fatal("expected notifier without chat id to be disabled")
	}
	if err := n.SendContactMessageAlert(context.Background(), &models.ContactMessage{Name: "A"}); err != nil {
		t.Errorf("disabled notifier returned %v", err)
	}
}

func TestAPIErrorIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	n := NewTelegramNotifier(Config{BotToken: "tok", ChatID: "42", Enabled: true, APIBase: srv.URL})
	if err := n.SendContactMessageAlert(context.Background(), &models.ContactMessage{Name: "A", Message: "hi"}); err == nil {
		t.Error("expected error for non-200 response")
	}
}
