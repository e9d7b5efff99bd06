package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/DsDac0/Website/domain/models"
)

// Message is a rendered email ready to hand to a provider.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

var confirmationHTML = template.Must(template.New("order_confirmation").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #dc2626; text-align: center;">MEGA AUTO PARTS</h2>
  <h3>Потврда за нарачка #{{.Order.ID}}</h3>

  <div style="background-color: #f9f9f9; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h4>Детали за нарачката:</h4>
    <p><strong>Име:</strong> {{.Order.FirstName}} {{.Order.LastName}}</p>
    <p><strong>Емаил:</strong> {{.Order.Email}}</p>
    <p><strong>Телефон:</strong> {{.Order.Phone}}</p>
    <p><strong>Адреса:</strong> {{.Order.Address}}, {{.Order.City}} {{.Order.PostalCode}}</p>
    <p><strong>Начин на плаќање:</strong> {{.PaymentLabel}}</p>
  </div>

  <div style="background-color: #f0f0f0; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h4>Нарачани производи:</h4>
    <pre style="font-family: Arial, sans-serif; white-space: pre-wrap;">{{.ItemsList}}</pre>
    <hr style="margin: 15px 0;">
    <p style="font-size: 18px; font-weight: bold;">Вкупно: {{.Total}} ден.</p>
  </div>

  <p>Ви благодариме за нарачката! Ќе ве контактираме наскоро за потврда и достава.</p>

  <div style="text-align: center; margin-top: 30px; color: #666;">
    <p>MEGA AUTO PARTS - Квалитетни автомобилски делови</p>
  </div>
</div>
`))

// ItemsList renders one bullet line per order item.
func ItemsList(order *models.Order) string {
	lines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		name := fmt.Sprintf("#%d", item.ProductID)
		if item.Product != nil {
			name = item.Product.Name
		}
		lines = append(lines, fmt.Sprintf("• %s - Количина: %d - Цена: %s ден.", name, item.Quantity, item.Price.StringFixed(2)))
	}
	return strings.Join(lines, "\n")
}

// BuildOrderConfirmation renders the customer confirmation for a placed order.
func BuildOrderConfirmation(order *models.Order) (*Message, error) {
	items := ItemsList(order)
	total := order.Total.StringFixed(2)

	var buf bytes.Buffer
	err := confirmationHTML.Execute(&buf, struct {
		Order        *models.Order
		PaymentLabel string
		ItemsList    string
		Total        string
	}{order, order.PaymentMethod.Label(), items, total})
	if err != nil {
		return nil, fmt.Errorf("render confirmation email: %w", err)
	}

	return &Message{
		To:      order.Email,
		Subject: fmt.Sprintf("Потврда за нарачка #%d - MEGA AUTO PARTS", order.ID),
		Text:    fmt.Sprintf("Ви благодариме за нарачката!\n\nДетали:\n%s\n\nВкупно: %s ден.", items, total),
		HTML:    buf.String(),
	}, nil
}
