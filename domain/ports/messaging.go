package ports

import "context"

const (
	OrderEventCreated       = "order.created"
	OrderEventStatusChanged = "order.status_changed"
)

// OrderEvent is published after an order commit and fanned out to the admin live feed.
type OrderEvent struct {
	Type          string `json:"type"`
	OrderID       uint   `json:"orderId"`
	Status        string `json:"status"`
	Total         string `json:"total"`
	CustomerName  string `json:"customerName"`
	City          string `json:"city"`
	PaymentMethod string `json:"paymentMethod"`
	ItemCount     int    `json:"itemCount"`
	OccurredAt    int64  `json:"occurredAt"`
}

type OrderEventPublisherPort interface {
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error
}

type OrderEventHandler func(event *OrderEvent)

type OrderEventSubscriberPort interface {
	Subscribe(ctx context.Context, handler OrderEventHandler) error
	Unsubscribe() error
}
