package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/pkg/logger"
)

// Publisher writes order events to the ORDERS stream.
type Publisher struct {
	client *Client
}

func NewPublisher(client *Client) ports.OrderEventPublisherPort {
	return &Publisher{client: client}
}

func (p *Publisher) PublishOrderEvent(ctx context.Context, event *ports.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	ack, err := p.client.js.Publish(ctx, SubjectFor(event.Type), data)
	if err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	logger.DebugContext(ctx, "Order event published",
		"order_id", event.OrderID,
		"type", event.Type,
		"stream", ack.Stream,
		"sequence", ack.Sequence,
	)
	return nil
}

// SubjectFor maps an event type to its subject.
func SubjectFor(eventType string) string {
	switch eventType {
	case ports.OrderEventCreated:
		return SubjectOrderCreated
	case ports.OrderEventStatusChanged:
		return SubjectOrderStatus
	default:
		return "orders.other"
	}
}
