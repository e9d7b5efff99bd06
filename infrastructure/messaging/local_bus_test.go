package messaging

import (
	"context"
	"testing"

	"github.com/DsDac0/Website/domain/ports"
)

func TestLocalOrderBus(t *testing.T) {
	bus := NewLocalOrderBus()
	ctx := context.Background()

	var received []*ports.OrderEvent
	if err := bus.Subscribe(ctx, func(e *ports.OrderEvent) { received = append(received, e) }); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	_ = bus.Subscribe(ctx, func(e *ports.OrderEvent) { panic("handler failure") })

	event := &ports.OrderEvent{Type: ports.OrderEventCreated, OrderID: 7}
	if err := bus.PublishOrderEvent(ctx, event); err != nil {
		t.Fatalf("PublishOrderEvent: %v", err)
	}
	if len(received) != 1 || received[0].OrderID != 7 {
		t.Fatalf("unexpected deliveries %+v", received)
	}
	if received[0] == event {
		t.Error("handlers should get their own copy of the event")
	}

	_ = bus.Unsubscribe()
	_ = bus.PublishOrderEvent(ctx, event)
	if len(received) != 1 {
		t.Error("expected no delivery after Unsubscribe")
	}
}
