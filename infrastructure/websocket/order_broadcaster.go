package websocket

import (
	"context"
	"sync"

	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/pkg/logger"
)

// OrderBroadcaster forwards order events to the admin live feed.
type OrderBroadcaster struct {
	subscriber ports.OrderEventSubscriberPort
	manager    *Manager

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
}

func NewOrderBroadcaster(subscriber ports.OrderEventSubscriberPort, manager *Manager) *OrderBroadcaster {
	return &OrderBroadcaster{
		subscriber: subscriber,
		manager:    manager,
	}
}

func (b *OrderBroadcaster) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := b.subscriber.Subscribe(ctx, b.handleOrderEvent); err != nil {
		cancel()
		return err
	}
	b.cancel = cancel
	b.running = true
	logger.Info("Order broadcaster started")
	return nil
}

func (b *OrderBroadcaster) handleOrderEvent(event *ports.OrderEvent) {
	if event == nil || event.OrderID == 0 {
		return
	}
	n := b.manager.BroadcastToRoom(RoomAdminOrders, Message{Type: event.Type, Data: event})
	logger.Debug("Order event broadcast", "order_id", event.OrderID, "type", event.Type, "clients", n)
}

func (b *OrderBroadcaster) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.running {
		return nil
	}
	b.running = false
	if b.cancel != nil {
		b.cancel()
	}
	logger.Info("Order broadcaster stopped")
	return b.subscriber.Unsubscribe()
}
