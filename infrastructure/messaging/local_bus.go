package messaging

import (
	"context"
	"sync"

	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/pkg/logger"
)

// LocalOrderBus delivers order events inside the process when NATS is not configured.
// It implements both the publisher and the subscriber port.
type LocalOrderBus struct {
	mu       sync.RWMutex
	handlers []ports.OrderEventHandler
}

func NewLocalOrderBus() *LocalOrderBus {
	return &LocalOrderBus{}
}

func (b *LocalOrderBus) PublishOrderEvent(ctx context.Context, event *ports.OrderEvent) error {
	b.mu.RLock()
	handlers := b.handlers
	b.mu.RUnlock()

	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.ErrorContext(ctx, "Order event handler panicked", "error", r)
				}
			}()
			e := *event
			h(&e)
		}()
	}
	return nil
}

func (b *LocalOrderBus) Subscribe(ctx context.Context, handler ports.OrderEventHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
	return nil
}

func (b *LocalOrderBus) Unsubscribe() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = nil
	return nil
}
