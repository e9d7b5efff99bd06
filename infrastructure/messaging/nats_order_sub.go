package messaging

import (
	"context"

	"github.com/DsDac0/Website/domain/ports"
	natspkg "github.com/DsDac0/Website/infrastructure/nats"
)

// NATSOrderSubscriber adapts the NATS subscriber to OrderEventSubscriberPort.
type NATSOrderSubscriber struct {
	subscriber *natspkg.Subscriber
}

func NewNATSOrderSubscriber(subscriber *natspkg.Subscriber) ports.OrderEventSubscriberPort {
	return &NATSOrderSubscriber{subscriber: subscriber}
}

func (s *NATSOrderSubscriber) Subscribe(ctx context.Context, handler ports.OrderEventHandler) error {
	s.subscriber.OnEvent(handler)
	if !s.subscriber.IsRunning() {
		return s.subscriber.Start()
	}
	return nil
}

func (s *NATSOrderSubscriber) Unsubscribe() error {
	return s.subscriber.Stop()
}
