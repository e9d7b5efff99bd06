package nats

import (
	"encoding/json"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/pkg/logger"
)

// Subscriber listens to live order events over core NATS.
type Subscriber struct {
	conn *nats.Conn
	sub  *nats.Subscription

	mu       sync.RWMutex
	handlers []ports.OrderEventHandler
}

func NewSubscriber(conn *nats.Conn) *Subscriber {
	return &Subscriber{conn: conn}
}

func (s *Subscriber) OnEvent(handler ports.OrderEventHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, handler)
}

func (s *Subscriber) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sub != nil {
		return nil
	}

	sub, err := s.conn.Subscribe(SubjectOrdersWildcard, s.handleMessage)
	if err != nil {
		return err
	}
	s.sub = sub
	logger.Info("NATS subscriber started", "subject", SubjectOrdersWildcard)
	return nil
}

func (s *Subscriber) handleMessage(msg *nats.Msg) {
	var event ports.OrderEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to parse order event", "subject", msg.Subject, "error", err)
		return
	}
	if event.OrderID == 0 {
		logger.Warn("Dropping order event without order id", "subject", msg.Subject)
		return
	}

	s.mu.RLock()
	handlers := s.handlers
	s.mu.RUnlock()

	for _, h := range handlers {
		dispatch(h, event)
	}
}

// dispatch runs h synchronously to keep event order, containing panics.
func dispatch(h ports.OrderEventHandler, event ports.OrderEvent) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Order event handler panicked", "error", r)
		}
	}()
	h(&event)
}

func (s *Subscriber) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sub == nil {
		return nil
	}
	if err := s.sub.Unsubscribe(); err != nil {
		logger.Warn("Failed to unsubscribe", "error", err)
	}
	s.sub = nil
	logger.Info("NATS subscriber stopped")
	return nil
}

func (s *Subscriber) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sub != nil
}
