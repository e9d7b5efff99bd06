package websocket

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DsDac0/Website/domain/ports"
)

type fakeConn struct {
	mu      sync.Mutex
	written []Message
	fail    bool
	closed  bool
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	c.written = append(c.written, v.(Message))
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// fakeSubscriber hands the registered handler back to the test.
type fakeSubscriber struct {
	handler      ports.OrderEventHandler
	unsubscribed bool
}

func (s *fakeSubscriber) Subscribe(ctx context.Context, handler ports.OrderEventHandler) error {
	s.handler = handler
	return nil
}

func (s *fakeSubscriber) Unsubscribe() error {
	s.unsubscribed = true
	return nil
}

func TestManagerBroadcastDropsBrokenClients(t *testing.T) {
	m := NewManager()
	good := &fakeConn{}
	broken := &fakeConn{fail: true}
	other := &fakeConn{}

	m.Register(good, 1, RoomAdminOrders)
	m.Register(broken, 2, RoomAdminOrders)
	m.Register(other, 3, "elsewhere")

	n := m.BroadcastToRoom(RoomAdminOrders, Message{Type: "ping"})
	if n != 1 {
		t.Errorf("delivered to %d clients, want 1", n)
	}
	if len(good.written) != 1 || len(other.written) != 0 {
		t.Error("message went to the wrong clients")
	}
	if !broken.closed || m.RoomSize(RoomAdminOrders) != 1 {
		t.Error("expected broken client to be dropped")
	}
	if m.ClientCount() != 2 {
		t.Errorf("ClientCount = %d, want 2", m.ClientCount())
	}

	m.Unregister(good)
	m.Unregister(good)
	if m.RoomSize(RoomAdminOrders) != 0 {
		t.Error("expected empty room after unregister")
	}
}

// serialConn records whether two writes ever ran at the same time.
type serialConn struct {
	inFlight   int32
	overlapped int32
	writes     int32
}

func (c *serialConn) WriteJSON(v interface{}) error {
	if atomic.AddInt32(&c.inFlight, 1) > 1 {
		atomic.StoreInt32(&c.overlapped, 1)
	}
	time.Sleep(time.Millisecond)
	atomic.AddInt32(&c.writes, 1)
	atomic.AddInt32(&c.inFlight, -1)
	return nil
}

func (c *serialConn) Close() error { return nil }

func TestBroadcastSerializesWritesPerConnection(t *testing.T) {
	m := NewManager()
	conn := &serialConn{}
	m.Register(conn, 1, RoomAdminOrders)

	const broadcasts = 8
	var wg sync.WaitGroup
	for i := 0; i < broadcasts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.BroadcastToRoom(RoomAdminOrders, Message{Type: "order.created"})
		}()
	}
	wg.Wait()

	if atomic.LoadInt32(&conn.overlapped) != 0 {
		t.Error("writes to the same connection overlapped")
	}
	if got := atomic.LoadInt32(&conn.writes); got != broadcasts {
		t.Errorf("writes = %d, want %d", got, broadcasts)
	}
}

func TestOrderBroadcasterForwardsEvents(t *testing.T) {
	m := NewManager()
	conn := &fakeConn{}
	m.Register(conn, 1, RoomAdminOrders)

	sub := &fakeSubscriber{}
	b := NewOrderBroadcaster(sub, m)
	if err := b.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	sub.handler(&ports.OrderEvent{Type: ports.OrderEventCreated, OrderID: 42, Total: "3700.00"})
	sub.handler(nil)

	if len(conn.written) != 1 {
		t.Fatalf("expected 1 message, got %d", len(conn.written))
	}
	msg := conn.written[0]
	if msg.Type != ports.OrderEventCreated {
		t.Errorf("type = %q", msg.Type)
	}
	if e, ok := msg.Data.(*ports.OrderEvent); !ok || e.OrderID != 42 {
		t.Errorf("unexpected payload %#v", msg.Data)
	}

	if err := b.Stop(); err != nil || !sub.unsubscribed {
		t.Errorf("Stop = %v, unsubscribed = %v", err, sub.unsubscribed)
	}
}
