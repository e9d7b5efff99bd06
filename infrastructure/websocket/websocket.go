package websocket

import (
	"sync"

	"github.com/DsDac0/Website/pkg/logger"
)

// RoomAdminOrders receives the live order feed.
const RoomAdminOrders = "admin:orders"

// Conn is the part of a websocket connection the manager needs.
// *github.com/gofiber/websocket/v2.Conn satisfies it.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Client is one registered connection. Writes go through send so that
// concurrent broadcasts never overlap on the same connection.
type Client struct {
	Conn    Conn
	AdminID uint
	RoomID  string

	writeMu sync.Mutex
}

func (c *Client) send(msg Message) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteJSON(msg)
}

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Manager tracks connected admin clients by room.
type Manager struct {
	mu      sync.RWMutex
	clients map[Conn]*Client
	rooms   map[string]map[Conn]*Client
}

func NewManager() *Manager {
	return &Manager{
		clients: make(map[Conn]*Client),
		rooms:   make(map[string]map[Conn]*Client),
	}
}

func (m *Manager) Register(conn Conn, adminID uint, roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	client := &Client{Conn: conn, AdminID: adminID, RoomID: roomID}
	m.clients[conn] = client
	if roomID != "" {
		if m.rooms[roomID] == nil {
			m.rooms[roomID] = make(map[Conn]*Client)
		}
		m.rooms[roomID][conn] = client
	}
	logger.Info("WebSocket client connected", "admin_id", adminID, "room", roomID)
}

func (m *Manager) Unregister(conn Conn) {
	m.mu.Lock()
	client, ok := m.removeLocked(conn)
	m.mu.Unlock()

	if ok {
		conn.Close()
		logger.Info("WebSocket client disconnected", "admin_id", client.AdminID, "room", client.RoomID)
	}
}

func (m *Manager) removeLocked(conn Conn) (*Client, bool) {
	client, ok := m.clients[conn]
	if !ok {
		return nil, false
	}
	delete(m.clients, conn)
	if members := m.rooms[client.RoomID]; members != nil {
		delete(members, conn)
		if len(members) == 0 {
			delete(m.rooms, client.RoomID)
		}
	}
	return client, true
}

// BroadcastToRoom sends msg to every client in the room. Clients that fail the
// write are dropped.
func (m *Manager) BroadcastToRoom(roomID string, msg Message) int {
	m.mu.RLock()
	clients := make([]*Client, 0, len(m.rooms[roomID]))
	for _, client := range m.rooms[roomID] {
		clients = append(clients, client)
	}
	m.mu.RUnlock()

	delivered := 0
	for _, client := range clients {
		if err := client.send(msg); err != nil {
			logger.Warn("WebSocket write failed, dropping client", "room", roomID, "error", err)
			m.Unregister(client.Conn)
			continue
		}
		delivered++
	}
	return delivered
}

func (m *Manager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

func (m *Manager) RoomSize(roomID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms[roomID])
}
