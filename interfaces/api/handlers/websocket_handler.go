package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	ws "github.com/DsDac0/Website/infrastructure/websocket"
	"github.com/DsDac0/Website/pkg/logger"
	"github.com/DsDac0/Website/pkg/utils"
)

type WebSocketHandler struct {
	manager *ws.Manager
}

func NewWebSocketHandler(manager *ws.Manager) *WebSocketHandler {
	return &WebSocketHandler{manager: manager}
}

func (h *WebSocketHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// AdminOrders joins the connection to the admin order feed until the client disconnects.
// Incoming messages are read only to notice the disconnect.
func (h *WebSocketHandler) AdminOrders(c *websocket.Conn) {
	var adminID uint
	if admin, ok := c.Locals(utils.AdminLocalsKey).(*utils.AdminContext); ok {
		adminID = admin.AdminID
	}

	h.manager.Register(c, adminID, ws.RoomAdminOrders)
	defer h.manager.Unregister(c)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			logger.Debug("Admin feed connection closed", "admin_id", adminID, "error", err)
			return
		}
	}
}
