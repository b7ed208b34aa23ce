package handler

import (
	"stembills-dashboard/internal/pkg/logger"
	internalWS "stembills-dashboard/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// UpdateHandler carries callback updates over a websocket, mostly hover traffic.
type UpdateHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewUpdateHandler(hub *internalWS.Hub, log logger.ILogger) *UpdateHandler {
	return &UpdateHandler{hub: hub, logger: log}
}

// ServeWs upgrades the request and hands the connection to the hub.
func (h *UpdateHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("UpdateHandler", "Starting WebSocket session", map[string]interface{}{"remote": conn.RemoteAddr().String()})
		internalWS.ServeWs(h.hub, conn)
		h.logger.Info("UpdateHandler", "WebSocket session ended", map[string]interface{}{"remote": conn.RemoteAddr().String()})
	})(c)
}

func (h *UpdateHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/_dash-ws", h.ServeWs)
}
