package handler

import (
	"ai-dialogue-be/internal/pkg/logger"
	internalWS "ai-dialogue-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// DialogueStreamHandler upgrades observers onto the websocket hub so they
// receive turn and fact events for a session as they happen.
type DialogueStreamHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewDialogueStreamHandler(hub *internalWS.Hub, log logger.ILogger) *DialogueStreamHandler {
	return &DialogueStreamHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *DialogueStreamHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws/dialogue/:session_id", h.ServeWs)
}

// ServeWs handles websocket requests from session observers.
func (h *DialogueStreamHandler) ServeWs(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("DialogueStreamHandler", "Observer connected", map[string]interface{}{
				"session_id": sessionID,
			})
			internalWS.ServeWs(h.hub, conn, sessionID)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
