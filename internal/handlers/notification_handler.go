package handlers

import (
	"errors"
	"strings"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	sessionws "github.com/himanshu123g/fitlife-plus/internal/websocket"
	"github.com/himanshu123g/fitlife-plus/pkg/utils"
)

// NotificationHandler upgrades authenticated clients onto the session-update
// hub. The socket is push-only; clients keep polling the REST API as the
// source of truth.
type NotificationHandler struct {
	hub       *sessionws.Hub
	jwtSecret string
}

func NewNotificationHandler(hub *sessionws.Hub, jwtSecret string) *NotificationHandler {
	return &NotificationHandler{
		hub:       hub,
		jwtSecret: jwtSecret,
	}
}

func (h *NotificationHandler) WebSocketAuth(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "WebSocket upgrade required"})
	}

	claims, err := h.parseWSClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("role", claims.Role)
	return c.Next()
}

func (h *NotificationHandler) HandleWebSocket(conn *websocket.Conn) {
	userID, _ := conn.Locals("user_id").(string)
	client := sessionws.NewClient(h.hub, conn, userID)

	h.hub.Register(client)
	go client.WritePump()
	client.ReadPump()
}

func (h *NotificationHandler) parseWSClaims(c *fiber.Ctx) (*utils.Claims, error) {
	tokenString := strings.TrimSpace(c.Query("token"))
	if tokenString == "" {
		authHeader := strings.TrimSpace(c.Get("Authorization"))
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
	}

	if tokenString == "" {
		return nil, errors.New("missing token")
	}

	return utils.ValidateToken(tokenString, h.jwtSecret)
}
