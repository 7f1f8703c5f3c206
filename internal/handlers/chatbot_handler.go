package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/himanshu123g/fitlife-plus/internal/chatbot"
)

type ChatbotHandler struct{}

func NewChatbotHandler() *ChatbotHandler {
	return &ChatbotHandler{}
}

type chatbotReplyRequest struct {
	NodeID string `json:"node_id"`
	Option int    `json:"option"`
}

func (h *ChatbotHandler) Start(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"node": chatbot.Start()})
}

func (h *ChatbotHandler) Reply(c *fiber.Ctx) error {
	var req chatbotReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	node, err := chatbot.Step(req.NodeID, req.Option)
	if err != nil {
		switch {
		case errors.Is(err, chatbot.ErrUnknownNode):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown node"})
		case errors.Is(err, chatbot.ErrInvalidOption):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid option"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to step conversation"})
		}
	}

	return c.JSON(fiber.Map{"node": node})
}
