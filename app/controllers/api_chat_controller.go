package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juanrengga/seido-web/internal/pkg/assistant"
)

// ChatController serves the customer-service chat widget
type ChatController struct {
	assistant *assistant.Assistant
}

var chatController *ChatController

// InitializeChatController wires the controller
func InitializeChatController(a *assistant.Assistant) {
	chatController = &ChatController{assistant: a}
}

// GetChatController returns the initialized controller
func GetChatController() *ChatController {
	return chatController
}

// HandleChat produces one assistant reply for the widget. Provider errors
// surface as the fixed fallback text with a 200 status: the widget always
// gets something it can show.
func (cc *ChatController) HandleChat(c *fiber.Ctx) error {
	var req struct {
		History []assistant.Turn `json:"history"`
		Message string           `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message is required"})
	}

	reply, _ := cc.assistant.Chat(c.UserContext(), req.History, req.Message)

	return c.JSON(fiber.Map{
		"response": reply,
	})
}
