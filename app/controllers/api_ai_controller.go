package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/juanrengga/seido-web/internal/pkg/assistant"
)

// Suggestion types accepted by the endpoint.
const (
	SuggestionTypePortfolio = "portfolio"
	SuggestionTypeArticle   = "article"
)

// AIController serves AI-drafted copy for the admin forms
type AIController struct {
	assistant *assistant.Assistant
}

var aiController *AIController

// InitializeAIController wires the controller
func InitializeAIController(a *assistant.Assistant) {
	aiController = &AIController{assistant: a}
}

// GetAIController returns the initialized controller
func GetAIController() *AIController {
	return aiController
}

// HandleSuggestions drafts form fields for the blog and portfolio editors.
// Unlike the chat widget there is no fallback text here: a provider failure
// is a 502 and the editor keeps whatever was typed.
func (ac *AIController) HandleSuggestions(c *fiber.Ctx) error {
	var req struct {
		Type     string `json:"type"`
		Title    string `json:"title"`
		Category string `json:"category"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	switch req.Type {
	case SuggestionTypePortfolio:
		s, err := ac.assistant.SuggestPortfolio(c.UserContext(), req.Title, req.Category)
		if err != nil {
			fiberlog.Errorf("portfolio suggestion failed: %v", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "suggestion unavailable"})
		}
		return c.JSON(s)

	case SuggestionTypeArticle:
		s, err := ac.assistant.SuggestArticle(c.UserContext(), req.Title)
		if err != nil {
			fiberlog.Errorf("article suggestion failed: %v", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "suggestion unavailable"})
		}
		return c.JSON(s)

	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown suggestion type"})
	}
}
