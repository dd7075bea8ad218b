package controllers

import (
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/juanrengga/seido-web/app/models"
	"github.com/juanrengga/seido-web/app/repository"
)

// HandlePageView appends one analytics fact. Analytics must never break a
// page, so every failure path still answers 204.
func HandlePageView(c *fiber.Ctx) error {
	var req struct {
		URL      string `json:"url"`
		Referrer string `json:"referrer"`
	}
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return c.SendStatus(fiber.StatusNoContent)
	}

	view := &models.PageView{
		URL:       req.URL,
		UserAgent: c.Get(fiber.HeaderUserAgent),
		Referrer:  req.Referrer,
	}

	if err := repository.GetGlobalFactory().GetPageViewRepository().Record(c.UserContext(), view); err != nil {
		fiberlog.Errorf("page view insert failed: %v", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
