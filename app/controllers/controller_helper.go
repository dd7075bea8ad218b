package controllers

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/juanrengga/seido-web/internal/pkg/usercontext"
)

// Read-path fetches against the content store go through a shared bounded
// retry so one slow backend hiccup does not surface as a broken page.
const (
	readAttempts  = 3
	readBaseDelay = 300 * time.Millisecond
	readTimeout   = 10 * time.Second
)

func readContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), readTimeout)
}

// parseIDParam parses a numeric :id route parameter.
func parseIDParam(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64)
}

// layoutData assembles the fiber.Map every rendered view receives.
func layoutData(c *fiber.Ctx, title string, data fiber.Map) fiber.Map {
	userCtx := usercontext.GetUserContext(c)

	m := fiber.Map{
		"Title":      title,
		"IsLoggedIn": userCtx.IsLoggedIn,
		"Username":   userCtx.Username,
		"Flash":      flash.Get(c),
	}
	for k, v := range data {
		m[k] = v
	}
	return m
}
