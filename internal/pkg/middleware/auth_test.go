package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanrengga/seido-web/internal/pkg/usercontext"
)

// stubSession injects a login state the way UserContextMiddleware does.
func stubSession(loggedIn bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(usercontext.KeyFromProtected, loggedIn)
		return c.Next()
	}
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", stubSession(false), RequireAuth, func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, LoginPath, resp.Header.Get("Location"))
}

func TestRequireAuthPassesLoggedIn(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", stubSession(true), RequireAuth, func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAuthRedirectsWhenLocalMissing(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", RequireAuth, func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
}

func TestRedirectIfAuthenticated(t *testing.T) {
	app := fiber.New()
	app.Get("/admin/login", stubSession(true), RedirectIfAuthenticated, func(c *fiber.Ctx) error {
		return c.SendString("login form")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Header.Get("Location"))
}

func TestRedirectIfAuthenticatedLetsAnonymousThrough(t *testing.T) {
	app := fiber.New()
	app.Get("/admin/login", stubSession(false), RedirectIfAuthenticated, func(c *fiber.Ctx) error {
		return c.SendString("login form")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAPIAuthReturnsJSON401(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/upload", stubSession(false), RequireAPIAuth, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/upload", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
}

func TestRequireAPIAuthPassesLoggedIn(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/upload", stubSession(true), RequireAPIAuth, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/upload", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
