package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juanrengga/seido-web/internal/pkg/usercontext"
)

// LoginPath is the single entry point into the admin area.
const LoginPath = "/admin/login"

// RequireAuth ensures a logged-in web session; redirects to the login page
// if missing. Every /admin route except the login page goes through this.
func RequireAuth(c *fiber.Ctx) error {
	v := c.Locals(usercontext.KeyFromProtected)
	loggedIn := false
	if b, ok := v.(bool); ok {
		loggedIn = b
	}
	if !loggedIn {
		return c.Redirect(LoginPath, fiber.StatusSeeOther)
	}
	return c.Next()
}

// RedirectIfAuthenticated keeps logged-in users away from the login page.
func RedirectIfAuthenticated(c *fiber.Ctx) error {
	v := c.Locals(usercontext.KeyFromProtected)
	if b, ok := v.(bool); ok && b {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireAPIAuth ensures a logged-in session for API routes and returns
// JSON 401 instead of a redirect.
func RequireAPIAuth(c *fiber.Ctx) error {
	v := c.Locals(usercontext.KeyFromProtected)
	loggedIn := false
	if b, ok := v.(bool); ok {
		loggedIn = b
	}
	if !loggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	return c.Next()
}
