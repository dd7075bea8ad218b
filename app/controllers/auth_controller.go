package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/sujit-baniya/flash"

	"github.com/juanrengga/seido-web/app/models"
	"github.com/juanrengga/seido-web/app/repository"
	"github.com/juanrengga/seido-web/internal/pkg/middleware"
	"github.com/juanrengga/seido-web/internal/pkg/session"
	"github.com/juanrengga/seido-web/internal/pkg/usercontext"
)

// HandleAdminLogin serves the login form and processes submissions. The
// route itself is wrapped in RedirectIfAuthenticated, so a logged-in user
// never sees this page.
func HandleAdminLogin(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Render("admin/login", layoutData(c, "Login - Seido Admin", fiber.Map{}), "layouts/admin")
	}

	fm := fiber.Map{
		"type": "error",
	}

	// notice: do not tell the caller whether the email or the password
	// was the wrong half
	userRepo := repository.GetGlobalFactory().GetUserRepository()
	user, err := userRepo.GetByEmail(c.UserContext(), c.FormValue("email"))
	if err != nil {
		fm["message"] = "There is a problem with the login process"

		return flash.WithError(c, fm).Redirect(middleware.LoginPath)
	}

	if !models.CheckPasswordHash(c.FormValue("password"), user.Password) {
		fm["message"] = "There is a problem with the login process"

		return flash.WithError(c, fm).Redirect(middleware.LoginPath)
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect(middleware.LoginPath)
	}

	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUsername, user.Name)
	sess.Set(usercontext.KeyIsAdmin, user.Role == models.RoleAdmin)

	if err := sess.Save(); err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect(middleware.LoginPath)
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := userRepo.Update(c.UserContext(), user); err != nil {
		fiberlog.Errorf("failed to store last login for %s: %v", user.Email, err)
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Selamat datang kembali, " + user.Name,
	}

	return flash.WithSuccess(c, fm).Redirect("/admin")
}

// HandleAdminLogout destroys the session and returns to the login page
func HandleAdminLogout(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm["message"] = "logged out (no sess)"

		return flash.WithError(c, fm).Redirect(middleware.LoginPath)
	}

	if err := sess.Destroy(); err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect(middleware.LoginPath)
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Anda telah keluar",
	}

	c.Locals(usercontext.KeyFromProtected, false)

	return flash.WithSuccess(c, fm).Redirect(middleware.LoginPath)
}
