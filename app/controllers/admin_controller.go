package controllers

import (
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/juanrengga/seido-web/app/repository"
	"github.com/juanrengga/seido-web/internal/pkg/statistics"
	"github.com/juanrengga/seido-web/internal/pkg/usercontext"
)

const popularPagesLimit = 10

// HandleAdminDashboard renders the admin dashboard summary. The route is
// behind RequireAuth; the in-handler check is the second gate so a
// misconfigured route table cannot expose it.
func HandleAdminDashboard(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return c.Redirect("/admin/login", fiber.StatusSeeOther)
	}

	data := statistics.GetDashboardData(c.UserContext())

	// Popular pages are decorative; a failed aggregate leaves the widget empty
	popular, err := repository.GetGlobalFactory().GetPageViewRepository().CountByURL(c.UserContext(), popularPagesLimit)
	if err != nil {
		fiberlog.Errorf("dashboard popular pages: %v", err)
		popular = nil
	}

	return c.Render("admin/dashboard", layoutData(c, "Dashboard - Seido Admin", fiber.Map{
		"Stats":        data,
		"PopularPages": popular,
	}), "layouts/admin")
}
