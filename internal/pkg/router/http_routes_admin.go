package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juanrengga/seido-web/app/controllers"
	"github.com/juanrengga/seido-web/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	// Login is the only admin route outside the auth gate
	app.Get("/admin/login", middleware.RedirectIfAuthenticated, controllers.HandleAdminLogin)
	app.Post("/admin/login", middleware.RedirectIfAuthenticated, controllers.HandleAdminLogin)

	adminGroup := app.Group("/admin", middleware.RequireAuth)
	adminGroup.Get("/", controllers.HandleAdminDashboard)
	adminGroup.Post("/logout", controllers.HandleAdminLogout)

	// Blog management
	blog := controllers.GetAdminBlogController()
	adminGroup.Get("/blog", blog.HandleAdminBlog)
	adminGroup.Get("/blog/create", blog.HandleAdminBlogCreate)
	adminGroup.Post("/blog/store", blog.HandleAdminBlogStore)
	adminGroup.Get("/blog/edit/:id", blog.HandleAdminBlogEdit)
	adminGroup.Post("/blog/update/:id", blog.HandleAdminBlogUpdate)
	adminGroup.Post("/blog/delete/:id", blog.HandleAdminBlogDelete)

	// Portfolio management
	portfolio := controllers.GetAdminPortfolioController()
	adminGroup.Get("/portfolio", portfolio.HandleAdminPortfolio)
	adminGroup.Get("/portfolio/create", portfolio.HandleAdminPortfolioCreate)
	adminGroup.Post("/portfolio/store", portfolio.HandleAdminPortfolioStore)
	adminGroup.Get("/portfolio/edit/:id", portfolio.HandleAdminPortfolioEdit)
	adminGroup.Post("/portfolio/update/:id", portfolio.HandleAdminPortfolioUpdate)
	adminGroup.Post("/portfolio/delete/:id", portfolio.HandleAdminPortfolioDelete)

	// Partner (mitra) management
	adminGroup.Get("/mitra", portfolio.HandleAdminMitra)
	adminGroup.Post("/mitra/store", portfolio.HandleAdminMitraStore)
	adminGroup.Post("/mitra/delete/:id", portfolio.HandleAdminMitraDelete)

	// Message inbox
	inbox := controllers.GetAdminInboxController()
	adminGroup.Get("/pesan-masuk", inbox.HandleAdminInbox)
	adminGroup.Post("/pesan-masuk/read/:id", inbox.HandleAdminInboxMarkRead)
	adminGroup.Post("/pesan-masuk/reply/:id", inbox.HandleAdminInboxReply)
}
