package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juanrengga/seido-web/app/controllers"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get("/", controllers.HandleHome)
	app.Get("/tentang-kami", controllers.HandleAbout)
	app.Get("/layanan", controllers.HandleServices)
	app.Get("/portfolio", controllers.HandlePortfolio)
	app.Get("/kontak", controllers.HandleKontak)

	// Blog
	app.Get("/blog", controllers.HandleBlogIndex)
	app.Get("/blog/:slug", controllers.HandleBlogShow)
}
