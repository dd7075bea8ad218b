package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/juanrengga/seido-web/app/controllers"
	"github.com/juanrengga/seido-web/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())

	v1 := api.Group("/v1")

	// Public read + submit paths
	v1.Get("/articles", controllers.HandleAPIArticles)
	v1.Get("/articles/:slug", controllers.HandleAPIArticleBySlug)
	v1.Get("/partners", controllers.HandleAPIPartners)
	v1.Post("/contact", controllers.GetContactController().HandleContactSubmit)
	v1.Post("/chat", controllers.GetChatController().HandleChat)
	v1.Post("/page-views", controllers.HandlePageView)

	// Mutating paths require a session regardless of what the admin UI
	// already enforces
	v1.Post("/upload", middleware.RequireAPIAuth, controllers.GetUploadController().HandleUpload)
	v1.Post("/ai/suggestions", middleware.RequireAPIAuth, controllers.GetAIController().HandleSuggestions)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
