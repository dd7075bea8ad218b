package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/juanrengga/seido-web/app/controllers"
	"github.com/juanrengga/seido-web/internal/pkg/assetstore"
	"github.com/juanrengga/seido-web/internal/pkg/assistant"
	"github.com/juanrengga/seido-web/internal/pkg/middleware"
	"github.com/juanrengga/seido-web/internal/pkg/notify"
	"github.com/juanrengga/seido-web/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// External collaborators shared by the controllers
	assets := setupAssetStore()
	relay := notify.NewRelay()

	controllers.InitializeAdminBlogController()
	controllers.InitializeAdminPortfolioController(assets)
	controllers.InitializeAdminInboxController(relay)
	controllers.InitializeContactController(relay)
	ai := assistant.New()
	controllers.InitializeChatController(ai)
	controllers.InitializeAIController(ai)
	controllers.InitializeUploadController(assets)

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

// setupAssetStore builds the S3 client, or nil when disabled. A missing
// asset store degrades uploads and image cleanup, nothing else.
func setupAssetStore() *assetstore.Client {
	cfg, err := assetstore.LoadConfig()
	if err != nil {
		log.Errorf("asset store config: %v", err)
		return nil
	}
	if !cfg.IsEnabled() {
		log.Info("asset store disabled")
		return nil
	}

	client, err := assetstore.NewClient(cfg)
	if err != nil {
		log.Errorf("asset store init: %v", err)
		return nil
	}
	return client
}
