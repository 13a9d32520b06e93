package http

import (
	"time"

	"github.com/adlaunch/backend/internal/config"
	"github.com/adlaunch/backend/internal/http/handlers"
	"github.com/adlaunch/backend/internal/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	campaignHandler *handlers.CampaignHandler,
	adCopyHandler *handlers.AdCopyHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)))

	// Auth
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/me", middleware.AuthMiddleware(cfg, log), userHandler.GetMe)

	// Meta (static option lists for the wizard UI)
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta/objectives", metaHandler.GetObjectives)
	api.Get("/meta/statuses", metaHandler.GetStatuses)
	api.Get("/meta/audience", metaHandler.GetAudienceOptions)

	// Campaigns
	api.Get("/campaigns", campaignHandler.ListCampaigns)
	api.Post("/campaigns", campaignHandler.CreateCampaign)
	api.Get("/campaigns/:id", campaignHandler.GetCampaign)
	api.Patch("/campaigns/:id", campaignHandler.UpdateCampaign)
	api.Delete("/campaigns/:id", campaignHandler.DeleteCampaign)

	// Ad copy generation
	api.Post("/generate-ad-copy-gemini", adCopyHandler.GenerateAdCopy)

	// WebSocket (live campaign events for the dashboard)
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
