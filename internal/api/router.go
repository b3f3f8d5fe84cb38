package api

import (
	"errors"

	"leafscan/docs"
	"leafscan/internal/api/handlers"
	"leafscan/pkg/auth"
	"leafscan/pkg/config"
	"leafscan/pkg/metrics"
	"leafscan/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	chatHandler *handlers.ChatHandler,
	communityHandler *handlers.CommunityHandler,
	jwtManager *auth.JWTManager,
	m *metrics.Metrics,
	cfg *config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	appLogger.Info("Serving uploads", zap.String("path", cfg.UploadDir))
	app.Static("/uploads", cfg.UploadDir)

	app.Get("/api/health", handlers.Health)
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	requireAuth := middleware.AuthMiddleware(jwtManager, appLogger)

	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	v1 := app.Group("/api/v1")
	v1.Get("/me", requireAuth, authHandler.Me)
	v1.Put("/me", requireAuth, authHandler.UpdateProfile)

	chatbot := v1.Group("/chatbot")
	chatbot.Get("/status", chatHandler.Status)
	chatbot.Post("/message", requireAuth, chatHandler.SendMessage)
	chatbot.Get("/history", requireAuth, chatHandler.History)
	chatbot.Delete("/history", requireAuth, chatHandler.ClearHistory)
	chatbot.Post("/knowledge/reload", requireAuth, chatHandler.ReloadKnowledge)

	community := v1.Group("/community")
	community.Get("/posts", communityHandler.ListPosts)
	community.Post("/posts", requireAuth, communityHandler.CreatePost)
	community.Post("/posts/upload-image", requireAuth, communityHandler.UploadImage)
	community.Get("/posts/:id", communityHandler.GetPost)
	community.Delete("/posts/:id", requireAuth, communityHandler.DeletePost)
	community.Post("/posts/:id/like", requireAuth, communityHandler.LikePost)
	community.Get("/posts/:id/comments", communityHandler.ListComments)
	community.Post("/posts/:id/comments", requireAuth, communityHandler.AddComment)
	community.Delete("/comments/:id", requireAuth, communityHandler.DeleteComment)

	return app
}
