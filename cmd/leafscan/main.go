package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leafscan/internal/api"
	"leafscan/internal/api/handlers"
	"leafscan/internal/assistant"
	"leafscan/internal/repository"
	"leafscan/internal/service"
	"leafscan/pkg/auth"
	"leafscan/pkg/config"
	"leafscan/pkg/logger"
	"leafscan/pkg/metrics"
	"leafscan/pkg/postgres"
	"leafscan/pkg/redisclient"

	"go.uber.org/zap"
)

// @title LeafScan API
// @version 1.0
// @description LiAn farming assistant, accounts and community forum.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting LeafScan service")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to apply schema", zap.Error(err))
	}

	redisClient, err := redisclient.NewClient(ctx, &cfg.Redis, appLogger)
	if err != nil {
		appLogger.Warn("Redis unavailable, LLM rate limiting disabled", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	m := metrics.New()

	userRepo := repository.NewUserRepository(db, appLogger)
	chatRepo := repository.NewChatRepository(db, appLogger)
	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)
	postRepo := repository.NewPostRepository(db, appLogger)
	commentRepo := repository.NewCommentRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	engine := assistant.NewEngine(assistant.DefaultKnowledgeBase())
	knowledgeService := service.NewKnowledgeService(knowledgeRepo, engine, m, logger.Named("knowledge"))
	if _, _, err := knowledgeService.Reload(ctx); err != nil {
		appLogger.Warn("Using built-in knowledge base", zap.Error(err))
		m.KnowledgeSize.Set(float64(engine.KnowledgeBase().Len()))
	}

	delegates, closeDelegates := buildDelegates(ctx, &cfg.LLM, appLogger)
	defer closeDelegates()

	var limiter service.RateLimiter
	if redisClient != nil {
		limiter = service.NewRedisRateLimiter(redisClient, cfg.Redis.Prefix, cfg.Chat.RateLimitPerHour, time.Hour)
	}

	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	chatService := service.NewChatService(engine, chatRepo, delegates, limiter, m, cfg.Chat, cfg.LLM.Timeout, logger.Named("chat"))
	communityService := service.NewCommunityService(postRepo, commentRepo, userRepo, cfg.Server.UploadDir, logger.Named("community"))

	authHandler := handlers.NewAuthHandler(authService, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, knowledgeService, appLogger)
	communityHandler := handlers.NewCommunityHandler(communityService, appLogger)

	app := api.SetupRouter(authHandler, chatHandler, communityHandler, jwtManager, m, &cfg.Server, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr), zap.Any("providers", chatService.Status().Providers))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

// buildDelegates creates the configured LLM providers in order. Providers
// without an API key are skipped.
func buildDelegates(ctx context.Context, cfg *config.LLMConfig, log *zap.Logger) ([]service.LLMDelegate, func()) {
	var (
		delegates []service.LLMDelegate
		closers   []func() error
	)

	for _, name := range cfg.Providers {
		switch name {
		case "gemini", "groq":
			pc := cfg.Gemini
			if name == "groq" {
				pc = cfg.Groq
			}
			if pc.APIKey == "" {
				log.Warn("LLM provider has no API key, skipping", zap.String("provider", name))
				continue
			}
			delegates = append(delegates, service.NewOpenAIDelegate(name, pc, logger.Named(name)))
		case "gigachat":
			if cfg.GigaChat.APIKey == "" {
				log.Warn("LLM provider has no API key, skipping", zap.String("provider", name))
				continue
			}
			d, err := service.NewGigaChatDelegate(ctx, &cfg.GigaChat, logger.Named(name))
			if err != nil {
				log.Error("Failed to initialize GigaChat", zap.Error(err))
				continue
			}
			delegates = append(delegates, d)
			closers = append(closers, d.Close)
		default:
			log.Warn("Unknown LLM provider", zap.String("provider", name))
		}
	}

	if len(delegates) == 0 {
		log.Info("No LLM providers configured, answering from the knowledge base only")
	}

	return delegates, func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Warn("Failed to close LLM client", zap.Error(err))
			}
		}
	}
}
