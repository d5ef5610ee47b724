package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/nadeem1615/learning-platform/internal/adapter"
	"github.com/nadeem1615/learning-platform/internal/adapter/trivia"
	"github.com/nadeem1615/learning-platform/internal/cache"
	"github.com/nadeem1615/learning-platform/internal/config"
	"github.com/nadeem1615/learning-platform/internal/domain"
	"github.com/nadeem1615/learning-platform/internal/handler"
	"github.com/nadeem1615/learning-platform/internal/logger"
	"github.com/nadeem1615/learning-platform/internal/middleware"
	"github.com/nadeem1615/learning-platform/internal/service"
	"github.com/nadeem1615/learning-platform/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		// Process request
		err := c.Next()

		// Log request details
		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Trivia provider
	triviaSource := trivia.NewOpenTDBSource(cfg.Trivia)
	appLogger.Info("Trivia source initialized", zap.String("base_url", cfg.Trivia.BaseURL))

	// Stats backend: cookie by default, Redis when configured
	var redisStore domain.RecordStore
	if cfg.Stats.Backend == "redis" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		redisStore = adapter.NewRedisCacheAdapter(redisClient)
	}
	statsBackend := handler.NewStatsBackend(cfg.Stats, redisStore)
	appLogger.Info("Stats backend initialized", zap.String("backend", cfg.Stats.Backend))

	// Sessions
	sessionManager := session.NewManager(cfg.Session)

	// Initialize services
	quizService := service.NewQuizService(triviaSource)
	statsService := service.NewStatsService(cfg.Stats.TTL)
	sessionService := service.NewSessionService(sessionManager, triviaSource, statsService)

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(quizService)
	sessionHandler := handler.NewSessionHandler(sessionService, statsBackend)
	statsHandler := handler.NewStatsHandler(statsService, statsBackend, cfg.Stats.TTL)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")

	// Catalog and quiz routes
	apiGroup.Get("/categories", quizHandler.GetCatalog)
	apiGroup.Get("/quizzes/recent", quizHandler.GetRecentQuizzes)
	apiGroup.Get("/quizzes/:id", quizHandler.GetQuiz)

	// Session routes
	sessionGroup := apiGroup.Group("/sessions")
	sessionGroup.Post("/", sessionHandler.Start)
	sessionGroup.Get("/:id", sessionHandler.Get)
	sessionGroup.Post("/:id/select", sessionHandler.SelectAnswer)
	sessionGroup.Post("/:id/submit", sessionHandler.Submit)
	sessionGroup.Post("/:id/advance", sessionHandler.Advance)
	sessionGroup.Post("/:id/hint", sessionHandler.UseHint)
	sessionGroup.Delete("/:id", sessionHandler.Abandon)

	// User stats routes
	userGroup := apiGroup.Group("/users/me")
	userGroup.Get("/stats", statsHandler.GetMyStats)
	userGroup.Post("/xp", statsHandler.AddXP)
	userGroup.Post("/completed", statsHandler.AddCompletedQuiz)
	userGroup.Post("/identity", statsHandler.SetIdentity)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
