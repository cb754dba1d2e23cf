// @title Essay Assess API
// @version 1.0
// @description Essay answer quality assessment engine for the exam platform.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"essay-assess/internal/adapter"
	embeddingadapter "essay-assess/internal/adapter/embedding"
	"essay-assess/internal/assess"
	"essay-assess/internal/cache"
	"essay-assess/internal/config"
	"essay-assess/internal/database"
	"essay-assess/internal/domain"
	"essay-assess/internal/handler"
	"essay-assess/internal/logger"
	"essay-assess/internal/middleware"
	"essay-assess/internal/repository"
	"essay-assess/internal/service"

	_ "essay-assess/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

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
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Redis is optional: without it the engine still works, just without
	// result and embedding caching.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Warn("Redis address not configured, running without result cache")
	}

	// Pick the semantic similarity strategy.
	var estimator domain.SimilarityEstimator
	switch cfg.Embedding.Source {
	case "lexical", "":
		estimator = assess.NewLexicalEstimator()
		appLogger.Info("Using lexical similarity estimator")
	case "ollama":
		embeddingService, err := embeddingadapter.NewOllamaEmbeddingService(cfg.Embedding.Ollama.ServerURL, cfg.Embedding.Ollama.Model)
		if err != nil {
			appLogger.Fatal("Failed to create Ollama Embedding Service", zap.Error(err))
		}
		estimator = embeddingadapter.NewEstimator(embeddingService)
		appLogger.Info("Using Ollama embedding estimator",
			zap.String("server_url", cfg.Embedding.Ollama.ServerURL),
			zap.String("model", cfg.Embedding.Ollama.Model))
	case "openai":
		embeddingService, err := embeddingadapter.NewOpenAIEmbeddingService(cfg.Embedding.OpenAI.APIKey, cfg.Embedding.OpenAI.Model, cacheAdapter, cfg)
		if err != nil {
			appLogger.Fatal("Failed to create OpenAI Embedding Service", zap.Error(err))
		}
		estimator = embeddingadapter.NewEstimator(embeddingService)
		appLogger.Info("Using OpenAI embedding estimator", zap.String("model", cfg.Embedding.OpenAI.Model))
	default:
		appLogger.Fatal(fmt.Sprintf("Unsupported embedding source: %s", cfg.Embedding.Source))
	}

	// The question store is optional: inline assessments need no DB.
	var questionRepository domain.QuestionRepository
	if cfg.DB.Host != "" {
		db, err := database.NewSQLXOracleDB(cfg.GetDSN())
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		questionRepository = repository.NewQuestionDatabaseAdapter(db)
		appLogger.Info("Question repository initialized")
	} else {
		appLogger.Warn("Database not configured, by-question assessments are disabled")
	}

	conceptCache := service.NewConceptCache()
	engine := service.NewEngine(conceptCache, estimator, cfg.Assessment)

	resultTTL := cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.AssessmentResult, service.DefaultResultCacheExpiration)
	resultCache := service.NewResultCacheService(cacheAdapter, resultTTL)

	assessmentService := service.NewAssessmentService(engine, questionRepository, resultCache, conceptCache)

	assessmentHandler := handler.NewAssessmentHandler(assessmentService)
	healthHandler := handler.NewHealthHandler(cacheAdapter)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", healthHandler.Health)

	apiGroup := app.Group("/api")
	apiGroup.Post("/assessments", assessmentHandler.Assess)
	apiGroup.Post("/assessments/by-question", assessmentHandler.AssessByQuestion)
	apiGroup.Get("/questions/:id", assessmentHandler.GetQuestion)
	apiGroup.Post("/questions", assessmentHandler.CreateQuestion)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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
