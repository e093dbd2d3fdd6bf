package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/handlers"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if cfg.Storage.ArchiveUploads {
		if err := storageService.EnsureUploadDir(); err != nil {
			log.Fatalf("❌ Failed to create upload directory: %v", err)
		}
	}

	extractor := services.NewExtractorService()
	normalizer := services.NewNormalizerService()
	keywordService := services.NewKeywordService(cfg.Analyzer)
	gapService := services.NewGapService(cfg.Analyzer)
	scorerService := services.NewScorerService(cfg.Scoring)
	suggestionService := services.NewSuggestionService(cfg.Analyzer)
	profileService := services.NewProfileService()
	reportService := services.NewReportService()
	log.Println("✅ Services initialized successfully")

	// Initialize analyzer pipeline
	analyzerService := services.NewAnalyzerService(
		extractor,
		normalizer,
		keywordService,
		gapService,
		scorerService,
		suggestionService,
		profileService,
		cfg.Analyzer,
	)
	log.Printf("✅ Analyzer initialized (match policy: %s, scoring policy: %s)",
		cfg.Analyzer.MatchPolicy, cfg.Scoring.Policy)

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(
		analyzerService,
		storageService,
		cfg.Storage.MaxFileSize,
		cfg.Storage.ArchiveUploads,
	)
	reportHandler := handlers.NewReportHandler(analyzeHandler, reportService)
	keywordsHandler := handlers.NewKeywordsHandler(
		extractor,
		normalizer,
		keywordService,
		cfg.Storage.MaxFileSize,
		cfg.Analyzer.TopKeywords,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/report", reportHandler.HandleReport)
	api.Post("/keywords", keywordsHandler.HandleKeywords)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/analyze",
				"POST /api/v1/report",
				"POST /api/v1/keywords",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
