package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/handlers"
	"alfredoptarigan/resume-analyzer/internal/metrics"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
	"alfredoptarigan/resume-analyzer/internal/web"
)

// Uploads above the validator's limit must still reach it so the user gets
// the size message instead of a transport error.
const bodyLimit = 32 << 20

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	appMetrics := metrics.New("resume-analyzer")

	// Initialize analysis service clients
	contract, err := services.NewAnalysisContract(
		cfg.Analyzer.Contract,
		cfg.Analyzer.BaseURL,
		cfg.Analyzer.Timeout,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize analyzer contract: %v", err)
	}
	chatService := services.NewChatService(cfg.Analyzer.BaseURL, cfg.Analyzer.Timeout)
	validator := services.NewUploadValidator(contract.Kind(), cfg.Upload.MaxFileSize)
	log.Printf("✅ Analyzer %s using the %s contract\n", cfg.Analyzer.BaseURL, contract.Kind())

	// Initialize sessions
	sessionManager := services.NewSessionManager(
		repositories.NewSessionRepository[services.SessionController](),
		contract,
		chatService,
		validator,
		appMetrics,
		cfg.Session.IdleTimeout,
		cfg.Session.SweepInterval,
	)
	sessionManager.StartSweeper()
	log.Println("✅ Session manager initialized")

	// Initialize worker
	worker := services.NewWorker(
		cfg.Worker.Concurrency,
		cfg.Worker.QueueSize,
		appMetrics,
	)
	worker.Start(context.Background())
	log.Println("✅ Worker started successfully")

	// Initialize Handlers
	sessionHandler := handlers.NewSessionHandler(sessionManager)
	uploadHandler := handlers.NewUploadHandler(sessionManager, worker)
	chatHandler := handlers.NewChatHandler(sessionManager)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer",
		ReadTimeout:  30 * time.Second,
		BodyLimit:    bodyLimit,
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
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	handlers.RegisterRoutes(app, sessionHandler, uploadHandler, chatHandler)
	app.Get("/metrics", adaptor.HTTPHandler(appMetrics.Handler()))
	app.Use("/", web.Handler())

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
		worker.Stop()
		sessionManager.Stop()
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 Upload page: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
	<-stopped
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
