package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/ats-checker/internal/config"
	"alfredoptarigan/ats-checker/internal/handlers"
	"alfredoptarigan/ats-checker/internal/logger"
	"alfredoptarigan/ats-checker/internal/services"
)

func main() {
	// Load configuration
	cfg, envLoaded := config.Load()
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("❌ %v", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		logrus.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	if !envLoaded {
		log.Info("No .env file found. Using environment and default values.")
	}
	log.Info("✅ Config loaded successfully")

	// Load the skill list once; every analysis shares it read-only
	skillStore := services.NewSkillStore(cfg.Skills.File)
	skills, err := skillStore.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load skills: %v", err)
	}
	log.WithFields(logrus.Fields{
		"path":   skillStore.Path(),
		"skills": len(skills),
	}).Info("✅ Skills loaded successfully")

	critic, err := services.NewSentenceCritic()
	if err != nil {
		log.Fatalf("❌ Failed to initialize sentence critic: %v", err)
	}

	analyzer := services.NewAnalyzer(
		skills,
		services.NewTextExtractor(log),
		critic,
		log,
	)
	log.Info("✅ Analyzer initialized")

	analyzeHandler := handlers.NewAnalyzeHandler(analyzer, cfg.Storage.MaxFileSize, log)
	skillsHandler := handlers.NewSkillsHandler(analyzer)
	log.Info("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume ATS Checker API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    cfg.Storage.BodyLimit(),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	handlers.Register(app.Group("/api/v1"), analyzeHandler, skillsHandler)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume ATS Checker API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/health",
				"POST /api/v1/analyze",
				"GET /api/v1/skills",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Errorf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("🚀 Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
