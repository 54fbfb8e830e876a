package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"pawsitter/internal/adapters/http/middleware"
	"pawsitter/internal/adapters/http/routes"
	"pawsitter/internal/adapters/persistence/models"
	"pawsitter/internal/adapters/persistence/repositories"
	"pawsitter/internal/config"
	"pawsitter/internal/core/services"
	"pawsitter/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"

	_ "pawsitter/docs" // Swagger docs
)

// @title PawSitter API
// @version 1.0
// @description Community bulletin board where owners post care-sitting announcements and sitters apply to them.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@pawsitter.example.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3000
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Token codec with configured signing keys
	codec := jwt.NewCodec(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenMins,
		cfg.JWT.RefreshTokenDays,
	)

	// Scheduled close-expired sweep
	if cfg.Sweep.Enabled {
		sweepService := services.NewSweepService(repositories.NewAnnouncementRepository(db), cfg.Sweep.Schedule)
		if err := sweepService.Start(); err != nil {
			log.Fatalf("❌ Failed to start sweep service: %v", err)
		}
		defer sweepService.Stop()
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "PawSitter API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db, cfg and codec for dependency injection)
	routes.Setup(app, db, cfg, codec)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
