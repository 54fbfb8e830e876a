package routes

import (
	"pawsitter/internal/adapters/http/handlers"
	"pawsitter/internal/adapters/http/middleware"
	"pawsitter/internal/adapters/persistence/repositories"
	"pawsitter/internal/config"
	"pawsitter/internal/core/services"
	"pawsitter/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, codec *jwt.Codec) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	announcementRepo := repositories.NewAnnouncementRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	// Initialize services
	identityService := services.NewIdentityService(codec)
	authService := services.NewAuthService(userRepo, codec)
	announcementService := services.NewAnnouncementService(announcementRepo, applicationRepo, userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes (stricter rate limit against brute force)
	auth := apiV1.Group("/auth")
	auth.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/refresh", middleware.AuthRateLimiter(), authHandler.Refresh)
	auth.Get("/me", middleware.AuthMiddleware(identityService), authHandler.Me)

	// Announcement routes. Static paths are registered before /:id so
	// "applications" and "close-expired" are not captured as ids.
	announcements := apiV1.Group("/announcements")
	announcements.Get("/", announcementHandler.List)
	announcements.Get("/applications", middleware.AuthMiddleware(identityService), announcementHandler.ListApplications)
	announcements.Post("/close-expired", middleware.AuthMiddleware(identityService), announcementHandler.CloseExpired)
	announcements.Get("/:id", announcementHandler.Get)
	announcements.Post("/:id/apply", announcementHandler.Apply)
	announcements.Post("/", middleware.AuthMiddleware(identityService), announcementHandler.Create)
	announcements.Delete("/:id", middleware.AuthMiddleware(identityService), announcementHandler.Delete)
	announcements.Patch("/:id/moderate", middleware.AuthMiddleware(identityService), announcementHandler.Moderate)
}
