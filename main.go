package main

import (
	"embed"
	"log"
	"time"

	"taskly-be/internal/config"
	"taskly-be/internal/controllers"
	"taskly-be/internal/database"
	"taskly-be/internal/jwt"
	"taskly-be/internal/middleware"
	"taskly-be/internal/repository"
	"taskly-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

//go:embed migrations/*.sql
var migrations embed.FS

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Connect to database. A store that cannot be reached at startup is
	// fatal rather than degraded service.
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db, migrations); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	taskService := service.NewTaskService(taskRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	taskController := controllers.NewTaskController(taskService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()
	router.Use(middleware.CORS())

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Auth routes with stricter rate limiting
	users := router.Group("/users")
	users.Use(authRateLimiter.LimitMiddleware())
	{
		users.POST("/register", authController.Register)
		users.POST("/login", authController.Login)
	}

	// Task routes - require JWT authentication
	tasks := router.Group("/tasks")
	tasks.Use(generalRateLimiter.LimitMiddleware())
	tasks.Use(middleware.AuthMiddleware(jwtService))
	{
		tasks.POST("", taskController.CreateTask)
		tasks.GET("", taskController.ListTasks)
		tasks.GET("/:id", taskController.GetTask)
		tasks.PUT("/:id", taskController.UpdateTask)
		tasks.DELETE("/:id", taskController.DeleteTask)
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
