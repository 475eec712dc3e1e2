// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	"mindease/internal/cache"
	"mindease/internal/config"
	"mindease/internal/database"
	"mindease/internal/middleware"
	"mindease/internal/observability"
	"mindease/internal/repository"
	"mindease/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config            *config.Config
	db                *gorm.DB
	redis             *redis.Client
	promMiddleware    *fiberprometheus.FiberPrometheus
	userRepo          repository.UserRepository
	chatRepo          repository.ChatRepository
	discussionRepo    repository.DiscussionRepository
	friendRepo        repository.FriendRepository
	accountService    *service.AccountService
	chatService       *service.ChatService
	discussionService *service.DiscussionService
	profileService    *service.ProfileService
	uploads           *service.UploadStore
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Initialize Redis
	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	uploads, err := service.NewUploadStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	chatRepo := repository.NewChatRepository(db)
	discussionRepo := repository.NewDiscussionRepository(db)
	friendRepo := repository.NewFriendRepository(db)

	enricher := service.NewEnricher(userRepo)

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: observability.NewHTTPMetrics("mindease-api"),
		userRepo:       userRepo,
		chatRepo:       chatRepo,
		discussionRepo: discussionRepo,
		friendRepo:     friendRepo,
		uploads:        uploads,
	}
	server.accountService = service.NewAccountService(userRepo)
	server.chatService = service.NewChatService(chatRepo, userRepo)
	server.discussionService = service.NewDiscussionService(discussionRepo, enricher, uploads)
	server.profileService = service.NewProfileService(userRepo, friendRepo, enricher, uploads)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware runs before anything that can short-circuit so browser
	// clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5500,http://127.0.0.1:5500"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "MindEase Backend Metrics Dashboard",
	}))

	// Static serving of uploaded attachments
	app.Static("/uploads", s.uploads.Dir())

	// Auth routes
	auth := app.Group("/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Chat routes
	chats := app.Group("/chats")
	chats.Post("/", s.CreateChat)
	chats.Get("/:userId", s.GetChats)

	// Discussion routes. Specific paths are declared before the generic
	// /:id routes so Fiber does not capture them as IDs.
	discussions := app.Group("/discussions")
	discussions.Post("/", s.CreateDiscussion)
	discussions.Get("/", s.GetClassDiscussions)
	discussions.Post("/department", s.CreateDepartmentDiscussion)
	discussions.Get("/department/:dept", s.GetDepartmentDiscussions)
	discussions.Get("/public/all", s.GetPublicDiscussions)
	discussions.Post("/:id/like", s.LikeDiscussion)
	discussions.Get("/:id/likes", s.GetLikeCount)
	discussions.Post("/:id/reply", s.ReplyToDiscussion)
	discussions.Get("/:id/replies", s.GetReplies)

	// Profile routes
	profile := app.Group("/profile")
	profile.Put("/", s.UpdateProfile)
	profile.Post("/upload", s.UploadAvatar)
	profile.Get("/:id", s.GetProfile)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// Redis is optional: the app degrades to direct DB reads.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}
