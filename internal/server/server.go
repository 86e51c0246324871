// Package server contains HTTP handlers for the application's endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"yatube/internal/cache"
	"yatube/internal/config"
	"yatube/internal/database"
	"yatube/internal/feed"
	"yatube/internal/middleware"
	"yatube/internal/models"
	"yatube/internal/repository"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Prometheus collectors register globally, so they are created once no
// matter how many Server instances a process builds.
var (
	promOnce     sync.Once
	promInstance *fiberprometheus.FiberPrometheus
)

func metricsCollector() *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInstance = middleware.InitMetrics("yatube-api")
	})
	return promInstance
}

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	groupRepo      repository.GroupRepository
	postRepo       repository.PostRepository
	commentRepo    repository.CommentRepository
	followRepo     repository.FollowRepository
	photoRepo      repository.PhotoRepository
	feed           *feed.Engine
	pageCache      *cache.PageCache
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and
// optionally performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)
	photoRepo := repository.NewPhotoRepository(db)

	prom := metricsCollector()

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		userRepo:       userRepo,
		groupRepo:      groupRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		followRepo:     followRepo,
		photoRepo:      photoRepo,
	}
	server.feed = feed.NewEngine(postRepo, commentRepo, followRepo, photoRepo, userRepo, groupRepo)
	server.pageCache = cache.NewPageCache(redisClient, time.Duration(cfg.FeedCacheTTL)*time.Second)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Uploaded images and the default profile photo
	app.Static("/media", s.config.MediaDir)

	// Auth routes
	auth := app.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Get("/login", s.LoginPage)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Contact pages
	app.Get("/thank-you", s.ThankYou)
	app.Get("/contact-us", s.ContactForm)
	app.Post("/contact-us", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "contact"), s.ContactUs)

	// Feeds
	app.Get("/", s.Index)
	app.Get("/group/:slug", s.GroupPosts)
	app.Get("/follow", s.AuthRequired(), s.FollowIndex)

	// Post creation
	app.Get("/new", s.AuthRequired(), s.NewPostForm)
	app.Post("/new", s.AuthRequired(), middleware.RateLimit(
		s.redis, 10, time.Minute, "create_post"), s.CreatePost)

	// Username-scoped routes. Specific segments must be registered before
	// the generic /:username/:post_id and /:username matchers. Follow,
	// unfollow and delete also answer GET so plain links can drive them.
	app.Get("/:username/follow", s.AuthRequired(), s.ProfileFollow)
	app.Post("/:username/follow", s.AuthRequired(), s.ProfileFollow)
	app.Get("/:username/unfollow", s.AuthRequired(), s.ProfileUnfollow)
	app.Post("/:username/unfollow", s.AuthRequired(), s.ProfileUnfollow)
	app.Post("/:username/photo", s.AuthRequired(), s.EditPhoto)
	app.Get("/:username/:post_id/edit", s.AuthRequired(), s.EditPostForm)
	app.Post("/:username/:post_id/edit", s.AuthRequired(), s.EditPost)
	app.Get("/:username/:post_id/delete", s.AuthRequired(), s.DeletePost)
	app.Post("/:username/:post_id/delete", s.AuthRequired(), s.DeletePost)
	app.Post("/:username/:post_id/comment", s.AuthRequired(), middleware.RateLimit(
		s.redis, 20, time.Minute, "create_comment"), s.AddComment)
	app.Get("/:username/:post_id", s.PostView)
	app.Get("/:username", s.Profile)
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

	// Redis only backs the page cache and rate limits, so the service
	// stays ready without it.
	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
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

// AuthRequired returns middleware that redirects anonymous visitors to the
// login page with the original URL in the next parameter.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := s.currentUserID(c)
		if !ok {
			return s.redirectToLogin(c)
		}

		c.Locals("userID", userID)
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, userID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

func (s *Server) redirectToLogin(c *fiber.Ctx) error {
	next := url.QueryEscape(c.OriginalURL())
	return c.Redirect("/auth/login/?next="+next, fiber.StatusFound)
}

// currentUserID extracts and validates the caller's identity. The token is
// accepted from the Authorization header, the token cookie, or the token
// query parameter. It returns false for anonymous or invalid callers.
func (s *Server) currentUserID(c *fiber.Ctx) (uint, bool) {
	tokenString := ""
	if authHeader := c.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		tokenString = c.Cookies("token")
	}
	if tokenString == "" {
		tokenString = c.Query("token")
	}
	if tokenString == "" {
		return 0, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != "yatube-api" {
		return 0, false
	}
	if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != "yatube-client" {
		return 0, false
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, false
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(userID), true
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName:      "Yatube API",
		ErrorHandler: errorHandler,
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// errorHandler renders errors that escape the handlers. Router-level errors
// (unmatched paths, wrong method) keep their own status instead of
// collapsing into a 500.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code == fiber.StatusNotFound {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Page", c.Path()))
		}
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	}

	log.Printf("Error: %v", err)
	return models.RespondWithError(c, fiber.StatusInternalServerError,
		models.NewInternalError(err))
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
