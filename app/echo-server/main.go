package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crochetCorner/app/echo-server/router"
	"crochetCorner/business/product"
	"crochetCorner/business/recommend"
	"crochetCorner/business/review"
	userService "crochetCorner/business/user"
	"crochetCorner/internal/middleware"
	"crochetCorner/internal/repository/notification"
	psqlRepo "crochetCorner/internal/repository/postgres"
	redisRepo "crochetCorner/internal/repository/redis"
	"crochetCorner/internal/rest"
	"crochetCorner/pkg/config"
	"crochetCorner/pkg/database"
	redisdb "crochetCorner/pkg/database/redis"
	"crochetCorner/pkg/logger"
	"crochetCorner/pkg/metrics"
	"crochetCorner/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Crochet Corner", "version", cfg.App.Version)

	utils.SetJWTSecret(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	featureRepo := psqlRepo.NewFeatureRepository(db)
	interactionRepo := psqlRepo.NewInteractionRepository(db)
	recommendationRepo := psqlRepo.NewRecommendationRepository(db)
	reviewRepo := psqlRepo.NewReviewRepository(db)
	sentimentRepo := psqlRepo.NewSentimentRepository(db)
	sessionRepo := redisRepo.NewSessionRepository(redisClient)

	// Init service
	recoCfg := recommend.DefaultConfig()
	recoCfg.ContentWeight = cfg.Reco.ContentWeight
	recoCfg.CollaborativeWeight = cfg.Reco.CollaborativeWeight
	recoCfg.CacheTTL = time.Duration(cfg.Reco.CacheTTLMinutes) * time.Minute

	userSvc := userService.NewUserService(userRepo, validate, mailjetEmail, sessionRepo, cfg.App.AppEmailVerificationKey, cfg.App.AppDeploymentUrl)
	productSvc := product.NewProductService(productRepo, featureRepo)
	reviewSvc := review.NewReviewService(reviewRepo, sentimentRepo)
	recoSvc := recommend.NewService(interactionRepo, featureRepo, recommendationRepo, recoCfg)

	// Init handler
	userHandler := rest.NewUserHandler(userSvc)
	productHandler := rest.NewProductHandler(productSvc)
	reviewHandler := rest.NewReviewHandler(reviewSvc)
	recoHandler := rest.NewRecommendationHandler(recoSvc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(sessionRepo)
	optionalAuth := middleware.OptionalAuthMiddleware()
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired)
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetupReviewRoutes(api, reviewHandler, authRequired)
	router.SetupRecommendationRoutes(api, recoHandler, authRequired, optionalAuth)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
