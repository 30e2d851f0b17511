package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hli-landing/pkg/api"
	"hli-landing/pkg/config"
	"hli-landing/pkg/middleware"
	"hli-landing/pkg/services"
	"hli-landing/pkg/submission"
	"hli-landing/pkg/utils"
	"hli-landing/pkg/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	destination, err := submission.New(cfg, logger)
	if err != nil {
		logger.Fatal("Error creating submission destination", zap.Error(err))
	}

	renderer, err := web.NewRenderer(web.Options{
		Content:        web.DefaultPageContent(cfg.ConciergeEmail),
		Stylesheet:     web.Stylesheet(),
		LinkStylesheet: cfg.StyleVariant == "linked",
		FormAction:     "/contact",
	})
	if err != nil {
		logger.Fatal("Error creating page renderer", zap.Error(err))
	}

	// Initialize services
	submissionService := services.NewLandingSubmissionService(
		destination,
		cfg.LeadSource,
		cfg.ConciergeEmail,
		logger,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxyList()); err != nil {
		logger.Fatal("Error setting trusted proxies", zap.Error(err))
	}
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins()))

	handlers := api.NewHandlers(submissionService, renderer, logger)
	api.RegisterRoutes(router, handlers, api.RouteOptions{
		SubmitLimit:    middleware.NewRateLimiter(cfg.MaxRequestsPerMin).Middleware(logger),
		LinkStylesheet: cfg.StyleVariant == "linked",
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Server starting",
		zap.String("addr", srv.Addr),
		zap.String("mode", string(destination.Mode())),
		zap.String("env", cfg.Env),
	)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Error starting server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Server is shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}
