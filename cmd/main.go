package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-co-op/gocron/v2"
	"github.com/vort-x/platform/config"
	"github.com/vort-x/platform/handlers"
	"github.com/vort-x/platform/middleware"
	"github.com/vort-x/platform/repositories"
	api "github.com/vort-x/platform/routes"
	"github.com/vort-x/platform/search"
	"github.com/vort-x/platform/seed"
	"github.com/vort-x/platform/services"
	"github.com/vort-x/platform/storage"
)

const schedulerInterval = 30 * time.Second // How often the status scheduler runs

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// File uploads go to Cloudflare R2 when credentials are configured.
	// Without them the in-memory uploader keeps the app fully self-contained.
	var uploader storage.FileUploader
	if cfg.R2AccountID != "" {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("file uploader initialized", slog.String("backend", "cloudflare-r2"))
	} else {
		uploader = storage.NewMemoryUploader(cfg.MediaBaseURL)
		logger.Info("file uploader initialized", slog.String("backend", "memory"))
	}

	var searcher search.Searcher
	if cfg.SearchEndpoint != "" {
		searcher, err = search.NewCompletionSearcher(search.CompletionSearcherConfig{
			Endpoint: cfg.SearchEndpoint,
			APIKey:   cfg.SearchAPIKey,
			Model:    cfg.SearchModel,
		}, search.DefaultDataset())
		if err != nil {
			logger.Error("failed to initialize completion searcher", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("searcher initialized", slog.String("backend", "completion"))
	} else {
		searcher = search.NewStaticSearcher(search.DefaultDataset())
		logger.Info("searcher initialized", slog.String("backend", "static"))
	}

	// All repositories share one generator so ids stay unique across stores.
	ids := repositories.NewIDGenerator()
	userRepo := repositories.NewMemoryUserRepository(ids)
	tournamentRepo := repositories.NewMemoryTournamentRepository(ids)
	communityRepo := repositories.NewMemoryCommunityRepository(ids)
	feedRepo := repositories.NewMemoryFeedRepository(ids)
	conversationRepo := repositories.NewMemoryConversationRepository(ids)
	logger.Info("repositories initialized")

	payments := services.NewMockPaymentProcessor(cfg.PaymentDelay, logger)
	communityService := services.NewCommunityService(communityRepo, ids)
	tournamentService := services.NewTournamentService(tournamentRepo, communityService, payments, uploader, ids, logger)
	feedService := services.NewFeedService(feedRepo, ids)
	dmService := services.NewDMService(conversationRepo, ids)
	dashboardService := services.NewDashboardService(tournamentRepo)
	userService := services.NewUserService(userRepo)
	searchService := services.NewSearchService(searcher, logger)
	logger.Info("services initialized")

	if err := seed.Run(context.Background(), seed.Dependencies{
		Users:         userRepo,
		Tournaments:   tournamentRepo,
		Communities:   communityRepo,
		Feed:          feedRepo,
		Conversations: conversationRepo,
		Extras:        cfg.SeedExtras,
	}); err != nil {
		logger.Error("failed to seed demo data", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("demo data seeded", slog.Bool("extras", cfg.SeedExtras))

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		logger.Error("failed to create scheduler", slog.Any("error", err))
		os.Exit(1)
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(schedulerInterval),
		gocron.NewTask(func() {
			if err := tournamentService.AutoUpdateStatusesByDates(context.Background()); err != nil {
				logger.Error("scheduler: status update run failed", slog.Any("error", err))
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		logger.Error("failed to register status update job", slog.Any("error", err))
		os.Exit(1)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Shutdown(); err != nil {
			logger.Error("failed to stop scheduler", slog.Any("error", err))
		}
	}()
	logger.Info("tournament status scheduler started", slog.Duration("interval", schedulerInterval))

	h := api.Handlers{
		Tournament: handlers.NewTournamentHandler(tournamentService),
		Community:  handlers.NewCommunityHandler(communityService),
		Feed:       handlers.NewFeedHandler(feedService),
		DM:         handlers.NewDMHandler(dmService),
		Search:     handlers.NewSearchHandler(searchService),
		Dashboard:  handlers.NewDashboardHandler(dashboardService),
		Settings:   handlers.NewSettingsHandler(userService),
	}
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(router, h, middleware.Session(userRepo, seed.DefaultUserID))
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
