package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/matdash/matdash-backend/internal/materials/handler"
	"github.com/matdash/matdash-backend/internal/materials/repository"
	"github.com/matdash/matdash-backend/internal/materials/service"
	"github.com/matdash/matdash-backend/internal/materials/view"
	"github.com/matdash/matdash-backend/pkg/config"
	"github.com/matdash/matdash-backend/pkg/database"
	"github.com/matdash/matdash-backend/pkg/httputil"
	"github.com/matdash/matdash-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithValidation("dashboard-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("dashboard-service", cfg.Server.Environment)
	log.Info().Str("table", cfg.Dashboard.SourceTable()).Msg("starting Dashboard Service")

	// Connect to database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Initialize repository
	summaryRepo := repository.NewSummaryRepository(db, &cfg.Dashboard)

	// Initialize service
	dashboardService := service.NewDashboardService(summaryRepo, &cfg.Dashboard, log)

	// Initialize handler
	dashboardView := view.New(cfg.Dashboard.Title)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, dashboardView, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedMethods: []string{http.MethodGet},
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]interface{}{
			"status":   "healthy",
			"service":  "dashboard-service",
			"database": db.Health(r.Context()),
		})
	})

	// Dashboard page
	r.Get("/", dashboardHandler.Page)

	// API routes
	r.Route("/api/v1/dashboard", func(r chi.Router) {
		r.Get("/", dashboardHandler.Dashboard)
		r.Get("/languages", dashboardHandler.Languages)
		r.Get("/material-types", dashboardHandler.MaterialTypes)
	})

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
