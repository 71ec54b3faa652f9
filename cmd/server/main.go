package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dithetoauditflow-toolset/email-tracker/internal/infrastructure/config"
	"github.com/dithetoauditflow-toolset/email-tracker/internal/infrastructure/holidays"
	"github.com/dithetoauditflow-toolset/email-tracker/internal/infrastructure/persistence"
	mongoRepo "github.com/dithetoauditflow-toolset/email-tracker/internal/interface/repository"
	"github.com/dithetoauditflow-toolset/email-tracker/internal/interface/rest"
	"github.com/dithetoauditflow-toolset/email-tracker/internal/usecase"
	"github.com/dithetoauditflow-toolset/email-tracker/pkg/logger"
	"github.com/dithetoauditflow-toolset/email-tracker/pkg/metrics"
	"github.com/dithetoauditflow-toolset/email-tracker/pkg/workdays"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	defer log.Sync()
	log.Info("Starting Follow-Up Audit Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up repositories
	companyRepo := mongoRepo.NewMongoCompanyRepository(db)
	emailRepo := mongoRepo.NewMongoEmailRepository(db)
	settingsRepo := mongoRepo.NewGormSettingsRepository(gormDB)

	// Build the working-day calendar from the holiday registry snapshot.
	// Registry edits take effect on the next start.
	registry, err := holidays.NewFileRegistry(cfg.HolidaysPath).Load()
	if err != nil {
		log.Fatal("Failed to load holiday registry", "error", err)
	}
	calendar, err := workdays.New(registry)
	if err != nil {
		log.Fatal("Failed to build working-day calendar", "error", err)
	}

	m := metrics.NewMetrics(cfg.MetricsNamespace)
	auditService := usecase.NewAuditService(companyRepo, emailRepo, settingsRepo, calendar, m, log)

	// Set up HTTP server for reports and metrics
	mux := http.NewServeMux()
	rest.NewHandler(auditService, log).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Follow-Up Audit Service stopped")
}
