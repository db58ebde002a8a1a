package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linebook-service/internal/infrastructure/config"
	"linebook-service/internal/infrastructure/oauth"
	"linebook-service/internal/infrastructure/persistence"
	"linebook-service/internal/infrastructure/router"
	repo "linebook-service/internal/interface/repository"
	"linebook-service/internal/interface/webhook"
	"linebook-service/internal/usecase"
	"linebook-service/pkg/logger"
	"linebook-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Starting Linebook Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	// Set up metrics
	appMetrics := metrics.NewMetrics("linebook")

	// Set up repositories
	reservationRepo := repo.NewMongoReservationRepo(db)

	lineOAuth := oauth.NewLineOAuth(cfg.LineChannelToken, cfg.LineChannelID, cfg.LineChannelClientSecret, log)
	replyRepo := repo.NewLineReplyRepository(lineOAuth.GetTokenSource(ctx), appMetrics, log)

	// Optional service catalog backed by Postgres
	var helpHandler *usecase.HelpHandler
	if cfg.PostgresURI != "" {
		log.Info("Connecting to PostgreSQL for the service catalog")
		gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		if err := repo.MigrateServiceCatalog(gormDB); err != nil {
			log.Fatal("Failed to migrate service catalog", "error", err)
		}
		helpHandler = usecase.NewHelpHandler(repo.NewGormServiceCatalogRepo(gormDB), replyRepo, log)
	} else {
		helpHandler = usecase.NewHelpHandler(nil, replyRepo, log)
	}

	// Set up the command router. Registration order matters: the exact
	// "check reservations" phrase must win over the "reserve" prefix.
	commandRouter := router.NewCommandRouter(log)
	commandRouter.Register(usecase.NewCheckHandler(reservationRepo, replyRepo, log))
	commandRouter.Register(usecase.NewReserveHandler(reservationRepo, replyRepo, log))
	commandRouter.Register(usecase.NewCancelHandler(reservationRepo, replyRepo, log))
	commandRouter.Register(helpHandler)

	dispatcher := usecase.NewDispatcher(
		commandRouter,
		usecase.NewWelcomeHandler(replyRepo),
		replyRepo,
		appMetrics,
		log,
	)

	webhookHandler := webhook.NewHandler(cfg.LineChannelSecret, dispatcher, log)

	// Set up HTTP server
	mux := http.NewServeMux()
	mux.HandleFunc("/webhook", webhookHandler.Webhook)
	mux.HandleFunc("/test-webhook", webhookHandler.TestWebhook)
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

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Linebook Service stopped")
}
