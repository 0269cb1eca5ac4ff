package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/spf13/cobra"

	_ "github.com/d-fine/dataland-sourcing-service/docs" // swagger docs
	"github.com/d-fine/dataland-sourcing-service/internal/config"
	"github.com/d-fine/dataland-sourcing-service/internal/handler"
	"github.com/d-fine/dataland-sourcing-service/internal/infrastructure/community"
	infradb "github.com/d-fine/dataland-sourcing-service/internal/infrastructure/database"
	"github.com/d-fine/dataland-sourcing-service/internal/infrastructure/metadata"
	"github.com/d-fine/dataland-sourcing-service/internal/router"
	"github.com/d-fine/dataland-sourcing-service/internal/usecase"
	"github.com/d-fine/dataland-sourcing-service/internal/worker"
	dbpkg "github.com/d-fine/dataland-sourcing-service/pkg/database"
	"github.com/d-fine/dataland-sourcing-service/pkg/logger"
)

//	@title			Dataland Sourcing Service
//	@version		0.1.0
//	@description	Coordinates data requests and the shared data sourcing workflow, including priority management and request history

//	@contact.name	Dataland
//	@contact.url	https://dataland.com

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Token in format: Bearer {token}

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "sourcing-service",
	Short: "Dataland data sourcing service",
	Long: `The data sourcing service coordinates user data requests and the shared
sourcing workflow that fulfils them. It groups requests per data dimension,
tracks the sourcing lifecycle and reconciles request histories.`,
	Version: version,
	Run:     runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	// Load configuration
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	slog.Info("config loaded successfully", "config_file", cfgFile)
	slog.Info("sourcing service starting...",
		"version", version,
		"config", cfgFile,
	)

	// Setup Hertz to use slog
	hertzLogger := logger.NewHertzSlogAdapter(slog.Default())
	hlog.SetLogger(hertzLogger)
	hlog.SetLevel(hlog.LevelDebug)

	// Initialize database
	dbClient, dbPool, err := dbpkg.NewClient(cfg.Database, slog.Default())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Repositories
	requestRepo := infradb.NewRequestRepository(dbClient)
	dataSourcingRepo := infradb.NewDataSourcingRepository(dbClient)
	revisionStore := infradb.NewRevisionStore(dbClient)

	// Collaborator clients
	communityClient, err := community.NewClient(
		cfg.Community.BaseURL,
		cfg.Community.ServiceToken,
		cfg.Community.Timeout,
		slog.Default(),
	)
	if err != nil {
		slog.Error("failed to create community client", "error", err)
		os.Exit(1)
	}

	metadataClient, err := metadata.NewClient(
		cfg.Metadata.BaseURL,
		cfg.Metadata.ServiceToken,
		cfg.Metadata.Timeout,
		slog.Default(),
	)
	if err != nil {
		slog.Error("failed to create metadata client", "error", err)
		os.Exit(1)
	}

	// Usecases
	grouper := usecase.NewDimensionGrouper(dataSourcingRepo, slog.Default())
	requestUsecase := usecase.NewRequestUsecase(requestRepo, grouper, metadataClient, slog.Default())
	dataSourcingUsecase := usecase.NewDataSourcingUsecase(
		dataSourcingRepo,
		requestRepo,
		revisionStore,
		communityClient,
		slog.Default(),
	)
	reconciler := usecase.NewHistoryReconciler(cfg.History.ProximityThresholdMs)
	historyUsecase := usecase.NewHistoryUsecase(requestRepo, revisionStore, reconciler, slog.Default())
	rebalanceUsecase := usecase.NewRebalanceUsecase(requestRepo, communityClient, cfg.Rebalancer.PageSize, slog.Default())

	slog.Info("usecases initialized")

	// Handlers
	auth := handler.NewAuth(cfg.JWT.Secret, slog.Default())
	requestHandler := handler.NewRequestHandler(requestUsecase, historyUsecase, slog.Default())
	sourcingHandler := handler.NewDataSourcingHandler(dataSourcingUsecase, slog.Default())
	adminHandler := handler.NewAdminHandler(rebalanceUsecase, slog.Default())
	healthHandler := handler.NewHealthHandler(dbPool)

	// Create Hertz server with performance optimization
	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.Server.ReadTimeout),
		server.WithWriteTimeout(cfg.Server.WriteTimeout),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	// Setup routes
	router.Setup(h, auth, requestHandler, sourcingHandler, adminHandler, healthHandler)

	// Background priority rebalancer
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if cfg.Rebalancer.Enabled {
		rebalancer := worker.NewRebalancer(rebalanceUsecase, cfg.Rebalancer.Interval, slog.Default())
		go rebalancer.Run(workerCtx)
		slog.Info("priority rebalancer started", "interval", cfg.Rebalancer.Interval)
	}

	// Start server
	slog.Info("server started successfully",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
	)

	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	stopWorker()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	// Close database connection
	if err := dbpkg.Close(dbClient, slog.Default()); err != nil {
		slog.Error("failed to close database", "error", err)
	}

	slog.Info("server stopped gracefully")
}
