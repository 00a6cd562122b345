package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	authclient_adapter "listing-service/internal/adapters/authclient"
	logger_adapter "listing-service/internal/adapters/logger"
	"listing-service/internal/adapters/memory"
	postgres_adapter "listing-service/internal/adapters/postgres"
	rabbitmq_adapter "listing-service/internal/adapters/rabbitmq"
	"listing-service/internal/adapters/rest"
	"listing-service/internal/configs"
	"listing-service/internal/constants"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"

	"listing-service/pkg/fluentlogger"
	"listing-service/pkg/postgres"
	"listing-service/pkg/rabbitmq/rabbitmq_common"
	"listing-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App wires every adapter to the core and owns their lifecycles.
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	connManager  *rabbitmq_common.ConnectionManager
	producer     *rabbitmq_producer.Publisher
	logger       port.LoggerPort
}

// NewApp is the composition root: all dependencies are created and linked
// here.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// Loggers first so everything after can report failures properly.
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// Listing storage backend.
	var dbPool *pgxpool.Pool
	var listingStorage port.ListingStoragePort

	switch appConfig.Storage.Backend {
	case "postgres":
		dbPool, err = postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Storage.DatabaseURL})
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL", err, nil)
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

		listingStorage, err = postgres_adapter.NewListingStorageAdapter(dbPool)
		if err != nil {
			appLogger.Error("Failed to create postgres listing storage", err, nil)
			dbPool.Close()
			return nil, err
		}
	default:
		listingStorage = memory.NewListingStorage(memory.SeedListings())
		appLogger.Info("In-memory listing storage initialized with seed data.", nil)
	}

	// Session filter state lives in memory regardless of the listing
	// backend; it is ephemeral by nature.
	sessionStore := memory.NewSessionStore()

	// Event publishing.
	var eventPublisher port.EventPublisherPort = rabbitmq_adapter.NewNoopPublisher()
	var connManager *rabbitmq_common.ConnectionManager
	var producer *rabbitmq_producer.Publisher

	if appConfig.Events.Enabled {
		connManagerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
		connManager, err = rabbitmq_common.NewManager(appConfig.Events.RabbitMQURL, rabbitmq_adapter.NewPkgLoggerBridge(connManagerLogger))
		if err != nil {
			appLogger.Error("Failed to create connection manager", err, nil)
			closePool(dbPool)
			return nil, fmt.Errorf("failed to create connection manager: %w", err)
		}
		appLogger.Info("RabbitMQ Connection Manager initialized.", nil)

		producerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})
		producer, err = rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			Config:                   rabbitmq_common.Config{URL: appConfig.Events.RabbitMQURL},
			ExchangeName:             constants.ListingEventsExchange,
			ExchangeType:             "direct",
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,
			Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(producerLogger),
		}, connManager)
		if err != nil {
			appLogger.Error("Failed to create event producer", err, nil)
			connManager.Close()
			closePool(dbPool)
			return nil, fmt.Errorf("failed to create event producer: %w", err)
		}

		eventPublisher, err = rabbitmq_adapter.NewListingEventsAdapter(producer)
		if err != nil {
			appLogger.Error("Failed to create listing events adapter", err, nil)
			producer.Close()
			connManager.Close()
			closePool(dbPool)
			return nil, err
		}
		appLogger.Info("RabbitMQ Event Producer initialized.", nil)
	} else {
		appLogger.Info("Event publishing disabled, using noop publisher.", nil)
	}

	// Auth.
	var authClient port.AuthClientPort
	if appConfig.Auth.Enabled {
		authClient = authclient_adapter.NewClient(appConfig.Auth.ServiceURL)
		appLogger.Info("Auth client initialized.", port.Fields{"auth_service_url": appConfig.Auth.ServiceURL})
	} else {
		appLogger.Warn("Authentication is disabled; all endpoints are open.", nil)
	}
	authMiddleware := rest.NewAuthMiddleware(authClient, appConfig.Auth.Enabled)

	// Use cases.
	findListingsUC := usecase.NewFindListingsUseCase(listingStorage)
	getListingUC := usecase.NewGetListingUseCase(listingStorage)
	addListingUC := usecase.NewAddListingUseCase(listingStorage, eventPublisher)
	updateListingUC := usecase.NewUpdateListingUseCase(listingStorage, eventPublisher)
	attachAgentUC := usecase.NewAttachAgentUseCase(listingStorage)
	sessionFiltersUC := usecase.NewSessionFiltersUseCase(sessionStore, listingStorage)
	mapViewUC := usecase.NewMapViewUseCase(listingStorage)
	companyListingsUC := usecase.NewCompanyListingsUseCase(listingStorage)
	appLogger.Info("All use cases initialized.", nil)

	// REST API server.
	listingsHandler := rest.NewListingsHandler(findListingsUC, getListingUC, addListingUC, updateListingUC, attachAgentUC)
	sessionHandler := rest.NewSessionHandler(sessionFiltersUC)
	viewsHandler := rest.NewViewsHandler(mapViewUC, companyListingsUC)

	apiServer := rest.NewServer(appConfig.Rest.Port, listingsHandler, sessionHandler, viewsHandler,
		authMiddleware, appConfig.Rest.AllowedOrigins, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:       appConfig,
		dbPool:       dbPool,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		connManager:  connManager,
		producer:     producer,
		logger:       appLogger,
	}, nil
}

func closePool(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
	}
}

// Run starts the server and blocks until a shutdown signal or a fatal
// component error.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.producer != nil {
			if err := a.producer.Close(); err != nil {
				a.logger.Error("Error closing event producer", err, nil)
			}
		}

		if a.connManager != nil {
			if err := a.connManager.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ connection", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.Port})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	}

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
