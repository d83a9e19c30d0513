package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	accountUseCase "github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/account"
	summaryUseCase "github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/summary"
	transactionUseCase "github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/transaction"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/gateway/instant"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/gateway/paypal"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/memory"
	eventPublisher "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/messaging"
	timeProvider "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/config"
)

// ledgerStore is the persistence backend selected by database.driver
type ledgerStore struct {
	uow          persistence.UnitOfWork
	paymentLocks persistence.PaymentLockRepository
	pinger       handler.Pinger
	close        func() error
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	store, err := newLedgerStore(cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to initialize ledger store", map[string]any{
			"driver": cfg.Database.Driver,
			"error":  err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
	defer func() { _ = store.close() }()

	gateways, err := newGatewayRegistry(cfg, tp, appLogger)
	if err != nil {
		appLogger.Error("Failed to configure payment gateways", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}

	publisher, err := newEventPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to configure event publisher", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}

	// Initialize use cases
	background := context.Background()
	accountRepo := store.uow.GetAccountRepository(background)
	accounts := accountUseCase.NewAccountUseCase(accountRepo, tp, appLogger.Named("accounts"), seedAccounts(cfg)...)
	reporter := summaryUseCase.NewReporter(accountRepo, store.uow.GetTransactionRepository(background),
		appLogger.Named("summary"), cfg.Transaction.SummaryRecentLimit)
	wallet := transactionUseCase.NewTransactionService(
		store.uow,
		store.paymentLocks,
		gateways,
		publisher,
		tp,
		appLogger.Named("wallet"),
		transactionUseCase.Options{
			Currency:         cfg.Payment.Currency,
			PaymentLockTTL:   cfg.Transaction.PaymentLockTTL,
			QueueSize:        cfg.Transaction.QueueSize,
			QueueIdleTimeout: cfg.Transaction.QueueIdleTimeout,
		},
	)

	if cfg.Seed.Enabled {
		if err := accounts.CreateDefaultAccounts(background); err != nil {
			appLogger.Error("Failed to create default accounts", map[string]any{"error": err.Error()})
		}
	}

	janitorCtx, stopJanitor := context.WithCancel(background)
	go runLockJanitor(janitorCtx, store.paymentLocks, cfg.Transaction.LockCleanupInterval, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router, routes.Handlers{
		Wallet:   handler.NewWalletHandler(wallet, appLogger),
		Callback: handler.NewCallbackHandler(wallet, appLogger),
		Account:  handler.NewAccountHandler(accounts, reporter, appLogger),
		Admin:    handler.NewAdminHandler(wallet, appLogger),
		Health:   handler.NewHealthHandler(store.pinger, tp, appLogger),
	}, cfg.Admin.APIKey, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port":     cfg.Server.Port,
			"env":      cfg.Environment,
			"store":    cfg.Database.Driver,
			"events":   cfg.Events.Driver,
			"redirect": gateways.RedirectMethods(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			_ = appLogger.Flush()
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(background, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	stopJanitor()
	appLogger.Info("Draining ledger work...", nil)
	wallet.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
}

func newLedgerStore(cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) (*ledgerStore, error) {
	if cfg.Database.Driver == "memory" {
		mem := memory.NewStore(tp, appLogger.Named("memory"))
		return &ledgerStore{
			uow:          mem,
			paymentLocks: mem.PaymentLocks(),
			pinger:       mem,
			close:        func() error { return nil },
		}, nil
	}

	dbConfig, err := database.CreateConfigFromViperConfig(cfg)
	if err != nil {
		return nil, err
	}

	dbManager := database.NewManager(dbConfig, appLogger.Named("database"), tp)
	if _, err := dbManager.Connect(); err != nil {
		return nil, err
	}

	migrateCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := dbManager.MigrationManager().MigrateAll(migrateCtx); err != nil {
		_ = dbManager.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &ledgerStore{
		uow:          dbManager.CreateUnitOfWork(),
		paymentLocks: dbManager.PaymentLocks(),
		pinger:       dbManager,
		close:        dbManager.Close,
	}, nil
}

func newGatewayRegistry(cfg *config.Config, tp coreport.TimeProvider, appLogger coreport.Logger) (*gateway.Registry, error) {
	var declineAbove int64
	if cfg.Payment.Instant.DeclineAbove != "" {
		cents, err := entity.ParseAmount(cfg.Payment.Instant.DeclineAbove)
		if err != nil {
			return nil, fmt.Errorf("payment.instant.declineAbove: %w", err)
		}
		declineAbove = cents
	}

	registry := gateway.NewRegistry()
	processor := instant.NewGateway(declineAbove, appLogger.Named("instant"))
	for _, method := range []entity.PaymentMethod{entity.MethodGCash, entity.MethodVisa, entity.MethodMastercard} {
		registry.RegisterCharger(method, processor)
	}

	if cfg.Payment.PayPal.Enabled {
		pp := cfg.Payment.PayPal
		registry.RegisterRedirector(entity.MethodPayPal, paypal.NewClient(paypal.Config{
			Mode:         pp.Mode,
			BaseURL:      pp.BaseURL,
			ClientID:     pp.ClientID,
			ClientSecret: pp.ClientSecret,
			ReturnURL:    pp.ReturnURL,
			CancelURL:    pp.CancelURL,
			Timeout:      pp.Timeout,
		}, nil, tp, appLogger.Named("paypal")))
	}

	return registry, nil
}

func newEventPublisher(cfg *config.Config, appLogger coreport.Logger) (messaging.EventPublisher, error) {
	switch cfg.Events.Driver {
	case "noop":
		return eventPublisher.NoopPublisher{}, nil
	case "sqs":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := eventPublisher.NewSQSClient(ctx, cfg.Events.SQS.Region, cfg.Events.SQS.Endpoint)
		if err != nil {
			return nil, err
		}
		return eventPublisher.NewSQSPublisher(client, cfg.Events.SQS.QueueURL, appLogger.Named("events")), nil
	default:
		return eventPublisher.NewLogPublisher(appLogger.Named("events")), nil
	}
}

func seedAccounts(cfg *config.Config) []accountUseCase.DefaultAccount {
	seeds := make([]accountUseCase.DefaultAccount, 0, len(cfg.Seed.Accounts))
	for _, a := range cfg.Seed.Accounts {
		seeds = append(seeds, accountUseCase.DefaultAccount{ID: a.ID, Balance: a.Balance})
	}
	return seeds
}

// runLockJanitor removes expired payment leases until ctx is cancelled
func runLockJanitor(ctx context.Context, locks persistence.PaymentLockRepository, interval time.Duration, appLogger coreport.Logger) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := locks.CleanupExpiredLocks(ctx)
			if err != nil {
				appLogger.Warn("Failed to clean up expired payment locks", map[string]any{"error": err.Error()})
				continue
			}
			if removed > 0 {
				appLogger.Debug("Expired payment locks removed", map[string]any{"count": removed})
			}
		}
	}
}
