package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/agritrace-service/config"
	"github.com/fekuna/agritrace-service/internal/auth"
	"github.com/fekuna/agritrace-service/internal/ledger"
	ledgerWorker "github.com/fekuna/agritrace-service/internal/ledger/worker"
	"github.com/fekuna/agritrace-service/internal/memstore"
	"github.com/fekuna/agritrace-service/internal/product"
	"github.com/fekuna/agritrace-service/internal/server"
	"github.com/fekuna/agritrace-service/internal/stakeholder"
	"github.com/fekuna/agritrace-service/internal/transfer"
	"github.com/fekuna/agritrace-service/pkg/broker"
	"github.com/fekuna/agritrace-service/pkg/cache"
	"github.com/fekuna/agritrace-service/pkg/database/postgres"
	"github.com/fekuna/agritrace-service/pkg/logger"
	"github.com/fekuna/agritrace-service/pkg/metrics"
	"github.com/fekuna/agritrace-service/pkg/search"

	prodH "github.com/fekuna/agritrace-service/internal/product/handler"
	prodRepoPkg "github.com/fekuna/agritrace-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/agritrace-service/internal/product/usecase"

	shH "github.com/fekuna/agritrace-service/internal/stakeholder/handler"
	shListenerPkg "github.com/fekuna/agritrace-service/internal/stakeholder/listener"
	shRepoPkg "github.com/fekuna/agritrace-service/internal/stakeholder/repository"
	shUCPkg "github.com/fekuna/agritrace-service/internal/stakeholder/usecase"

	trH "github.com/fekuna/agritrace-service/internal/transfer/handler"
	trRepoPkg "github.com/fekuna/agritrace-service/internal/transfer/repository"
	trUCPkg "github.com/fekuna/agritrace-service/internal/transfer/usecase"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	metrics.Register(prometheus.DefaultRegisterer)

	// 3. Initialize Storage
	var (
		shRepo   stakeholder.Repository
		prodRepo product.Repository
		trRepo   transfer.Repository
	)

	switch cfg.Server.StorageDriver {
	case "memory":
		store := memstore.New()
		shRepo = store.Stakeholders()
		prodRepo = store.Products()
		trRepo = store.Transfers()
		appLogger.Warn("Using in-memory storage, state is lost on restart")
	default:
		db, err := postgres.NewPostgres(&postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to database", zap.Error(err))
		}
		defer db.Close()
		appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

		shRepo = shRepoPkg.NewPGRepository(db)
		prodRepo = prodRepoPkg.NewPGRepository(db)
		trRepo = trRepoPkg.NewPGRepository(db)
	}

	// 4. Initialize Redis (product locks and view cache)
	var (
		locker    transfer.Locker = memstore.NewLocker()
		viewCache product.Cache
	)
	if cfg.Redis.Enabled && cfg.Server.StorageDriver != "memory" {
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		locker = redisClient
		viewCache = redisClient
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		appLogger.Warn("Redis disabled, product locks are local to this process")
	}

	// 5. Initialize Elasticsearch
	var searchIndex product.SearchIndex
	if cfg.Elastic.Enabled {
		esClient, err := search.NewClient(&search.Config{
			Addresses: cfg.Elastic.Addresses,
			Username:  cfg.Elastic.Username,
			Password:  cfg.Elastic.Password,
		})
		if err != nil {
			// search falls back to the database
			appLogger.Warn("Could not connect to Elasticsearch", zap.Error(err))
		} else {
			searchIndex = esClient
			appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
		}
	}

	// 6. Initialize Kafka (external ledger and verification events)
	var externalLedger ledger.Ledger
	var verificationConsumer *broker.KafkaConsumer
	if cfg.Kafka.Enabled {
		if cfg.Ledger.Enabled {
			ledgerProducer := broker.NewProducer(&broker.Config{
				Brokers: cfg.Kafka.Brokers,
				Topic:   cfg.Kafka.LedgerTopic,
			})
			defer ledgerProducer.Close()
			externalLedger = ledger.NewKafkaLedger(ledgerProducer)
			appLogger.Info("Connected to Kafka Producer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.LedgerTopic))
		}

		verificationConsumer = broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.VerificationTopic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer verificationConsumer.Close()
		appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.VerificationTopic))
	}
	if externalLedger == nil {
		appLogger.Warn("External ledger disabled, transfers are recorded as skipped")
	}

	// 7. Initialize UseCases
	tokens := auth.NewTokenManager(cfg.JWT.SecretKey, cfg.JWT.TokenTTL)
	credentials := auth.Argon2{}

	shUC := shUCPkg.NewStakeholderUseCase(shRepo, credentials, tokens, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, shRepo, viewCache, searchIndex, appLogger)
	trUC := trUCPkg.NewTransferUseCase(trRepo, prodRepo, shRepo, credentials, locker, externalLedger, prodUC, appLogger, trUCPkg.Options{
		LockTTL:         cfg.Transfer.LockTTL,
		LedgerTimeout:   cfg.Ledger.Timeout,
		MaxSyncAttempts: cfg.Ledger.MaxAttempts,
		SyncGrace:       cfg.Ledger.SyncGrace,
	})

	// 8. Start Background Workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if verificationConsumer != nil {
		go shListenerPkg.NewVerificationListener(verificationConsumer, shUC, appLogger).Start(ctx)
	}
	if externalLedger != nil {
		go ledgerWorker.NewSyncWorker(trUC, cfg.Ledger.RetryInterval, cfg.Ledger.BatchSize, appLogger).Start(ctx)
	}

	// 9. Initialize Handlers
	handlers := server.Handlers{
		Stakeholders: shH.NewStakeholderHandler(shUC, appLogger),
		Products:     prodH.NewProductHandler(prodUC, appLogger),
		Transfers:    trH.NewTransferHandler(trUC, appLogger),
	}
	authCfg := server.Auth{Tokens: tokens, AdminKey: cfg.JWT.AdminAPIKey}

	// 10. Start gRPC Server
	grpcServer, healthServer := server.NewGRPCServer(authCfg, handlers)

	lis, err := net.Listen("tcp", listenAddr(cfg.Server.GRPCPort))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	appLogger.Info("Starting gRPC server", zap.String("port", cfg.Server.GRPCPort))
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// 11. Start HTTP Gateway
	httpServer := server.NewHTTPServer(authCfg, handlers)

	appLogger.Info("Starting HTTP server", zap.String("port", cfg.Server.HTTPPort))
	go func() {
		if err := httpServer.Start(listenAddr(cfg.Server.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve http", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	healthServer.Shutdown()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}

func listenAddr(port string) string {
	if !strings.HasPrefix(port, ":") && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}
