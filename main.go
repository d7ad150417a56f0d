package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/franchise-ledger/api"
	"github.com/carson-networks/franchise-ledger/internal/auth"
	"github.com/carson-networks/franchise-ledger/internal/config"
	"github.com/carson-networks/franchise-ledger/internal/directory"
	"github.com/carson-networks/franchise-ledger/internal/logging"
	"github.com/carson-networks/franchise-ledger/internal/metrics"
	"github.com/carson-networks/franchise-ledger/internal/operator"
	"github.com/carson-networks/franchise-ledger/internal/service"
	"github.com/carson-networks/franchise-ledger/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("franchise-ledger starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	if err = logging.SetLevel(logger, envConfig.Log.Level); err != nil {
		logrus.WithError(err).Fatal("logging.SetLevel")
		return
	}
	if envConfig.Auth.JWTSecret == config.DevelopmentJWTSecret {
		logger.Warn("Using the development JWT secret; set LEDGER_AUTH_JWTSECRET outside local setups")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	if envConfig.Ledger.MigrateOnStart {
		if _, _, err = storage.Migrate(dbStorage.DB); err != nil {
			logger.WithError(err).Fatal("storage.Migrate")
			return
		}
	}

	rdb, err := directory.NewRedisClient(ctx, envConfig.Redis)
	if err != nil {
		logger.WithError(err).Warn("Redis unavailable, franchisee profile cache disabled")
	} else if rdb == nil {
		logger.Info("No Redis address configured, franchisee profile cache disabled")
	} else {
		defer rdb.Close()
	}
	profiles := directory.New(dbStorage.Franchisees, rdb, envConfig.Redis.TTL, logger)

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.Ledger.Workers, envConfig.Ledger.QueueSize)
	delegator.Start()
	defer delegator.Stop()

	ledgerMetrics := metrics.New(prometheus.NewRegistry())
	svc := service.NewService(dbStorage, delegator, profiles, service.Options{
		StoreTimeout:        envConfig.Ledger.StoreTimeout,
		AllowResolvedDelete: envConfig.Ledger.AllowResolvedDelete,
		Metrics:             ledgerMetrics,
		Log:                 logger,
	})

	httpRest := api.Rest{
		Logger:  logger,
		HTTP:    envConfig.HTTP,
		Service: svc,
		Store:   dbStorage,
		JWT:     auth.NewJWTManager(envConfig.Auth.JWTSecret, envConfig.Auth.Issuer, envConfig.Auth.TokenDuration),
		Metrics: ledgerMetrics,
	}
	if err = httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("HttpServer.Serve")
	}

	logger.Info("franchise-ledger stopped")
}
