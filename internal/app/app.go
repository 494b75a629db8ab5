package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/igdimer/currency-converter/internal/adapters/httpclient"
	"github.com/igdimer/currency-converter/internal/adapters/memcache"
	"github.com/igdimer/currency-converter/internal/adapters/postgres"
	"github.com/igdimer/currency-converter/internal/adapters/rediscache"
	"github.com/igdimer/currency-converter/internal/api"
	"github.com/igdimer/currency-converter/internal/auth"
	authhandler "github.com/igdimer/currency-converter/internal/auth/handler"
	"github.com/igdimer/currency-converter/internal/config"
	"github.com/igdimer/currency-converter/internal/currency"
	currencyhandler "github.com/igdimer/currency-converter/internal/currency/handler"
	"github.com/igdimer/currency-converter/internal/platform/db"
	httpserver "github.com/igdimer/currency-converter/internal/platform/http"
	"github.com/igdimer/currency-converter/internal/platform/metrics"
	redisplatform "github.com/igdimer/currency-converter/internal/platform/redis"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and the refresh job
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, pings)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Redis client (shared currency cache)
	redisClient, err := redisplatform.CreateClientAndPing(startupCtx, appCfg.Redis)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to redis")
		return err
	}
	defer func() { _ = redisClient.Close() }()
	logrus.Info("✅ Redis connection successful")

	// In-process memo tier
	memo, err := memcache.NewCurrencyMemo()
	if err != nil {
		logrus.WithError(err).Error("Error creating in-process cache")
		return err
	}
	defer memo.Close()

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External client
	if appCfg.ExchangerateAPI.AccessKey == "" {
		return fmt.Errorf("exchangerate access key is required")
	}
	exchangeMetrics := metrics.NewExchangeMetrics()
	exchangeClient := httpclient.NewExchangerateClient(
		baseHTTPClient,
		appCfg.ExchangerateAPI.BaseURL,
		appCfg.ExchangerateAPI.AccessKey,
		exchangeMetrics,
	)

	// Repositories
	favoriteRepo := postgres.NewFavoriteRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// Services
	registry := currency.NewRegistry(exchangeClient, rediscache.NewCurrencyCache(redisClient), memo)
	currencyService := currency.NewService(registry, exchangeClient, favoriteRepo)
	authService := auth.NewService(
		userRepo,
		appCfg.Auth.JWTSecret,
		time.Duration(appCfg.Auth.AccessTokenLifetimeDays)*24*time.Hour,
		time.Duration(appCfg.Auth.RefreshTokenLifetimeDays)*24*time.Hour,
	)

	// Optional currency list refresh job
	if appCfg.Scheduler.RefreshIntervalMinutes > 0 {
		refresher := currency.NewRefreshScheduler(registry, time.Duration(appCfg.Scheduler.RefreshIntervalMinutes)*time.Minute)
		// Ensure the job stops before the redis client and DB pool close
		defer func() {
			if shutDownErr := refresher.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Refresh scheduler shutdown error: %v", shutDownErr)
			}
		}()
		if startErr := refresher.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start refresh scheduler")
			return startErr
		}
		logrus.Info("✅ Refresh scheduler activation successful")
	}

	// Handlers and router
	currencyHandler := currencyhandler.NewCurrencyHandler(currencyService)
	authHandler := authhandler.NewAuthHandler(authService)
	router := api.NewRouter(currencyHandler, authHandler, authService)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop the refresh job and in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
