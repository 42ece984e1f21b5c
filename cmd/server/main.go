package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"arlens/place-history-service/config"
	"arlens/place-history-service/internal/api/v1/handlers"
	"arlens/place-history-service/internal/db/querylog"
	"arlens/place-history-service/internal/inmemorycache"
	"arlens/place-history-service/internal/providers"
	"arlens/place-history-service/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	// Fail closed: without both upstream credentials the pipeline cannot
	// produce anything useful, so refuse to serve at all.
	if credErr := conf.ValidateCredentials(); credErr != nil {
		logger.Fatal().Err(credErr).Msg("missing upstream credentials, refusing to start")
	}

	ctx, mainCtxStop := context.WithCancel(context.Background())

	var queryLogRepo querylog.Repository
	if conf.AuditLogEnabled() {
		db, dbErr := initializeDatabase(conf)
		if dbErr != nil {
			logger.Fatal().Err(dbErr).Msg("failed to initialize database")
		}
		queryLogRepo = querylog.NewRepository(db)
	} else {
		logger.Warn().Msg("DATABASE_HOST not set, query audit log disabled")
	}

	cacheProvider := inmemorycache.NewInMemoryCacheProvider(conf.CacheCleanupInterval)

	geocodingService := providers.NewGeocodingService(conf.GoogleMapsAPIKey)
	generativeService := providers.NewGenerativeService(conf.GoogleAPIKey, conf.GeminiModel)

	descriptionService := service.NewDescriptionService(
		geocodingService,
		generativeService,
		cacheProvider,
		queryLogRepo,
		conf.GeocodeCacheTTL,
		conf.StrictModelOutput,
	)

	handler := handlers.NewDescriptionHandler(descriptionService, conf.HTTPTimeoutDuration())

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Str("model", conf.GeminiModel).Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&querylog.LocationQuery{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
