package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fixora/booking-api/internal/api"
	"github.com/fixora/booking-api/internal/api/handler"
	"github.com/fixora/booking-api/internal/core/service"
	mongodb "github.com/fixora/booking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/fixora/booking-api/internal/infrastructure/db/redis"
	"github.com/fixora/booking-api/internal/infrastructure/notify"
	"github.com/fixora/booking-api/internal/pkg/config"
	"github.com/fixora/booking-api/pkg/logger"
)

const (
	notifyWorkers   = 4
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connect failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)
	contactRepo := mongodb.NewContactRepository(db)

	for _, idx := range []interface {
		EnsureIndexes(context.Context) error
	}{userRepo, bookingRepo, serviceRepo} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	// --- Notifications ---
	mailer := notify.NewMailer(notify.SMTPConfig{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Username:   cfg.SMTP.Username,
		Password:   cfg.SMTP.Password,
		From:       cfg.SMTP.From,
		AdminEmail: cfg.SMTP.AdminEmail,
	})
	dispatcher := notify.NewDispatcher(notifyWorkers, mailer, log)
	dispatcher.Start(ctx)

	// --- Core services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := service.NewAuthService(userRepo, tokens, cfg.AdminSecret, log)
	bookingSvc := service.NewBookingService(bookingRepo, serviceRepo, userRepo, dispatcher, log)
	catalogSvc := service.NewCatalogService(serviceRepo, log)
	adminSvc := service.NewAdminService(userRepo, bookingRepo, serviceRepo, log)
	contactSvc := service.NewContactService(contactRepo, dispatcher, log)

	limiter := redisdb.NewRateLimiter(rdb, cfg.RateLimit.Limit, cfg.RateLimit.Window)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Log:      log,
		Tokens:   tokens,
		Limiter:  limiter,
		Auth:     handler.NewAuthHandler(authSvc, cfg.TokenTTL, cfg.IsProduction()),
		Bookings: handler.NewBookingHandler(bookingSvc),
		Services: handler.NewServiceHandler(catalogSvc),
		Admin:    handler.NewAdminHandler(adminSvc, contactSvc),
		Contact:  handler.NewContactHandler(contactSvc),
		Health:   handler.NewHealthHandler(db, rdb),
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
