package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"givehope/internal/http/handlers"
	"givehope/internal/http/httpapi"
	"givehope/internal/infra"
	"givehope/internal/infra/geoip"
	"givehope/internal/mailer"
	"givehope/internal/payments"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	app := &handlers.App{
		SQL:       infra.NewSQLRunner(dbpool, logger),
		Logger:    logger,
		JWTSecret: cfg.JWTSecret,
		ClientURL: cfg.ClientURL,
		Checkout:  payments.NewStripeClient(cfg.StripeSecretKey, cfg.StripeBaseURL),
	}

	if m := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom, cfg.ClientURL); m != nil {
		app.Mailer = m
	} else {
		logger.Warn().Msg("SMTP not configured, donation receipts disabled")
	}

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip unavailable, donor countries will be empty")
	} else if resolver != nil {
		defer resolver.Close()
		app.Geo = resolver
	}

	router := httpapi.NewRouter(app, cfg)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
