package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"sponsorship/internal/adapter/repo"
	"sponsorship/internal/db"
	"sponsorship/internal/http/handlers"
	httpapi "sponsorship/internal/http/httpapi"
	"sponsorship/internal/infra"
	"sponsorship/internal/infra/geoip"
	"sponsorship/internal/middleware"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	if err := db.EnsureSchema(ctx, dbpool); err != nil {
		logger.Fatal().Err(err).Msg("failed to apply schema")
	}

	runner := infra.NewSQLRunner(dbpool, logger)

	// GeoIP is optional; without it signup falls back to header and
	// locale hints for the sponsor's country.
	var country middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip database unavailable")
	} else if resolver != nil {
		defer resolver.Close()
		country = resolver.CountryCode
	}

	app := &handlers.App{
		Config:    cfg,
		Logger:    logger,
		Sponsors:  repo.NewSponsorRepository(runner),
		Children:  repo.NewChildRepository(runner),
		Donations: repo.NewDonationRepository(runner),
		Updates:   repo.NewUpdateRepository(runner),
		Probe:     infra.NewStoreProbe(runner),
	}

	router := httpapi.NewRouter(app, country)
	server := infra.NewHTTPServer(cfg, router)

	// Start async
	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
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
