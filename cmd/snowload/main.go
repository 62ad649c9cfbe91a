package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/lumivahti/snowload-service/internal/adapter/fmi"
	httpadapter "github.com/lumivahti/snowload-service/internal/adapter/http"
	kafkaadapter "github.com/lumivahti/snowload-service/internal/adapter/kafka"
	"github.com/lumivahti/snowload-service/internal/adapter/nominatim"
	"github.com/lumivahti/snowload-service/internal/config"
	"github.com/lumivahti/snowload-service/internal/forecast"
	"github.com/lumivahti/snowload-service/internal/geocode"
	"github.com/lumivahti/snowload-service/internal/observability"
	"github.com/lumivahti/snowload-service/internal/pipeline"
	"github.com/lumivahti/snowload-service/internal/station"
)

func main() {
	// Optional .env for local development; environment always wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	geocoder := nominatim.NewClient(cfg.NominatimBaseURL, cfg.NominatimUserAgent, cfg.NominatimTimeout, metrics, logger)
	resolver := geocode.NewResolver(geocoder, geocode.NewMapStore(), metrics, logger)

	fmiClient := fmi.NewClient(cfg.FMIBaseURL, cfg.FMITimeout, metrics, logger)
	locator := station.NewLocator(fmiClient, metrics, logger)
	engine := forecast.NewEngine(fmiClient, metrics, logger)

	// Warning publisher (feature-flagged via KAFKA_ENABLED).
	var publisher pipeline.WarningPublisher
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg.KafkaBrokers, cfg.KafkaWarningTopic, logger)
		publisher = writer
		logger.Info("warning publisher enabled", "topic", cfg.KafkaWarningTopic)
	} else {
		logger.Info("warning publisher disabled")
	}

	svc := pipeline.New(resolver, locator, engine, publisher, metrics, logger)
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
