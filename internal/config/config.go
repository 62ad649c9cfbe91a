package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Nominatim geocoding configuration.
	NominatimBaseURL   string
	NominatimUserAgent string
	NominatimTimeout   time.Duration

	// FMI open data configuration.
	FMIBaseURL string
	FMITimeout time.Duration

	// Warning publisher configuration.
	KafkaEnabled      bool
	KafkaBrokers      []string
	KafkaWarningTopic string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	nominatimTimeout, err := parseDuration("NOMINATIM_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	fmiTimeout, err := parseDuration("FMI_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		NominatimBaseURL:   envOrDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		NominatimUserAgent: envOrDefault("NOMINATIM_USER_AGENT", "snowload-service/1.0"),
		NominatimTimeout:   nominatimTimeout,

		FMIBaseURL: envOrDefault("FMI_BASE_URL", "https://opendata.fmi.fi/wfs"),
		FMITimeout: fmiTimeout,

		KafkaEnabled:      os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers:      parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaWarningTopic: envOrDefault("KAFKA_WARNING_TOPIC", "snow-load-warnings"),
	}

	if cfg.NominatimBaseURL == "" {
		return nil, errors.New("NOMINATIM_BASE_URL is required")
	}
	if cfg.FMIBaseURL == "" {
		return nil, errors.New("FMI_BASE_URL is required")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.KafkaEnabled && cfg.KafkaWarningTopic == "" {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_WARNING_TOPIC is not set")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	raw := envOrDefault(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parseBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
