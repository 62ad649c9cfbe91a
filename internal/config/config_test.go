package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.NominatimBaseURL)
	assert.Equal(t, "snowload-service/1.0", cfg.NominatimUserAgent)
	assert.Equal(t, 5*time.Second, cfg.NominatimTimeout)
	assert.Equal(t, "https://opendata.fmi.fi/wfs", cfg.FMIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.FMITimeout)
	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "snow-load-warnings", cfg.KafkaWarningTopic)
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("NOMINATIM_BASE_URL", "http://nominatim.internal")
	t.Setenv("NOMINATIM_TIMEOUT", "2s")
	t.Setenv("FMI_BASE_URL", "http://fmi.internal/wfs")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("KAFKA_WARNING_TOPIC", "warnings")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "http://nominatim.internal", cfg.NominatimBaseURL)
	assert.Equal(t, 2*time.Second, cfg.NominatimTimeout)
	assert.Equal(t, "http://fmi.internal/wfs", cfg.FMIBaseURL)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "warnings", cfg.KafkaWarningTopic)
}

func TestLoad_InvalidDurations(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"SHUTDOWN_TIMEOUT", "not-a-duration"},
		{"NOMINATIM_TIMEOUT", "-1s"},
		{"FMI_TIMEOUT", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_KafkaEnabledRequiresBrokers(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", " , ")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKERS")
}
