package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("NIC_GATEWAY_ADDR", "")
	t.Setenv("JWT_SIGNING_KEY", "")
	t.Setenv("RESULT_CACHE_TTL_SECONDS", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("KAFKA_TOPIC", "")
	t.Setenv("POSTGRES_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("REGULATED_MODE", "")

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.False(t, cfg.RegulatedMode)
	assert.NotEmpty(t, cfg.JWTSigningKey)
	assert.Empty(t, cfg.PostgresURL)
	assert.Empty(t, cfg.Redis.URL)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "nicgate.validations", cfg.Kafka.Topic)
	assert.Equal(t, 5*time.Minute, cfg.ResultCacheTTL)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("NIC_GATEWAY_ADDR", ":9090")
	t.Setenv("JWT_SIGNING_KEY", "test-signing-key")
	t.Setenv("RESULT_CACHE_TTL_SECONDS", "30")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092,broker-1:9092,")
	t.Setenv("KAFKA_TOPIC", "validations.custom")
	t.Setenv("POSTGRES_URL", "postgres://localhost/nicgate")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("REGULATED_MODE", "true")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.RegulatedMode)
	assert.Equal(t, "test-signing-key", cfg.JWTSigningKey)
	assert.Equal(t, "postgres://localhost/nicgate", cfg.PostgresURL)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.URL)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "validations.custom", cfg.Kafka.Topic)
	assert.Equal(t, 30*time.Second, cfg.ResultCacheTTL)
}

func TestFromEnvBadTTLFallsBack(t *testing.T) {
	t.Setenv("RESULT_CACHE_TTL_SECONDS", "not-a-number")
	cfg := FromEnv()
	assert.Equal(t, 5*time.Minute, cfg.ResultCacheTTL)

	t.Setenv("RESULT_CACHE_TTL_SECONDS", "-5")
	cfg = FromEnv()
	assert.Equal(t, 5*time.Minute, cfg.ResultCacheTTL)
}
