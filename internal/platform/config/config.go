package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	stringsutil "nicgate/pkg/platform/strings"
)

// RedisConfig captures Redis connection tuning.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig captures the validation-event stream settings. Empty Brokers
// disables event publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Server captures process-level configuration.
type Server struct {
	Addr          string
	RegulatedMode bool
	JWTSigningKey string
	PostgresURL   string
	Redis         RedisConfig
	Kafka         KafkaConfig
	// ResultCacheTTL bounds how long a validation verdict may be served
	// from cache. Verdicts are deterministic, so the TTL caps memory and
	// key lifetime rather than guarding staleness.
	ResultCacheTTL time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("NIC_GATEWAY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	cacheTTL := 5 * time.Minute
	if raw := os.Getenv("RESULT_CACHE_TTL_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cacheTTL = time.Duration(secs) * time.Second
		}
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		brokers = stringsutil.DedupeAndTrim(strings.Split(raw, ","))
	}
	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "nicgate.validations"
	}

	return Server{
		Addr:          addr,
		RegulatedMode: os.Getenv("REGULATED_MODE") == "true",
		JWTSigningKey: jwtSigningKey,
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
			Topic:   topic,
		},
		ResultCacheTTL: cacheTTL,
	}
}
