package config

import (
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration so main stays lean.
type Server struct {
	Addr          string
	DatabaseURL   string
	Redis         RedisConfig
	KafkaBrokers  []string
	AuditTopic    string
	JWTSigningKey string
	// CountryDialPrefix is stripped from phone numbers supplied with a
	// country code (12 digits total).
	CountryDialPrefix string
	SyncTargets       SyncTargets
}

// RedisConfig controls the optional reference-lookup cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CacheTTL     time.Duration
}

// SyncTargets holds base URLs for the downstream plot consumers.
type SyncTargets struct {
	Events string
	Soil   string
	Admin  string
	ET     string
	Field  string
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("FARMGATE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default - must be overridden in production.
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	prefix := os.Getenv("COUNTRY_DIAL_PREFIX")
	if prefix == "" {
		prefix = "91"
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return Server{
		Addr:              addr,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		KafkaBrokers:      brokers,
		AuditTopic:        os.Getenv("AUDIT_TOPIC"),
		JWTSigningKey:     jwtSigningKey,
		CountryDialPrefix: prefix,
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			CacheTTL:     10 * time.Minute,
		},
		SyncTargets: SyncTargets{
			Events: envOr("SYNC_EVENTS_URL", "http://localhost:8005"),
			Soil:   envOr("SYNC_SOIL_URL", "http://localhost:8007"),
			Admin:  envOr("SYNC_ADMIN_URL", "http://localhost:8008"),
			ET:     envOr("SYNC_ET_URL", "http://localhost:8009"),
			Field:  envOr("SYNC_FIELD_URL", "http://localhost:8010"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
