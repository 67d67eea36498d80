package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverRedis    = "redis"
	DriverS3       = "s3"
)

var ErrMissingSecret = errors.New("JWT_SECRET is required when AUTH_ENABLED is true")

type Config struct {
	Port string

	StoreDriver    string
	SQLitePath     string
	DatabaseURL    string
	RedisURL       string
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	RedisDB        int
	RedisPrefix    string
	CacheEnabled   bool
	CacheTTL       time.Duration
	S3Bucket       string
	S3Region       string
	S3Prefix       string
	WriteQueueSize int

	AuthEnabled bool
	JWTSecret   string
	JWTIssuer   string
	TokenTTL    time.Duration

	RateLimit  int
	RateWindow time.Duration

	ReminderEnabled   bool
	ReminderInterval  time.Duration
	ReminderStartHour int
	ReminderEndHour   int

	Location *time.Location
}

// Load reads the environment, after merging any .env files found in paths
// (or ./.env when none are given). Variables already set win over the files.
func Load(paths ...string) (*Config, error) {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[CONFIG] Could not read .env: %v", err)
	}

	cfg := &Config{
		Port: getEnv("PORT", "8080"),

		StoreDriver:    strings.ToLower(getEnv("STORE_DRIVER", DriverSQLite)),
		SQLitePath:     getEnv("SQLITE_PATH", "hydrate.db"),
		DatabaseURL:    getEnv("DATABASE_URL", postgresDSN()),
		RedisURL:       os.Getenv("REDIS_URL"),
		RedisHost:      os.Getenv("REDIS_HOST"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPrefix:    getEnv("REDIS_PREFIX", "hydrate"),
		CacheEnabled:   getEnvBool("CACHE_ENABLED", false),
		CacheTTL:       getEnvDuration("CACHE_TTL", 30*time.Minute),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		S3Region:       getEnv("S3_REGION", os.Getenv("AWS_REGION")),
		S3Prefix:       getEnv("S3_PREFIX", "hydrate"),
		WriteQueueSize: getEnvInt("WRITE_QUEUE_SIZE", 64),

		AuthEnabled: getEnvBool("AUTH_ENABLED", false),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   getEnv("JWT_ISSUER", "hydrate-sync-engine"),
		TokenTTL:    getEnvDuration("TOKEN_TTL", 72*time.Hour),

		RateLimit:  getEnvInt("RATE_LIMIT", 100),
		RateWindow: getEnvDuration("RATE_WINDOW", time.Minute),

		ReminderEnabled:   getEnvBool("REMINDER_ENABLED", true),
		ReminderInterval:  getEnvDuration("REMINDER_INTERVAL", time.Hour),
		ReminderStartHour: getEnvInt("REMINDER_START_HOUR", 8),
		ReminderEndHour:   getEnvInt("REMINDER_END_HOUR", 22),
	}

	loc, err := time.LoadLocation(getEnv("TZ", "Local"))
	if err != nil {
		return nil, fmt.Errorf("config: invalid TZ: %w", err)
	}
	cfg.Location = loc

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory, DriverSQLite, DriverPostgres, DriverPgx:
	case DriverRedis:
		if !c.RedisConfigured() {
			return errors.New("config: STORE_DRIVER=redis needs REDIS_URL or REDIS_HOST")
		}
	case DriverS3:
		if c.S3Bucket == "" {
			return errors.New("config: STORE_DRIVER=s3 needs S3_BUCKET")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.AuthEnabled && c.JWTSecret == "" {
		return ErrMissingSecret
	}
	return nil
}

func (c *Config) RedisConfigured() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

func postgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "hydrate_user"),
		getEnv("DB_PASSWORD", "secret"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "hydrate_db"),
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[CONFIG] Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[CONFIG] Invalid %s=%q, using %t", key, v, fallback)
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[CONFIG] Invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
