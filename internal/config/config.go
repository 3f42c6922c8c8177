// Package config loads runtime settings from an env file and the process
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application, database, cache, broker, auth and probing settings.
type Config struct {
	AppHost      string
	AppPort      string
	LogLevel     string
	CookieSecure bool

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	// RedisHost empty disables the session cache.
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisSessionTTL   time.Duration

	// KafkaBrokers empty disables transition export.
	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	SessionExp   time.Duration

	ProbeInterval        time.Duration
	ProbeTimeout         time.Duration
	SessionPurgeInterval time.Duration

	LoginRatePerSecond float64
}

// PostgresDSN builds the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// RedisAddr is the host:port of the session cache.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// Load reads environment variables from path (a missing file is not an error)
// and returns the resulting configuration.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	c := &Config{}
	var err error

	// Application config
	c.AppHost = getEnv("APP_HOST", "localhost")
	c.AppPort = getEnv("APP_PORT", "8080")
	c.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	if c.CookieSecure, err = strconv.ParseBool(getEnv("APP_COOKIE_SECURE", "false")); err != nil {
		return nil, fmt.Errorf("APP_COOKIE_SECURE: %w", err)
	}

	// PostgreSQL config
	c.PGHost = getEnv("POSTGRES_HOST", "localhost")
	c.PGUser = getEnv("POSTGRES_USER", "user")
	c.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	c.PGDB = getEnv("POSTGRES_DB", "updown")
	if c.PGPort, err = atoi(getEnv, "POSTGRES_PORT", "5432"); err != nil {
		return nil, err
	}
	if c.PGMaxOpenConns, err = atoi(getEnv, "POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return nil, err
	}
	if c.PGMaxIdleConns, err = atoi(getEnv, "POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return nil, err
	}

	// Redis config
	c.RedisHost = getEnv("REDIS_HOST", "")
	if c.RedisPort, err = atoi(getEnv, "REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if c.RedisDB, err = atoi(getEnv, "REDIS_DB", "0"); err != nil {
		return nil, err
	}
	c.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if c.RedisPoolSize, err = atoi(getEnv, "REDIS_POOL_SIZE", "10"); err != nil {
		return nil, err
	}
	if c.RedisMinIdleConns, err = atoi(getEnv, "REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return nil, err
	}
	if c.RedisSessionTTL, err = seconds(getEnv, "REDIS_SESSION_TTL_SECOND", "300"); err != nil {
		return nil, err
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				c.KafkaBrokers = append(c.KafkaBrokers, b)
			}
		}
	}
	c.KafkaTopic = getEnv("KAFKA_TOPIC", "site-status-transitions")

	// Session config
	c.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if c.SessionExp, err = seconds(getEnv, "SESSION_EXP_SECOND", "2592000"); err != nil {
		return nil, err
	}

	// Probing config
	if c.ProbeInterval, err = seconds(getEnv, "PROBE_INTERVAL_SECOND", "60"); err != nil {
		return nil, err
	}
	if c.ProbeTimeout, err = seconds(getEnv, "PROBE_TIMEOUT_SECOND", "10"); err != nil {
		return nil, err
	}
	if c.SessionPurgeInterval, err = seconds(getEnv, "SESSION_PURGE_INTERVAL_SECOND", "3600"); err != nil {
		return nil, err
	}
	if c.ProbeTimeout > c.ProbeInterval {
		return nil, fmt.Errorf("PROBE_TIMEOUT_SECOND (%s) must not exceed PROBE_INTERVAL_SECOND (%s)",
			c.ProbeTimeout, c.ProbeInterval)
	}

	if c.LoginRatePerSecond, err = strconv.ParseFloat(getEnv("LOGIN_RATE_PER_SECOND", "1"), 64); err != nil {
		return nil, fmt.Errorf("LOGIN_RATE_PER_SECOND: %w", err)
	}

	return c, nil
}

func atoi(getEnv func(string, string) string, key, def string) (int, error) {
	v, err := strconv.Atoi(getEnv(key, def))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func seconds(getEnv func(string, string) string, key, def string) (time.Duration, error) {
	v, err := atoi(getEnv, key, def)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %d", key, v)
	}
	return time.Duration(v) * time.Second, nil
}
