package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/sbilibin2017/updown/internal/config"
	"github.com/sbilibin2017/updown/internal/logger"
	"github.com/sbilibin2017/updown/internal/publishers"
	"github.com/sbilibin2017/updown/internal/repositories"
	"github.com/sbilibin2017/updown/internal/services"
)

// openDB connects to PostgreSQL and applies the pool limits.
func openDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	return db, nil
}

// openSessionCache connects to Redis when configured. A nil cache means
// sessions are always resolved from PostgreSQL.
func openSessionCache(ctx context.Context, cfg *config.Config) (services.SessionCache, func(), error) {
	if cfg.RedisHost == "" {
		logger.Log.Infow("Redis not configured, session cache disabled")
		return nil, func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("Redis connection error: %w", err)
	}
	return repositories.NewSessionCacheRepository(rdb, cfg.RedisSessionTTL), func() { _ = rdb.Close() }, nil
}

// openExporter builds the Kafka transition exporter when brokers are
// configured. A nil exporter disables export.
func openExporter(cfg *config.Config) (services.TransitionExporter, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Log.Infow("Kafka not configured, transition export disabled")
		return nil, func() {}
	}

	exporter := publishers.NewKafkaExporter(publishers.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
	logger.Log.Infow("exporting transitions to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	return exporter, func() {
		if err := exporter.Close(); err != nil {
			logger.Log.Errorw("failed to close Kafka writer", "error", err)
		}
	}
}
