package db

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jsarmiento/globetrotter/internal/config"
)

// Init opens the Postgres connection and the Redis client used for the
// leaderboard cache. Both are required at startup.
func Init(cfg *config.Config) (*gorm.DB, *redis.Client, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	rdb, err := redisConnection(cfg)
	if err != nil {
		return nil, nil, err
	}

	return gormDB, rdb, nil
}

func redisConnection(cfg *config.Config) (*redis.Client, error) {
	var tlsConfig *tls.Config
	if cfg.RedisTLS {
		tlsConfig = &tls.Config{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:      cfg.RedisAddr,
		Username:  cfg.RedisUsername,
		Password:  cfg.RedisPassword,
		DB:        cfg.RedisDB,
		TLSConfig: tlsConfig,
	})

	pong, err := rdb.Ping(context.Background()).Result()
	if err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	slog.Info("redis connected", "pong", pong)

	return rdb, nil
}
