package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig backs the rate limiter counters.
type RedisConfig struct {
	Host        string
	Port        string
	Password    string
	DB          int
	PingTimeout time.Duration
}

func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Host:        getEnvWithDefault("REDIS_HOST", "localhost"),
		Port:        getEnvWithDefault("REDIS_PORT", "6379"),
		Password:    getEnvWithDefault("REDIS_PASSWORD", ""),
		DB:          getEnvIntWithDefault("REDIS_DB", 0),
		PingTimeout: getEnvDurationWithDefault("REDIS_PING_TIMEOUT", 3*time.Second),
	}
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// GetClient connects and pings. The client is closed again when the ping fails.
func (c *RedisConfig) GetClient(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     c.Addr(),
		Password: c.Password,
		DB:       c.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, c.PingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", c.Addr(), err)
	}

	return client, nil
}
