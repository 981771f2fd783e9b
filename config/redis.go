package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultCacheTTLSeconds = 300

type RedisConfig struct {
	Addr     string
	CacheTTL time.Duration
}

func GetRedisConfig() (*RedisConfig, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, fmt.Errorf("REDIS_ADDR must be set")
	}

	ttlSeconds := defaultCacheTTLSeconds
	if raw := os.Getenv("CACHE_TTL_SECONDS"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse CACHE_TTL_SECONDS")
		}
		ttlSeconds = val
	}

	return &RedisConfig{
		Addr:     addr,
		CacheTTL: time.Duration(ttlSeconds) * time.Second,
	}, nil
}
