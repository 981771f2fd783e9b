package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/AngeloGiacco/cid-moreira/application/ports/outbound"
	"github.com/AngeloGiacco/cid-moreira/config"
	"github.com/AngeloGiacco/cid-moreira/domain"
	"github.com/go-redis/redis/v8"
	"time"
)

type redisMessageCache struct {
	client *redis.Client
	ttl    time.Duration
	logger outbound.LoggerPort
}

func NewRedisMessageCache(client *redis.Client, redisConfig *config.RedisConfig, logger outbound.LoggerPort) outbound.MessageCachePort {
	return &redisMessageCache{
		client: client,
		ttl:    redisConfig.CacheTTL,
		logger: logger,
	}
}

func (r *redisMessageCache) Get(ctx context.Context, shareID string) (*domain.MessageRecord, error) {
	payload, err := r.client.Get(ctx, cacheKey(shareID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var record domain.MessageRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *redisMessageCache) Set(ctx context.Context, record *domain.MessageRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, cacheKey(record.ShareID), payload, r.ttl).Err()
}

func cacheKey(shareID string) string {
	return "message:" + shareID
}
