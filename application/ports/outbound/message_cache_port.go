package outbound

import (
	"context"
	"github.com/AngeloGiacco/cid-moreira/domain"
)

// Get returns (nil, nil) on a cache miss.
type MessageCachePort interface {
	Get(ctx context.Context, shareID string) (*domain.MessageRecord, error)
	Set(ctx context.Context, record *domain.MessageRecord) error
}
