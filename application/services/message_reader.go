package services

import (
	"context"
	"github.com/AngeloGiacco/cid-moreira/application/ports/inbound"
	"github.com/AngeloGiacco/cid-moreira/application/ports/outbound"
	"github.com/AngeloGiacco/cid-moreira/domain"
)

type messageReader struct {
	logger     outbound.LoggerPort
	cache      outbound.MessageCachePort
	repository outbound.MessageRepositoryPort
}

func NewMessageReader(logger outbound.LoggerPort, cache outbound.MessageCachePort,
	repository outbound.MessageRepositoryPort) inbound.MessageReaderPort {
	return &messageReader{
		logger:     logger,
		cache:      cache,
		repository: repository,
	}
}

// GetByShareID reads through the cache. Records are immutable once written, so a
// cached row can never be stale.
func (m *messageReader) GetByShareID(ctx context.Context, shareID string) (*domain.MessageRecord, error) {
	cached, err := m.cache.Get(ctx, shareID)
	if err != nil {
		m.logger.ErrorWithFields(err, "Failed to read message from cache", map[string]interface{}{
			"share_id": shareID,
		})
	}
	if cached != nil {
		return cached, nil
	}

	record, err := m.repository.FindByShareID(ctx, shareID)
	if err != nil {
		return nil, err
	}

	if err := m.cache.Set(ctx, record); err != nil {
		m.logger.ErrorWithFields(err, "Failed to cache message record", map[string]interface{}{
			"share_id": shareID,
		})
	}

	return record, nil
}
