package outbound

import (
	"context"
	"github.com/AngeloGiacco/cid-moreira/domain"
)

// Insert assigns the share identifier and returns the stored row.
type MessageRepositoryPort interface {
	Insert(ctx context.Context, record domain.MessageRecord) (*domain.MessageRecord, error)
	FindByShareID(ctx context.Context, shareID string) (*domain.MessageRecord, error)
}
