package inbound

import (
	"context"
	"github.com/AngeloGiacco/cid-moreira/domain"
)

type MessageReaderPort interface {
	GetByShareID(ctx context.Context, shareID string) (*domain.MessageRecord, error)
}
