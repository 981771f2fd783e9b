package outbound

import (
	"context"
	"github.com/AngeloGiacco/cid-moreira/domain"
)

type GenerateNarrationRequest struct {
	Message      string
	SenderName   string
	ReceiverName string
	PassageType  domain.PassageType
}

type NarrationGeneratorPort interface {
	Generate(ctx context.Context, req GenerateNarrationRequest) (string, error)
}
