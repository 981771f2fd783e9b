package inbound

import (
	"context"
	"github.com/AngeloGiacco/cid-moreira/domain"
)

type CreateVoiceMessageParams struct {
	Message      string
	SenderName   string
	ReceiverName string
	PhoneNumber  string
	PassageType  domain.PassageType
}

type CreateVoiceMessageResult struct {
	Record    *domain.MessageRecord
	PublicURL string
}

type VoiceMessageCreatorPort interface {
	Create(ctx context.Context, params CreateVoiceMessageParams) (*CreateVoiceMessageResult, error)
}
