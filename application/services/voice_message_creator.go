package services

import (
	"context"
	"errors"
	"fmt"
	"github.com/AngeloGiacco/cid-moreira/application/ports/inbound"
	"github.com/AngeloGiacco/cid-moreira/application/ports/outbound"
	"github.com/AngeloGiacco/cid-moreira/domain"
	"github.com/google/uuid"
	"time"
)

const cleanupTimeout = time.Minute

type voiceMessageCreator struct {
	logger      outbound.LoggerPort
	workerPool  outbound.TaskDispatcher
	narration   outbound.NarrationGeneratorPort
	synthesizer outbound.SpeechSynthesizerPort
	audioStore  outbound.AudioStorePort
	repository  outbound.MessageRepositoryPort
}

func NewVoiceMessageCreator(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	narration outbound.NarrationGeneratorPort, synthesizer outbound.SpeechSynthesizerPort,
	audioStore outbound.AudioStorePort, repository outbound.MessageRepositoryPort) inbound.VoiceMessageCreatorPort {
	return &voiceMessageCreator{
		logger:      logger,
		workerPool:  workerPool,
		narration:   narration,
		synthesizer: synthesizer,
		audioStore:  audioStore,
		repository:  repository,
	}
}

// Create runs the five steps in order and aborts on the first failure. A failed
// step leaves no trace except, on persistence failure, an already-uploaded audio
// object that a background task then tries to remove.
func (v *voiceMessageCreator) Create(ctx context.Context, params inbound.CreateVoiceMessageParams) (*inbound.CreateVoiceMessageResult, error) {
	generatedText, err := v.narration.Generate(ctx, outbound.GenerateNarrationRequest{
		Message:      params.Message,
		SenderName:   params.SenderName,
		ReceiverName: params.ReceiverName,
		PassageType:  params.PassageType,
	})
	if err != nil {
		v.logger.Error(err, "Failed to generate narration text")
		return nil, &domain.GenerationError{Cause: err}
	}
	if generatedText == "" {
		err = errors.New("completion API returned an empty narration")
		v.logger.Error(err, "Failed to generate narration text")
		return nil, &domain.GenerationError{Cause: err}
	}

	audio, err := v.synthesizer.Synthesize(ctx, generatedText)
	if err != nil {
		v.logger.Error(err, "Failed to synthesize narration audio")
		return nil, &domain.SynthesisError{Cause: err}
	}

	audioKey := fmt.Sprintf("voice-notes/%s.mp3", uuid.NewString())
	audioURL, err := v.audioStore.Save(ctx, audioKey, audio)
	if err != nil {
		v.logger.ErrorWithFields(err, "Failed to upload narration audio", map[string]interface{}{
			"key": audioKey,
		})
		return nil, &domain.StorageError{Cause: err}
	}

	record, err := v.repository.Insert(ctx, domain.MessageRecord{
		Message:       params.Message,
		SenderName:    params.SenderName,
		ReceiverName:  params.ReceiverName,
		PhoneNumber:   params.PhoneNumber,
		GeneratedText: generatedText,
		AudioURL:      audioURL,
	})
	if err != nil {
		v.logger.ErrorWithFields(err, "Failed to persist message record", map[string]interface{}{
			"key": audioKey,
		})
		v.scheduleAudioCleanup(audioKey)
		return nil, &domain.PersistenceError{Cause: err}
	}

	v.logger.InfoWithFields("Voice message created", map[string]interface{}{
		"share_id": record.ShareID,
		"key":      audioKey,
	})

	return &inbound.CreateVoiceMessageResult{
		Record:    record,
		PublicURL: record.AudioURL,
	}, nil
}

func (v *voiceMessageCreator) scheduleAudioCleanup(audioKey string) {
	err := v.workerPool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
		defer cancel()
		if err := v.audioStore.Delete(ctx, audioKey); err != nil {
			v.logger.ErrorWithFields(err, "Failed to delete orphaned audio object", map[string]interface{}{
				"key": audioKey,
			})
		}
	})
	if err != nil {
		v.logger.Error(err, "Failed to submit audio cleanup task")
	}
}
