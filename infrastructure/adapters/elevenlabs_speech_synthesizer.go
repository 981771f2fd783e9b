package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/AngeloGiacco/cid-moreira/application/ports/outbound"
	"github.com/AngeloGiacco/cid-moreira/config"
	"net/http"
)

type elevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelId       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type speechSynthesizer struct {
	ContentFetcher
	logger           outbound.LoggerPort
	elevenLabsConfig *config.ElevenLabsConfig
}

func NewSpeechSynthesizer(contentFetcher ContentFetcher, elevenLabsConfig *config.ElevenLabsConfig,
	logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &speechSynthesizer{
		ContentFetcher:   contentFetcher,
		logger:           logger,
		elevenLabsConfig: elevenLabsConfig,
	}
}

func (s *speechSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	req, err := s.createRequest(ctx, text)
	if err != nil {
		s.logger.Error(err, "Failed to construct the HTTP request for speech synthesis")
		return nil, err
	}

	return s.FetchContent(req)
}

func (s *speechSynthesizer) createRequest(ctx context.Context, text string) (*http.Request, error) {
	reqBody := elevenLabsRequest{
		Text:    text,
		ModelId: s.elevenLabsConfig.ModelId,
		VoiceSettings: voiceSettings{
			Stability:       s.elevenLabsConfig.Stability,
			SimilarityBoost: s.elevenLabsConfig.SimilarityBoost,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		s.logger.Error(err, "Failed to marshal the request body for the ElevenLabs API")
		return nil, err
	}

	url := s.elevenLabsConfig.ApiUrl + "/" + s.elevenLabsConfig.VoiceId
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to create the HTTP POST request", map[string]interface{}{
			"URL": url,
		})
		return nil, err
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", s.elevenLabsConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
