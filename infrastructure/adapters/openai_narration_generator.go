package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/AngeloGiacco/cid-moreira/application/ports/outbound"
	"github.com/AngeloGiacco/cid-moreira/config"
	"net/http"
	"strings"
)

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []chatCompletionChoice `json:"choices"`
}

type chatCompletionChoice struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

type narrationGenerator struct {
	ContentFetcher
	logger       outbound.LoggerPort
	gptConfig    *config.GptConfig
	promptConfig *config.PromptConfig
}

func NewNarrationGenerator(contentFetcher ContentFetcher, gptConfig *config.GptConfig,
	promptConfig *config.PromptConfig, logger outbound.LoggerPort) outbound.NarrationGeneratorPort {
	return &narrationGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		gptConfig:      gptConfig,
		promptConfig:   promptConfig,
	}
}

func (n *narrationGenerator) Generate(ctx context.Context, generateReq outbound.GenerateNarrationRequest) (string, error) {
	req, err := n.createRequest(ctx, generateReq)
	if err != nil {
		n.logger.Error(err, "Failed to construct the HTTP request for narration generation")
		return "", err
	}

	payload, err := n.FetchContent(req)
	if err != nil {
		return "", err
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(payload, &completion); err != nil {
		n.logger.Error(err, "Failed to unmarshal the completion response")
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion API returned no choices")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

func (n *narrationGenerator) createRequest(ctx context.Context, generateReq outbound.GenerateNarrationRequest) (*http.Request, error) {
	systemPrompt, err := n.promptConfig.RenderPersona(generateReq.PassageType)
	if err != nil {
		n.logger.Error(err, "Failed to render the persona prompt")
		return nil, err
	}

	userPrompt := fmt.Sprintf("Remetente: %s\nDestinatário: %s\nMensagem: %s",
		generateReq.SenderName, generateReq.ReceiverName, generateReq.Message)

	completionReq := chatCompletionRequest{
		Model: n.gptConfig.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: n.gptConfig.Temperature,
		MaxTokens:   n.gptConfig.MaxTokens,
	}

	payloadBytes, err := json.Marshal(completionReq)
	if err != nil {
		n.logger.Error(err, "Failed to marshal the completion request body")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.gptConfig.ApiUrl, bytes.NewBuffer(payloadBytes))
	if err != nil {
		n.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+n.gptConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
