package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 500
)

type GptConfig struct {
	ApiUrl      string
	ApiKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

func GetGptConfig() (*GptConfig, error) {
	apiUrl := os.Getenv("GPT_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("GPT_API_URL must be set")
	}
	apiKey := os.Getenv("GPT_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GPT_API_KEY must be set")
	}
	model := os.Getenv("GPT_MODEL")
	if model == "" {
		return nil, fmt.Errorf("GPT_MODEL must be set")
	}

	temperature := defaultTemperature
	if raw := os.Getenv("GPT_TEMPERATURE"); raw != "" {
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse GPT_TEMPERATURE")
		}
		temperature = val
	}

	maxTokens := defaultMaxTokens
	if raw := os.Getenv("GPT_MAX_TOKENS"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse GPT_MAX_TOKENS")
		}
		maxTokens = val
	}

	return &GptConfig{
		ApiUrl:      apiUrl,
		ApiKey:      apiKey,
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}, nil
}
