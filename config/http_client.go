package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultHttpClientTimeoutSeconds = 60

type HttpClientConfig struct {
	Timeout time.Duration
}

func GetHttpClientConfig() (*HttpClientConfig, error) {
	timeoutSeconds := defaultHttpClientTimeoutSeconds
	if raw := os.Getenv("HTTP_CLIENT_TIMEOUT_SECONDS"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse HTTP_CLIENT_TIMEOUT_SECONDS")
		}
		timeoutSeconds = val
	}

	return &HttpClientConfig{
		Timeout: time.Duration(timeoutSeconds) * time.Second,
	}, nil
}
