package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/AngeloGiacco/cid-moreira/config"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newElevenLabsConfig(apiUrl string) *config.ElevenLabsConfig {
	return &config.ElevenLabsConfig{
		ApiUrl:          apiUrl,
		ApiKey:          "xi-test-key",
		ModelId:         "eleven_multilingual_v2",
		VoiceId:         "EXAVITQu4vr4xnSDxMaL",
		Stability:       0.5,
		SimilarityBoost: 0.75,
	}
}

func TestSpeechSynthesizer_Synthesize(t *testing.T) {
	audio := []byte("mp3-audio-bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/EXAVITQu4vr4xnSDxMaL") {
			t.Errorf("Expected the voice id in the path, got %q", r.URL.Path)
		}
		if r.Header.Get("xi-api-key") != "xi-test-key" {
			t.Errorf("Unexpected api key header: %q", r.Header.Get("xi-api-key"))
		}
		if r.Header.Get("Accept") != "audio/mpeg" {
			t.Errorf("Unexpected accept header: %q", r.Header.Get("Accept"))
		}

		var body elevenLabsRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal("Failed to decode synthesis request:", err)
		}
		if body.Text != "Querido João, uma mensagem." {
			t.Errorf("Unexpected text: %q", body.Text)
		}
		if body.ModelId != "eleven_multilingual_v2" {
			t.Errorf("Unexpected model id: %q", body.ModelId)
		}
		if body.VoiceSettings.Stability != 0.5 || body.VoiceSettings.SimilarityBoost != 0.75 {
			t.Errorf("Unexpected voice settings: %+v", body.VoiceSettings)
		}

		if _, err := w.Write(audio); err != nil {
			t.Fatal("Failed to write audio:", err)
		}
	}))
	defer server.Close()

	logger := NewZerologWrapper()
	fetcher := NewContentFetcher(5*time.Second, logger)
	synthesizer := NewSpeechSynthesizer(fetcher, newElevenLabsConfig(server.URL), logger)

	got, err := synthesizer.Synthesize(context.Background(), "Querido João, uma mensagem.")
	if err != nil {
		t.Fatal("Failed to synthesize speech:", err)
	}
	if !bytes.Equal(got, audio) {
		t.Errorf("Expected the full audio buffer back, got %d bytes", len(got))
	}
}

func TestSpeechSynthesizer_ApiError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	logger := NewZerologWrapper()
	fetcher := NewContentFetcher(5*time.Second, logger)
	synthesizer := NewSpeechSynthesizer(fetcher, newElevenLabsConfig(server.URL), logger)

	_, err := synthesizer.Synthesize(context.Background(), "olá")
	if err == nil {
		t.Fatal("Expected an error for a non-OK status")
	}
}
