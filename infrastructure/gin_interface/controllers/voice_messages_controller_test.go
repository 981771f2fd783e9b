package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/AngeloGiacco/cid-moreira/application/ports/inbound"
	"github.com/AngeloGiacco/cid-moreira/domain"
	"github.com/AngeloGiacco/cid-moreira/middleware"
	"github.com/gin-gonic/gin"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type nopLogger struct{}

func (nopLogger) Info(string)                                           {}
func (nopLogger) InfoWithFields(string, map[string]interface{})         {}
func (nopLogger) Error(error, string)                                   {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Debug(string)                                          {}
func (nopLogger) Warn(string)                                           {}

type fakeCreator struct {
	err    error
	params inbound.CreateVoiceMessageParams
}

func (f *fakeCreator) Create(_ context.Context, params inbound.CreateVoiceMessageParams) (*inbound.CreateVoiceMessageResult, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return &inbound.CreateVoiceMessageResult{
		Record: &domain.MessageRecord{
			ShareID:       "share-123",
			Message:       params.Message,
			SenderName:    params.SenderName,
			ReceiverName:  params.ReceiverName,
			PhoneNumber:   params.PhoneNumber,
			GeneratedText: "texto narrado",
			AudioURL:      "https://bucket.s3.sa-east-1.amazonaws.com/voice-notes/x.mp3",
		},
		PublicURL: "https://bucket.s3.sa-east-1.amazonaws.com/voice-notes/x.mp3",
	}, nil
}

type fakeReader struct {
	record *domain.MessageRecord
	err    error
}

func (f *fakeReader) GetByShareID(_ context.Context, _ string) (*domain.MessageRecord, error) {
	return f.record, f.err
}

func newTestRouter(creator inbound.VoiceMessageCreatorPort, reader inbound.MessageReaderPort) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CORSMiddleware())
	NewVoiceMessagesController(nopLogger{}, creator, reader).RegisterRoutes(router)
	return router
}

func TestCreateVoiceMessage(t *testing.T) {
	creator := &fakeCreator{}
	router := newTestRouter(creator, &fakeReader{})

	body := `{"message":"Feliz aniversário!","sender":"Ana","receiver":"João","passageType":"salmos","phone":"+5511999999999"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-voice", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected the CORS origin header on the response")
	}

	var response struct {
		NoteData struct {
			ShareID       string `json:"share_id"`
			Message       string `json:"message"`
			GeneratedText string `json:"generated_text"`
			AudioURL      string `json:"audio_url"`
		} `json:"noteData"`
		PublicUrl struct {
			PublicUrl string `json:"publicUrl"`
		} `json:"publicUrl"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatal("Failed to unmarshal response:", err)
	}

	if response.NoteData.ShareID == "" {
		t.Error("Expected a non-empty share id")
	}
	if response.NoteData.GeneratedText == "" || response.NoteData.AudioURL == "" {
		t.Error("Expected generated text and audio url on the record")
	}
	if response.PublicUrl.PublicUrl == "" {
		t.Error("Expected a public url")
	}
	if creator.params.PassageType != domain.PassageSalmos {
		t.Errorf("Unexpected passage type: %q", creator.params.PassageType)
	}
}

func TestCreateVoiceMessage_DefaultPassageType(t *testing.T) {
	creator := &fakeCreator{}
	router := newTestRouter(creator, &fakeReader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-voice", strings.NewReader(`{"message":"Feliz aniversário!"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if creator.params.PassageType != domain.PassageVersiculo {
		t.Errorf("Expected the versiculo default, got %q", creator.params.PassageType)
	}
}

func TestCreateVoiceMessage_MissingMessage(t *testing.T) {
	router := newTestRouter(&fakeCreator{}, &fakeReader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-voice", strings.NewReader(`{"sender":"Ana"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "error") {
		t.Error("Expected an error body")
	}
}

func TestCreateVoiceMessage_PipelineFailure(t *testing.T) {
	creator := &fakeCreator{err: &domain.StorageError{Cause: errors.New("bucket unavailable")}}
	router := newTestRouter(creator, &fakeReader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-voice", strings.NewReader(`{"message":"Feliz aniversário!"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatal("Failed to unmarshal error body:", err)
	}
	if response["error"] == "" {
		t.Error("Expected an error message in the body")
	}
}

func TestGetMessage(t *testing.T) {
	reader := &fakeReader{record: &domain.MessageRecord{ShareID: "share-123", Message: "olá"}}
	router := newTestRouter(&fakeCreator{}, reader)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/messages/share-123", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "share-123") {
		t.Error("Expected the record in the body")
	}
}

func TestGetMessage_NotFound(t *testing.T) {
	reader := &fakeReader{err: domain.ErrMessageNotFound}
	router := newTestRouter(&fakeCreator{}, reader)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/messages/missing", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", w.Code)
	}
}

func TestPreflight(t *testing.T) {
	router := newTestRouter(&fakeCreator{}, &fakeReader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/generate-voice", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected the CORS origin header")
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), "content-type") {
		t.Error("Expected content-type in the allowed headers")
	}
}
