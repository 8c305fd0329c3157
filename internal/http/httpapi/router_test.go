package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"aion/internal/adapter/repo"
	"aion/internal/http/handlers"
	"aion/internal/providers/video"
	"aion/internal/storage"
	"aion/internal/worker"
)

func newTestRouter(t *testing.T, origins []string, logs *bytes.Buffer) http.Handler {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	logger := zerolog.Nop()
	if logs != nil {
		logger = zerolog.New(logs)
	}
	jobs := repo.NewJobRepository()
	dispatcher := worker.NewInline(video.NewPlaceholder(), jobs, logger)
	app := handlers.NewApp(jobs, dispatcher, store, video.PipelinePlaceholder, logger)
	return NewRouter(app, Options{
		Logger:        logger,
		CORSOrigins:   origins,
		DefaultLocale: "ar",
	})
}

func TestRouterCORSPreflight(t *testing.T) {
	h := newTestRouter(t, []string{"*"}, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/generate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "POST") {
		t.Fatalf("Access-Control-Allow-Methods = %q", got)
	}
}

func TestRouterCORSRestrictedOrigins(t *testing.T) {
	h := newTestRouter(t, []string{"https://aion.example"}, nil)
	tests := []struct {
		origin string
		want   string
	}{
		{origin: "https://aion.example", want: "https://aion.example"},
		{origin: "https://evil.example", want: ""},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", tc.origin)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("origin %s: status = %d", tc.origin, rr.Code)
		}
		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tc.want {
			t.Fatalf("origin %s: Access-Control-Allow-Origin = %q, want %q", tc.origin, got, tc.want)
		}
	}
}

func TestRouterEchoesRequestID(t *testing.T) {
	var logs bytes.Buffer
	h := newTestRouter(t, []string{"*"}, &logs)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("X-Request-ID = %q, want req-123", got)
	}
	if !strings.Contains(logs.String(), `"request_id":"req-123"`) {
		t.Fatalf("access log missing request id: %s", logs.String())
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected a generated X-Request-ID")
	}
}

func TestRouterGenerateThenDownload(t *testing.T) {
	h := newTestRouter(t, []string{"*"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"topic":"Space","duration":30}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("generate status = %d, body %s", rr.Code, rr.Body.String())
	}
	if got := rr.Header().Get("Content-Language"); got != "ar" {
		t.Fatalf("Content-Language = %q, want ar", got)
	}
	var resp struct {
		VideoID  string `json:"video_id"`
		VideoURL string `json:"video_url"`
		Scenes   int    `json:"scenes"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode generate: %v", err)
	}
	if resp.Scenes != 6 {
		t.Fatalf("scenes = %d, want 6", resp.Scenes)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, resp.VideoURL, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("download status = %d", rr.Code)
	}
	if !bytes.Equal(rr.Body.Bytes(), video.PlaceholderPayload()) {
		t.Fatalf("download body is not the placeholder payload")
	}
	if got := rr.Header().Get("Content-Disposition"); !strings.Contains(got, "AION_"+resp.VideoID+".mp4") {
		t.Fatalf("Content-Disposition = %q", got)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	h := newTestRouter(t, []string{"*"}, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/missing", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}
