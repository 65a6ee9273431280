package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amishk599/prepmap/internal/model"
)

func makeTestServer(t *testing.T, statusCode int, body any) (*httptest.Server, *http.Client) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		if err := json.NewEncoder(w).Encode(body); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, srv.Client()
}

func textResponse(text string) map[string]any {
	return map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func newTestProvider(t *testing.T, srv *httptest.Server, client *http.Client) *GeminiProvider {
	t.Helper()
	p, err := NewGeminiProvider(context.Background(), "test-key", "test-model", srv.URL, client)
	if err != nil {
		t.Fatalf("NewGeminiProvider: %v", err)
	}
	return p
}

func TestComplete_Success(t *testing.T) {
	srv, client := makeTestServer(t, http.StatusOK, textResponse(`{"company_type":"Startup"}`))

	got, err := newTestProvider(t, srv, client).Complete(context.Background(), "classify this")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"company_type":"Startup"}` {
		t.Errorf("got %q, want json string", got)
	}
}

func TestComplete_SendsPromptToModel(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(textResponse(`{}`))
	}))
	t.Cleanup(srv.Close)

	if _, err := newTestProvider(t, srv, srv.Client()).Complete(context.Background(), "hello prompt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(gotPath, "test-model:generateContent") {
		t.Errorf("path = %q, want generateContent on test-model", gotPath)
	}
	if !strings.Contains(gotBody, "hello prompt") {
		t.Errorf("request body does not carry the prompt: %s", gotBody)
	}
	if !strings.Contains(gotBody, "application/json") {
		t.Errorf("request body does not ask for JSON output: %s", gotBody)
	}
}

func TestComplete_HTTPError(t *testing.T) {
	srv, client := makeTestServer(t, http.StatusBadRequest, map[string]any{
		"error": map[string]any{"code": 400, "message": "bad request", "status": "INVALID_ARGUMENT"},
	})

	_, err := newTestProvider(t, srv, client).Complete(context.Background(), "classify this")
	if err == nil {
		t.Fatal("expected error on 4xx response")
	}
	var extErr *model.ExternalCallError
	if !errors.As(err, &extErr) {
		t.Errorf("expected ExternalCallError, got %T", err)
	}
}

func TestComplete_EmptyCandidates(t *testing.T) {
	srv, client := makeTestServer(t, http.StatusOK, map[string]any{"candidates": []any{}})

	_, err := newTestProvider(t, srv, client).Complete(context.Background(), "classify this")
	if !errors.Is(err, errEmptyResponse) {
		t.Fatalf("expected empty response error, got %v", err)
	}
}

func TestNewGeminiProvider_MissingKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), "  ", "test-model", "", nil)
	if !errors.Is(err, model.ErrMissingCredential) {
		t.Errorf("expected ErrMissingCredential, got %v", err)
	}
}
