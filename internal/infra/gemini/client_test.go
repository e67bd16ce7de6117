package gemini

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"tutoria/config"
	domainerrors "tutoria/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string, timeout time.Duration) *Client {
	t.Helper()

	client, err := newClient(config.AIConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "gemini-2.0-flash",
		Timeout: timeout,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func TestClient_Generate_Success(t *testing.T) {
	var captured generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Empty(t, r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"## Resumo"}]},"finishReason":"STOP"}]}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, time.Second)

	text, err := client.Generate(context.Background(), "Sistema", "Tarefa")
	require.NoError(t, err)
	assert.Equal(t, "## Resumo", text)

	assert.Equal(t, 0.7, captured.GenerationConfig.Temperature)
	assert.Equal(t, 4096, captured.GenerationConfig.MaxOutputTokens)
	require.Len(t, captured.SafetySettings, 4)
	for _, setting := range captured.SafetySettings {
		assert.Equal(t, "BLOCK_ONLY_HIGH", setting.Threshold)
	}
	require.Len(t, captured.Contents, 1)
	assert.Equal(t, "user", captured.Contents[0].Role)
	require.Len(t, captured.Contents[0].Parts, 1)
	assert.Equal(t, "Sistema\n\nTarefa", *captured.Contents[0].Parts[0].Text)
}

func TestClient_Generate_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = io.WriteString(w, `{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`)
			},
		},
		{
			name: "server error without body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed envelope",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `<html>not json</html>`)
			},
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `{"candidates":[]}`)
			},
		},
		{
			name: "blocked candidate without content",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `{"candidates":[{"finishReason":"SAFETY"}]}`)
			},
		},
		{
			name: "part without text",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{}]}}]}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := newTestClient(t, server.URL, time.Second)

			text, err := client.Generate(context.Background(), "s", "p")
			assert.Empty(t, text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrUpstreamUnavailable))
			assert.Equal(t, domainerrors.KindUpstream, domainerrors.KindOf(err))
		})
	}
}

func TestClient_Generate_Timeout(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		select {
		case <-release:
		case <-time.After(2 * time.Second):
		}
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"late"}]}}]}`)
	}))
	defer server.Close()
	defer close(release)

	client := newTestClient(t, server.URL, 50*time.Millisecond)

	start := time.Now()
	_, err := client.Generate(context.Background(), "s", "p")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamUnavailable))
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, int32(1), calls.Load(), "no retries")
}

func TestClient_Generate_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Generate(ctx, "s", "p")
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamUnavailable))
}

func TestNewClient_Validation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := newClient(config.AIConfig{BaseURL: "https://example.com"}, logger)
	assert.Error(t, err)

	_, err = newClient(config.AIConfig{APIKey: "k", BaseURL: "not a url"}, logger)
	assert.Error(t, err)
}
