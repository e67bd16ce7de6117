// Package gemini implements the content generator on top of the Gemini generateContent REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tutoria/config"
	deliverycontext "tutoria/internal/delivery/context"
	domainerrors "tutoria/internal/domain/errors"
	"tutoria/internal/domain/service"
	"tutoria/internal/errors"

	"google.golang.org/api/googleapi"
)

const (
	temperature     = 0.7
	maxOutputTokens = 4096
	blockThreshold  = "BLOCK_ONLY_HIGH"

	// maxResponseSize caps how much of the upstream body is read.
	maxResponseSize = 10 * 1024 * 1024
)

var harmCategories = []string{
	"HARM_CATEGORY_HARASSMENT",
	"HARM_CATEGORY_HATE_SPEECH",
	"HARM_CATEGORY_SEXUALLY_EXPLICIT",
	"HARM_CATEGORY_DANGEROUS_CONTENT",
}

type generateRequest struct {
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
	Contents         []content        `json:"contents"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text *string `json:"text,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content      *content `json:"content"`
		FinishReason string   `json:"finishReason"`
	} `json:"candidates"`
}

// Client issues one generateContent call per request. It holds no per-request state and
// shares a single *http.Client, so it is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	logger     *slog.Logger
}

// NewClient builds the generator from the ai config section.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.ContentGenerator, error) {
	return newClient(cfg.AI, logger)
}

func newClient(cfg config.AIConfig, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key must be provided")
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("invalid gemini base url %q", cfg.BaseURL)
	}

	return &Client{
		httpClient: newHTTPClient(cfg.Timeout),
		endpoint:   base.String() + "/v1beta/models/" + url.PathEscape(cfg.Model) + ":generateContent",
		apiKey:     cfg.APIKey,
		logger:     logger,
	}, nil
}

// newHTTPClient caps connecting and waiting for the response head at timeout each.
// The whole exchange, including sending the prompt and reading the body, is capped at three times that.
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}).DialContext
	transport.TLSHandshakeTimeout = timeout
	transport.ResponseHeaderTimeout = timeout

	return &http.Client{
		Transport: transport,
		Timeout:   3 * timeout,
	}
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, c.logger)
}

// Generate sends the combined prompt and returns the text of the first candidate's first part.
func (c *Client) Generate(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	text := userPrompt
	if systemInstruction != "" {
		text = systemInstruction + "\n\n" + userPrompt
	}

	body, err := json.Marshal(newGenerateRequest(text))
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)
	if requestID := deliverycontext.RequestIDFrom(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(ctx).Warn("Gemini request failed",
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)

		return "", domainerrors.NewUpstreamError(err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		attrs := []any{slog.Int("status", resp.StatusCode), slog.Duration("elapsed", time.Since(start))}
		if apiErr, ok := errors.AsType[*googleapi.Error](err); ok {
			attrs = append(attrs, slog.String("upstream_message", apiErr.Message))
		}
		c.log(ctx).Warn("Gemini returned an error status", attrs...)

		return "", domainerrors.NewUpstreamError(err)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return "", domainerrors.NewUpstreamError(errors.Wrap(err, "read response body"))
	}
	if len(raw) > maxResponseSize {
		return "", domainerrors.NewUpstreamError(errors.Errorf("response exceeds %d bytes", maxResponseSize))
	}

	result, err := extractText(raw)
	if err != nil {
		c.log(ctx).Warn("Gemini returned an unusable envelope", slog.Any("error", err))

		return "", domainerrors.NewUpstreamError(err)
	}

	c.log(ctx).Debug("Gemini request completed",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("response_chars", len(result)),
	)

	return result, nil
}

func newGenerateRequest(text string) generateRequest {
	settings := make([]safetySetting, 0, len(harmCategories))
	for _, category := range harmCategories {
		settings = append(settings, safetySetting{Category: category, Threshold: blockThreshold})
	}

	return generateRequest{
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxOutputTokens,
		},
		SafetySettings: settings,
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: &text}},
		}},
	}
}

func extractText(raw []byte) (string, error) {
	var envelope generateResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", errors.Wrap(err, "decode response envelope")
	}

	if len(envelope.Candidates) == 0 {
		return "", errors.New("response has no candidates")
	}

	candidate := envelope.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.Errorf("first candidate has no content (finishReason=%s)", candidate.FinishReason)
	}

	text := candidate.Content.Parts[0].Text
	if text == nil {
		return "", errors.New("first part has no text")
	}

	return *text, nil
}
