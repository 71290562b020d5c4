// Package llm is the model-backed analyzer: it asks an OpenAI-compatible chat
// completions endpoint to classify text against the CICTT taxonomy and normalizes
// the reply into the same result shape the keyword engine produces
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cictt/internal/core/engine"
	"cictt/internal/core/hazard"
	"cictt/internal/core/normalize"
	"cictt/internal/platform/config"
	perr "cictt/internal/platform/errors"
	"cictt/internal/platform/logger"
	pnet "cictt/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Config is the client configuration
type Config struct {
	BaseURL          string
	APIKey           string
	Model            string
	Timeout          time.Duration
	MaxResponseBytes int64
	// Retries is the number of extra attempts after a retryable failure
	Retries int
	Backoff time.Duration
}

// Defaults
const (
	DefaultBaseURL          = "https://api.openai.com/v1"
	DefaultModel            = "gpt-4o-mini"
	DefaultTimeout          = 60 * time.Second
	DefaultMaxResponseBytes = 4 << 20
)

// FromConfig reads LLM_* keys under cfg (CORE_ANALYZE_ in the binaries)
func FromConfig(cfg config.Conf) Config {
	return Config{
		BaseURL:          cfg.MayString("LLM_URL", DefaultBaseURL),
		APIKey:           cfg.MustString("LLM_KEY"),
		Model:            cfg.MayString("LLM_MODEL", DefaultModel),
		Timeout:          cfg.MayDuration("LLM_TIMEOUT", DefaultTimeout),
		MaxResponseBytes: cfg.MayInt64("LLM_MAX_RESPONSE_BYTES", DefaultMaxResponseBytes),
		Retries:          cfg.MayInt("LLM_RETRIES", 2),
		Backoff:          cfg.MayDuration("LLM_BACKOFF", 500*time.Millisecond),
	}
}

// Client implements engine.Analyzer against a chat completions API
type Client struct {
	cfg    Config
	eng    *engine.Engine
	http   *http.Client
	prompt string
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient swaps the transport, for tests and proxies
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New builds a client. eng supplies the taxonomy the reply is mapped onto
func New(cfg Config, eng *engine.Engine, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxResponseBytes <= 0 {
		cfg.MaxResponseBytes = DefaultMaxResponseBytes
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if eng == nil {
		eng = engine.New(nil)
	}
	c := &Client{
		cfg:    cfg,
		eng:    eng,
		http:   &http.Client{Timeout: cfg.Timeout},
		prompt: systemPrompt(eng.Taxonomy()),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

var _ engine.Analyzer = (*Client)(nil)

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float32        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Analyze classifies text. Blank input returns the empty result without a call.
// Every failure satisfies errors.Is(err, perr.ErrAnalysisFailed)
func (c *Client) Analyze(ctx context.Context, text string) (hazard.AnalysisResult, error) {
	if normalize.IsBlank(text) {
		return c.eng.Empty(), nil
	}
	ctx, _ = pnet.EnsureRequestID(ctx)
	ctx = logger.WithAnalyzer(ctx, "llm")
	log := logger.C(ctx)

	var (
		content string
		err     error
	)
	for attempt := 0; ; attempt++ {
		content, err = c.complete(ctx, text)
		if err == nil {
			break
		}
		if attempt >= c.cfg.Retries || !perr.Retryable(err) {
			log.Error().Err(err).Int("attempt", attempt+1).Msg("llm analysis failed")
			return hazard.AnalysisResult{}, perr.AnalysisFailed(err)
		}
		wait := c.cfg.Backoff << attempt
		log.Warn().Err(err).Int("attempt", attempt+1).Dur("retry_in", wait).Msg("llm call failed, retrying")
		select {
		case <-ctx.Done():
			return hazard.AnalysisResult{}, perr.AnalysisFailed(ctx.Err())
		case <-time.After(wait):
		}
	}

	res, err := decodeResult(content, c.eng)
	if err != nil {
		log.Error().Err(err).Msg("llm reply does not decode")
		return hazard.AnalysisResult{}, perr.AnalysisFailed(err)
	}
	return res, nil
}

// complete performs one chat completion and returns the first choice's content
func (c *Client) complete(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: c.prompt},
			{Role: "user", Content: text},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set(chimw.RequestIDHeader, pnet.RequestID(ctx))

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call chat completions: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := c.read(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorResponse
		msg := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &eb) == nil && eb.Error.Message != "" {
			msg = eb.Error.Message
		}
		return "", &perr.StatusError{Status: resp.StatusCode, Body: msg}
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("chat response had no choices")
	}
	logger.C(ctx).Debug().
		Int("prompt_tokens", cr.Usage.PromptTokens).
		Int("completion_tokens", cr.Usage.CompletionTokens).
		Str("finish_reason", cr.Choices[0].FinishReason).
		Msg("llm completion")
	return cr.Choices[0].Message.Content, nil
}

// read drains at most MaxResponseBytes and fails when the body is longer
func (c *Client) read(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, c.cfg.MaxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read chat response: %w", err)
	}
	if int64(len(raw)) > c.cfg.MaxResponseBytes {
		return nil, fmt.Errorf("chat response exceeded %d bytes", c.cfg.MaxResponseBytes)
	}
	return raw, nil
}
