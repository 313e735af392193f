// Package finbert scores financial sentiment with a hosted FinBERT-style
// text-classification endpoint.
package finbert

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"finance-assistant/internal/sentiment"
)

const DefaultURL = "https://api-inference.huggingface.co/models/ProsusAI/finbert"

type inferenceRequest struct {
	Inputs  string           `json:"inputs"`
	Options inferenceOptions `json:"options"`
}

type inferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type TokenSource interface {
	Value(ctx context.Context) (string, error)
}

// HTTPStatusError captures non-2xx upstream responses with status-aware context.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("finbert: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

func (e *HTTPStatusError) HTTPStatusCode() int {
	return e.StatusCode
}

// Client is a sentiment.Scorer backed by a text-classification endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	tokens     TokenSource
}

type Option func(*Client)

func WithURL(url string) Option {
	return func(c *Client) {
		if u := strings.TrimSpace(url); u != "" {
			c.url = u
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Client. A nil tokens sends unauthenticated requests,
// which suits self-hosted endpoints.
func NewClient(tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		url:        DefaultURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Score returns every label the model scored for text.
func (c *Client) Score(ctx context.Context, text string) ([]sentiment.LabelScore, error) {
	body, err := json.Marshal(inferenceRequest{Inputs: text, Options: inferenceOptions{WaitForModel: true}})
	if err != nil {
		return nil, fmt.Errorf("finbert: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("finbert: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		token, err := c.tokens.Value(ctx)
		if err != nil {
			return nil, fmt.Errorf("finbert: resolve token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	raw, err := c.doJSONRequest(req)
	if err != nil {
		return nil, fmt.Errorf("finbert: request failed: %w", err)
	}
	return decodeScores(raw)
}

// decodeScores accepts the batched [[...]] shape as well as a flat [...] list.
func decodeScores(raw []byte) ([]sentiment.LabelScore, error) {
	var batched [][]sentiment.LabelScore
	if err := json.Unmarshal(raw, &batched); err == nil {
		if len(batched) == 0 {
			return nil, errors.New("finbert: empty response")
		}
		return batched[0], nil
	}

	var flat []sentiment.LabelScore
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("finbert: decode response: %w", err)
	}
	return flat, nil
}

func (c *Client) doJSONRequest(req *http.Request) ([]byte, error) {
	httpClient := c.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	res, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, &HTTPStatusError{
			StatusCode: res.StatusCode,
			URL:        c.url,
			Body:       string(buf),
		}
	}

	buf, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return buf, nil
}
