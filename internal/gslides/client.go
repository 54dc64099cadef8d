package gslides

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultBaseURL is the production Slides API endpoint.
const DefaultBaseURL = "https://slides.googleapis.com/v1"

// Client communicates with the Google Slides REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Slides API client. An empty baseURL selects the
// production endpoint.
func NewClient(baseURL, token string, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		log: log,
	}
}

// Presentation is the subset of the API resource the pipeline needs.
type Presentation struct {
	PresentationID string `json:"presentationId"`
	Title          string `json:"title"`
	Slides         []struct {
		ObjectID string `json:"objectId"`
	} `json:"slides"`
}

// CreatePresentation creates an empty presentation with the given title.
func (c *Client) CreatePresentation(ctx context.Context, title string) (*Presentation, error) {
	body := map[string]string{"title": title}
	var pres Presentation
	if err := c.do(ctx, http.MethodPost, "/presentations", body, &pres); err != nil {
		return nil, err
	}
	if pres.PresentationID == "" {
		return nil, fmt.Errorf("create presentation: empty presentationId in response")
	}
	return &pres, nil
}

// BatchUpdate applies a request batch to an existing presentation.
func (c *Client) BatchUpdate(ctx context.Context, presentationID string, reqs []Request) error {
	if len(reqs) == 0 {
		return nil
	}
	body := map[string]any{"requests": reqs}
	path := fmt.Sprintf("/presentations/%s:batchUpdate", presentationID)
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// do issues one API call with bounded retry on throttling. Each attempt
// re-marshals the body; 401/403 map to AuthError, 429/5xx to RateLimitError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			wait := Backoff(attempt - 1)
			c.log.Warn("slides api throttled, backing off",
				"path", path, "attempt", attempt, "wait", wait.String())
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		lastErr = c.doOnce(ctx, method, path, payload, out)
		if lastErr == nil || !IsRetryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

func (c *Client) doOnce(ctx context.Context, method, path string, payload []byte, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("slides api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{StatusCode: resp.StatusCode, Message: string(respBody)}
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return &RateLimitError{StatusCode: resp.StatusCode, Message: string(respBody)}
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("slides api status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Close releases resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
