package commentary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrUnexpectedStatus = errors.New("producer returned unexpected status")
	ErrEmptyTaunt       = errors.New("producer returned an empty taunt")
)

// HTTPProducer asks an external text-generation endpoint for a line.
type HTTPProducer struct {
	url    string
	client *http.Client
}

func NewHTTPProducer(url string, timeout time.Duration) *HTTPProducer {
	return &HTTPProducer{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (that *HTTPProducer) Produce(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, that.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := that.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call producer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var parsed struct {
		Taunt string `json:"taunt"`
	}

	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if parsed.Taunt == "" {
		return "", ErrEmptyTaunt
	}

	return parsed.Taunt, nil
}
