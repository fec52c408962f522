// Package huggingface summarizes text through the Hugging Face
// inference API (facebook/bart-large-cnn by default).
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 60 * time.Second

// Client posts transcripts to a Hugging Face inference endpoint.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewClient creates a Hugging Face summarization client.
func NewClient(endpoint, apiKey string) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("huggingface summarizer requires an endpoint")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("huggingface summarizer requires an API key")
	}

	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: defaultTimeout},
	}, nil
}

type request struct {
	Inputs string `json:"inputs"`
}

type result struct {
	SummaryText string `json:"summary_text"`
}

// Summarize sends the full text as one synchronous POST and extracts
// the summary from the first element of the response array.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(request{Inputs: text})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("summarization request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Truncate upstream error bodies; they can be large HTML pages.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("summarization API returned status %d: %s", resp.StatusCode, msg)
	}

	var results []result
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", fmt.Errorf("failed to decode summarization response: %w", err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("summarization response contained no results")
	}
	if results[0].SummaryText == "" {
		return "", fmt.Errorf("summarization response contained no summary_text")
	}

	return results[0].SummaryText, nil
}
