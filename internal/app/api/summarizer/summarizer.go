// Package summarizer defines the text summarization interface and a
// registry of self-registering providers.
package summarizer

import "context"

// Summarizer condenses transcribed text into a short summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Options carries provider construction settings. API keys always come
// from the environment via configuration, never from the yaml file.
type Options struct {
	Endpoint string
	APIKey   string
	Settings map[string]interface{}
}
