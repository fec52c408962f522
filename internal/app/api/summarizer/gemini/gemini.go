// Package gemini summarizes text with the Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"voicebrief/internal/app/api/summarizer"
)

const summaryPrompt = "Summarize the following transcript in a few sentences. Reply with the summary only.\n\n"

func init() {
	summarizer.Register("gemini", createGeminiSummarizer)
}

func createGeminiSummarizer(opts summarizer.Options) (summarizer.Summarizer, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("gemini summarizer requires GEMINI_API_KEY")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model, _ := opts.Settings["model"].(string)
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GeminiSummarizer{client: client, model: model}, nil
}

// GeminiSummarizer implements summarizer.Summarizer via GenerateContent.
type GeminiSummarizer struct {
	client *genai.Client
	model  string
}

func (s *GeminiSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(summaryPrompt+text), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	out := resp.Text()
	if out == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return out, nil
}
