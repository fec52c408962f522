// Package openai summarizes text with an OpenAI chat completion.
package openai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"voicebrief/internal/app/api/summarizer"
)

const systemPrompt = "Summarize the following transcript in a few sentences. Reply with the summary only."

func init() {
	summarizer.Register("openai", createOpenAISummarizer)
}

func createOpenAISummarizer(opts summarizer.Options) (summarizer.Summarizer, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("openai summarizer requires OPENAI_API_KEY")
	}

	model, _ := opts.Settings["model"].(string)
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	return &ChatSummarizer{
		client: openai.NewClient(opts.APIKey),
		model:  model,
	}, nil
}

// ChatSummarizer implements summarizer.Summarizer on the chat API.
type ChatSummarizer struct {
	client *openai.Client
	model  string
}

func (s *ChatSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	request := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
