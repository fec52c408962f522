package huggingface

import (
	"voicebrief/internal/app/api/summarizer"
)

func init() {
	summarizer.Register("huggingface", createHuggingFaceSummarizer)
}

func createHuggingFaceSummarizer(opts summarizer.Options) (summarizer.Summarizer, error) {
	return NewClient(opts.Endpoint, opts.APIKey)
}
