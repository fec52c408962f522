package main

import (
	"fmt"
	"os"

	"voicebrief/cmd/voicebrief/cmd"
	"voicebrief/internal/config"

	// Import summarizer providers to register them
	_ "voicebrief/internal/app/api/summarizer/gemini"
	_ "voicebrief/internal/app/api/summarizer/huggingface"
	_ "voicebrief/internal/app/api/summarizer/openai"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}

	cmd.Execute()
}
