package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SummarizersConfig is the optional yaml file describing summarization
// providers. Secrets stay in the environment; the file carries endpoint
// and model settings only.
type SummarizersConfig struct {
	DefaultSummarizer string                      `yaml:"default_summarizer"`
	Summarizers       map[string]SummarizerConfig `yaml:"summarizers"`
}

// SummarizerConfig represents configuration for a single provider.
type SummarizerConfig struct {
	Type     string                 `yaml:"type"`
	Enabled  bool                   `yaml:"enabled"`
	Settings map[string]interface{} `yaml:"settings,omitempty"`
}

// LoadSummarizersConfig loads provider configuration from a YAML file.
func LoadSummarizersConfig(configPath string) (*SummarizersConfig, error) {
	configPath = os.ExpandEnv(configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read summarizer config: %w", err)
	}

	var cfg SummarizersConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse summarizer config: %w", err)
	}

	if cfg.Summarizers == nil {
		cfg.Summarizers = make(map[string]SummarizerConfig)
	}

	return &cfg, nil
}
