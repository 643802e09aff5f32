package llm

import "context"

// Client is an abstraction over completion-API providers.
type Client interface {
	// Complete sends a single-message prompt and returns the raw text of the
	// model's first choice. Failures are surfaced, never retried.
	Complete(ctx context.Context, prompt string) (string, error)
	// Model returns the configured model identifier.
	Model() string
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a completion client for the configured provider.
// A missing credential is a *ConfigError; no network call is made.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGroqClient(config, apiKey)
	}
}
