// Package llm provides completion-API clients for the enrichment pipeline.
// Groq's OpenAI-compatible chat completions endpoint is the default provider;
// Gemini is available behind the same interface.
package llm

import "time"

// Provider identifies a completion-API provider.
type Provider string

// Supported providers.
const (
	ProviderGroq   Provider = "groq"
	ProviderGemini Provider = "gemini"
)

// DefaultTimeout bounds a single completion call. The transport default is
// effectively unbounded, which is too generous for an interactive dashboard.
const DefaultTimeout = 60 * time.Second

// Config holds the completion-request parameters. The token ceiling and low
// temperature favor literal JSON reproduction over creative variation.
type Config struct {
	Provider    Provider
	Model       string
	BaseURL     string // used by the Groq provider
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

// DefaultConfig returns the Groq configuration used by enrichment.
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderGroq,
		Model:       "llama-3.1-8b-instant",
		BaseURL:     "https://api.groq.com/openai/v1",
		MaxTokens:   600,
		Temperature: 0.3,
		Timeout:     DefaultTimeout,
	}
}

// DefaultGeminiConfig returns the Gemini configuration.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.5-flash",
		MaxTokens:   600,
		Temperature: 0.3,
		Timeout:     DefaultTimeout,
	}
}

// ConfigForProvider returns the default configuration for the named provider.
// Unknown names fall back to Groq.
func ConfigForProvider(name string) *Config {
	if Provider(name) == ProviderGemini {
		return DefaultGeminiConfig()
	}
	return DefaultConfig()
}
