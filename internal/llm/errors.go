package llm

import "fmt"

// maxErrorBody bounds the upstream error excerpt carried in an UpstreamError.
const maxErrorBody = 300

// ConfigError indicates a missing or unusable credential. It is reported
// before any network call is attempted.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// UpstreamError indicates the completion API returned a non-success response.
// Body carries a bounded excerpt of the upstream error body. Never retried.
type UpstreamError struct {
	Provider   string // display name, e.g. "Groq"
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Provider, e.Body)
}

// truncateBody bounds an upstream error body for inclusion in an error.
func truncateBody(body string) string {
	if len(body) > maxErrorBody {
		return body[:maxErrorBody]
	}
	return body
}
