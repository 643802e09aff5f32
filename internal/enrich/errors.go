// Package enrich implements the company enrichment pipeline: scrape a bounded
// set of public pages, aggregate them into a corpus, and ask a completion API
// to summarize the corpus into structured fields.
package enrich

import "fmt"

// InputError indicates a missing required input. Reported immediately, before
// any side effect.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// DecodeError indicates the model output was not valid JSON after fence
// stripping. The raw text is logged for diagnostics, never carried in the
// error.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse model response: %v", e.Cause)
	}
	return "failed to parse model response"
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
