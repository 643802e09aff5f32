package enrich

import (
	"encoding/json"
	"log"

	"github.com/jonathan/vc-scout/internal/llm"
	"github.com/jonathan/vc-scout/internal/schemas"
	"github.com/jonathan/vc-scout/internal/types"
)

// Decode parses raw model output into an EnrichmentResult. Markdown fences
// are stripped first; a response that still is not valid JSON is a terminal
// *DecodeError. On success every expected field is read with a default
// fallback, so missing keys never produce a partially-typed result, and
// wrong-typed fields are reset to their defaults rather than passed through.
// Extra keys are ignored. Sources are not set here; the orchestrator attaches
// provenance.
func Decode(raw string) (*types.EnrichmentResult, error) {
	cleaned := llm.CleanJSONBlock(raw)

	var doc map[string]any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		log.Printf("[enrich] unparseable model response: %s", cleaned)
		return nil, &DecodeError{Cause: err}
	}

	invalid, err := schemas.InvalidEnrichmentFields(doc)
	if err != nil {
		// A broken embedded schema is a build defect; fall back to the
		// type assertions below rather than failing the enrichment.
		log.Printf("[enrich] schema check unavailable: %v", err)
	}
	for field := range invalid {
		log.Printf("[enrich] model returned wrong type for %q, using default", field)
		delete(doc, field)
	}

	return &types.EnrichmentResult{
		Summary:    stringField(doc, "summary"),
		WhatTheyDo: stringSliceField(doc, "whatTheyDo"),
		Keywords:   stringSliceField(doc, "keywords"),
		Signals:    stringSliceField(doc, "signals"),
	}, nil
}

func stringField(doc map[string]any, key string) string {
	s, _ := doc[key].(string)
	return s
}

func stringSliceField(doc map[string]any, key string) []string {
	out := []string{}
	arr, ok := doc[key].([]any)
	if !ok {
		return out
	}
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
