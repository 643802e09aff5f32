package enrich

import (
	"github.com/jonathan/vc-scout/internal/prompts"
)

// MaxCorpusChars bounds the corpus text embedded in the prompt, regardless of
// how many pages contributed.
const MaxCorpusChars = 4000

// BuildPrompt composes the completion-request message from the company name
// and the aggregated corpus. The prompt is fully deterministic given the same
// inputs; sampling knobs live in the completion client.
func BuildPrompt(companyName, corpusText string) string {
	if len(corpusText) > MaxCorpusChars {
		corpusText = corpusText[:MaxCorpusChars]
	}

	template := prompts.MustGet("enrich.json", "company-intelligence")
	return prompts.Format(template, map[string]string{
		"CompanyName": companyName,
		"Corpus":      corpusText,
	})
}
