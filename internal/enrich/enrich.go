package enrich

import (
	"context"

	"github.com/jonathan/vc-scout/internal/crawling"
	"github.com/jonathan/vc-scout/internal/llm"
	"github.com/jonathan/vc-scout/internal/types"
)

// Enricher runs the enrichment pipeline. It holds no state across calls;
// candidate URLs and corpora are built fresh per call and never cached here.
type Enricher struct {
	apiKey    string
	llmConfig *llm.Config
	crawlOpts crawling.Options
}

// New creates an Enricher. The credential is sourced once at process start
// and passed in explicitly; it is validated per call before any fetch so a
// configuration error never generates network traffic.
func New(apiKey string, llmConfig *llm.Config, crawlOpts crawling.Options) *Enricher {
	if llmConfig == nil {
		llmConfig = llm.DefaultConfig()
	}
	return &Enricher{
		apiKey:    apiKey,
		llmConfig: llmConfig,
		crawlOpts: crawlOpts,
	}
}

// Enrich turns a company's public web presence into structured summary
// fields. Per-page fetch failures are absorbed by the corpus builder; every
// other failure terminates the pipeline and is returned as a single error
// with no partial result.
func (e *Enricher) Enrich(ctx context.Context, rootURL, companyName string) (*types.EnrichmentResult, error) {
	if rootURL == "" || companyName == "" {
		return nil, &InputError{Message: "Missing url or companyName"}
	}

	// Credential check precedes all fetching; a misconfigured deployment
	// should not burn scrape traffic.
	client, err := llm.NewClient(ctx, e.llmConfig, e.apiKey)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	corpus := crawling.BuildCorpus(ctx, rootURL, companyName, e.crawlOpts)

	prompt := BuildPrompt(companyName, corpus.Text)

	raw, err := client.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	result.Sources = corpus.Sources
	return result, nil
}
