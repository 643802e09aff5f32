package crawling

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/vc-scout/internal/fetch"
	"github.com/jonathan/vc-scout/internal/types"
)

// BrowserRenderTimeout bounds a single headless-browser render when the
// browser fallback is enabled.
const BrowserRenderTimeout = 30 * time.Second

// Corpus is the aggregated plain-text extract for one company, with
// provenance for every page that contributed.
type Corpus struct {
	Text    string         `json:"text"`
	Sources []types.Source `json:"sources"`
}

// Options configures corpus building.
type Options struct {
	// UseBrowser enables headless-browser rendering for pages whose static
	// HTML strips to almost nothing (JavaScript-rendered sites).
	UseBrowser bool

	// Fetch overrides the default fetch options. Nil uses defaults.
	Fetch *fetch.Options
}

// BuildCorpus fetches the candidate pages for a company concurrently,
// extracts their text, and assembles the labeled corpus. Per-page failures
// are absorbed: a page that cannot be fetched or strips to nothing is simply
// omitted. If no page contributes, a one-line synthetic corpus naming the
// company and its website is substituted so the result is never empty.
//
// All sources share one batch timestamp captured when the build starts.
// Corpus blocks follow candidate-URL order regardless of fetch completion
// order.
func BuildCorpus(ctx context.Context, rootURL, companyName string, opts Options) *Corpus {
	fetchedAt := time.Now().UTC().Format(time.RFC3339)
	candidates := CandidateURLs(rootURL)

	texts := make([]string, len(candidates))
	var g errgroup.Group
	for i, pageURL := range candidates {
		g.Go(func() error {
			texts[i] = fetchPageText(ctx, pageURL, opts)
			return nil
		})
	}
	// Goroutines swallow their own failures; Wait only synchronizes.
	_ = g.Wait()

	corpus := &Corpus{Sources: make([]types.Source, 0, len(candidates))}
	var blocks []string
	for i, pageURL := range candidates {
		if texts[i] == "" {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("[Source: %s]\n%s", pageURL, texts[i]))
		corpus.Sources = append(corpus.Sources, types.Source{URL: pageURL, FetchedAt: fetchedAt})
	}
	corpus.Text = strings.Join(blocks, "\n\n")

	if strings.TrimSpace(corpus.Text) == "" {
		corpus.Text = fmt.Sprintf("Company: %s. Website: %s", companyName, rootURL)
		corpus.Sources = []types.Source{{URL: rootURL, FetchedAt: fetchedAt}}
	}

	return corpus
}

// fetchPageText retrieves and extracts one candidate page. All failure modes
// collapse to an empty string; the aggregator decides what an empty page set
// means.
func fetchPageText(ctx context.Context, pageURL string, opts Options) string {
	result, err := fetch.URL(ctx, pageURL, opts.Fetch)
	if err != nil {
		log.Printf("[crawl] skipping %s: %v", pageURL, err)
		return ""
	}

	text := ExtractText(result.HTML)

	if opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		rendered, err := fetch.WithBrowser(ctx, pageURL, BrowserRenderTimeout)
		if err != nil {
			log.Printf("[crawl] browser fallback failed for %s: %v", pageURL, err)
			return text
		}
		if renderedText := ExtractText(rendered); renderedText != "" {
			return renderedText
		}
	}

	return text
}
