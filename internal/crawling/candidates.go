// Package crawling builds bounded text corpora from company web pages for
// enrichment. It probes a fixed set of candidate pages rather than following
// links; this is a targeted scrape, not a crawler.
package crawling

import "strings"

// CandidateURLs returns the fixed set of pages probed per enrichment call:
// the root URL plus its /about and /careers variants. A trailing slash on the
// root is stripped before suffixing; the root itself is probed as given.
func CandidateURLs(rootURL string) []string {
	trimmed := strings.TrimSuffix(rootURL, "/")
	return []string{
		rootURL,
		trimmed + "/about",
		trimmed + "/careers",
	}
}
