package crawling

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MaxPageChars bounds the extracted text of a single page.
const MaxPageChars = 3000

// ExtractText strips an HTML document down to bounded plain text: script,
// style, and noscript blocks are removed with their content, all remaining
// markup is dropped, whitespace runs collapse to single spaces, and the
// result is truncated to MaxPageChars. The extraction is lossy by design; it
// bounds the signal fed to the model rather than reconstructing prose.
//
// Extraction is idempotent on already-plain text.
func ExtractText(htmlContent string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		// net/html tolerates arbitrary input; a parse error here means the
		// reader failed, so there is nothing to extract.
		return ""
	}

	doc.Find("script, style, noscript").Remove()

	text := collapseWhitespace(doc.Text())
	if len(text) > MaxPageChars {
		text = text[:MaxPageChars]
	}
	return text
}

// collapseWhitespace reduces all whitespace runs to single spaces and trims
// the ends.
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
