package crawling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractText_RemovesScriptAndStyle(t *testing.T) {
	html := `
		<html>
			<head>
				<style>body { color: red; }</style>
				<script>console.log("tracking");</script>
			</head>
			<body>
				<h1>Acme Robotics</h1>
				<p>We build warehouse robots.</p>
				<noscript>Please enable JavaScript</noscript>
			</body>
		</html>
	`

	text := ExtractText(html)

	assert.Contains(t, text, "Acme Robotics")
	assert.Contains(t, text, "We build warehouse robots.")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "console.log")
	assert.NotContains(t, text, "enable JavaScript")
}

func TestExtractText_CollapsesWhitespace(t *testing.T) {
	html := "<p>Hello\n\n\t   world</p>\n<p>again</p>"

	text := ExtractText(html)

	assert.Equal(t, "Hello world again", text)
}

func TestExtractText_TruncatesLongPages(t *testing.T) {
	html := "<p>" + strings.Repeat("a", MaxPageChars*2) + "</p>"

	text := ExtractText(html)

	assert.Len(t, text, MaxPageChars)
}

func TestExtractText_PlainTextPassesThrough(t *testing.T) {
	text := ExtractText("just plain text, no markup")

	assert.Equal(t, "just plain text, no markup", text)
}

func TestExtractText_Idempotent(t *testing.T) {
	html := "<div><p>Some   spaced\ncontent</p></div>"

	once := ExtractText(html)
	twice := ExtractText(once)

	assert.Equal(t, once, twice)
}

func TestExtractText_EmptyInput(t *testing.T) {
	assert.Equal(t, "", ExtractText(""))
	assert.Equal(t, "", ExtractText("<script>var x = 1;</script>"))
}
