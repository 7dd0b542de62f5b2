package fetch

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for markup stripping.
var (
	scriptTag  = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag   = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	allTags    = regexp.MustCompile(`<[^>]+>`)
	multiSpace = regexp.MustCompile(`\s+`)
)

// StripMarkup reduces an HTML page to readable plain text.
// Script and style blocks are removed first (case-insensitive,
// non-greedy), every remaining tag collapses to whitespace, entities
// are decoded, runs of whitespace shrink to a single space and the
// result is trimmed. An empty string means the page had no text.
func StripMarkup(content string) string {
	content = scriptTag.ReplaceAllString(content, " ")
	content = styleTag.ReplaceAllString(content, " ")
	content = allTags.ReplaceAllString(content, " ")
	content = html.UnescapeString(content)
	content = multiSpace.ReplaceAllString(content, " ")
	return strings.TrimSpace(content)
}
