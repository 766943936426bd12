package httpfile

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// sanitizer flattens document-sourced text (summaries, descriptions) into a
// single plain line safe for title and comment positions. Markup is stripped
// with the strict policy; a multi-line description would otherwise break the
// block format.
type sanitizer struct {
	policy *bluemonday.Policy
}

func newSanitizer() *sanitizer {
	return &sanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *sanitizer) Line(text string) string {
	if text == "" {
		return ""
	}
	cleaned := html.UnescapeString(s.policy.Sanitize(text))
	return strings.Join(strings.Fields(cleaned), " ")
}
