package mailer

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicy     *bluemonday.Policy
	stripPolicyOnce sync.Once

	blockBreak = regexp.MustCompile(`(?i)<\s*(br\s*/?|/p|/div|/h[1-6]|/li|/tr)\s*>`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// PlainText converts an HTML body into a plain text alternative.
// Block-level closing tags become line breaks; all other markup is dropped.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})

	s = blockBreak.ReplaceAllString(s, "$0\n")
	text := html.UnescapeString(stripPolicy.Sanitize(s))

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
