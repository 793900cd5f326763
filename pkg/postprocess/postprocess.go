// Package postprocess normalizes converted Markdown text.
//
// Cleanup is modeled as ordered rewrite rule tables rather than hardcoded
// control flow: Clean applies the always-on normalization passes, Aggressive
// layers best-effort heuristics tuned for newsletter-style publishing
// platforms on top. Order within a table matters; later rules assume earlier
// ones already ran.
package postprocess

import (
	"regexp"
	"strings"
)

// rewrite is a single ordered (pattern, replacement) cleanup rule.
type rewrite struct {
	name string
	re   *regexp.Regexp
	repl string
}

func (r rewrite) apply(s string) string {
	return r.re.ReplaceAllString(s, r.repl)
}

var baseRules = []rewrite{
	{"collapse-newlines", regexp.MustCompile(`\n{3,}`), "\n\n"},
	{"empty-links", regexp.MustCompile(`\[\s*\]\([^)]+\)`), ""},
	{"blank-runs", regexp.MustCompile(`\n\s*\n\s*\n`), "\n\n"},
	{"leading-space", regexp.MustCompile(`(?m)^[ \t]+`), ""},
	{"trailing-space", regexp.MustCompile(`(?m)[ \t]+$`), ""},
	{"broken-brackets", regexp.MustCompile(`\[\s*\n\s*\]`), "[]"},
}

var aggressiveRules = []rewrite{
	{"bare-domain", regexp.MustCompile(`(\w+\.com)\]\([^)]+\)`), "${1}"},
	{"duplicate-link-text", regexp.MustCompile(`Link\s*--\s*Link`), ""},
	{"pre-greeting", regexp.MustCompile(`(?is)^.*?(Hello\s+(?:guys|folks|everyone|readers|friends|there))`), "${1}"},
	{"newsletter-meta", regexp.MustCompile(`Sent as a\s*Newsletter.*?·.*?·.*?Link`), ""},
	{"read-time", regexp.MustCompile(`\w+\s+·\s+\d+\s+min\s+read\s+·\s+\w+\s+\d+,\s+\d+`), ""},
	{"newsletter-lines", regexp.MustCompile(`(?m)^[^\n]*Newsletter[^\n]*\n`), ""},
	{"author-follow", regexp.MustCompile(`(?m)^[A-Za-z0-9_]+\s+(?:·|-|—)\s+Follow\s*\n`), ""},
	{"bare-follow", regexp.MustCompile(`(?m)^Follow\s*\n`), ""},
	{"author-handle", regexp.MustCompile(`(?m)^[a-z][a-z0-9_]+\s*\n`), ""},
	{"post-page-links", regexp.MustCompile(`\[([^\]]+)\]\([^)]*source=post_page[^)]*\)`), "[${1}]"},
	{"blank-runs", regexp.MustCompile(`\n\s*\n\s*\n`), "\n\n"},
}

// Clean applies the always-on normalization passes and trims the document.
func Clean(md string) string {
	for _, r := range baseRules {
		md = r.apply(md)
	}
	return strings.TrimSpace(md)
}

// Aggressive applies platform-specific cleanup heuristics. These are
// best-effort textual rewrites; in particular the pre-greeting truncation can
// drop legitimate content that happens to precede a matching sentence.
func Aggressive(md string) string {
	for _, r := range aggressiveRules {
		md = r.apply(md)
	}
	return strings.TrimSpace(md)
}

// StripLeadingTitle removes a leading heading line that textually duplicates
// title (case-insensitive, optional "#" prefix), so the injected document
// heading is the only occurrence.
func StripLeadingTitle(md, title string) string {
	re := regexp.MustCompile(`(?i)^#?\s*` + regexp.QuoteMeta(title) + `\s*\n`)
	return re.ReplaceAllString(md, "")
}
