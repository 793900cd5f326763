// Package document handles output naming and the final document assembly:
// filename sanitization, collision-free output paths, and the YAML front
// matter prepended to every converted page.
package document

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	invalidCharRe = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	dashRunRe     = regexp.MustCompile(`-+`)
)

// SanitizeFilename converts an arbitrary string into a safe, lowercase
// filename fragment: invalid characters and whitespace become dashes, dash
// runs collapse, and leading/trailing dashes are trimmed.
func SanitizeFilename(name string) string {
	s := invalidCharRe.ReplaceAllString(name, "-")
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = dashRunRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return strings.ToLower(s)
}

// FilenameFromTitle builds the auto-generated output filename:
// {ISO-date}-{sanitized-title}.md
func FilenameFromTitle(title string, now time.Time) string {
	return fmt.Sprintf("%s-%s.md", now.Format("2006-01-02"), SanitizeFilename(title))
}

// EnsureUnique returns path if nothing exists there, otherwise the first
// variant suffixed -1, -2, ... before the extension that does not exist.
func EnsureUnique(path string) string {
	final := path
	for counter := 1; ; counter++ {
		if _, err := os.Stat(final); os.IsNotExist(err) {
			return final
		}
		ext := filepath.Ext(path)
		base := strings.TrimSuffix(filepath.Base(path), ext)
		final = filepath.Join(filepath.Dir(path), fmt.Sprintf("%s-%d%s", base, counter, ext))
	}
}

// Domain returns the hostname of rawURL without a leading "www.", or
// "unknown" when the URL does not parse.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
