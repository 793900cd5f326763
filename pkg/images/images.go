// Package images localizes the images referenced by a page: each reachable
// <img> is downloaded next to the output document and its src rewritten to a
// relative path. Downloads run strictly sequentially in document order so the
// image directory listing stays predictable.
package images

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/danielmarass/webmark/internal/logger"
	"github.com/danielmarass/webmark/pkg/document"
	"github.com/danielmarass/webmark/pkg/fetcher"
)

var (
	imgTagRe = regexp.MustCompile(`(?i)<img[^>]+src="([^"]+)"[^>]*>`)
	altRe    = regexp.MustCompile(`(?i)alt="([^"]*)"`)
)

// extByContentType maps image content types to file extensions when the URL
// path carries none.
var extByContentType = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// Result reports a completed localization pass.
type Result struct {
	HTML       string // working HTML with rewritten src attributes
	Dir        string // absolute path of the image directory
	Downloaded int
}

// Localizer downloads page images and rewrites their references.
type Localizer struct {
	fetcher fetcher.Fetcher
	now     func() time.Time
}

// New creates a Localizer that downloads through f.
func New(f fetcher.Fetcher) *Localizer {
	return &Localizer{fetcher: f, now: time.Now}
}

// Localize scans html for <img> tags, downloads each http(s) image into a
// dated directory under outputDir, and rewrites the tags to relative paths.
// Per-image failures are logged and skipped; only directory creation fails
// the pass. Returns nil when no image was downloaded, in which case the
// caller keeps the original HTML.
func (l *Localizer) Localize(ctx context.Context, html string, base *url.URL, outputDir, prefix string) (*Result, error) {
	matches := imgTagRe.FindAllStringSubmatch(html, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	dirName := fmt.Sprintf("%s-images-%s", prefix, l.now().Format("2006-01-02"))
	imageDir := filepath.Join(outputDir, dirName)
	if err := os.MkdirAll(imageDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}

	downloaded := 0
	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tag, src := m[0], m[1]

		resolved, err := base.Parse(src)
		if err != nil {
			logger.Warn("skipping unparseable image src", "src", src, "error", err)
			continue
		}
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			// data: URLs and exotic schemes stay untouched.
			continue
		}

		data, contentType, err := l.fetcher.Binary(ctx, resolved.String())
		if err != nil {
			logger.Warn("failed to download image", "url", resolved.String(), "error", err)
			continue
		}

		filename := localFilename(tag, resolved, contentType)
		if err := os.WriteFile(filepath.Join(imageDir, filename), data, 0o644); err != nil {
			logger.Warn("failed to write image", "file", filename, "error", err)
			continue
		}
		downloaded++

		relPath := dirName + "/" + filename
		newTag := strings.Replace(tag, src, relPath, 1)
		html = strings.Replace(html, tag, newTag, 1)
		logger.Debug("image localized", "url", resolved.String(), "file", relPath)
	}

	if downloaded == 0 {
		return nil, nil
	}
	return &Result{HTML: html, Dir: imageDir, Downloaded: downloaded}, nil
}

// localFilename builds a per-run-unique name: sanitized alt text (capped at
// 50 chars, "image" when blank) plus the first 8 hex chars of the resolved
// URL's digest, so identical alt texts on different URLs never collide.
func localFilename(tag string, resolved *url.URL, contentType string) string {
	ext := path.Ext(resolved.Path)
	if ext == "" {
		ct := strings.TrimSpace(strings.Split(contentType, ";")[0])
		if e, ok := extByContentType[ct]; ok {
			ext = e
		} else {
			ext = ".jpg"
		}
	}

	alt := "image"
	if m := altRe.FindStringSubmatch(tag); m != nil {
		if a := document.SanitizeFilename(m[1]); a != "" {
			alt = a
		}
	}
	if len(alt) > 50 {
		alt = alt[:50]
	}

	sum := sha256.Sum256([]byte(resolved.String()))
	hash := hex.EncodeToString(sum[:])[:8]

	return alt + "-" + hash + ext
}
