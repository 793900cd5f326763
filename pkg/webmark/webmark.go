// Package webmark converts a fetched web page into a cleaned, portable
// Markdown document with optionally localized images and rewritten links.
//
// The pipeline flows strictly forward: fetch, content extraction, image
// localization, Markdown conversion, post-processing, file write. One run is
// sequential end to end; per-image download failures are skipped while every
// other failure aborts the run before any output file is written.
package webmark

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/danielmarass/webmark/internal/logger"
	"github.com/danielmarass/webmark/pkg/document"
	"github.com/danielmarass/webmark/pkg/extract"
	"github.com/danielmarass/webmark/pkg/fetcher"
	"github.com/danielmarass/webmark/pkg/images"
	"github.com/danielmarass/webmark/pkg/markdown"
	"github.com/danielmarass/webmark/pkg/postprocess"
)

// ErrInvalidInput indicates a malformed request, detected before any network
// call. Check with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Result is the terminal output of one conversion run.
type Result struct {
	// OutputPath is the written Markdown file.
	OutputPath string

	// ImageDir is the image directory path, empty when no image was
	// localized.
	ImageDir string
}

// Converter runs webpage-to-Markdown conversions.
type Converter struct {
	fetcher   fetcher.Fetcher
	notifier  Notifier
	folders   FolderStore
	localizer *images.Localizer
	validate  *validator.Validate
	now       func() time.Time
}

// New creates a Converter. Without options it fetches with the default static
// fetcher and discards progress events.
func New(opts ...Option) *Converter {
	cfg := config{
		notifier: NopNotifier{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.fetcher == nil {
		cfg.fetcher = fetcher.NewStatic(fetcher.DefaultStaticConfig())
	}

	return &Converter{
		fetcher:   cfg.fetcher,
		notifier:  cfg.notifier,
		folders:   cfg.folders,
		localizer: images.New(cfg.fetcher),
		validate:  validator.New(),
		now:       time.Now,
	}
}

// Close releases the underlying fetcher.
func (c *Converter) Close() error {
	return c.fetcher.Close()
}

// Convert runs the full pipeline for one request. No output file is written
// unless every stage succeeds; skipped images do not count as failures.
func (c *Converter) Convert(ctx context.Context, req Request) (Result, error) {
	res, err := c.convert(ctx, req)
	if err != nil {
		c.notifier.Progress(StageFailed, err.Error())
		return Result{}, err
	}
	c.notifier.Progress(StageDone, res.OutputPath)
	return res, nil
}

func (c *Converter) convert(ctx context.Context, req Request) (Result, error) {
	if err := c.validate.Struct(req); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	baseURL, err := url.Parse(req.URL)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	c.notifier.Progress(StageFetching, req.URL)
	html, err := c.fetcher.Text(ctx, req.URL)
	if err != nil {
		return Result{}, fmt.Errorf("failed to fetch webpage: %w", err)
	}

	title := extract.Title(html)
	logger.Debug("page fetched", "url", req.URL, "title", title, "size", len(html))

	cleaned := html
	if req.Options.StripNonContent {
		c.notifier.Progress(StageExtracting, title)
		cleaned = extract.Extract(cleaned)
		logger.Debug("content extracted", "size", len(cleaned))
	}

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory: %w", err)
	}
	if c.folders != nil {
		if err := c.folders.Add(req.OutputDir); err != nil {
			logger.Warn("failed to record recent folder", "path", req.OutputDir, "error", err)
		}
	}

	imageDir := ""
	if req.Options.DownloadImages {
		c.notifier.Progress(StageImages, "")
		localized, err := c.localizer.Localize(ctx, cleaned, baseURL, req.OutputDir, document.SanitizeFilename(title))
		if err != nil {
			return Result{}, err
		}
		if localized != nil {
			cleaned = localized.HTML
			imageDir = localized.Dir
			logger.Info("images localized", "count", localized.Downloaded, "dir", imageDir)
		}
	}

	c.notifier.Progress(StageConverting, "")
	body, err := markdown.Convert(cleaned, markdown.Options{
		CleanAffiliateLinks: req.Options.CleanAffiliateLinks,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to convert to markdown: %w", err)
	}

	body = postprocess.Clean(body)
	if req.Options.AggressiveCleanup {
		body = postprocess.Aggressive(body)
	}
	body = strings.TrimSpace(postprocess.StripLeadingTitle(body, title))

	now := c.now()
	outPath := document.EnsureUnique(filepath.Join(req.OutputDir, c.outputName(req, title, now)))

	fm := document.FrontMatter{
		Title:  title,
		URL:    req.URL,
		Date:   now.UTC().Format(time.RFC3339),
		Domain: document.Domain(req.URL),
	}
	if imageDir != "" {
		fm.ImagesFolder = filepath.Base(imageDir)
	}
	header, err := fm.Render()
	if err != nil {
		return Result{}, err
	}

	if err := os.WriteFile(outPath, []byte(header+body), 0o644); err != nil {
		return Result{}, fmt.Errorf("failed to write document: %w", err)
	}

	logger.Info("conversion complete", "file", outPath)
	return Result{OutputPath: outPath, ImageDir: imageDir}, nil
}

func (c *Converter) outputName(req Request, title string, now time.Time) string {
	if req.Options.AutoGenerateFilename || req.Filename == "" {
		return document.FilenameFromTitle(title, now)
	}
	name := req.Filename
	if !strings.HasSuffix(name, ".md") {
		name += ".md"
	}
	return name
}
