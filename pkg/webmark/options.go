package webmark

import (
	"github.com/danielmarass/webmark/pkg/fetcher"
)

// Options is the immutable conversion configuration for one run. It is
// supplied once at pipeline start and never mutated mid-run.
type Options struct {
	// StripNonContent removes navigation, ads and boilerplate and isolates
	// the main content container before conversion.
	StripNonContent bool

	// DownloadImages localizes page images next to the output document.
	DownloadImages bool

	// CleanAffiliateLinks unwraps tracking redirects to their destination.
	CleanAffiliateLinks bool

	// AggressiveCleanup enables platform-specific Markdown cleanup
	// heuristics (recommended for Medium-style pages).
	AggressiveCleanup bool

	// AutoGenerateFilename derives the output filename from the page title.
	AutoGenerateFilename bool
}

// DefaultOptions enables every conversion feature.
func DefaultOptions() Options {
	return Options{
		StripNonContent:      true,
		DownloadImages:       true,
		CleanAffiliateLinks:  true,
		AggressiveCleanup:    true,
		AutoGenerateFilename: true,
	}
}

// Request describes one conversion run.
type Request struct {
	// URL is the page to convert.
	URL string `validate:"required,url"`

	// OutputDir is the directory the document (and image folder) land in.
	OutputDir string `validate:"required"`

	// Filename is the user-supplied output name; ".md" is appended when
	// missing. Ignored when Options.AutoGenerateFilename is set.
	Filename string

	Options Options
}

// config holds Converter construction settings.
type config struct {
	fetcher  fetcher.Fetcher
	notifier Notifier
	folders  FolderStore
}

// Option configures a Converter.
type Option func(*config)

// WithFetcher injects a custom Fetcher.
func WithFetcher(f fetcher.Fetcher) Option {
	return func(c *config) {
		c.fetcher = f
	}
}

// WithNotifier injects a progress consumer.
func WithNotifier(n Notifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}

// WithFolderStore injects the recent-folder store updated after each run.
func WithFolderStore(s FolderStore) Option {
	return func(c *config) {
		c.folders = s
	}
}
