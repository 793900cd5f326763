package webmark

// Stage identifies a pipeline progress event.
type Stage string

const (
	StageFetching   Stage = "fetching"
	StageExtracting Stage = "extracting"
	StageImages     Stage = "downloading-images"
	StageConverting Stage = "converting"
	StageDone       Stage = "done"
	StageFailed     Stage = "failed"
)

// Notifier consumes pipeline progress events. Implementations belong to the
// presentation layer; the pipeline only emits.
type Notifier interface {
	Progress(stage Stage, message string)
}

// NopNotifier discards all progress events.
type NopNotifier struct{}

// Progress implements Notifier.
func (NopNotifier) Progress(Stage, string) {}

// FolderStore persists the list of recently used output folders.
type FolderStore interface {
	// Add records path as the most recently used folder.
	Add(path string) error

	// Recent returns up to five unique folders, most recent first.
	Recent() ([]string, error)
}
