package ports

import (
	"context"
	"iter"
)

// WatchEvent is a file system change observed under the watched root.
type WatchEvent struct {
	// Path is the absolute path of the changed file.
	Path string
}

// Watcher observes a workspace for file changes.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given root directory recursively.
	Start(ctx context.Context, root string) error

	// Stop stops the watcher and releases all resources.
	Stop() error

	// Events returns an iterator of file system events.
	Events() iter.Seq[WatchEvent]
}
