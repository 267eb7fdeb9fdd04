package watcher

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
	"unique"
)

// Debouncer coalesces rapid file system events into one deduplicated batch
// of changed paths per quiet window. Batches are emitted in sorted path
// order so a repeated save storm produces identical planner queries, and
// transient editor artifacts never enter a batch at all.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(paths []string)
}

// NewDebouncer creates a new debouncer with the given quiet window and
// callback.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add adds a file path to the pending set and restarts the quiet window.
// Editor side effects are dropped before batching: at a crate root they
// would spuriously dirty the build script.
func (d *Debouncer) Add(path string) {
	if transientArtifact(path) {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// Interned handles deduplicate repeated events for the same path.
	d.pending[unique.Make(path)] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the quiet window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()

	if len(d.pending) == 0 {
		d.timer = nil
		d.mu.Unlock()
		return
	}

	paths := d.drain()
	d.timer = nil
	d.mu.Unlock()

	if d.callback != nil {
		go d.callback(paths)
	}
}

// Flush immediately invokes the callback with all pending paths and blocks
// until it completes. Used on shutdown so no batch is lost.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired; let it deliver the batch instead.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}

	paths := d.drain()
	d.mu.Unlock()

	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}

// drain empties the pending set and returns its paths sorted. Caller must
// hold the mutex.
func (d *Debouncer) drain() []string {
	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}
	slices.Sort(paths)
	d.pending = make(map[unique.Handle[string]]struct{})
	return paths
}

// transientArtifact reports whether the path is an editor side effect
// rather than a source change: vim swap files and its write-check file
// 4913, emacs lock files, and plain backup files.
func transientArtifact(path string) bool {
	base := filepath.Base(path)
	switch {
	case strings.HasSuffix(base, "~"):
		return true
	case strings.HasSuffix(base, ".swp"), strings.HasSuffix(base, ".swx"):
		return true
	case strings.HasPrefix(base, ".#"):
		return true
	case base == "4913":
		return true
	}
	return false
}
