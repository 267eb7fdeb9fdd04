package watcher_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/replan/internal/adapters/watcher"
)

func TestDebouncer_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/ws/mylib/src/lib.rs")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"/ws/mylib/src/lib.rs"}, receivedPaths)
	})
}

func TestDebouncer_CoalescesAndDeduplicates(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		// Editor save storms repeat the same path and interleave others.
		d.Add("/ws/mylib/src/parser.rs")
		d.Add("/ws/mylib/src/lib.rs")
		d.Add("/ws/mylib/src/parser.rs")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{
			"/ws/mylib/src/lib.rs",
			"/ws/mylib/src/parser.rs",
		}, receivedPaths, "batch is deduplicated and sorted")
	})
}

func TestDebouncer_IgnoresEditorArtifacts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		// A vim save touches the swap file, the write-check file, and a
		// backup alongside the real source; emacs leaves a lock file.
		d.Add("/ws/mylib/src/.lib.rs.swp")
		d.Add("/ws/mylib/4913")
		d.Add("/ws/mylib/src/lib.rs~")
		d.Add("/ws/mylib/src/.#lib.rs")
		d.Add("/ws/mylib/src/lib.rs")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"/ws/mylib/src/lib.rs"}, receivedPaths)
	})
}

func TestDebouncer_OnlyArtifactsNoCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			callCount++
		})

		d.Add("/ws/mylib/src/.lib.rs.swp")
		d.Add("/ws/mylib/4913")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 0, callCount)
	})
}

func TestDebouncer_WindowRestartsOnAdd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			callCount++
		})

		d.Add("/ws/a.rs")
		time.Sleep(60 * time.Millisecond)
		// Still inside the window; this restarts it.
		d.Add("/ws/b.rs")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 0, callCount, "window restarted, nothing fired yet")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_SeparateWindowsSeparateBatches(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var batches [][]string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			batches = append(batches, paths)
		})

		d.Add("/ws/a.rs")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		d.Add("/ws/b.rs")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, batches, 2)
		assert.Equal(t, []string{"/ws/a.rs"}, batches[0])
		assert.Equal(t, []string{"/ws/b.rs"}, batches[1])
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(time.Hour, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/ws/a.rs")
		d.Flush()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"/ws/a.rs"}, receivedPaths)

		// Nothing pending; a second flush is a no-op.
		d.Flush()
		assert.Equal(t, 1, callCount)
	})
}
