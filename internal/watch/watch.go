// Package watch re-runs the build pipeline when package sources change.
// Every rebuild goes through the full pipeline, workspace reset included, so
// the non-idempotent patches never compound.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/squidCatx/big-react-wasm/internal/logfields"
)

// Rebuild runs one full build.
type Rebuild func(ctx context.Context) error

// Watcher monitors a source tree and triggers debounced rebuilds.
type Watcher struct {
	dir      string
	debounce time.Duration
	rebuild  Rebuild
}

// New creates a watcher over dir. Rapid successive events within the
// debounce window coalesce into a single rebuild.
func New(dir string, debounce time.Duration, rebuild Rebuild) *Watcher {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &Watcher{dir: dir, debounce: debounce, rebuild: rebuild}
}

// Run builds once, then watches until the context is canceled. Rebuild
// failures are logged and watching continues; only watcher setup errors and
// cancellation end the loop.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	if err := addRecursive(fsw, w.dir); err != nil {
		return err
	}
	slog.Info("Watching for source changes", logfields.Path(w.dir))

	if err := w.rebuild(ctx); err != nil {
		slog.Error("Build failed", logfields.Error(err))
	}
	return w.loop(ctx, fsw, fsw.Events, fsw.Errors)
}

// addRecursive watches dir and every subdirectory beneath it.
func addRecursive(fsw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk source tree: %w", err)
		}
		if !d.IsDir() {
			return nil
		}
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, events <-chan fsnotify.Event, errs <-chan error) error {
	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			// Newly created directories must be watched too.
			if fsw != nil && ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = fsw.Add(ev.Name)
				}
			}
			slog.Debug("Source change detected", logfields.Path(ev.Name))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", logfields.Error(err))
		case <-pending:
			pending = nil
			if err := w.rebuild(ctx); err != nil {
				slog.Error("Build failed", logfields.Error(err))
			}
		}
	}
}

// relevant filters events down to content-changing operations.
func relevant(ev fsnotify.Event) bool {
	return ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write) ||
		ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename)
}
