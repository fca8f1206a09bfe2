package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last change before a
// watcher reports it.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports changes to a set of files. It watches their directories,
// so files replaced by editors through a rename are still seen.
type Watcher struct {
	fs    *fsnotify.Watcher
	files map[string]bool

	// Debounce is the quiet period before a change is reported.
	Debounce time.Duration
	logger   *slog.Logger
}

// NewWatcher watches the given files. Empty paths are ignored.
func NewWatcher(logger *slog.Logger, paths ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: failed to create file watcher: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w := &Watcher{fs: fs, files: map[string]bool{}, Debounce: DefaultDebounce, logger: logger}

	dirs := map[string]bool{}
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			fs.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fs.Add(dir); err != nil {
			fs.Close()
			return nil, fmt.Errorf("config: failed to watch %s: %w", dir, err)
		}
		logger.Debug("Watching directory", "path", dir)
	}
	return w, nil
}

// Run calls onChange with the path of a changed file once it has been
// quiet for Debounce. It returns when ctx is done or the watcher is
// closed.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 || !w.files[filepath.Clean(ev.Name)] {
				continue
			}
			w.logger.Debug("File changed", "path", ev.Name, "op", ev.Op.String())
			pending = ev.Name
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				timer.Reset(w.Debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			onChange(pending)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("File watcher error", "err", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error { return w.fs.Close() }
