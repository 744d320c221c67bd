// Package watch re-checks a server configuration file whenever it
// changes on disk.
//
// The watcher observes the parent directory rather than the file
// itself: editors and deployment tools usually replace a configuration
// atomically (write to a temporary name, then rename over the target),
// which would silently detach a watch on the file's inode. Events are
// filtered down to the one target path and debounced, so a burst of
// writes from a single save triggers one notification.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceInterval is the quiet period required after the last
// file event before a change is reported.
const DefaultDebounceInterval = 200 * time.Millisecond

// Options configures a Watcher. The zero value is usable.
type Options struct {
	// DebounceInterval overrides DefaultDebounceInterval when positive.
	DebounceInterval time.Duration

	// Logger receives watcher lifecycle and event logs. Defaults to
	// slog.Default.
	Logger *slog.Logger
}

// Watcher reports changes to a single configuration file.
type Watcher struct {
	path   string
	dir    string
	logger *slog.Logger
	fsw    *fsnotify.Watcher
	deb    *debouncer

	mu      sync.Mutex
	started bool
	stopped bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a watcher for the configuration file at path. The file
// must exist when the watcher is created.
func New(path string, opts *Options) (*Watcher, error) {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	interval := opts.DebounceInterval
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve configuration path %q: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to watch configuration %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("configuration path %q is a directory", path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		path:   abs,
		dir:    filepath.Dir(abs),
		logger: logger,
		fsw:    fsw,
		deb:    newDebouncer(interval),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}, nil
}

// Watch blocks and invokes onChange after each settled change to the
// file, until the context is cancelled or Stop is called. An error from
// onChange is logged and watching continues.
//
// Watch may be called at most once per Watcher.
func (w *Watcher) Watch(ctx context.Context, onChange func() error) error {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return fmt.Errorf("watcher already started")
	}
	w.started = true
	w.mu.Unlock()

	defer close(w.doneCh)

	if err := w.fsw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch directory %q: %w", w.dir, err)
	}

	w.logger.Info("Configuration watcher started",
		"path", w.path,
		"debounce_ms", w.deb.interval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Configuration watcher stopped (context cancelled)")
			return nil

		case <-w.stopCh:
			w.logger.Info("Configuration watcher stopped")
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.isTargetEvent(event) {
				continue
			}

			w.logger.Debug("Configuration file event",
				"path", event.Name,
				"op", event.Op.String(),
			)

			w.deb.trigger(func() {
				w.logger.Info("Configuration changed", "path", w.path)
				if err := onChange(); err != nil {
					w.logger.Error("Configuration recheck failed", "error", err)
				}
			})

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			// Keep watching; a transient error does not invalidate the
			// directory watch.
			w.logger.Error("Configuration watcher error", "error", err)
		}
	}
}

// Stop terminates a running Watch call and releases the watcher. It is
// safe to call more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	started := w.started
	w.mu.Unlock()

	if started {
		close(w.stopCh)
		<-w.doneCh
	}

	w.deb.stop()
	if err := w.fsw.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

// isTargetEvent reports whether an event concerns the watched file.
// Chmod is ignored; everything else, including Remove and Rename, is a
// change worth reporting, since an atomic replace shows up as a rename
// or create of the target name.
func (w *Watcher) isTargetEvent(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}
	return filepath.Clean(event.Name) == w.path
}

// debouncer coalesces bursts of file events into a single callback
// after a quiet period.
type debouncer struct {
	interval time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	fn      func()
	stopped bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

// trigger schedules fn after the quiet period, replacing any pending
// callback. The latest fn wins.
func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.fn = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

func (d *debouncer) fire() {
	d.mu.Lock()
	fn := d.fn
	stopped := d.stopped
	d.mu.Unlock()

	if fn != nil && !stopped {
		fn()
	}
}

// stop cancels any pending callback. Further triggers are ignored.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.fn = nil
}
