package ruletable

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last file event before the
// tables file is reloaded.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a tables file into a Reloadable whenever it changes.
type Watcher struct {
	path      string
	envPrefix string
	target    *Reloadable
	logger    *slog.Logger
	debounce  time.Duration
	onReload  func(*Tables, error)

	mu      sync.Mutex
	running bool
	timer   *time.Timer
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

func WithWatchLogger(l *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithEnvPrefix re-applies environment overrides on every reload.
func WithEnvPrefix(prefix string) WatcherOption {
	return func(w *Watcher) {
		w.envPrefix = prefix
	}
}

// WithReloadHook registers a callback invoked after every reload attempt with
// the tables that were stored, or the error that kept the old ones.
func WithReloadHook(fn func(*Tables, error)) WatcherOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// NewWatcher returns a Watcher for path that stores into target.
func NewWatcher(path string, target *Reloadable, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		path:     path,
		target:   target,
		logger:   slog.New(slog.DiscardHandler),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Reload loads the file once and stores the result. On failure the current
// tables are kept.
func (w *Watcher) Reload() error {
	t, err := Load(w.path, w.envPrefix)
	if err == nil {
		err = w.target.Store(t)
	}
	if w.onReload != nil {
		w.onReload(t, err)
	}
	if err != nil {
		w.logger.Error("rule tables reload failed, keeping previous tables",
			slog.String("path", w.path),
			slog.Any("error", err),
		)
		return err
	}
	w.logger.Info("rule tables reloaded",
		slog.String("path", w.path),
		slog.Int("reserved_words", len(t.ReservedWords)),
	)
	return nil
}

// Watch blocks until ctx is cancelled. The parent directory is watched rather
// than the file itself so atomic renames by editors and config management are
// picked up.
func (w *Watcher) Watch(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return ErrWatcherRunning
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		if w.timer != nil {
			w.timer.Stop()
			w.timer = nil
		}
		w.mu.Unlock()
	}()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %q: %w", dir, err)
	}

	w.logger.Info("watching rule tables", slog.String("path", w.path))

	target := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return errors.New("fsnotify events channel closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("rule tables file event",
				slog.String("path", event.Name),
				slog.String("op", event.Op.String()),
			)
			w.schedule()

		case err, ok := <-fsw.Errors:
			if !ok {
				return errors.New("fsnotify errors channel closed")
			}
			w.logger.Error("rule tables watcher error", slog.Any("error", err))
		}
	}
}

// schedule debounces bursts of events into one reload.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		current := w.running && w.timer == t
		if current {
			w.timer = nil
		}
		w.mu.Unlock()
		if current {
			_ = w.Reload()
		}
	})
	w.timer = t
}
