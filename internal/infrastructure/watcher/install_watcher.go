// Package watcher triggers an early upgrade check when the installed
// artifact changes on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"

	"github.com/bnema/upgradewatch/internal/logging"
)

// DefaultDebounce is the quiet period after the last filesystem event
// before the trigger fires.
const DefaultDebounce = 2 * time.Second

const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Rename | fsnotify.Chmod

// InstallWatcher watches a set of files. Package managers usually replace
// binaries by renaming a new file into place, so the parent directories are
// watched and events are filtered by path.
type InstallWatcher struct {
	targets  map[string]struct{}
	dirs     []string
	debounce time.Duration
	trigger  func()
	clock    clockwork.Clock

	mu    sync.Mutex
	timer clockwork.Timer
}

// Option configures an InstallWatcher.
type Option func(*InstallWatcher)

// WithDebounce sets the quiet period. Non-positive values keep the default.
func WithDebounce(d time.Duration) Option {
	return func(w *InstallWatcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithClock replaces the clock used for debouncing.
func WithClock(c clockwork.Clock) Option {
	return func(w *InstallWatcher) {
		w.clock = c
	}
}

// New creates a watcher that calls trigger once per burst of changes to
// any of paths. Empty paths are ignored.
func New(paths []string, trigger func(), opts ...Option) *InstallWatcher {
	w := &InstallWatcher{
		targets:  make(map[string]struct{}),
		debounce: DefaultDebounce,
		trigger:  trigger,
		clock:    clockwork.NewRealClock(),
	}
	seenDirs := make(map[string]struct{})
	for _, p := range paths {
		if p == "" {
			continue
		}
		clean := filepath.Clean(p)
		w.targets[clean] = struct{}{}
		dir := filepath.Dir(clean)
		if _, ok := seenDirs[dir]; !ok {
			seenDirs[dir] = struct{}{}
			w.dirs = append(w.dirs, dir)
		}
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run blocks until ctx is cancelled. It returns an error only when the
// watch cannot be set up.
func (w *InstallWatcher) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	if len(w.targets) == 0 || w.trigger == nil {
		log.Debug().Msg("install watcher has nothing to watch")
		<-ctx.Done()
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	defer func() {
		_ = fsw.Close()
		w.stopTimer()
	}()

	// Directories that do not exist yet, such as an empty staging slot, are
	// covered by their closest existing ancestor until they appear.
	pending := make(map[string]struct{})
	for _, dir := range w.dirs {
		if !w.watchDir(ctx, fsw, dir, pending) {
			return fmt.Errorf("no watchable ancestor for %s", dir)
		}
	}
	log.Debug().
		Int("dirs", len(w.dirs)-len(pending)).
		Int("pending", len(pending)).
		Dur("debounce", w.debounce).
		Msg("install watcher started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) && awaited(event.Name, pending) {
				if w.resolvePending(ctx, fsw, pending) {
					// The target may have been created along with its directory.
					w.schedule()
				}
				continue
			}
			if !w.relevant(event) {
				continue
			}
			log.Trace().Str("path", event.Name).Str("op", event.Op.String()).Msg("install changed")
			w.schedule()
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("fsnotify watcher error")
		}
	}
}

// watchDir watches dir, or its closest existing ancestor when dir cannot be
// watched yet, in which case dir is recorded in pending. It reports false
// only when nothing up to the filesystem root can be watched.
func (*InstallWatcher) watchDir(ctx context.Context, fsw *fsnotify.Watcher, dir string, pending map[string]struct{}) bool {
	err := fsw.Add(dir)
	if err == nil {
		delete(pending, dir)
		return true
	}

	log := logging.FromContext(ctx)
	log.Debug().Err(err).Str("dir", dir).Msg("install directory not watchable yet")
	pending[dir] = struct{}{}
	for parent := filepath.Dir(dir); ; parent = filepath.Dir(parent) {
		if fsw.Add(parent) == nil {
			log.Debug().Str("dir", dir).Str("via", parent).Msg("waiting for install directory")
			return true
		}
		if parent == filepath.Dir(parent) {
			return false
		}
	}
}

// resolvePending retries every pending directory and reports whether any
// of them is now watched directly.
func (w *InstallWatcher) resolvePending(ctx context.Context, fsw *fsnotify.Watcher, pending map[string]struct{}) bool {
	appeared := false
	for dir := range pending {
		if w.watchDir(ctx, fsw, dir, pending) {
			if _, still := pending[dir]; !still {
				logging.FromContext(ctx).Debug().Str("dir", dir).Msg("install directory appeared")
				appeared = true
			}
		}
	}
	return appeared
}

// awaited reports whether name is a pending directory or one of its ancestors.
func awaited(name string, pending map[string]struct{}) bool {
	name = filepath.Clean(name)
	for dir := range pending {
		if dir == name || strings.HasPrefix(dir, name+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *InstallWatcher) relevant(event fsnotify.Event) bool {
	if event.Op&relevantOps == 0 {
		return false
	}
	_, ok := w.targets[filepath.Clean(event.Name)]
	return ok
}

func (w *InstallWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = w.clock.AfterFunc(w.debounce, w.trigger)
}

func (w *InstallWatcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
