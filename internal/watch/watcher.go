// Package watch re-runs a build when its source directories change.
//
// Bursts of filesystem events are coalesced: the callback fires once the
// directories have been quiet for the debounce period.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before a rebuild
const DefaultDebounce = 200 * time.Millisecond

// defaultIgnores are base-name patterns that never trigger a rebuild:
// atomic-write temp files, editor swap files and OS metadata.
var defaultIgnores = []string{
	".*.tmp",
	"*.swp",
	"*.swo",
	"*~",
	".DS_Store",
}

// OnChange receives the changed paths of one debounced burst
type OnChange func(ctx context.Context, changed []string) error

// Options configures a Watcher
type Options struct {
	Debounce time.Duration // Zero uses DefaultDebounce
	Ignore   []string      // Files that never trigger a rebuild (build outputs)
	Logger   *log.Logger   // nil discards logs
}

// Watcher watches directories and fires a debounced callback
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange OnChange
	debounce time.Duration
	ignore   map[string]bool
	logger   *log.Logger
	started  atomic.Bool

	mu   sync.Mutex
	dirs []string
}

// New creates a Watcher. Directories are registered with Add.
func New(onChange OnChange, opts Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ignore := make(map[string]bool, len(opts.Ignore))
	for _, path := range opts.Ignore {
		if path == "" {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			ignore[abs] = true
		}
	}

	return &Watcher{
		fsw:      fsw,
		onChange: onChange,
		debounce: debounce,
		ignore:   ignore,
		logger:   logger,
	}, nil
}

// Add registers dirs and every directory below them. A directory that
// does not exist is skipped with a warning so the watcher can still pick
// up the rest; the next build reports it as an error.
func (w *Watcher) Add(dirs ...string) error {
	for _, dir := range dirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("watch: resolve %q: %w", dir, err)
		}
		if slices.Contains(w.Dirs(), abs) {
			continue
		}

		err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				if path == abs {
					return walkErr
				}
				w.logger.Warn("Skipping inaccessible path", "path", path, "err", walkErr)
				return nil
			}
			if !d.IsDir() {
				return nil
			}
			if path != abs && isHidden(d.Name()) {
				return filepath.SkipDir
			}
			if err := w.fsw.Add(path); err != nil {
				return fmt.Errorf("watch: add %q: %w", path, err)
			}
			w.track(path)
			return nil
		})
		if errors.Is(err, fs.ErrNotExist) {
			w.logger.Warn("Watch directory does not exist", "dir", dir)
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Dirs returns the registered directories in registration order
func (w *Watcher) Dirs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.dirs)
}

func (w *Watcher) track(dir string) {
	w.mu.Lock()
	w.dirs = append(w.dirs, dir)
	w.mu.Unlock()
}

// Run processes events until ctx is cancelled. It must be called once.
// Callbacks never overlap; a burst arriving during a rebuild is picked up
// by a follow-up rebuild. Run returns only after a callback in progress
// has finished.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return errors.New("watch: Run called more than once")
	}

	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
		timer   *time.Timer
		stopped bool
		running atomic.Bool
		// inflight counts fire calls past the stopped check
		inflight sync.WaitGroup
	)

	fire := func() {
		mu.Lock()
		if stopped {
			mu.Unlock()
			return
		}
		inflight.Add(1)
		mu.Unlock()
		defer inflight.Done()

		if ctx.Err() != nil {
			return
		}
		if !running.CompareAndSwap(false, true) {
			mu.Lock()
			if timer != nil {
				timer.Reset(w.debounce)
			}
			mu.Unlock()
			return
		}
		defer running.Store(false)

		mu.Lock()
		if len(pending) == 0 {
			mu.Unlock()
			return
		}
		changed := slices.Sorted(maps.Keys(pending))
		clear(pending)
		mu.Unlock()

		w.logger.Debug("Change detected", "files", len(changed))
		if w.onChange == nil {
			return
		}
		if err := w.onChange(ctx, changed); err != nil {
			w.logger.Error("Rebuild failed", "err", err)
		}
	}

	defer func() {
		mu.Lock()
		stopped = true
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
		inflight.Wait()
		if err := w.fsw.Close(); err != nil {
			w.logger.Warn("Close watcher", "err", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watch: event channel closed")
			}
			if evt.Has(fsnotify.Chmod) && !evt.Has(fsnotify.Write) {
				continue
			}
			if w.isIgnored(evt.Name) {
				continue
			}
			if evt.Has(fsnotify.Create) {
				w.maybeAddDir(evt.Name)
			}

			mu.Lock()
			pending[evt.Name] = struct{}{}
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watch: error channel closed")
			}
			w.logger.Warn("Watcher error", "err", err)
		}
	}
}

// maybeAddDir extends the watch to directories created after startup
func (w *Watcher) maybeAddDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || isHidden(info.Name()) {
		return
	}
	if err := w.fsw.Add(path); err != nil {
		w.logger.Warn("Add new directory", "path", path, "err", err)
		return
	}
	w.track(path)
}

func (w *Watcher) isIgnored(path string) bool {
	if w.ignore[filepath.Clean(path)] {
		return true
	}
	base := filepath.Base(path)
	for _, pattern := range defaultIgnores {
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return len(name) > 1 && name[0] == '.'
}
