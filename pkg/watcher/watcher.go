// Package watcher reports debounced changes of individual files.
package watcher

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before its callback
// runs.
const DefaultDebounce = 200 * time.Millisecond

// FileWatcher watches files for changes and triggers callbacks. Callbacks
// run on a timer goroutine; GUI callers must hop back onto their own
// thread.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	log       *slog.Logger
	debounce  time.Duration
	mu        sync.Mutex
	callbacks map[string]func(string)
	dirs      map[string]int
	timers    map[string]*time.Timer
	done      chan struct{}
	closeOnce sync.Once
}

// Option configures a FileWatcher.
type Option func(*FileWatcher)

// WithLogger sets the logger for watch errors.
func WithLogger(log *slog.Logger) Option {
	return func(fw *FileWatcher) {
		fw.log = log
	}
}

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(fw *FileWatcher) {
		fw.debounce = d
	}
}

// NewFileWatcher creates a watcher. Call Start to begin delivering events.
func NewFileWatcher(opts ...Option) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher:   w,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		debounce:  DefaultDebounce,
		callbacks: make(map[string]func(string)),
		dirs:      make(map[string]int),
		timers:    make(map[string]*time.Timer),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(fw)
	}
	return fw, nil
}

// Watch registers callback for file. The parent directory is watched, so
// editors that save by renaming a temp file over the original are seen as
// well.
func (fw *FileWatcher) Watch(file string, callback func(string)) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}
	dir := filepath.Dir(abs)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, ok := fw.callbacks[abs]; !ok {
		if fw.dirs[dir] == 0 {
			if err := fw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
		}
		fw.dirs[dir]++
	}
	fw.callbacks[abs] = callback
	return nil
}

// Unwatch drops the callback of file.
func (fw *FileWatcher) Unwatch(file string) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}
	dir := filepath.Dir(abs)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, ok := fw.callbacks[abs]; !ok {
		return nil
	}
	delete(fw.callbacks, abs)
	if t, ok := fw.timers[abs]; ok {
		t.Stop()
		delete(fw.timers, abs)
	}
	fw.dirs[dir]--
	if fw.dirs[dir] == 0 {
		delete(fw.dirs, dir)
		return fw.watcher.Remove(dir)
	}
	return nil
}

// Start begins watching for file changes in a background goroutine.
func (fw *FileWatcher) Start() {
	go fw.loop()
}

func (fw *FileWatcher) loop() {
	for {
		select {
		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				fw.handleFileChange(filepath.Clean(ev.Name))
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.log.Warn("watcher error", "err", err)
		case <-fw.done:
			return
		}
	}
}

func (fw *FileWatcher) handleFileChange(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, ok := fw.callbacks[path]
	if !ok {
		return
	}
	if t, ok := fw.timers[path]; ok {
		t.Stop()
	}
	fw.log.Debug("file changed", "path", path)
	fw.timers[path] = time.AfterFunc(fw.debounce, func() {
		callback(path)
	})
}

// Close stops the watcher. Pending callbacks are cancelled.
func (fw *FileWatcher) Close() error {
	var err error
	fw.closeOnce.Do(func() {
		close(fw.done)
		fw.mu.Lock()
		for path, t := range fw.timers {
			t.Stop()
			delete(fw.timers, path)
		}
		fw.mu.Unlock()
		err = fw.watcher.Close()
	})
	return err
}
