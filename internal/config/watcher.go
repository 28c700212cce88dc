package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler receives the freshly loaded configuration after a reload.
type Handler func(cfg Config)

// ErrorHandler receives reload failures. The previous configuration
// stays in effect when a reload fails.
type ErrorHandler func(err error)

// Watcher reloads the configuration file when it changes on disk.
//
// The parent directory is watched rather than the file itself because
// most editors replace files with a rename, which drops a direct watch.
type Watcher struct {
	mu sync.Mutex

	path     string
	loader   *Loader
	onReload Handler
	onError  ErrorHandler
	debounce time.Duration

	fsw    *fsnotify.Watcher
	timer  *time.Timer
	closed bool
	done   chan struct{}
}

// WatcherOption adjusts watcher behavior.
type WatcherOption func(*Watcher)

// WithDebounce sets how long to wait after the last change before
// reloading. The default is 100ms.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.debounce = d }
}

// WithErrorHandler sets the reload failure callback.
func WithErrorHandler(h ErrorHandler) WatcherOption {
	return func(w *Watcher) { w.onError = h }
}

// NewWatcher starts watching path and calls onReload with each
// successfully loaded configuration.
func NewWatcher(path string, onReload Handler, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		loader:   NewLoader(),
		onReload: onReload,
		debounce: 100 * time.Millisecond,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}
	w.fsw = fsw

	go w.loop()
	return w, nil
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.matches(ev) {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.reportError(err)
		}
	}
}

func (w *Watcher) matches(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

// scheduleReload collapses bursts of change events into one reload.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.reload)
	} else {
		w.timer.Reset(w.debounce)
	}
}

func (w *Watcher) reload() {
	cfg, err := w.loader.Load(w.path)
	if err != nil {
		w.reportError(err)
		return
	}
	w.onReload(cfg)
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
