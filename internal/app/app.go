// Package app wires the gesture pipeline: a tcell input source feeding
// a script filter, the dispatch queue, and an on-screen consumer.
package app

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gestureflow/internal/config"
	"github.com/dshills/gestureflow/internal/gesture"
	"github.com/dshills/gestureflow/internal/gesture/fling"
	"github.com/dshills/gestureflow/internal/gesture/queue"
	"github.com/dshills/gestureflow/internal/script"
	"github.com/dshills/gestureflow/internal/source/tcellsource"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the TOML configuration file. Empty means defaults
	// plus environment overrides.
	ConfigPath string

	// ScriptPath overrides the configured Lua filter script.
	ScriptPath string

	// DebounceMS overrides the configured debounce window. Negative
	// means no override.
	DebounceMS int

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string

	// Debug forces debug-level logging.
	Debug bool
}

// App coordinates the pipeline components and their lifecycle.
type App struct {
	mu sync.Mutex

	logger *Logger
	cfg    config.Config

	screen tcell.Screen

	tracker    *fling.Tracker
	queue      *queue.Queue
	translator *tcellsource.Translator
	source     *tcellsource.Source
	display    *display
	filter     *script.Filter
	watcher    *config.Watcher

	running bool
}

// New loads configuration and prepares the application. The terminal
// is not touched until Run.
func New(opts Options) (*App, error) {
	level := ParseLogLevel(opts.LogLevel)
	if opts.Debug {
		level = LogLevelDebug
	}
	logger := NewLogger(level, nil)

	cfg, err := config.NewLoader().Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if opts.DebounceMS >= 0 {
		cfg.Input.DebounceIntervalMS = opts.DebounceMS
	}
	if opts.ScriptPath != "" {
		cfg.Script.FilterPath = opts.ScriptPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{
		logger: logger,
		cfg:    cfg,
	}

	if cfg.Script.FilterPath != "" {
		f, err := script.NewFilterFile(cfg.Script.FilterPath)
		if err != nil {
			return nil, fmt.Errorf("loading filter script: %w", err)
		}
		a.filter = f
	}

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath, a.handleReload,
			config.WithErrorHandler(a.handleReloadError))
		if err != nil {
			logger.Warn("config watch unavailable: %v", err)
		} else {
			a.watcher = w
		}
	}

	return a, nil
}

// SetScreen supplies a screen, typically a tcell simulation screen in
// tests. When no screen is set, Run creates a real terminal screen.
func (a *App) SetScreen(s tcell.Screen) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.screen = s
}

// Run initializes the terminal and pumps input until Quit. It blocks.
func (a *App) Run() error {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return ErrAlreadyRunning
	}
	a.running = true

	if a.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			a.running = false
			a.mu.Unlock()
			return fmt.Errorf("%w: %v", ErrInitialization, err)
		}
		a.screen = s
	}
	screen := a.screen
	a.mu.Unlock()

	if err := screen.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrInitialization, err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	a.buildPipeline(screen)

	a.logger.Info("running: debounce=%s script=%q",
		a.cfg.Input.DebounceInterval(), a.cfg.Script.FilterPath)

	a.source.Run()
	return nil
}

// buildPipeline assembles translator, queue, and display for a screen.
func (a *App) buildPipeline(screen tcell.Screen) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.tracker = fling.NewTracker()
	a.display = newDisplay(screen)
	a.queue = queue.New(a.display, a.tracker, queue.Config{
		DebounceInterval: a.cfg.Input.DebounceInterval(),
		StrictInvariants: a.cfg.Input.StrictInvariants,
		EnableMetrics:    a.cfg.Input.EnableMetrics,
		Logf:             a.logger.WithComponent("queue").Debug,
	})
	a.display.attach(a.queue)

	a.translator = tcellsource.NewTranslator(tcellsource.Config{
		ScrollEndQuiet:         a.cfg.Source.ScrollEndQuiet(),
		SynthesizeFlings:       a.cfg.Source.SynthesizeFlings,
		FlingVelocityThreshold: a.cfg.Source.FlingVelocityThreshold,
	})
	a.source = tcellsource.NewSource(screen, a.translator, a, a.handleKey)
}

// SubmitEvent runs an event through the script filter, then the queue.
// It implements tcellsource.Submitter.
func (a *App) SubmitEvent(ev gesture.Event) bool {
	a.mu.Lock()
	filter := a.filter
	q := a.queue
	a.mu.Unlock()
	if q == nil {
		return false
	}

	if filter != nil {
		absorb, err := filter.Absorb(ev)
		if err != nil {
			a.logger.Warn("filter script: %v", err)
		} else if absorb {
			a.logger.Debug("filter script absorbed %s", ev.Type)
			return false
		}
	}
	return q.SubmitEvent(ev)
}

// Quit stops the input pump, unblocking Run.
func (a *App) Quit() {
	a.mu.Lock()
	src := a.source
	a.mu.Unlock()
	if src != nil {
		src.Stop()
	}
}

// Shutdown releases resources. Safe after Run returns or never ran.
func (a *App) Shutdown() {
	a.Quit()

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}
	if a.filter != nil {
		a.filter.Close()
		a.filter = nil
	}
	a.running = false
}

// Queue exposes the dispatch queue, for tests and metrics readers.
func (a *App) Queue() *queue.Queue {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.queue
}

func (a *App) handleKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
		a.Quit()
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		a.Quit()
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'f':
		// Manual fling stop, handy when a synthesized fling lingers.
		a.mu.Lock()
		q := a.queue
		a.mu.Unlock()
		if q != nil {
			q.StopFling()
		}
	}
}

// handleReload applies a changed configuration file. The filter script
// swaps live; queue settings need a restart and say so.
func (a *App) handleReload(cfg config.Config) {
	a.mu.Lock()
	old := a.cfg
	a.cfg = cfg
	a.mu.Unlock()

	if cfg.Script.FilterPath != old.Script.FilterPath {
		a.swapFilter(cfg.Script.FilterPath)
	}
	if cfg.Input != old.Input {
		a.logger.Info("input settings changed; restart to apply")
	}
	a.logger.Info("configuration reloaded")
}

func (a *App) handleReloadError(err error) {
	a.logger.Error("config reload failed, keeping previous: %v", err)
}

func (a *App) swapFilter(path string) {
	var next *script.Filter
	if path != "" {
		f, err := script.NewFilterFile(path)
		if err != nil {
			a.logger.Error("filter script reload failed, keeping previous: %v", err)
			return
		}
		next = f
	}

	a.mu.Lock()
	old := a.filter
	a.filter = next
	a.mu.Unlock()
	if old != nil {
		old.Close()
	}
}
