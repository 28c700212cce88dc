// Package main is the entry point for the gestureflow demo terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/gestureflow/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Quit()
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.ScriptPath, "script", "", "Path to Lua filter script")
	flag.IntVar(&opts.DebounceMS, "debounce", -1, "Scroll debounce window in milliseconds (-1 uses config)")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gestureflow - ordered gesture dispatch demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: gestureflow [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  wheel        scroll gestures\n")
		fmt.Fprintf(os.Stderr, "  ctrl+wheel   pinch gestures\n")
		fmt.Fprintf(os.Stderr, "  f            stop an active fling\n")
		fmt.Fprintf(os.Stderr, "  q, esc       quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("gestureflow %s (%s)\n", version, commit)
		os.Exit(0)
	}

	return opts
}
