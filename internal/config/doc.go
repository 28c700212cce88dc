// Package config loads and validates gestureflow configuration.
//
// # Layers
//
// Configuration is resolved from three layers, lowest precedence first:
//
//   - built-in defaults (DefaultConfig)
//   - a TOML file, when one exists at the given path
//   - GESTUREFLOW_* environment variables
//
// A missing configuration file is not an error; the defaults apply.
// A file that exists but fails to parse or validate is an error, so a
// typo never silently reverts the process to defaults.
//
// # Live Reload
//
// Watcher monitors the configuration file with fsnotify and invokes a
// handler with the freshly loaded Config after each change. Reloads
// that fail to parse or validate are reported through the error
// handler and leave the previous configuration in effect.
package config
