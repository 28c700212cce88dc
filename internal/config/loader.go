package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "GESTUREFLOW_"

// FileSystem abstracts file reads for testing.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

type osFS struct{}

func (osFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the operating system file system.
func DefaultFS() FileSystem {
	return osFS{}
}

// Loader resolves configuration from defaults, a TOML file, and
// environment variables.
type Loader struct {
	fs FileSystem
}

// NewLoader creates a loader backed by the operating system.
func NewLoader() *Loader {
	return &Loader{fs: DefaultFS()}
}

// NewLoaderWithFS creates a loader with a custom file system.
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load resolves the configuration. A missing file is not an error; the
// defaults apply and the environment still overlays them. Path may be
// empty to skip the file layer entirely.
func (l *Loader) Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := l.fs.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, &ParseError{Path: path, Err: err}
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays GESTUREFLOW_* variables onto the configuration.
func applyEnv(cfg *Config) error {
	if err := envInt(EnvPrefix+"DEBOUNCE_MS", &cfg.Input.DebounceIntervalMS); err != nil {
		return err
	}
	if err := envBool(EnvPrefix+"STRICT", &cfg.Input.StrictInvariants); err != nil {
		return err
	}
	if err := envBool(EnvPrefix+"METRICS", &cfg.Input.EnableMetrics); err != nil {
		return err
	}
	if err := envInt(EnvPrefix+"SCROLL_QUIET_MS", &cfg.Source.ScrollEndQuietMS); err != nil {
		return err
	}
	if err := envBool(EnvPrefix+"SYNTH_FLINGS", &cfg.Source.SynthesizeFlings); err != nil {
		return err
	}
	if err := envFloat(EnvPrefix+"FLING_THRESHOLD", &cfg.Source.FlingVelocityThreshold); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvPrefix + "SCRIPT"); ok {
		cfg.Script.FilterPath = v
	}
	return nil
}

func envInt(name string, dst *int) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = n
	return nil
}

func envBool(name string, dst *bool) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = b
	return nil
}

func envFloat(name string, dst *float64) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = f
	return nil
}
