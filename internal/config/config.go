package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/ledit/internal/config/loader"
	"github.com/dshills/ledit/internal/input/key"
)

// Backend names accepted by terminal.backend.
const (
	BackendTCell = "tcell"
	BackendANSI  = "ansi"
)

// Config is the complete set of ledit settings.
type Config struct {
	Editor   EditorConfig   `toml:"editor" yaml:"editor"`
	Input    InputConfig    `toml:"input" yaml:"input"`
	Terminal TerminalConfig `toml:"terminal" yaml:"terminal"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`

	// Source is the file the settings were read from, empty when none was found.
	Source string `toml:"-" yaml:"-"`
}

// EditorConfig bounds the document.
type EditorConfig struct {
	// MaxLineLength is the longest line in bytes, terminator excluded.
	// 0 means unlimited.
	MaxLineLength int `toml:"max_line_length" yaml:"max_line_length"`

	// MaxLines caps the number of lines. 0 means unlimited.
	MaxLines int `toml:"max_lines" yaml:"max_lines"`

	// StatusRows is the number of rows reserved below the document (0 or 1).
	StatusRows int `toml:"status_rows" yaml:"status_rows"`
}

// InputConfig controls key handling.
type InputConfig struct {
	QuitKey string `toml:"quit_key" yaml:"quit_key"`
	SaveKey string `toml:"save_key" yaml:"save_key"`

	// PollTimeoutMS bounds how long one cycle waits for a key.
	PollTimeoutMS int `toml:"poll_timeout_ms" yaml:"poll_timeout_ms"`

	// EscapeTimeoutMS is how long the ansi backend waits after a lone Escape.
	EscapeTimeoutMS int `toml:"escape_timeout_ms" yaml:"escape_timeout_ms"`
}

// PollTimeout returns PollTimeoutMS as a duration.
func (c InputConfig) PollTimeout() time.Duration {
	return time.Duration(c.PollTimeoutMS) * time.Millisecond
}

// EscapeTimeout returns EscapeTimeoutMS as a duration.
func (c InputConfig) EscapeTimeout() time.Duration {
	return time.Duration(c.EscapeTimeoutMS) * time.Millisecond
}

// TerminalConfig selects the terminal backend.
type TerminalConfig struct {
	Backend string `toml:"backend" yaml:"backend"`
}

// LoggingConfig controls the diagnostic log.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`

	// File receives log output. Logging is off when empty, since the
	// terminal belongs to the editor.
	File string `toml:"file" yaml:"file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			StatusRows: 1,
		},
		Input: InputConfig{
			QuitKey:         "Ctrl+Q",
			SaveKey:         "Ctrl+S",
			PollTimeoutMS:   100,
			EscapeTimeoutMS: int(key.DefaultEscapeTimeout / time.Millisecond),
		},
		Terminal: TerminalConfig{
			Backend: BackendTCell,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/ledit/config.toml, or "" when no
// configuration directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ledit", "config.toml")
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	fs   loader.FileSystem
	path string
	env  loader.Loader
}

// WithPath reads the settings file at path instead of DefaultPath.
func WithPath(path string) Option {
	return func(o *loadOptions) {
		o.path = path
	}
}

// WithFileSystem reads the settings file through fs.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(o *loadOptions) {
		o.fs = fs
	}
}

// WithEnviron uses env (KEY=VALUE entries) instead of the process environment.
func WithEnviron(env []string) Option {
	return func(o *loadOptions) {
		o.env = loader.NewEnvLoaderFrom(loader.DefaultEnvPrefix, env)
	}
}

// Load builds a Config from defaults, the settings file and the environment.
func Load(opts ...Option) (*Config, error) {
	o := loadOptions{
		fs:   loader.DefaultFS(),
		path: DefaultPath(),
		env:  loader.NewEnvLoader(loader.DefaultEnvPrefix),
	}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := Default()
	merged := make(map[string]any)

	if o.path != "" {
		file, err := loader.ForPath(o.fs, o.path).Load()
		if err != nil {
			return nil, err
		}
		if file != nil {
			cfg.Source = o.path
		}
		merged = loader.DeepMerge(merged, file)
	}

	env, err := o.env.Load()
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	merged = loader.DeepMerge(merged, env)

	if err := cfg.apply(merged); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply overlays the keys present in data onto c.
func (c *Config) apply(data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	raw, err := toml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := toml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("decoding settings: %w", err)
	}
	return nil
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	switch {
	case c.Editor.MaxLineLength < 0:
		return &ValidationError{Path: "editor.max_line_length", Message: "must not be negative", Value: c.Editor.MaxLineLength}
	case c.Editor.MaxLines < 0:
		return &ValidationError{Path: "editor.max_lines", Message: "must not be negative", Value: c.Editor.MaxLines}
	case c.Editor.StatusRows != 0 && c.Editor.StatusRows != 1:
		return &ValidationError{Path: "editor.status_rows", Message: "must be 0 or 1", Value: c.Editor.StatusRows}
	case c.Input.PollTimeoutMS <= 0:
		return &ValidationError{Path: "input.poll_timeout_ms", Message: "must be positive", Value: c.Input.PollTimeoutMS}
	case c.Input.EscapeTimeoutMS < 0:
		return &ValidationError{Path: "input.escape_timeout_ms", Message: "must not be negative", Value: c.Input.EscapeTimeoutMS}
	}

	quit, err := key.Parse(c.Input.QuitKey)
	if err != nil {
		return &ValidationError{Path: "input.quit_key", Message: err.Error(), Value: c.Input.QuitKey}
	}
	save, err := key.Parse(c.Input.SaveKey)
	if err != nil {
		return &ValidationError{Path: "input.save_key", Message: err.Error(), Value: c.Input.SaveKey}
	}
	if quit.Equals(save) {
		return &ValidationError{Path: "input.save_key", Message: "same chord as input.quit_key", Value: c.Input.SaveKey}
	}

	switch c.Terminal.Backend {
	case BackendTCell, BackendANSI:
	default:
		return &ValidationError{Path: "terminal.backend", Message: "must be tcell or ansi", Value: c.Terminal.Backend}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "logging.level", Message: "unknown level", Value: c.Logging.Level}
	}
	return nil
}
