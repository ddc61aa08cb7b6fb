package config

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Input.PollTimeout() != 100*time.Millisecond {
		t.Errorf("PollTimeout() = %v", cfg.Input.PollTimeout())
	}
	if cfg.Input.EscapeTimeout() != 25*time.Millisecond {
		t.Errorf("EscapeTimeout() = %v", cfg.Input.EscapeTimeout())
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load(WithFileSystem(memFS{}), WithPath("/missing.toml"), WithEnviron(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Source != "" {
		t.Errorf("Source = %q, want empty", cfg.Source)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadLayers(t *testing.T) {
	fsys := memFS{"/c.toml": `
[editor]
max_line_length = 120
max_lines = 500

[terminal]
backend = "ansi"
`}
	env := []string{
		"LEDIT_EDITOR_MAX_LINES=10",
		"LEDIT_LOGGING_LEVEL=debug",
		"HOME=/root",
	}
	cfg, err := Load(WithFileSystem(fsys), WithPath("/c.toml"), WithEnviron(env))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	want.Source = "/c.toml"
	want.Editor.MaxLineLength = 120
	want.Editor.MaxLines = 10
	want.Terminal.Backend = BackendANSI
	want.Logging.Level = "debug"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML(t *testing.T) {
	fsys := memFS{"/c.yaml": "input:\n  quit_key: \"<C-x>\"\n  poll_timeout_ms: 40\n"}
	cfg, err := Load(WithFileSystem(fsys), WithPath("/c.yaml"), WithEnviron(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Input.QuitKey != "<C-x>" || cfg.Input.PollTimeoutMS != 40 {
		t.Errorf("Input = %+v", cfg.Input)
	}
	if cfg.Input.SaveKey != "Ctrl+S" {
		t.Errorf("SaveKey = %q, default must survive", cfg.Input.SaveKey)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		env        []string
		validation bool
	}{
		{name: "parse error", file: "[editor\n"},
		{name: "wrong type", env: []string{"LEDIT_EDITOR_MAX_LINES=many"}},
		{name: "negative limit", env: []string{"LEDIT_EDITOR_MAX_LINE_LENGTH=-1"}, validation: true},
		{name: "bad backend", file: "[terminal]\nbackend = \"gui\"\n", validation: true},
		{name: "bad quit key", env: []string{"LEDIT_INPUT_QUIT_KEY=<C-"}, validation: true},
		{name: "same chords", env: []string{"LEDIT_INPUT_SAVE_KEY=Ctrl+Q"}, validation: true},
		{name: "status rows", env: []string{"LEDIT_EDITOR_STATUS_ROWS=2"}, validation: true},
		{name: "zero poll", env: []string{"LEDIT_INPUT_POLL_TIMEOUT_MS=0"}, validation: true},
		{name: "log level", env: []string{"LEDIT_LOGGING_LEVEL=loud"}, validation: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := memFS{}
			if tt.file != "" {
				fsys["/c.toml"] = tt.file
			}
			_, err := Load(WithFileSystem(fsys), WithPath("/c.toml"), WithEnviron(tt.env))
			if err == nil {
				t.Fatal("Load() succeeded")
			}
			if got := errors.Is(err, ErrValidationFailed); got != tt.validation {
				t.Errorf("errors.Is(ErrValidationFailed) = %v, want %v (err %v)", got, tt.validation, err)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Path: "editor.max_lines", Message: "must not be negative", Value: -2}
	if got, want := err.Error(), "editor.max_lines: must not be negative (value: -2)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
