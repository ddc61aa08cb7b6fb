// Package app owns one editing session: it wires the engine, the terminal
// backend and the renderer together and runs the control loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/ledit/internal/config"
	"github.com/dshills/ledit/internal/engine"
	"github.com/dshills/ledit/internal/fileio"
	"github.com/dshills/ledit/internal/fileio/vfs"
	"github.com/dshills/ledit/internal/input"
	"github.com/dshills/ledit/internal/renderer"
	"github.com/dshills/ledit/internal/renderer/backend"
	"github.com/dshills/ledit/internal/renderer/statusline"
)

// ErrInterrupted is returned by Run when a termination signal arrives.
var ErrInterrupted = errors.New("interrupted by signal")

// Application is the owned editor context. Everything the control loop
// touches hangs off it; there is no package-level state.
type Application struct {
	path    string
	cfg     *config.Config
	fs      vfs.FS
	logger  *Logger
	signals <-chan os.Signal

	engine   *engine.Engine
	backend  backend.Backend
	renderer *renderer.Renderer
	status   *statusline.StatusLine
	stats    *Stats

	keymap *input.Keymap

	running      atomic.Bool
	initialized  bool
	shutdownOnce sync.Once
	closed       atomic.Bool
}

// Options configures the application.
type Options struct {
	// Path is the file being edited. It need not exist.
	Path string

	// Config holds the settings. Defaults are used when nil.
	Config *config.Config

	// Backend is the terminal. Required.
	Backend backend.Backend

	// FS is used to load and save Path. Defaults to the OS file system.
	FS vfs.FS

	// Logger receives diagnostics. Logging is disabled when nil.
	Logger *Logger

	// Signals delivers termination requests to the control loop.
	Signals <-chan os.Signal
}

// New loads the file and prepares the session. The terminal is not touched
// until Run.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, &InitError{Component: "backend", Err: errors.New("no backend")}
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.FS == nil {
		opts.FS = vfs.NewOSFS()
	}
	if opts.Logger == nil {
		opts.Logger = NewNullLogger()
	}

	cfg := opts.Config
	keymap, err := input.NewKeymap(cfg.Input.QuitKey, cfg.Input.SaveKey)
	if err != nil {
		return nil, &InitError{Component: "keymap", Err: err}
	}

	app := &Application{
		path:    opts.Path,
		cfg:     cfg,
		fs:      opts.FS,
		logger:  opts.Logger.WithComponent("app"),
		signals: opts.Signals,
		backend: opts.Backend,
		stats:   NewStats(),
		keymap:  keymap,
		engine: engine.New(0, 0,
			engine.WithMaxLineLength(cfg.Editor.MaxLineLength),
			engine.WithMaxLines(cfg.Editor.MaxLines),
		),
	}

	if cfg.Editor.StatusRows > 0 {
		app.status = statusline.New()
		app.status.SetFilename(filepath.Base(opts.Path))
	}
	app.renderer = renderer.New(app.backend, app.status)

	created, err := fileio.Load(app.fs, app.path, app.engine)
	if err != nil {
		return nil, err
	}
	if created {
		app.setMessage("New file", statusline.MessageInfo)
	}
	app.logger.Info("loaded %s (%d lines, new=%v)", app.path, app.engine.Document().Len(), created)
	return app, nil
}

// Engine returns the edit engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// StatusLine returns the status row, nil when status_rows is 0.
func (app *Application) StatusLine() *statusline.StatusLine {
	return app.status
}

// Stats returns the session counters.
func (app *Application) Stats() *Stats {
	return app.stats
}

// IsRunning returns true while Run is executing.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Run enters the terminal and runs the control loop until the user quits,
// a termination signal arrives, ctx is cancelled or a fatal error occurs.
// A quit returns nil. Run does not restore the terminal; call Shutdown.
func (app *Application) Run(ctx context.Context) (err error) {
	if app.closed.Load() {
		return ErrShutdown
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
			app.logger.Error("recovered panic: %v", r)
		}
	}()

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	app.initialized = true
	app.resize(app.backend.Size())
	app.render()

	err = app.loop(ctx)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	if err != nil {
		app.logger.Error("%v", err)
	}
	return err
}

func (app *Application) loop(ctx context.Context) error {
	for {
		if err := app.checkInterrupt(ctx); err != nil {
			return err
		}

		ev, err := app.backend.PollEvent(app.cfg.Input.PollTimeout())
		if err != nil {
			return NewOperationError("poll", "", err)
		}
		app.stats.RecordCycle()
		if ev.Type == backend.EventNone {
			continue
		}

		if err := app.handleEvent(ctx, ev); err != nil {
			return err
		}
		app.render()
	}
}

// checkInterrupt reports cancellation or a pending termination signal.
func (app *Application) checkInterrupt(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case sig := <-app.signals:
		app.logger.Warn("received %v", sig)
		return fmt.Errorf("%w: %v", ErrInterrupted, sig)
	default:
		return nil
	}
}

// render recalculates the scroll offset and paints one frame.
func (app *Application) render() {
	start := time.Now()
	row, col := app.engine.Refresh()

	if app.status != nil {
		cur := app.engine.Cursor()
		app.status.SetModified(app.engine.Modified())
		app.status.SetPosition(cur.Row+1, cur.Col+1)
		app.status.SetTotalLines(app.engine.Document().Len())
	}

	view := app.engine.Viewport()
	app.renderer.Draw(renderer.Frame{
		Lines:        app.engine.Document().Lines(),
		FirstVisible: view.FirstVisible(),
		Width:        view.Width(),
		Rows:         view.Height(),
		CursorRow:    row,
		CursorCol:    col,
	})
	app.stats.RecordRender(time.Since(start))
}

// resize gives the document area everything except the status rows.
func (app *Application) resize(width, height int) {
	rows := max(height-app.cfg.Editor.StatusRows, 0)
	app.engine.Resize(width, rows)
	app.logger.Debug("resized to %dx%d (%d document rows)", width, height, rows)
}

func (app *Application) setMessage(msg string, t statusline.MessageType) {
	if app.status != nil {
		app.status.SetMessage(msg, t)
	}
}

func (app *Application) clearMessage() {
	if app.status != nil {
		app.status.ClearMessage()
	}
}

// Shutdown is the single cleanup routine. It releases the document and
// height cache and restores the terminal. It is safe to call more than once
// and from a deferred call after a panic.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		app.closed.Store(true)
		app.engine.Close()
		if app.initialized {
			app.backend.Shutdown()
		}
		app.logger.WithFields(app.stats.Snapshot().Fields()).Info("session ended")
	})
}
