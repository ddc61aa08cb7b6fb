package app

import (
	"context"
	"fmt"

	"github.com/dshills/ledit/internal/fileio"
	"github.com/dshills/ledit/internal/input"
	"github.com/dshills/ledit/internal/input/key"
	"github.com/dshills/ledit/internal/renderer/backend"
	"github.com/dshills/ledit/internal/renderer/statusline"
)

// handleEvent processes a backend event. It returns ErrQuit when the
// session should end.
func (app *Application) handleEvent(ctx context.Context, ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.resize(ev.Width, ev.Height)
		return nil
	case backend.EventKey:
		return app.handleKey(ctx, ev.Key)
	default:
		// Mouse reports are consumed by the backend and ignored.
		return nil
	}
}

// handleKey applies one key press to the engine. Engine errors are fatal.
func (app *Application) handleKey(ctx context.Context, k key.Event) error {
	app.stats.RecordKey()

	action, ok := app.keymap.Lookup(k)
	if !ok {
		app.logger.Debug("unbound key %s", k)
		return nil
	}

	switch action.Name {
	case input.ActionQuit:
		return app.confirmQuit(ctx)
	case input.ActionSave:
		return app.save()
	}

	app.clearMessage()
	if err := app.apply(action); err != nil {
		return NewOperationError("edit", app.path, err).WithContext(action.String())
	}
	return nil
}

// apply runs an editing or motion action.
func (app *Application) apply(action input.Action) error {
	e := app.engine
	switch action.Name {
	case input.ActionInsert:
		for _, r := range action.Args.Text {
			if err := e.InsertRune(r); err != nil {
				return err
			}
		}
		return nil
	case input.ActionTab:
		return e.InsertByte('\t')
	case input.ActionNewLine:
		return e.NewLine()
	case input.ActionBackspace:
		return e.Backspace()
	case input.ActionMoveLeft:
		return e.MoveLeft()
	case input.ActionMoveRight:
		return e.MoveRight()
	case input.ActionMoveUp:
		return e.MoveUp()
	case input.ActionMoveDown:
		return e.MoveDown()
	case input.ActionLineStart:
		return e.MoveHome()
	case input.ActionLineEnd:
		return e.MoveEnd()
	default:
		return fmt.Errorf("unknown action %q", action.Name)
	}
}

// save writes the document in place. A failure is fatal because the user
// asked for the write.
func (app *Application) save() error {
	n, err := fileio.Save(app.fs, app.path, app.engine.Document())
	if err != nil {
		return NewOperationError("save", app.path, err)
	}
	app.engine.MarkSaved()
	app.stats.RecordSave()
	app.setMessage(fmt.Sprintf("Wrote %d bytes", n), statusline.MessageInfo)
	app.logger.Info("saved %s (%d bytes)", app.path, n)
	return nil
}

// confirmQuit runs the save prompt. "y" saves and quits, "n" quits
// without saving, any other key drops queued input and resumes editing.
func (app *Application) confirmQuit(ctx context.Context) error {
	app.setMessage(fmt.Sprintf("Save changes to %s? (y/n)", app.path), statusline.MessagePrompt)
	app.render()

	for {
		if err := app.checkInterrupt(ctx); err != nil {
			return err
		}

		ev, err := app.backend.PollEvent(app.cfg.Input.PollTimeout())
		if err != nil {
			return NewOperationError("poll", "", err)
		}
		app.stats.RecordCycle()

		switch ev.Type {
		case backend.EventNone, backend.EventMouse:
			continue
		case backend.EventResize:
			app.resize(ev.Width, ev.Height)
			app.render()
			continue
		}

		app.stats.RecordKey()
		switch ev.Key.Lower() {
		case 'y':
			if err := app.save(); err != nil {
				return err
			}
			return ErrQuit
		case 'n':
			return ErrQuit
		default:
			app.backend.DiscardInput()
			app.clearMessage()
			return nil
		}
	}
}
