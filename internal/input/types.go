package input

// Action names.
const (
	ActionInsert    = "editor.insert"
	ActionNewLine   = "editor.newline"
	ActionBackspace = "editor.backspace"
	ActionTab       = "editor.tab"

	ActionMoveUp    = "cursor.moveUp"
	ActionMoveDown  = "cursor.moveDown"
	ActionMoveLeft  = "cursor.moveLeft"
	ActionMoveRight = "cursor.moveRight"
	ActionLineStart = "cursor.lineStart"
	ActionLineEnd   = "cursor.lineEnd"

	ActionSave = "file.save"
	ActionQuit = "app.quit"
)

// ActionArgs holds arguments for an action.
type ActionArgs struct {
	// Text for insert operations.
	Text string
}

// Action represents a command for the control loop.
type Action struct {
	// Name is the command identifier (e.g., "file.save", "cursor.moveDown").
	Name string

	// Args contains command-specific arguments.
	Args ActionArgs
}

// String returns the action name, with the text for inserts.
func (a Action) String() string {
	if a.Args.Text != "" {
		return a.Name + "(" + a.Args.Text + ")"
	}
	return a.Name
}
