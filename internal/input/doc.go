// Package input turns key events into editor actions.
//
// A Keymap binds chords such as "Ctrl+S" or "Enter" to named actions.
// Printable characters without Ctrl, Alt or Meta that have no binding of
// their own become ActionInsert with the character as text.
//
//	km, err := input.NewKeymap("Ctrl+Q", "Ctrl+S")
//	if err != nil {
//	    return err
//	}
//	action, ok := km.Lookup(ev)
package input
