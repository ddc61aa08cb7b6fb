package input

import (
	"fmt"

	"github.com/dshills/ledit/internal/input/key"
)

// binding identifies a chord independent of its timestamp. Shift is
// dropped for characters since it is already part of the rune.
type binding struct {
	key  key.Key
	r    rune
	mods key.Modifier
}

func bindingOf(ev key.Event) binding {
	mods := ev.Modifiers
	if ev.Key == key.KeyRune {
		mods &^= key.ModShift
	}
	return binding{key: ev.Key, r: ev.Rune, mods: mods}
}

// Keymap maps key chords to action names.
type Keymap struct {
	bindings map[binding]string
}

// defaultBindings are installed by NewKeymap before the quit and save chords.
var defaultBindings = []struct {
	spec   string
	action string
}{
	{"Enter", ActionNewLine},
	{"Backspace", ActionBackspace},
	{"Delete", ActionBackspace},
	{"Tab", ActionTab},
	{"Up", ActionMoveUp},
	{"Down", ActionMoveDown},
	{"Left", ActionMoveLeft},
	{"Right", ActionMoveRight},
	{"Home", ActionLineStart},
	{"End", ActionLineEnd},
}

// NewKeymap creates the editor keymap with quit and save bound to the
// given chords.
func NewKeymap(quit, save string) (*Keymap, error) {
	km := &Keymap{bindings: make(map[binding]string)}
	for _, b := range defaultBindings {
		if err := km.Bind(b.spec, b.action); err != nil {
			return nil, err
		}
	}
	if err := km.Bind(quit, ActionQuit); err != nil {
		return nil, fmt.Errorf("quit key: %w", err)
	}
	if err := km.Bind(save, ActionSave); err != nil {
		return nil, fmt.Errorf("save key: %w", err)
	}
	return km, nil
}

// Bind maps the chord in spec (see key.Parse) to action, replacing any
// previous binding for that chord.
func (km *Keymap) Bind(spec, action string) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return err
	}
	km.bindings[bindingOf(ev)] = action
	return nil
}

// Lookup returns the action for ev. Unbound printable characters insert
// themselves; anything else unbound reports false.
func (km *Keymap) Lookup(ev key.Event) (Action, bool) {
	if name, ok := km.bindings[bindingOf(ev)]; ok {
		return Action{Name: name}, true
	}
	if ev.IsChar() {
		return Action{Name: ActionInsert, Args: ActionArgs{Text: string(ev.Rune)}}, true
	}
	return Action{}, false
}

// Len returns the number of bound chords.
func (km *Keymap) Len() int {
	return len(km.bindings)
}
