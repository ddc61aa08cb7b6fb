package backend

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ledit/internal/input/key"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
	closed bool
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, such as a
// tcell.SimulationScreen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true
	t.screen.DisableMouse()
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// PollEvent waits for the next event. The timeout is implemented by
// posting an interrupt event carrying a token unique to this call;
// interrupts left over from earlier calls are skipped.
func (t *Terminal) PollEvent(timeout time.Duration) (Event, error) {
	token := new(int)
	timer := time.AfterFunc(timeout, func() {
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(token)) // best-effort; queue may be full
	})
	defer timer.Stop()

	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{}, ErrClosed
		}
		if intr, ok := ev.(*tcell.EventInterrupt); ok {
			if intr.Data() == any(token) {
				return Event{}, nil
			}
			continue
		}
		if out := convertEvent(ev); out.Type != EventNone {
			return out, nil
		}
	}
}

func (t *Terminal) DiscardInput() {
	for t.screen.HasPendingEvent() {
		t.screen.PollEvent()
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) DrawDocument(blob []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, height := t.screen.Size()
	for y, row := range SplitRows(blob) {
		if y >= height {
			break
		}
		x := 0
		for len(row) > 0 {
			r, size := utf8.DecodeRune(row)
			row = row[size:]
			t.screen.SetContent(x, y, printable(r), nil, tcell.StyleDefault)
			x++
		}
	}
}

func (t *Terminal) DrawStatus(y int, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, _ := t.screen.Size()
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range text {
		if x >= width {
			break
		}
		t.screen.SetContent(x, y, printable(r), nil, style)
		x++
	}
	for ; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

// printable maps control characters to a visible placeholder.
func printable(r rune) rune {
	switch {
	case r == '\t':
		return ' '
	case r < 0x20 || r == 0x7f:
		return '?'
	}
	return r
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, ok := convertKey(e)
		if !ok {
			return Event{Type: EventNone}
		}
		return Event{Type: EventKey, Key: k}

	case *tcell.EventMouse:
		return Event{Type: EventMouse}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type:   EventResize,
			Width:  w,
			Height: h,
		}

	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts a tcell key event to a key.Event.
func convertKey(e *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(e.Modifiers())

	switch k := e.Key(); k {
	case tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods), true
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods), true
	case tcell.KeyEnter, tcell.KeyLF:
		return key.NewSpecialEvent(key.KeyEnter, key.ModNone), true
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, key.ModNone), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, key.ModNone), true
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods), true
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods), true
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods), true
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods), true
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods), true
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods), true
	case tcell.KeyCtrlSpace:
		return key.NewRuneEvent(' ', key.ModCtrl), true
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return key.NewRuneEvent(rune('a'+(k-tcell.KeyCtrlA)), key.ModCtrl), true
		}
		return key.Event{}, false
	}
}

// convertMod converts tcell modifier mask to key.Modifier.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result = result.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		result = result.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		result = result.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		result = result.With(key.ModMeta)
	}
	return result
}
