package tuicore

import "time"

// KeyCode names a non-printable key, or CHAR for a printable codepoint.
type KeyCode uint8

const (
	KeyChar KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// KeyModifiers is a bitset of modifier keys active with a KeyEvent or
// MouseEvent.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota
	ModAlt
	ModCtrl
)

// Has reports whether all bits in other are set.
func (m KeyModifiers) Has(other KeyModifiers) bool { return m&other == other }

// KeyEvent is a single key press, decoded from the raw input stream.
type KeyEvent struct {
	Code      KeyCode
	Modifiers KeyModifiers
	Codepoint rune // meaningful when Code == KeyChar
}

// MouseButton names which mouse button a MouseEvent concerns.
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
)

// MouseEventKind tags the action a MouseEvent represents.
type MouseEventKind uint8

const (
	MousePress MouseEventKind = iota
	MouseRelease
	MouseDrag
	MouseScrollUp
	MouseScrollDown
)

// MouseEvent is a single SGR-decoded mouse report.
type MouseEvent struct {
	Kind      MouseEventKind
	Button    MouseButton
	X, Y      int
	Modifiers KeyModifiers
}

// TickEvent is delivered on the TuiRunner's tick interval.
type TickEvent struct {
	FrameCount int
	Elapsed    time.Duration
}

// ResizeEvent carries the terminal's new size, delivered outside signal
// context at the next poll boundary.
type ResizeEvent struct {
	Size Size
}

// ActionEvent is a named, application-defined action with optional free
// context, built by application code.
type ActionEvent struct {
	Name    string
	Context any
}

// PasteEvent carries one bracketed-paste burst verbatim.
type PasteEvent struct {
	Text string
}

// EventKind tags which variant an Event holds.
type EventKind uint8

const (
	EventKey EventKind = iota
	EventMouse
	EventTick
	EventResize
	EventAction
	EventPaste
)

// Event is the tagged union delivered by the input parser and TuiRunner
//: KeyEvent, MouseEvent, TickEvent, ResizeEvent, ActionEvent,
// or PasteEvent.
type Event struct {
	Kind   EventKind
	Key    KeyEvent
	Mouse  MouseEvent
	Tick   TickEvent
	Resize ResizeEvent
	Action ActionEvent
	Paste  PasteEvent
}

// IsQuit reports whether this event is the conventional Ctrl+C quit
// signal, independent of any Bindings table.
func (e Event) IsQuit() bool {
	return e.Kind == EventKey && e.Key.Code == KeyChar && e.Key.Codepoint == 'c' && e.Key.Modifiers.Has(ModCtrl)
}
