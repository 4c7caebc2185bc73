package tuicore

// Trigger is a key or mouse combination that a Bindings table maps to a
// semantic action name.
type Trigger struct {
	IsMouse   bool
	Code      KeyCode
	Codepoint rune // meaningful when Code == KeyChar
	Button    MouseButton
	Modifiers KeyModifiers
}

// KeyTrigger builds a key-based Trigger for a non-character key.
func KeyTrigger(code KeyCode, mods KeyModifiers) Trigger {
	return Trigger{Code: code, Modifiers: mods}
}

// CharTrigger builds a key-based Trigger for a specific character.
func CharTrigger(r rune, mods KeyModifiers) Trigger {
	return Trigger{Code: KeyChar, Codepoint: r, Modifiers: mods}
}

// MouseTrigger builds a mouse-based Trigger.
func MouseTrigger(button MouseButton, mods KeyModifiers) Trigger {
	return Trigger{IsMouse: true, Button: button, Modifiers: mods}
}

// Bindings maps triggers to semantic action strings ("quit", "moveUp",
// "confirm", ...), consulted by Bindings.Matches.
type Bindings struct {
	table map[Trigger]string
}

// NewBindings returns an empty Bindings table.
func NewBindings() *Bindings {
	return &Bindings{table: make(map[Trigger]string)}
}

// Bind registers trigger -> action, overwriting any prior binding for the
// same trigger.
func (b *Bindings) Bind(trigger Trigger, action string) {
	b.table[trigger] = action
}

// ActionFor returns the action bound to trigger, or "" if none.
func (b *Bindings) ActionFor(trigger Trigger) string {
	return b.table[trigger]
}

// triggerOf extracts the Trigger a key/mouse Event represents, or the zero
// Trigger with ok=false for event kinds that carry no trigger.
func triggerOf(e Event) (Trigger, bool) {
	switch e.Kind {
	case EventKey:
		return Trigger{Code: e.Key.Code, Codepoint: e.Key.Codepoint, Modifiers: e.Key.Modifiers}, true
	case EventMouse:
		return MouseTrigger(e.Mouse.Button, e.Mouse.Modifiers), true
	default:
		return Trigger{}, false
	}
}

// Matches reports whether e is bound to action in b.
func (b *Bindings) Matches(e Event, action string) bool {
	trig, ok := triggerOf(e)
	if !ok {
		return false
	}
	return b.table[trig] == action
}

// DefaultBindings returns the conventional binding set used by demo
// applications: Ctrl+C and Escape quit.
func DefaultBindings() *Bindings {
	b := NewBindings()
	b.Bind(CharTrigger('c', ModCtrl), "quit")
	b.Bind(KeyTrigger(KeyEscape, 0), "quit")
	return b
}
