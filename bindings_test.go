package tuicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindMatchesRegisteredTrigger(t *testing.T) {
	b := NewBindings()
	b.Bind(CharTrigger('q', 0), "quit")

	ev := Event{Kind: EventKey, Key: KeyEvent{Code: KeyChar, Codepoint: 'q'}}
	assert.True(t, b.Matches(ev, "quit"))
	assert.False(t, b.Matches(ev, "other"))
}

func TestCharTriggerDistinguishesModifiers(t *testing.T) {
	b := NewBindings()
	b.Bind(CharTrigger('c', ModCtrl), "quit")

	plainC := Event{Kind: EventKey, Key: KeyEvent{Code: KeyChar, Codepoint: 'c'}}
	ctrlC := Event{Kind: EventKey, Key: KeyEvent{Code: KeyChar, Codepoint: 'c', Modifiers: ModCtrl}}

	assert.False(t, b.Matches(plainC, "quit"), "unmodified 'c' must not match a Ctrl+C binding")
	assert.True(t, b.Matches(ctrlC, "quit"))
}

func TestDefaultBindingsDoNotMatchArbitraryCtrlChar(t *testing.T) {
	b := DefaultBindings()
	ctrlX := Event{Kind: EventKey, Key: KeyEvent{Code: KeyChar, Codepoint: 'x', Modifiers: ModCtrl}}
	assert.False(t, b.Matches(ctrlX, "quit"))
}

func TestDefaultBindingsMatchEscape(t *testing.T) {
	b := DefaultBindings()
	esc := Event{Kind: EventKey, Key: KeyEvent{Code: KeyEscape}}
	assert.True(t, b.Matches(esc, "quit"))
}

func TestMouseTriggerMatches(t *testing.T) {
	b := NewBindings()
	b.Bind(MouseTrigger(MouseRight, 0), "context-menu")

	ev := Event{Kind: EventMouse, Mouse: MouseEvent{Button: MouseRight}}
	assert.True(t, b.Matches(ev, "context-menu"))
}

func TestMatchesReturnsFalseForEventKindsWithNoTrigger(t *testing.T) {
	b := DefaultBindings()
	tick := Event{Kind: EventTick}
	assert.False(t, b.Matches(tick, "quit"))
}

func TestBindOverwritesPriorBinding(t *testing.T) {
	b := NewBindings()
	trig := CharTrigger('q', 0)
	b.Bind(trig, "quit")
	b.Bind(trig, "query")
	assert.Equal(t, "query", b.ActionFor(trig))
}
