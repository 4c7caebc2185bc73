package tuicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeByteReader feeds a fixed byte sequence to the parser, one byte per
// Read call, returning -2 (timeout) once exhausted regardless of timeoutMs.
type fakeByteReader struct {
	bytes []byte
	pos   int
}

func (f *fakeByteReader) Read(timeoutMs int) (int, error) {
	if f.pos >= len(f.bytes) {
		return -2, nil // no more bytes arrive within the deadline: a timeout
	}
	b := f.bytes[f.pos]
	f.pos++
	return int(b), nil
}

func TestScenarioS5SGRMouseClick(t *testing.T) {
	r := &fakeByteReader{bytes: []byte("\x1b[<0;10;5M")}
	p := NewInputParser()

	ev, ok, err := p.Next(r, 0)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, EventMouse, ev.Kind)
	assert.Equal(t, MousePress, ev.Mouse.Kind)
	assert.Equal(t, MouseLeft, ev.Mouse.Button)
	assert.Equal(t, 9, ev.Mouse.X)
	assert.Equal(t, 4, ev.Mouse.Y)
	assert.Equal(t, KeyModifiers(0), ev.Mouse.Modifiers)
}

func TestScenarioS6CtrlCIsQuit(t *testing.T) {
	r := &fakeByteReader{bytes: []byte{3}}
	p := NewInputParser()

	ev, ok, err := p.Next(r, 0)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, ev.IsQuit())

	bindings := DefaultBindings()
	assert.True(t, bindings.Matches(ev, "quit"))
}

func TestPlainPrintableCharacter(t *testing.T) {
	r := &fakeByteReader{bytes: []byte("a")}
	p := NewInputParser()
	ev, ok, _ := p.Next(r, 0)
	assert.True(t, ok)
	assert.Equal(t, KeyChar, ev.Key.Code)
	assert.Equal(t, 'a', ev.Key.Codepoint)
}

func TestArrowKeyViaCSI(t *testing.T) {
	r := &fakeByteReader{bytes: []byte("\x1b[A")}
	p := NewInputParser()
	ev, ok, _ := p.Next(r, 0)
	assert.True(t, ok)
	assert.Equal(t, KeyUp, ev.Key.Code)
}

func TestLoneEscapeTimesOutToEscapeKey(t *testing.T) {
	r := &fakeByteReader{bytes: []byte{27}} // nothing follows; Read returns timeout (-2)
	p := NewInputParser()
	ev, ok, _ := p.Next(r, 0)
	assert.True(t, ok)
	assert.Equal(t, KeyEscape, ev.Key.Code)
}

func TestBracketedPasteRoundTrip(t *testing.T) {
	r := &fakeByteReader{bytes: []byte("\x1b[200~hello\x1b[201~")}
	p := NewInputParser()

	// First Next call consumes the start marker, absorbed as parse-incomplete.
	_, ok, _ := p.Next(r, 0)
	assert.False(t, ok)
	assert.True(t, p.inPaste)

	var got Event
	for {
		ev, ok, err := p.Next(r, 0)
		assert.NoError(t, err)
		if ok {
			got = ev
			break
		}
		if r.pos >= len(r.bytes) {
			t.Fatal("exhausted input before paste terminated")
		}
	}
	assert.Equal(t, EventPaste, got.Kind)
	assert.Equal(t, "hello", got.Paste.Text)
}

func TestUTF8MultiByteCodepoint(t *testing.T) {
	r := &fakeByteReader{bytes: []byte("世")}
	p := NewInputParser()
	ev, ok, _ := p.Next(r, 0)
	assert.True(t, ok)
	assert.Equal(t, KeyChar, ev.Key.Code)
	assert.Equal(t, '世', ev.Key.Codepoint)
}
