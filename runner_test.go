package tuicore

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTerminal is a test double satisfying Terminal without touching any
// real tty: Read drains a fixed byte queue then reports timeout, resize is
// injected by calling triggerResize directly (never from a signal handler).
type fakeTerminal struct {
	mu           sync.Mutex
	bytes        []byte
	pos          int
	rawEnabled   bool
	written      []byte
	resizeHandler func(Size)
}

func (f *fakeTerminal) EnableRawMode() error  { f.rawEnabled = true; return nil }
func (f *fakeTerminal) DisableRawMode() error { f.rawEnabled = false; return nil }
func (f *fakeTerminal) GetSize() (Size, error) { return Size{Cols: 10, Rows: 4}, nil }

func (f *fakeTerminal) Read(timeoutMs int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pos >= len(f.bytes) {
		return -2, nil
	}
	b := f.bytes[f.pos]
	f.pos++
	return int(b), nil
}

func (f *fakeTerminal) Write(b []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.written = append(f.written, b...)
	return nil
}

func (f *fakeTerminal) OnResize(handler func(Size)) { f.resizeHandler = handler }
func (f *fakeTerminal) IsRawModeEnabled() bool       { return f.rawEnabled }
func (f *fakeTerminal) Close() error                 { return nil }

func (f *fakeTerminal) triggerResize(sz Size) {
	if f.resizeHandler != nil {
		f.resizeHandler(sz)
	}
}

func TestRunQuitsOnCtrlCAndRestoresTerminal(t *testing.T) {
	term := &fakeTerminal{bytes: []byte{3}} // Ctrl+C
	backend := NewBackend(NewRect(0, 0, 10, 4), ProfileTrueColor)
	runner := NewTuiRunner(term, backend, 0)

	handler := func(ev Event, r *TuiRunner) bool {
		if ev.IsQuit() {
			r.Quit()
		}
		return false
	}
	draw := func(f Frame) {}

	err := runner.Run(handler, draw)
	require.NoError(t, err)
	assert.False(t, term.IsRawModeEnabled(), "raw mode must be restored on exit")
}

func TestResizeDeliveredOutsideSignalContext(t *testing.T) {
	term := &fakeTerminal{bytes: []byte{3}}
	backend := NewBackend(NewRect(0, 0, 10, 4), ProfileTrueColor)
	runner := NewTuiRunner(term, backend, 0)

	var gotResize bool
	handler := func(ev Event, r *TuiRunner) bool {
		if ev.Kind == EventResize {
			gotResize = true
		}
		if ev.IsQuit() {
			r.Quit()
		}
		return false
	}

	// Registering OnResize happens inside NewTuiRunner; invoking the
	// handler here stands in for the OS delivering SIGWINCH — it only
	// enqueues, it does not call into the handler/backend directly.
	term.triggerResize(Size{Cols: 20, Rows: 8})

	err := runner.Run(handler, func(f Frame) {})
	require.NoError(t, err)
	assert.True(t, gotResize)
}

func TestRunOnRenderThreadRunsImmediatelyWhenInLoop(t *testing.T) {
	backend := NewBackend(NewRect(0, 0, 4, 1), ProfileTrueColor)
	runner := NewTuiRunner(&fakeTerminal{}, backend, 0)
	runner.inLoop.Store(true)

	ran := false
	runner.RunOnRenderThread(func() { ran = true })
	assert.True(t, ran, "task should run synchronously when inLoop is true")
}

func TestRunOnRenderThreadQueuesWhenNotInLoop(t *testing.T) {
	backend := NewBackend(NewRect(0, 0, 4, 1), ProfileTrueColor)
	runner := NewTuiRunner(&fakeTerminal{}, backend, 0)

	ran := false
	runner.RunOnRenderThread(func() { ran = true })
	assert.False(t, ran, "task must not run synchronously outside the render thread")
	runner.drainWorkQueue()
	assert.True(t, ran)
}

func TestScheduleRunsAfterDelayElapses(t *testing.T) {
	backend := NewBackend(NewRect(0, 0, 4, 1), ProfileTrueColor)
	runner := NewTuiRunner(&fakeTerminal{}, backend, 0)

	ran := false
	runner.Schedule(func() { ran = true }, -time.Second) // already due
	runner.drainScheduled()
	assert.True(t, ran)
}

func TestCharsetFromLocalePrefersLCAll(t *testing.T) {
	got := charsetFromLocale("en_US.UTF-8", "ignored", "ignored")
	assert.Equal(t, "UTF-8", got)
}

func TestCharsetFromLocaleFallsBackToLang(t *testing.T) {
	got := charsetFromLocale("", "", "ja_JP.eucJP")
	assert.Equal(t, "eucJP", got)
}

func TestCharsetFromLocaleCOrPOSIXIsUTF8(t *testing.T) {
	assert.Equal(t, "UTF-8", charsetFromLocale("C", "", ""))
	assert.Equal(t, "UTF-8", charsetFromLocale("POSIX", "", ""))
}

func TestCharsetFromLocaleAllEmptyDefaultsUTF8(t *testing.T) {
	assert.Equal(t, "UTF-8", charsetFromLocale("", "", ""))
}
