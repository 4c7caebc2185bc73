//go:build windows

package tuicore

import (
	"io"
	"os"
	"syscall"
	"time"
	"unicode/utf16"

	"golang.org/x/sys/windows"
)

// windowsTerminal is the Windows Terminal driver: it
// obtains stdin/stdout console handles, captures their modes, and drives
// input via ReadConsoleInputW / output via WriteConsoleW.
type windowsTerminal struct {
	stdin  windows.Handle
	stdout windows.Handle

	origInMode  uint32
	origOutMode uint32
	rawEnabled  bool

	resizeHandler func(Size)
	lastSize      Size
}

// NewTerminal opens the platform terminal driver for the current OS.
func NewTerminal() (Terminal, error) {
	stdin := windows.Handle(os.Stdin.Fd())
	stdout := windows.Handle(os.Stdout.Fd())
	if !probeTerminal(int(os.Stdin.Fd())) {
		return nil, wrapBackendInitError("not a console", nil)
	}
	var mode uint32
	if err := windows.GetConsoleMode(stdin, &mode); err != nil {
		return nil, wrapBackendInitError("not a console", err)
	}
	t := &windowsTerminal{stdin: stdin, stdout: stdout}
	return t, nil
}

func (t *windowsTerminal) EnableRawMode() error {
	if t.rawEnabled {
		return nil
	}
	if err := windows.GetConsoleMode(t.stdin, &t.origInMode); err != nil {
		return wrapTermError("get console input mode", err)
	}
	if err := windows.GetConsoleMode(t.stdout, &t.origOutMode); err != nil {
		return wrapTermError("get console output mode", err)
	}

	inMode := t.origInMode
	inMode &^= windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT | windows.ENABLE_PROCESSED_INPUT
	inMode |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT | windows.ENABLE_WINDOW_INPUT
	if err := windows.SetConsoleMode(t.stdin, inMode); err != nil {
		return wrapTermError("set console input mode", err)
	}

	outMode := t.origOutMode
	outMode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING | windows.ENABLE_PROCESSED_OUTPUT
	if err := windows.SetConsoleMode(t.stdout, outMode); err != nil {
		return wrapTermError("set console output mode", err)
	}

	t.rawEnabled = true
	if sz, err := t.GetSize(); err == nil {
		t.lastSize = sz
	}
	Logger.Debug("raw mode enabled")
	return nil
}

func (t *windowsTerminal) DisableRawMode() error {
	if !t.rawEnabled {
		return nil
	}
	if err := windows.SetConsoleMode(t.stdin, t.origInMode); err != nil {
		return wrapTermError("restore console input mode", err)
	}
	if err := windows.SetConsoleMode(t.stdout, t.origOutMode); err != nil {
		return wrapTermError("restore console output mode", err)
	}
	t.rawEnabled = false
	Logger.Debug("raw mode disabled")
	return nil
}

func (t *windowsTerminal) GetSize() (Size, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(t.stdout, &info); err != nil {
		return Size{}, wrapTermError("get screen buffer info", err)
	}
	cols := int(info.Window.Right-info.Window.Left) + 1
	rows := int(info.Window.Bottom-info.Window.Top) + 1
	return Size{Cols: cols, Rows: rows}, nil
}

// Read polls the input event count, waits up to timeoutMs if none are
// ready, then reads one input record. Key-down events return the Unicode
// char; resize events dispatch to the registered handler from this loop
// (never from signal context) and the call reports a timeout to the
// caller; anything else also reports a timeout.
func (t *windowsTerminal) Read(timeoutMs int) (int, error) {
	deadline := time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)
	for {
		var count uint32
		if err := windows.GetNumberOfConsoleInputEvents(t.stdin, &count); err != nil {
			return 0, wrapTermError("get input event count", err)
		}
		if count == 0 {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				return -2, nil
			}
			ms := uint32(remaining / time.Millisecond)
			ev, err := windows.WaitForSingleObject(t.stdin, ms)
			if err != nil {
				return 0, wrapTermError("wait for console input", err)
			}
			if ev == uint32(windows.WAIT_TIMEOUT) {
				return -2, nil
			}
			continue
		}

		var rec inputRecord
		var read uint32
		if err := readConsoleInputW(syscall.Handle(t.stdin), &rec, 1, &read); err != nil {
			return 0, wrapTermError("read console input", err)
		}
		switch rec.EventType {
		case keyEvent:
			ke := rec.KeyEvent()
			if ke.bKeyDown != 0 {
				r := utf16.Decode([]uint16{ke.uChar})
				if len(r) == 1 && r[0] != 0 {
					return int(r[0]), nil
				}
			}
		case windowBufferSizeEvent:
			if sz, err := t.GetSize(); err == nil && sz != t.lastSize {
				t.lastSize = sz
				if t.resizeHandler != nil {
					t.resizeHandler(sz)
				}
			}
			return -2, nil
		}
		if time.Now().After(deadline) {
			return -2, nil
		}
	}
}

func (t *windowsTerminal) Write(b []byte) error {
	u16 := utf16.Encode([]rune(string(b)))
	written := 0
	for written < len(u16) {
		var n uint32
		if err := windows.WriteConsole(t.stdout, &u16[written], uint32(len(u16)-written), &n, nil); err != nil {
			return wrapTermError("write console", err)
		}
		if n == 0 {
			return wrapTermError("write console", io.ErrShortWrite)
		}
		written += int(n)
	}
	return nil
}

func (t *windowsTerminal) OnResize(handler func(Size)) {
	t.resizeHandler = handler
}

func (t *windowsTerminal) IsRawModeEnabled() bool { return t.rawEnabled }

func (t *windowsTerminal) Close() error {
	return t.DisableRawMode()
}

// DetectCharset always reports UTF-8 on Windows: ReadConsoleInputW /
// WriteConsoleW operate on UTF-16 already, so there is no locale-derived
// legacy codepage to detect.
func DetectCharset() string { return "UTF-8" }
