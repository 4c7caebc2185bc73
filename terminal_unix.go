//go:build !windows

package tuicore

import (
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// unixTerminal is the Unix Terminal driver: it opens /dev/tty read-write
// on Linux, or uses stdin directly on macOS because poll on /dev/tty
// misbehaves there.
type unixTerminal struct {
	f           *os.File
	ownsFile    bool
	fd          int
	origTermios *unix.Termios
	rawEnabled  bool

	resizeHandler func(Size)
	resizePending chan struct{}
	sigChan       chan os.Signal
	stopSignals   chan struct{}

	mu sync.Mutex
}

// NewTerminal opens the platform terminal driver for the current OS.
func NewTerminal() (Terminal, error) {
	var f *os.File
	owns := false
	if runtime.GOOS == "darwin" {
		f = os.Stdin
	} else {
		tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if err != nil {
			f = os.Stdin
		} else {
			f = tty
			owns = true
		}
	}
	fd := int(f.Fd())
	if !isatty.IsTerminal(uintptr(fd)) || !probeTerminal(fd) {
		return nil, wrapBackendInitError("not a terminal", nil)
	}
	t := &unixTerminal{
		f:             f,
		ownsFile:      owns,
		fd:            fd,
		resizePending: make(chan struct{}, 1),
	}
	return t, nil
}

func (t *unixTerminal) EnableRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.rawEnabled {
		return nil
	}
	termios, err := unix.IoctlGetTermios(t.fd, ioctlGetTermiosFlag)
	if err != nil {
		return wrapTermError("get termios", err)
	}
	t.origTermios = termios

	raw := *termios
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermiosFlag, &raw); err != nil {
		return wrapTermError("set raw mode", err)
	}
	t.rawEnabled = true

	t.sigChan = make(chan os.Signal, 4)
	t.stopSignals = make(chan struct{})
	signal.Notify(t.sigChan, syscall.SIGWINCH)
	go t.watchSignals()

	Logger.WithField("fd", t.fd).Debug("raw mode enabled")
	return nil
}

// watchSignals only forwards notifications into resizePending — it never
// invokes the registered handler directly, preserving the rule that
// resize is delivered from the main read loop, not from signal context.
func (t *unixTerminal) watchSignals() {
	for {
		select {
		case <-t.sigChan:
			select {
			case t.resizePending <- struct{}{}:
			default:
			}
		case <-t.stopSignals:
			return
		}
	}
}

func (t *unixTerminal) DisableRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.rawEnabled {
		return nil
	}
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermiosFlag, t.origTermios); err != nil {
		return wrapTermError("restore termios", err)
	}
	t.rawEnabled = false
	signal.Stop(t.sigChan)
	close(t.stopSignals)
	Logger.Debug("raw mode disabled")
	return nil
}

func (t *unixTerminal) GetSize() (Size, error) {
	ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, wrapTermError("get winsize", err)
	}
	return Size{Cols: int(ws.Col), Rows: int(ws.Row)}, nil
}

func (t *unixTerminal) drainResize() {
	select {
	case <-t.resizePending:
		if t.resizeHandler != nil {
			if sz, err := t.GetSize(); err == nil {
				t.resizeHandler(sz)
			}
		}
	default:
	}
}

// Read polls the fd with the requested timeout and returns one byte, -2 on
// timeout, -1 on EOF. On EINTR it rechecks the resize-pending flag and
// retries without losing the deadline.
func (t *unixTerminal) Read(timeoutMs int) (int, error) {
	deadline := time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)
	for {
		t.drainResize()
		remaining := int(time.Until(deadline) / time.Millisecond)
		if remaining < 0 {
			remaining = 0
		}
		fds := []unix.PollFd{{Fd: int32(t.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, remaining)
		if err == unix.EINTR {
			if time.Now().After(deadline) {
				return -2, nil
			}
			continue
		}
		if err != nil {
			return 0, wrapTermError("poll", err)
		}
		if n == 0 {
			return -2, nil
		}
		var buf [1]byte
		nr, err := t.f.Read(buf[:])
		if nr == 0 {
			if err != nil {
				return -1, nil
			}
			return -2, nil
		}
		return int(buf[0]), nil
	}
}

func (t *unixTerminal) Write(b []byte) error {
	written := 0
	for written < len(b) {
		n, err := t.f.Write(b[written:])
		if err != nil {
			return wrapTermError("write", err)
		}
		written += n
	}
	return nil
}

func (t *unixTerminal) OnResize(handler func(Size)) {
	t.resizeHandler = handler
}

func (t *unixTerminal) IsRawModeEnabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rawEnabled
}

func (t *unixTerminal) Close() error {
	if err := t.DisableRawMode(); err != nil {
		return err
	}
	if t.ownsFile {
		t.ownsFile = false
		return t.f.Close()
	}
	return nil
}

// DetectCharset inspects the process locale environment variables.
func DetectCharset() string {
	return charsetFromLocale(os.Getenv("LC_ALL"), os.Getenv("LC_CTYPE"), os.Getenv("LANG"))
}
