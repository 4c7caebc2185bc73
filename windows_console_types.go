//go:build windows

package tuicore

import (
	"syscall"
	"unsafe"
)

// The raw INPUT_RECORD/KEY_EVENT_RECORD layout and ReadConsoleInputW entry
// point are not exposed by golang.org/x/sys/windows, so they are declared
// here the way other Windows console consumers in the ecosystem do:
// minimal struct mirrors of the Win32 ABI plus a syscall.NewLazyDLL lookup.

const (
	keyEvent              uint16 = 0x0001
	windowBufferSizeEvent uint16 = 0x0004
)

type coord struct {
	X, Y int16
}

type keyEventRecord struct {
	bKeyDown          int32
	wRepeatCount      uint16
	wVirtualKeyCode   uint16
	wVirtualScanCode  uint16
	uChar             uint16
	dwControlKeyState uint32
}

type windowBufferSizeRecord struct {
	dwSize coord
}

// inputRecord mirrors Win32's INPUT_RECORD: a type tag followed by a union
// of event payloads, sized to the largest member.
type inputRecord struct {
	EventType uint16
	_         uint16 // alignment padding
	union     [16]byte
}

func (r *inputRecord) KeyEvent() *keyEventRecord {
	return (*keyEventRecord)(unsafe.Pointer(&r.union[0]))
}

func (r *inputRecord) WindowBufferSizeEvent() *windowBufferSizeRecord {
	return (*windowBufferSizeRecord)(unsafe.Pointer(&r.union[0]))
}

var (
	kernel32              = syscall.NewLazyDLL("kernel32.dll")
	procReadConsoleInputW = kernel32.NewProc("ReadConsoleInputW")
)

func readConsoleInputW(handle syscall.Handle, buf *inputRecord, length uint32, read *uint32) error {
	r, _, err := procReadConsoleInputW.Call(
		uintptr(handle),
		uintptr(unsafe.Pointer(buf)),
		uintptr(length),
		uintptr(unsafe.Pointer(read)),
	)
	if r == 0 {
		return err
	}
	return nil
}
