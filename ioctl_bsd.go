//go:build darwin || freebsd || netbsd || openbsd

package tuicore

import "golang.org/x/sys/unix"

const (
	ioctlGetTermiosFlag = unix.TIOCGETA
	ioctlSetTermiosFlag = unix.TIOCSETA
)
