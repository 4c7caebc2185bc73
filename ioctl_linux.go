//go:build linux

package tuicore

import "golang.org/x/sys/unix"

const (
	ioctlGetTermiosFlag = unix.TCGETS
	ioctlSetTermiosFlag = unix.TCSETS
)
