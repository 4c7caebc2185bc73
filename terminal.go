package tuicore

import "golang.org/x/term"

// probeTerminal is the cross-platform capability check run before a
// platform driver attempts to enter raw mode: on Unix it is redundant with
// go-isatty, on Windows it is the only portable way to ask "is this fd a
// console" without the driver's own GetConsoleMode call yet in hand.
func probeTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// Terminal is the platform contract every OS-specific driver satisfies:
// raw-mode enable/disable, size query, byte-level blocking I/O with a
// millisecond deadline, and resize notification delivered outside
// signal context.
type Terminal interface {
	EnableRawMode() error
	DisableRawMode() error
	GetSize() (Size, error)

	// Read returns one input byte (0-255), -2 on timeout, -1 on EOF. It
	// never blocks longer than timeoutMs.
	Read(timeoutMs int) (int, error)

	// Write writes exactly len(b) bytes or returns an error, retrying on
	// short writes.
	Write(b []byte) error

	// OnResize registers a handler invoked from the render thread's read
	// loop — never from an OS signal handler — when the terminal resizes.
	OnResize(handler func(Size))

	IsRawModeEnabled() bool

	// Close restores captured modes and releases native resources. It is
	// idempotent.
	Close() error
}

// charsetFromLocale inspects LC_ALL, LC_CTYPE, LANG in order: "UTF-8"/"UTF8" anywhere in the value maps to UTF-8; otherwise the
// explicit charset after '.' is used; C/POSIX fall back to UTF-8.
func charsetFromLocale(lcAll, lcCtype, lang string) string {
	for _, v := range []string{lcAll, lcCtype, lang} {
		if v == "" {
			continue
		}
		if cs, ok := parseLocaleCharset(v); ok {
			return cs
		}
	}
	return "UTF-8"
}

func parseLocaleCharset(locale string) (string, bool) {
	if locale == "C" || locale == "POSIX" {
		return "UTF-8", true
	}
	for i := 0; i < len(locale)-3; i++ {
		if (locale[i] == 'U' || locale[i] == 'u') &&
			hasPrefixFold(locale[i:], "UTF-8") {
			return "UTF-8", true
		}
		if (locale[i] == 'U' || locale[i] == 'u') &&
			hasPrefixFold(locale[i:], "UTF8") {
			return "UTF-8", true
		}
	}
	for i, r := range locale {
		if r == '.' {
			rest := locale[i+1:]
			if j := indexByte(rest, '@'); j >= 0 {
				rest = rest[:j]
			}
			if rest != "" {
				return rest, true
			}
		}
	}
	return "", false
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		a, b := s[i], prefix[i]
		if a >= 'a' && a <= 'z' {
			a -= 32
		}
		if b >= 'a' && b <= 'z' {
			b -= 32
		}
		if a != b {
			return false
		}
	}
	return true
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
