package tuicore

// Encoder is a reusable byte builder emitting ANSI/VT escape sequences.
// Integer-to-decimal writes avoid string allocation; symbols written
// through WriteSymbol are appended as-is, with no UTF-8 recoding.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an Encoder with a pre-sized scratch buffer.
func NewEncoder() *Encoder {
	return &Encoder{buf: make([]byte, 0, 4096)}
}

// Bytes returns the accumulated output and does not reset the buffer.
func (e *Encoder) Bytes() []byte { return e.buf }

// Reset empties the buffer for reuse across frames.
func (e *Encoder) Reset() { e.buf = e.buf[:0] }

func (e *Encoder) writeString(s string) { e.buf = append(e.buf, s...) }

// appendInt writes n in decimal without allocation, using a fixed
// scratch array and writing digits back-to-front.
func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	neg := n < 0
	if neg {
		b = append(b, '-')
		n = -n
	}
	var scratch [20]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	return append(b, scratch[i:]...)
}

func (e *Encoder) writeInt(n int) { e.buf = appendInt(e.buf, n) }

// MoveCursor emits "ESC[row;colH" for 0-based (col,row); cursor addressing
// on the wire is 1-based.
func (e *Encoder) MoveCursor(col, row int) {
	e.writeString("\x1b[")
	e.writeInt(row + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(col + 1)
	e.buf = append(e.buf, 'H')
}

// ShowCursor / HideCursor toggle cursor visibility.
func (e *Encoder) ShowCursor() { e.writeString("\x1b[?25h") }
func (e *Encoder) HideCursor() { e.writeString("\x1b[?25l") }

// EnterAltScreen / LeaveAltScreen toggle the alternate screen buffer.
func (e *Encoder) EnterAltScreen() { e.writeString("\x1b[?1049h") }
func (e *Encoder) LeaveAltScreen() { e.writeString("\x1b[?1049l") }

// ClearScreen emits a full-screen clear plus cursor-home.
func (e *Encoder) ClearScreen() { e.writeString("\x1b[2J\x1b[H") }

// EnableMouse / DisableMouse toggle SGR extended mouse tracking.
func (e *Encoder) EnableMouse()  { e.writeString("\x1b[?1000h\x1b[?1002h\x1b[?1006h") }
func (e *Encoder) DisableMouse() { e.writeString("\x1b[?1000l\x1b[?1002l\x1b[?1006l") }

// EnableBracketedPaste / DisableBracketedPaste toggle paste-burst markers.
func (e *Encoder) EnableBracketedPaste()  { e.writeString("\x1b[?2004h") }
func (e *Encoder) DisableBracketedPaste() { e.writeString("\x1b[?2004l") }

// CursorShape selects the terminal cursor glyph via "ESC[N q".
type CursorShape int

const (
	CursorShapeDefault      CursorShape = 0
	CursorShapeBlinkBlock   CursorShape = 1
	CursorShapeSteadyBlock  CursorShape = 2
	CursorShapeBlinkUnder   CursorShape = 3
	CursorShapeSteadyUnder  CursorShape = 4
	CursorShapeBlinkBar     CursorShape = 5
	CursorShapeSteadyBar    CursorShape = 6
)

// SetCursorShape emits "ESC[N q".
func (e *Encoder) SetCursorShape(shape CursorShape) {
	e.writeString("\x1b[")
	e.writeInt(int(shape))
	e.writeString(" q")
}

// SetCursorColor emits the OSC12 cursor-color control sequence with a
// "#RRGGBB" hex payload.
func (e *Encoder) SetCursorColor(r, g, b uint8) {
	e.writeString("\x1b]12;#")
	e.writeHex2(r)
	e.writeHex2(g)
	e.writeHex2(b)
	e.buf = append(e.buf, 0x07) // BEL terminator
}

func (e *Encoder) writeHex2(v uint8) {
	const digits = "0123456789abcdef"
	e.buf = append(e.buf, digits[v>>4], digits[v&0xf])
}

// HyperlinkStart emits "ESC]8;id?;URL ESC\\".
func (e *Encoder) HyperlinkStart(link Hyperlink) {
	e.writeString("\x1b]8;")
	if link.ID != "" {
		e.writeString("id=")
		e.writeString(link.ID)
	}
	e.buf = append(e.buf, ';')
	e.writeString(link.URL)
	e.writeString("\x1b\\")
}

// HyperlinkEnd emits "ESC]8;;ESC\\".
func (e *Encoder) HyperlinkEnd() {
	e.writeString("\x1b]8;;\x1b\\")
}

// SetForeground emits the SGR sequence selecting fg, per profile.
func (e *Encoder) SetForeground(c Color, profile Profile) {
	c = c.Degrade(profile)
	e.buf = append(e.buf, '\x1b', '[')
	switch c.Mode {
	case ColorDefault:
		e.writeString("39")
	case ColorNamed:
		e.writeSGRNamed(c.Named, 30)
	case ColorIndexed:
		e.writeString("38;5;")
		e.writeInt(int(c.Index))
	case ColorRGB:
		e.writeString("38;2;")
		e.writeInt(int(c.R))
		e.buf = append(e.buf, ';')
		e.writeInt(int(c.G))
		e.buf = append(e.buf, ';')
		e.writeInt(int(c.B))
	}
	e.buf = append(e.buf, 'm')
}

// SetBackground emits the SGR sequence selecting bg, per profile.
func (e *Encoder) SetBackground(c Color, profile Profile) {
	c = c.Degrade(profile)
	e.buf = append(e.buf, '\x1b', '[')
	switch c.Mode {
	case ColorDefault:
		e.writeString("49")
	case ColorNamed:
		e.writeSGRNamed(c.Named, 40)
	case ColorIndexed:
		e.writeString("48;5;")
		e.writeInt(int(c.Index))
	case ColorRGB:
		e.writeString("48;2;")
		e.writeInt(int(c.R))
		e.buf = append(e.buf, ';')
		e.writeInt(int(c.G))
		e.buf = append(e.buf, ';')
		e.writeInt(int(c.B))
	}
	e.buf = append(e.buf, 'm')
}

// writeSGRNamed writes the "3n"/"4n" form for the 16 ANSI colors, where
// base is 30 (fg) or 40 (bg) and bright variants use the 90/100 range.
func (e *Encoder) writeSGRNamed(n Named, base int) {
	if n >= BrightBlack {
		e.writeInt(base + 60 + int(n-BrightBlack))
		return
	}
	e.writeInt(base + int(n))
}

// modifierSGRCodes maps each Modifier bit to its SGR "set" parameter.
var modifierSGRCodes = []struct {
	bit  Modifier
	code int
}{
	{ModBold, 1},
	{ModDim, 2},
	{ModItalic, 3},
	{ModUnderline, 4},
	{ModBlink, 5},
	{ModRapidBlink, 6},
	{ModReverse, 7},
	{ModHidden, 8},
	{ModStrike, 9},
}

// SetModifiers emits the minimal SGR delta from prev to next: if any bit was cleared, reset ("0") then re-apply every set bit;
// otherwise additively emit only the newly set bits.
func (e *Encoder) SetModifiers(prev, next Modifier) {
	if next == prev {
		return
	}
	cleared := prev &^ next
	if cleared != 0 {
		e.writeSGR([]int{0})
		e.writeSetModifierBits(next)
		return
	}
	added := next &^ prev
	e.writeSetModifierBits(added)
}

func (e *Encoder) writeSetModifierBits(m Modifier) {
	if m == 0 {
		return
	}
	codes := make([]int, 0, len(modifierSGRCodes))
	for _, mc := range modifierSGRCodes {
		if m.Has(mc.bit) {
			codes = append(codes, mc.code)
		}
	}
	if len(codes) == 0 {
		return
	}
	e.writeSGR(codes)
}

func (e *Encoder) writeSGR(codes []int) {
	e.buf = append(e.buf, '\x1b', '[')
	for i, c := range codes {
		if i > 0 {
			e.buf = append(e.buf, ';')
		}
		e.writeInt(c)
	}
	e.buf = append(e.buf, 'm')
}

// ResetStyle emits "ESC[0m".
func (e *Encoder) ResetStyle() { e.writeString("\x1b[0m") }

// WriteSymbol appends a cell's grapheme cluster bytes verbatim; ASCII and
// non-ASCII symbols take the same append path and are never recoded.
func (e *Encoder) WriteSymbol(symbol string) {
	if symbol == "" {
		return
	}
	e.writeString(symbol)
}
