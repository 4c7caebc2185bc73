package tuicore

// Frame is handed to the draw callback: the target area and the buffer
// accumulating the next frame's cells.
type Frame struct {
	Area Rect
	Buf  *Buffer
}

// CellUpdate is one emitted diff entry: cell (x,y) changed to a new value.
type CellUpdate struct {
	X, Y int
	Cell Cell
}

// cursorState tracks what the terminal last had emitted to it so the diff
// engine can skip redundant cursor moves, style changes, and hyperlink
// start/end pairs.
type cursorState struct {
	known    bool
	x, y     int
	lastWidth int
	style    Style
	hasLink  bool
	link     Hyperlink
}

// Backend owns the current+previous Buffer pair and drives the encoder
// through the per-frame diff. Inline marks a backend whose caller renders
// outside the alternate screen; frames are emitted the same way whether or
// not it is set, and the Backend never switches screens itself.
type Backend struct {
	current  *Buffer
	previous *Buffer
	area     Rect
	profile  Profile
	enc      *Encoder
	cursor   cursorState
	fullNext bool
	Inline   bool
}

// NewBackend constructs a Backend sized to area, degrading colors to the
// given profile (typically the result of DetectProfile).
func NewBackend(area Rect, profile Profile) *Backend {
	return &Backend{
		current:  Empty(area),
		previous: nil,
		area:     area,
		profile:  profile,
		enc:      NewEncoder(),
		fullNext: true,
	}
}

// Draw ensures current.Area == area (reallocating on size change), hands
// the Frame to f, then diffs and flushes.
func (b *Backend) Draw(area Rect, f func(Frame)) ([]byte, error) {
	if area != b.area {
		b.Resize(area)
	}
	f(Frame{Area: b.current.Area(), Buf: b.current})
	out, err := b.flush()
	if err != nil {
		return nil, wrapRenderError("draw", err)
	}
	return out, nil
}

// Resize reallocates both buffers to size and marks the next draw full.
func (b *Backend) Resize(area Rect) {
	b.area = area
	b.current = Empty(area)
	b.previous = nil
	b.fullNext = true
	Logger.WithField("area", area).Debug("backend resized, next draw full")
}

// Clear writes a full-screen clear sequence; both buffers become unknown
// and the next draw is full.
func (b *Backend) Clear() []byte {
	b.enc.Reset()
	b.enc.ClearScreen()
	b.previous = nil
	b.fullNext = true
	b.cursor = cursorState{}
	return b.enc.Bytes()
}

// flush computes the diff (or a full redraw) against previous, emits
// bytes, and swaps buffers.
func (b *Backend) flush() ([]byte, error) {
	b.enc.Reset()
	full := b.fullNext || b.previous == nil
	b.fullNext = false

	if full {
		b.emitFull()
	} else {
		b.emitDiff()
	}

	// previous is replaced by the freshly emitted view whether or not the
	// caller's write of these bytes succeeds: a cell whose bytes never
	// reached the terminal is not re-emitted until its value changes again.
	//
	// The outgoing previous buffer's storage is recycled as the new
	// current (cleared and marked clean, not fully dirty) instead of
	// allocating a fresh Buffer every frame, so RowDirty reflects only
	// what the next frame's widgets actually touch.
	next := b.previous
	if next == nil || next.Area() != b.area {
		next = Empty(b.area)
	}
	next.resetForReuse()
	b.previous = b.current
	b.current = next

	return b.enc.Bytes(), nil
}

func (b *Backend) emitFull() {
	for y := b.area.Y; y < b.area.Bottom(); y++ {
		b.emitRow(y, nil)
	}
	b.current.clearDirty()
}

func (b *Backend) emitDiff() {
	for y := b.area.Y; y < b.area.Bottom(); y++ {
		if !b.current.RowDirty(y) {
			// An untouched row of the recycled current buffer is blank, so
			// it can only differ where previous still holds content.
			blank := true
			for x := b.area.X; x < b.area.Right() && blank; x++ {
				blank = b.previous.Get(x, y) == EmptyCell
			}
			if blank {
				continue
			}
		}
		b.emitRow(y, b.previous)
	}
	b.current.clearDirty()
}

// emitRow scans one row left to right, emitting CellUpdate bytes for every
// cell that differs from prevBuf (or unconditionally, when prevBuf is nil
// for a full redraw), applying the three mandatory diff optimizations:
// cursor jumps, style runs, and hyperlink runs.
func (b *Backend) emitRow(y int, prevBuf *Buffer) {
	for x := b.area.X; x < b.area.Right(); {
		cur := b.current.Get(x, y)
		if cur.IsTrail() {
			x++
			continue
		}
		if prevBuf != nil {
			prev := prevBuf.Get(x, y)
			if prev == cur {
				x += cellAdvance(cur)
				continue
			}
		}
		b.emitCell(x, y, cur)
		x += cellAdvance(cur)
	}
}

func cellAdvance(c Cell) int {
	if c.Width == 0 {
		return 1
	}
	return int(c.Width)
}

// emitCell emits one CellUpdate's bytes, handling cursor-jump, style-run,
// and hyperlink-run tracking against b.cursor.
func (b *Backend) emitCell(x, y int, cell Cell) {
	naturalContinuation := b.cursor.known && b.cursor.y == y && b.cursor.x+b.cursor.lastWidth == x
	if !naturalContinuation {
		if b.cursor.hasLink {
			b.enc.HyperlinkEnd()
			b.cursor.hasLink = false
		}
		b.enc.MoveCursor(x, y)
	}

	wantLink := cell.Style.HasLink
	linkChanged := wantLink != b.cursor.hasLink || (wantLink && cell.Style.Link != b.cursor.link)
	if linkChanged {
		if b.cursor.hasLink {
			b.enc.HyperlinkEnd()
		}
		if wantLink {
			b.enc.HyperlinkStart(cell.Style.Link)
		}
		b.cursor.hasLink = wantLink
		b.cursor.link = cell.Style.Link
	}

	b.applyStyle(cell.Style)
	b.enc.WriteSymbol(symbolOf(cell))

	b.cursor.known = true
	b.cursor.x = x
	b.cursor.y = y
	b.cursor.lastWidth = cellAdvance(cell)
}

func symbolOf(c Cell) string {
	if c.Symbol == "" {
		return " "
	}
	return c.Symbol
}

// applyStyle emits the minimal SGR delta from the last emitted style to
// style.
func (b *Backend) applyStyle(style Style) {
	prev := b.cursor.style
	if style.Equal(prev) {
		return
	}
	cleared := prev.Modifiers &^ style.Modifiers
	if style.Modifiers != prev.Modifiers {
		b.enc.SetModifiers(prev.Modifiers, style.Modifiers)
	}
	// A reset ("ESC[0m") wipes color state too, so once one has been
	// emitted the full color state must be reapplied even if unchanged
	// from the logical prev style.
	forceColor := cleared != 0
	if forceColor || !colorEqual(style, prev, true) {
		fg := style.Foreground
		if !style.HasFG {
			fg = ColorDefaultValue
		}
		b.enc.SetForeground(fg, b.profile)
	}
	if forceColor || !colorEqual(style, prev, false) {
		bg := style.Background
		if !style.HasBG {
			bg = ColorDefaultValue
		}
		b.enc.SetBackground(bg, b.profile)
	}
	b.cursor.style = style
}

func colorEqual(a, b Style, fg bool) bool {
	if fg {
		return a.HasFG == b.HasFG && (!a.HasFG || a.Foreground == b.Foreground)
	}
	return a.HasBG == b.HasBG && (!a.HasBG || a.Background == b.Background)
}
