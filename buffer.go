package tuicore

import "github.com/rivo/uniseg"

// Buffer is a dense rectangular grid of Cells indexed by a Rect. area.Width*area.Height always equals len(cells). Every width-2 lead
// cell is followed by a width-0 trail cell.
type Buffer struct {
	area  Rect
	cells []Cell

	// dirtyRows is a pure diff accelerator: it never changes which cells a diff reports, only how
	// fast Backend.flush's scan finds them.
	dirtyRows []bool
	dirtyMaxY int
	allDirty  bool
}

// Empty returns a Buffer of the given area, every cell set to EmptyCell.
func Empty(area Rect) *Buffer {
	b := &Buffer{
		area:      area,
		cells:     make([]Cell, area.Width*area.Height),
		dirtyRows: make([]bool, area.Height),
		allDirty:  true,
	}
	for i := range b.cells {
		b.cells[i] = EmptyCell
	}
	return b
}

// WithLines builds a Buffer from plain strings, one per row, each styled
// uniformly — a test constructor for building expected-output buffers
// without hand-assembling cells.
func WithLines(lines []string, style Style) *Buffer {
	height := len(lines)
	width := 0
	for _, l := range lines {
		if w := WidthOfString(l); w > width {
			width = w
		}
	}
	b := Empty(NewRect(0, 0, width, height))
	for y, l := range lines {
		b.SetString(0, y, l, style)
	}
	return b
}

// Area returns the buffer's indexing rectangle.
func (b *Buffer) Area() Rect { return b.area }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= b.area.X && x < b.area.Right() && y >= b.area.Y && y < b.area.Bottom()
}

func (b *Buffer) index(x, y int) int {
	return (y-b.area.Y)*b.area.Width + (x - b.area.X)
}

func (b *Buffer) markDirty(y int) {
	row := y - b.area.Y
	if row < 0 || row >= len(b.dirtyRows) {
		return
	}
	b.dirtyRows[row] = true
	if row > b.dirtyMaxY {
		b.dirtyMaxY = row
	}
}

// Get returns the cell at (x,y), or EmptyCell if out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return EmptyCell
	}
	return b.cells[b.index(x, y)]
}

// Set writes c at (x,y) verbatim, doing nothing if out of bounds. Callers
// that need the lead/trail pairing invariant maintained should prefer
// SetString; Set is the primitive escape hatch used by widgets that
// already computed a correctly paired Cell.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)] = c
	b.markDirty(y)
}

// clearPairAt resets the lead/trail pair touching (x,y) to two empty cells,
// used before overwriting so a write can never leave an orphaned trail or
// a lead without its trail.
func (b *Buffer) clearPairAt(x, y int) {
	cur := b.Get(x, y)
	switch {
	case cur.IsTrail():
		// (x,y) is a trail; its lead is at x-1.
		b.Set(x-1, y, EmptyCell)
		b.Set(x, y, EmptyCell)
	case cur.IsLead():
		b.Set(x, y, EmptyCell)
		b.Set(x+1, y, EmptyCell)
	}
}

// SetString writes s starting at (x,y) with style, one grapheme cluster at
// a time, stopping before any cluster would cross the buffer's right edge.
// Width-2 clusters occupy a lead+trail pair.
func (b *Buffer) SetString(x, y int, s string, style Style) {
	if !b.inBounds(x, y) {
		return
	}
	cur := x
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		w := clusterWidth(gr.Runes())
		if w == 0 {
			continue
		}
		if cur+w > b.area.Right() {
			break
		}
		b.clearPairAt(cur, y)
		if w == 2 {
			b.clearPairAt(cur+1, y)
			b.Set(cur, y, Cell{Symbol: cluster, Width: 2, Style: style})
			b.Set(cur+1, y, trailCell(style))
		} else {
			b.Set(cur, y, Cell{Symbol: cluster, Width: 1, Style: style})
		}
		cur += w
	}
}

// Span is one run of uniformly styled text, composed left-to-right by
// SetLine.
type Span struct {
	Text  string
	Style Style
}

// SetLine composes styled spans left-to-right starting at (x,y), via
// repeated SetString calls.
func (b *Buffer) SetLine(x, y int, spans []Span) {
	cur := x
	for _, sp := range spans {
		if cur >= b.area.Right() {
			break
		}
		b.SetString(cur, y, sp.Text, sp.Style)
		cur += WidthOfString(sp.Text)
	}
}

// SetStyle merges style into every cell's style within rect, leaving
// symbols untouched.
func (b *Buffer) SetStyle(rect Rect, style Style) {
	clipped := rect.Clip(b.area)
	if clipped.Empty() {
		return
	}
	for y := clipped.Y; y < clipped.Bottom(); y++ {
		for x := clipped.X; x < clipped.Right(); x++ {
			c := b.Get(x, y)
			c.Style = c.Style.Merge(style)
			b.Set(x, y, c)
		}
	}
}

// Fill copies cell into every position of rect, honoring width-2 pairing:
// a width-2 fill cell at the last column of rect is not written, since its
// trail would fall outside rect.
func (b *Buffer) Fill(rect Rect, cell Cell) {
	clipped := rect.Clip(b.area)
	if clipped.Empty() {
		return
	}
	for y := clipped.Y; y < clipped.Bottom(); y++ {
		x := clipped.X
		for x < clipped.Right() {
			if cell.Width == 2 {
				if x+2 > clipped.Right() {
					break
				}
				b.clearPairAt(x, y)
				b.Set(x, y, cell)
				b.Set(x+1, y, trailCell(cell.Style))
				x += 2
			} else {
				b.clearPairAt(x, y)
				b.Set(x, y, cell)
				x++
			}
		}
	}
}

// Clear resets every cell to EmptyCell and marks the buffer fully dirty.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = EmptyCell
	}
	for i := range b.dirtyRows {
		b.dirtyRows[i] = true
	}
	b.dirtyMaxY = len(b.dirtyRows) - 1
	b.allDirty = true
}

// resetForReuse blanks every cell and marks the buffer clean rather than
// dirty, readying a recycled Buffer to receive a fresh frame's writes
// without forcing every row to look touched before anything is drawn.
func (b *Buffer) resetForReuse() {
	for i := range b.cells {
		b.cells[i] = EmptyCell
	}
	for i := range b.dirtyRows {
		b.dirtyRows[i] = false
	}
	b.dirtyMaxY = 0
	b.allDirty = false
}

// Resize reallocates the buffer to a new area, discarding prior content.
func (b *Buffer) Resize(area Rect) {
	b.area = area
	b.cells = make([]Cell, area.Width*area.Height)
	for i := range b.cells {
		b.cells[i] = EmptyCell
	}
	b.dirtyRows = make([]bool, area.Height)
	b.dirtyMaxY = 0
	b.allDirty = true
}

// RowDirty reports whether row y (relative to area.Y) was touched since
// the last clearDirty call.
func (b *Buffer) RowDirty(y int) bool {
	row := y - b.area.Y
	if b.allDirty {
		return true
	}
	if row < 0 || row >= len(b.dirtyRows) {
		return false
	}
	return b.dirtyRows[row]
}

// clearDirty resets dirty tracking after a frame has been diffed.
func (b *Buffer) clearDirty() {
	for i := range b.dirtyRows {
		b.dirtyRows[i] = false
	}
	b.dirtyMaxY = 0
	b.allDirty = false
}

// Region is a sub-view of a Buffer restricted to a smaller Rect, letting a
// widget hand its sub-widgets a narrowed surface without copying cells.
type Region struct {
	buf  *Buffer
	area Rect
}

// Sub returns a Region of b clipped to area.
func (b *Buffer) Sub(area Rect) Region {
	return Region{buf: b, area: area.Clip(b.area)}
}

// Area returns the region's rectangle.
func (r Region) Area() Rect { return r.area }

// Get proxies to the underlying buffer, bounded to the region's area.
func (r Region) Get(x, y int) Cell {
	if !r.area.Contains(x, y) {
		return EmptyCell
	}
	return r.buf.Get(x, y)
}

// Set proxies to the underlying buffer, bounded to the region's area.
func (r Region) Set(x, y int, c Cell) {
	if !r.area.Contains(x, y) {
		return
	}
	r.buf.Set(x, y, c)
}

// SetString proxies to the underlying buffer, clipping to the region's
// right edge rather than the full buffer's.
func (r Region) SetString(x, y int, s string, style Style) {
	if !r.area.Contains(x, y) {
		return
	}
	cur := x
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := clusterWidth(gr.Runes())
		if w == 0 {
			continue
		}
		if cur+w > r.area.Right() {
			break
		}
		r.buf.SetString(cur, y, gr.Str(), style)
		cur += w
	}
}

// Blit copies src's cells into b at offset (x,y), clipping to b's area.
func (b *Buffer) Blit(x, y int, src *Buffer) {
	for sy := 0; sy < src.area.Height; sy++ {
		for sx := 0; sx < src.area.Width; sx++ {
			c := src.Get(src.area.X+sx, src.area.Y+sy)
			if c.IsTrail() {
				continue // written as part of its lead pair below
			}
			b.Set(x+sx, y+sy, c)
			if c.IsLead() {
				b.Set(x+sx+1, y+sy, src.Get(src.area.X+sx+1, src.area.Y+sy))
			}
		}
	}
}
