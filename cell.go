package tuicore

// Cell is a single buffer position: a grapheme-cluster symbol (1-16 bytes
// UTF-8), its display width (0, 1, or 2), and a Style. A
// width-2 cell is a *lead cell*; it must be followed by a *trail cell*
// whose Symbol is empty and Width is 0.
type Cell struct {
	Symbol string
	Width  uint8
	Style  Style
}

// EmptyCell is the canonical blank cell: (" ", 1, StyleEmpty).
var EmptyCell = Cell{Symbol: " ", Width: 1, Style: StyleEmpty}

// trailCell is the canonical trail-position filler: ("", 0, style).
func trailCell(style Style) Cell {
	return Cell{Symbol: "", Width: 0, Style: style}
}

// IsLead reports whether c occupies two columns and must be paired with a
// following trail cell.
func (c Cell) IsLead() bool { return c.Width == 2 }

// IsTrail reports whether c is the empty continuation of a preceding
// width-2 lead cell.
func (c Cell) IsTrail() bool { return c.Width == 0 }
