package tuicore

// Modifier is a bitset of SGR text attributes.
type Modifier uint16

const (
	ModBold Modifier = 1 << iota
	ModDim
	ModItalic
	ModUnderline
	ModBlink
	ModRapidBlink
	ModReverse
	ModHidden
	ModStrike
)

// Has reports whether all bits in other are set in m.
func (m Modifier) Has(other Modifier) bool { return m&other == other }

// Hyperlink is an OSC8 target: a URL plus an optional stable id used to
// distinguish two links that share a URL.
type Hyperlink struct {
	URL string
	ID  string
}

// Equal reports structural equality.
func (h Hyperlink) Equal(other Hyperlink) bool { return h == other }

// Style is an immutable bag of optional foreground/background colors, a
// modifier bitset, and an optional hyperlink target. The zero
// value is the additive identity, exposed as StyleEmpty.
type Style struct {
	Foreground   Color
	HasFG        bool
	Background   Color
	HasBG        bool
	Modifiers    Modifier
	Link         Hyperlink
	HasLink      bool
}

// StyleEmpty is the additive identity: no color, no modifiers, no link.
var StyleEmpty = Style{}

// WithFG returns a copy of s with the foreground color set.
func (s Style) WithFG(c Color) Style {
	s.Foreground = c
	s.HasFG = true
	return s
}

// WithBG returns a copy of s with the background color set.
func (s Style) WithBG(c Color) Style {
	s.Background = c
	s.HasBG = true
	return s
}

// WithModifier returns a copy of s with additional modifier bits OR'd in.
func (s Style) WithModifier(m Modifier) Style {
	s.Modifiers |= m
	return s
}

// WithLink returns a copy of s carrying a hyperlink target.
func (s Style) WithLink(l Hyperlink) Style {
	s.Link = l
	s.HasLink = true
	return s
}

// Merge applies patch onto s: any optional field present in patch wins,
// modifier bits are bitwise-ORed.
func (s Style) Merge(patch Style) Style {
	out := s
	if patch.HasFG {
		out.Foreground = patch.Foreground
		out.HasFG = true
	}
	if patch.HasBG {
		out.Background = patch.Background
		out.HasBG = true
	}
	out.Modifiers |= patch.Modifiers
	if patch.HasLink {
		out.Link = patch.Link
		out.HasLink = true
	}
	return out
}

// Equal reports structural equality between two styles.
func (s Style) Equal(other Style) bool { return s == other }
