package tuicore

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// StyleFromLipgloss converts a resolved lipgloss.Style's foreground,
// background, and boolean attributes into a native Style, so applications
// already invested in the bubbletea/lipgloss ecosystem can hand styled
// text straight to Buffer.SetLine.
func StyleFromLipgloss(ls lipgloss.Style) Style {
	out := StyleEmpty
	if fg, ok := lipglossColor(ls.GetForeground()); ok {
		out = out.WithFG(fg)
	}
	if bg, ok := lipglossColor(ls.GetBackground()); ok {
		out = out.WithBG(bg)
	}
	var mods Modifier
	if ls.GetBold() {
		mods |= ModBold
	}
	if ls.GetItalic() {
		mods |= ModItalic
	}
	if ls.GetUnderline() {
		mods |= ModUnderline
	}
	if ls.GetStrikethrough() {
		mods |= ModStrike
	}
	if ls.GetBlink() {
		mods |= ModBlink
	}
	if ls.GetReverse() {
		mods |= ModReverse
	}
	if ls.GetFaint() {
		mods |= ModDim
	}
	out = out.WithModifier(mods)
	return out
}

// lipglossColor converts a lipgloss.TerminalColor into a Color.
// lipgloss.Color wraps a "#rrggbb" hex literal or a bare decimal ANSI/256
// index as a plain string; lipgloss.ANSIColor wraps a numeric index
// directly.
func lipglossColor(c lipgloss.TerminalColor) (Color, bool) {
	switch v := c.(type) {
	case nil, lipgloss.NoColor:
		return Color{}, false
	case lipgloss.Color:
		return parseLipglossColorString(string(v))
	case lipgloss.ANSIColor:
		idx := int(v)
		if idx < 16 {
			return NamedColor(Named(idx)), true
		}
		return Indexed(uint8(idx)), true
	default:
		return Color{}, false
	}
}

func parseLipglossColorString(s string) (Color, bool) {
	if s == "" {
		return Color{}, false
	}
	if s[0] == '#' {
		cf, err := colorful.Hex(s)
		if err != nil {
			return Color{}, false
		}
		return RGB(uint8(cf.R*255), uint8(cf.G*255), uint8(cf.B*255)), true
	}
	if idx, err := strconv.Atoi(s); err == nil {
		if idx < 16 {
			return NamedColor(Named(idx)), true
		}
		return Indexed(uint8(idx)), true
	}
	return Color{}, false
}
