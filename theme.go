package tuicore

// Theme is a named set of Styles applications can share across widgets for
// a consistent look.
type Theme struct {
	Base   Style
	Muted  Style
	Accent Style
	Error  Style
	Border Style
}

// ThemeDark is light text on a dark background.
var ThemeDark = Theme{
	Base:   StyleEmpty.WithFG(NamedColor(White)),
	Muted:  StyleEmpty.WithFG(NamedColor(BrightBlack)),
	Accent: StyleEmpty.WithFG(NamedColor(BrightCyan)),
	Error:  StyleEmpty.WithFG(NamedColor(BrightRed)),
	Border: StyleEmpty.WithFG(NamedColor(BrightBlack)),
}

// ThemeLight is dark text on a light background.
var ThemeLight = Theme{
	Base:   StyleEmpty.WithFG(NamedColor(Black)),
	Muted:  StyleEmpty.WithFG(NamedColor(BrightBlack)),
	Accent: StyleEmpty.WithFG(NamedColor(Blue)),
	Error:  StyleEmpty.WithFG(NamedColor(Red)),
	Border: StyleEmpty.WithFG(NamedColor(White)),
}

// ThemeMonochrome uses only modifier bits, no color, for terminals without
// color support.
var ThemeMonochrome = Theme{
	Base:   StyleEmpty,
	Muted:  StyleEmpty.WithModifier(ModDim),
	Accent: StyleEmpty.WithModifier(ModBold),
	Error:  StyleEmpty.WithModifier(ModBold | ModUnderline),
	Border: StyleEmpty.WithModifier(ModDim),
}

// ThemeByName resolves one of the three predefined themes by config name,
// defaulting to ThemeDark for an unrecognized value.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return ThemeLight
	case "monochrome":
		return ThemeMonochrome
	default:
		return ThemeDark
	}
}
