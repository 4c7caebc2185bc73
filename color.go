package tuicore

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// ColorMode tags which variant a Color holds.
type ColorMode uint8

const (
	ColorDefault ColorMode = iota // inherit from terminal
	ColorNamed                    // one of the 16 ANSI colors
	ColorIndexed                  // 0..255 palette index
	ColorRGB                      // true color
)

// Named is one of the 16 classic ANSI colors, bright variants included.
type Named uint8

const (
	Black Named = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Color is a tagged union: default, named (16-color), indexed (256-color),
// or true color RGB. Equality is structural.
type Color struct {
	Mode  ColorMode
	Named Named
	Index uint8
	R, G, B uint8
}

// ColorDefaultValue is the "inherit from terminal" color.
var ColorDefaultValue = Color{Mode: ColorDefault}

// NamedColor builds a 16-color Color.
func NamedColor(n Named) Color { return Color{Mode: ColorNamed, Named: n} }

// Indexed builds a 256-color palette Color.
func Indexed(i uint8) Color { return Color{Mode: ColorIndexed, Index: i} }

// RGB builds a true-color Color.
func RGB(r, g, b uint8) Color { return Color{Mode: ColorRGB, R: r, G: g, B: b} }

// Equal reports structural equality: two Colors are equal iff every field
// matches, not merely their resolved on-screen appearance.
func (c Color) Equal(other Color) bool { return c == other }

// Profile is the terminal's color capability, detected once at startup via
// termenv and used by the encoder to degrade colors that exceed it.
type Profile uint8

const (
	ProfileNoColor Profile = iota
	ProfileANSI            // 16 colors
	ProfileANSI256         // 256 colors
	ProfileTrueColor        // 24-bit RGB
)

// DetectProfile inspects the process environment the way termenv does
// (COLORTERM, TERM, CI, NO_COLOR) and returns the terminal's color
// capability. The application calls it once and passes the result to
// NewBackend; it is never called on the hot path.
func DetectProfile() Profile {
	switch termenv.EnvColorProfile() {
	case termenv.TrueColor:
		return ProfileTrueColor
	case termenv.ANSI256:
		return ProfileANSI256
	case termenv.ANSI:
		return ProfileANSI
	default:
		return ProfileNoColor
	}
}

// Degrade converts c to the closest representable color under profile. A
// default color always degrades to itself.
func (c Color) Degrade(profile Profile) Color {
	if c.Mode == ColorDefault {
		return c
	}
	switch profile {
	case ProfileTrueColor:
		return c
	case ProfileANSI256:
		if c.Mode == ColorIndexed || c.Mode == ColorNamed {
			return c
		}
		return Indexed(nearest256(c.R, c.G, c.B))
	case ProfileANSI:
		if c.Mode == ColorNamed {
			return c
		}
		r, g, b := c.R, c.G, c.B
		if c.Mode == ColorIndexed {
			r, g, b = indexedToRGB(c.Index)
		}
		return NamedColor(nearestNamed(r, g, b))
	default: // ProfileNoColor
		return ColorDefaultValue
	}
}

// nearest256 finds the closest xterm-256 palette index to an RGB triple
// using go-colorful's Lab distance, matching the approach lipgloss/termenv
// use for color degradation.
func nearest256(r, g, b uint8) uint8 {
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best := uint8(0)
	bestDist := 1e9
	for i := 0; i < 256; i++ {
		cr, cg, cb := xterm256Palette[i][0], xterm256Palette[i][1], xterm256Palette[i][2]
		cand := colorful.Color{R: float64(cr) / 255, G: float64(cg) / 255, B: float64(cb) / 255}
		d := target.DistanceLab(cand)
		if d < bestDist {
			bestDist = d
			best = uint8(i)
		}
	}
	return best
}

func nearestNamed(r, g, b uint8) Named {
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best := Black
	bestDist := 1e9
	for i := Named(0); i <= BrightWhite; i++ {
		nr, ng, nb := namedPalette[i][0], namedPalette[i][1], namedPalette[i][2]
		cand := colorful.Color{R: float64(nr) / 255, G: float64(ng) / 255, B: float64(nb) / 255}
		d := target.DistanceLab(cand)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func indexedToRGB(i uint8) (r, g, b uint8) {
	p := xterm256Palette[i]
	return p[0], p[1], p[2]
}

// namedPalette holds the conventional RGB approximations of the 16 ANSI
// colors, used only for nearest-color degradation math.
var namedPalette = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// xterm256Palette is populated once in init from the standard 6x6x6 color
// cube plus the grayscale ramp (indices 16..255); 0..15 reuse namedPalette.
var xterm256Palette [256][3]uint8

func init() {
	for i := 0; i < 16; i++ {
		xterm256Palette[i] = namedPalette[i]
	}
	steps := [6]uint8{0, 95, 135, 175, 215, 255}
	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				xterm256Palette[idx] = [3]uint8{steps[r], steps[g], steps[b]}
				idx++
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + i*10)
		xterm256Palette[232+i] = [3]uint8{v, v, v}
	}
}
