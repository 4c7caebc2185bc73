package tuicore

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TruncatePosition selects where the ellipsis goes when truncating a string
// to a maximum display width.
type TruncatePosition uint8

const (
	TruncateTail TruncatePosition = iota // "...tail" becomes "head…"
	TruncateHead                         // "head…" becomes "…tail"
	TruncateMiddle                       // "head…tail"
)

// WidthOfRune returns the display width of a single codepoint: 0 for
// combining marks/zero-width joiners, 2 for East-Asian-Wide/emoji/CJK, 1
// otherwise.
func WidthOfRune(r rune) int {
	return runewidth.RuneWidth(r)
}

// WidthOfString returns the sum of grapheme-cluster display widths in s:
// width_of(s) == Σ width_of(cluster) over its grapheme clusters. Clustering
// (base + combining marks, ZWJ sequences, regional indicators) is done via
// uniseg rather than naive rune iteration so "👨‍🦲" counts as one
// width-2 cluster instead of three separate runes.
func WidthOfString(s string) int {
	total := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		total += clusterWidth(gr.Runes())
	}
	return total
}

// clusterWidth returns the display width of one grapheme cluster: the
// cluster is wide if any rune within it is wide, and zero only if every
// rune in it is zero-width (so a base+combining-mark cluster still counts
// as the base's width).
func clusterWidth(runes []rune) int {
	width := 0
	for _, r := range runes {
		w := WidthOfRune(r)
		if w > width {
			width = w
		}
	}
	return width
}

// SubstringByWidth returns the longest prefix of s whose display width is
// ≤ max, never splitting a grapheme cluster.
func SubstringByWidth(s string, max int) string {
	if max <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := clusterWidth(gr.Runes())
		if used+w > max {
			break
		}
		b.WriteString(gr.Str())
		used += w
	}
	return b.String()
}

// TruncateWithEllipsis shortens s to fit within max display columns,
// inserting "…" at pos. If s already fits, it is returned unchanged.
func TruncateWithEllipsis(s string, max int, pos TruncatePosition) string {
	if WidthOfString(s) <= max {
		return s
	}
	const ellipsis = "…"
	const ellipsisWidth = 3
	if max <= ellipsisWidth {
		return SubstringByWidth(ellipsis, max)
	}
	budget := max - ellipsisWidth
	switch pos {
	case TruncateHead:
		tail := reverseSubstringByWidth(s, budget)
		return ellipsis + tail
	case TruncateMiddle:
		headBudget := budget / 2
		tailBudget := budget - headBudget
		head := SubstringByWidth(s, headBudget)
		tail := reverseSubstringByWidth(s, tailBudget)
		return head + ellipsis + tail
	default: // TruncateTail
		head := SubstringByWidth(s, budget)
		return head + ellipsis
	}
}

// reverseSubstringByWidth returns the longest suffix of s whose display
// width is ≤ max, never splitting a grapheme cluster.
func reverseSubstringByWidth(s string, max int) string {
	if max <= 0 {
		return ""
	}
	clusters := make([]string, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	used := 0
	start := len(clusters)
	for i := len(clusters) - 1; i >= 0; i-- {
		w := clusterWidth([]rune(clusters[i]))
		if used+w > max {
			break
		}
		used += w
		start = i
	}
	return strings.Join(clusters[start:], "")
}
