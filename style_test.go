package tuicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleMergePatchWinsOnPresentFields(t *testing.T) {
	base := StyleEmpty.WithFG(NamedColor(Red)).WithModifier(ModBold)
	patch := StyleEmpty.WithBG(NamedColor(Blue))

	merged := base.Merge(patch)

	assert.True(t, merged.HasFG)
	assert.Equal(t, NamedColor(Red), merged.Foreground, "unset field in patch must not clobber base")
	assert.True(t, merged.HasBG)
	assert.Equal(t, NamedColor(Blue), merged.Background)
	assert.True(t, merged.Modifiers.Has(ModBold))
}

func TestStyleMergeModifiersAreORed(t *testing.T) {
	base := StyleEmpty.WithModifier(ModBold)
	patch := StyleEmpty.WithModifier(ModUnderline)

	merged := base.Merge(patch)

	assert.True(t, merged.Modifiers.Has(ModBold))
	assert.True(t, merged.Modifiers.Has(ModUnderline))
}

func TestStyleMergeOverwritesForegroundWhenPatchSetsIt(t *testing.T) {
	base := StyleEmpty.WithFG(NamedColor(Red))
	patch := StyleEmpty.WithFG(NamedColor(Green))

	merged := base.Merge(patch)

	assert.Equal(t, NamedColor(Green), merged.Foreground)
}

func TestStyleEqualStructural(t *testing.T) {
	a := StyleEmpty.WithFG(NamedColor(Cyan)).WithModifier(ModItalic)
	b := StyleEmpty.WithFG(NamedColor(Cyan)).WithModifier(ModItalic)
	c := StyleEmpty.WithFG(NamedColor(Magenta)).WithModifier(ModItalic)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestModifierHasChecksAllBits(t *testing.T) {
	m := ModBold | ModUnderline
	assert.True(t, m.Has(ModBold))
	assert.True(t, m.Has(ModBold|ModUnderline))
	assert.False(t, m.Has(ModItalic))
}

func TestStyleWithLinkSetsHasLink(t *testing.T) {
	s := StyleEmpty.WithLink(Hyperlink{URL: "https://example.com"})
	assert.True(t, s.HasLink)
	assert.Equal(t, "https://example.com", s.Link.URL)
}
