package tuicore

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStyleFromLipglossHexColorAndBold(t *testing.T) {
	ls := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Bold(true)
	got := StyleFromLipgloss(ls)

	assert.True(t, got.HasFG)
	assert.Equal(t, ColorRGB, got.Foreground.Mode)
	assert.EqualValues(t, 255, got.Foreground.R)
	assert.True(t, got.Modifiers.Has(ModBold))
}

func TestStyleFromLipglossANSIColor(t *testing.T) {
	ls := lipgloss.NewStyle().Background(lipgloss.ANSIColor(9))
	got := StyleFromLipgloss(ls)

	assert.True(t, got.HasBG)
	assert.Equal(t, ColorNamed, got.Background.Mode)
	assert.Equal(t, BrightRed, got.Background.Named)
}

func TestStyleFromLipglossNoColorYieldsUnsetField(t *testing.T) {
	ls := lipgloss.NewStyle()
	got := StyleFromLipgloss(ls)
	assert.False(t, got.HasFG)
	assert.False(t, got.HasBG)
}

func TestParseLipglossColorStringDecimalIndex(t *testing.T) {
	c, ok := parseLipglossColorString("200")
	assert.True(t, ok)
	assert.Equal(t, ColorIndexed, c.Mode)
	assert.EqualValues(t, 200, c.Index)
}
