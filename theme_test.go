package tuicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeByNameResolvesKnownNames(t *testing.T) {
	assert.Equal(t, ThemeLight, ThemeByName("light"))
	assert.Equal(t, ThemeMonochrome, ThemeByName("monochrome"))
	assert.Equal(t, ThemeDark, ThemeByName("dark"))
}

func TestThemeByNameDefaultsToDark(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeByName("nonexistent"))
	assert.Equal(t, ThemeDark, ThemeByName(""))
}

func TestThemeMonochromeCarriesNoColor(t *testing.T) {
	assert.False(t, ThemeMonochrome.Base.HasFG)
	assert.False(t, ThemeMonochrome.Accent.HasFG)
}
