package tuicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorEqualStructural(t *testing.T) {
	a := RGB(10, 20, 30)
	b := RGB(10, 20, 30)
	c := RGB(10, 20, 31)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(NamedColor(Red)))
}

func TestDegradeTrueColorIsIdentity(t *testing.T) {
	c := RGB(12, 34, 56)
	assert.Equal(t, c, c.Degrade(ProfileTrueColor))
}

func TestDegradeNoColorAlwaysReturnsDefault(t *testing.T) {
	c := RGB(200, 50, 50)
	assert.Equal(t, ColorDefaultValue, c.Degrade(ProfileNoColor))
}

func TestDegradeDefaultColorIsAlwaysIdentity(t *testing.T) {
	assert.Equal(t, ColorDefaultValue, ColorDefaultValue.Degrade(ProfileANSI))
	assert.Equal(t, ColorDefaultValue, ColorDefaultValue.Degrade(ProfileTrueColor))
}

func TestDegradeRGBToANSI256PicksIndexed(t *testing.T) {
	got := RGB(255, 0, 0).Degrade(ProfileANSI256)
	assert.Equal(t, ColorIndexed, got.Mode)
}

func TestDegradeRGBToANSIPicksNearestNamed(t *testing.T) {
	got := RGB(255, 0, 0).Degrade(ProfileANSI)
	assert.Equal(t, ColorNamed, got.Mode)
	assert.True(t, got.Named == Red || got.Named == BrightRed)
}

func TestDegradeNamedColorUnchangedUnderANSI(t *testing.T) {
	c := NamedColor(Green)
	assert.Equal(t, c, c.Degrade(ProfileANSI))
}
