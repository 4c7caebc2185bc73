package tuicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferAreaMatchesCellCount(t *testing.T) {
	b := Empty(NewRect(0, 0, 4, 3))
	assert.Equal(t, 12, len(b.cells))
}

func TestSetStringPairsLeadAndTrail(t *testing.T) {
	b := Empty(NewRect(0, 0, 4, 1))
	b.SetString(0, 0, "世界", StyleEmpty)

	lead0 := b.Get(0, 0)
	trail0 := b.Get(1, 0)
	lead1 := b.Get(2, 0)
	trail1 := b.Get(3, 0)

	require.True(t, lead0.IsLead())
	require.True(t, trail0.IsTrail())
	require.True(t, lead1.IsLead())
	require.True(t, trail1.IsTrail())
	assert.Equal(t, "世", lead0.Symbol)
	assert.Equal(t, "界", lead1.Symbol)
}

func TestSetStringClipsAtRightEdge(t *testing.T) {
	b := Empty(NewRect(0, 0, 3, 1))
	b.SetString(0, 0, "世界", StyleEmpty) // second cluster would cross the edge
	assert.Equal(t, "世", b.Get(0, 0).Symbol)
	assert.True(t, b.Get(1, 0).IsTrail())
	assert.Equal(t, EmptyCell, b.Get(2, 0))
}

func TestOverwritingTrailClearsPrecedingLead(t *testing.T) {
	b := Empty(NewRect(0, 0, 4, 1))
	b.SetString(0, 0, "世", StyleEmpty)
	b.SetString(1, 0, "A", StyleEmpty) // writes onto the trail cell of "世"

	assert.Equal(t, EmptyCell, b.Get(0, 0), "lead must be cleared, not left dangling")
	assert.Equal(t, "A", b.Get(1, 0).Symbol)
}

func TestSetStyleMergesWithoutChangingSymbol(t *testing.T) {
	b := Empty(NewRect(0, 0, 3, 1))
	b.SetString(0, 0, "x", StyleEmpty)
	b.SetStyle(NewRect(0, 0, 3, 1), StyleEmpty.WithModifier(ModBold))

	c := b.Get(0, 0)
	assert.Equal(t, "x", c.Symbol)
	assert.True(t, c.Style.Modifiers.Has(ModBold))
}

func TestFillHonorsWidthTwoPairing(t *testing.T) {
	b := Empty(NewRect(0, 0, 3, 1)) // odd width: last column can't fit a pair
	wide := Cell{Symbol: "#", Width: 2, Style: StyleEmpty}
	b.Fill(NewRect(0, 0, 3, 1), wide)

	assert.True(t, b.Get(0, 0).IsLead())
	assert.True(t, b.Get(1, 0).IsTrail())
	assert.Equal(t, EmptyCell, b.Get(2, 0), "partial pair at the edge must not be written")
}

func TestBufferGetOutOfBoundsReturnsEmpty(t *testing.T) {
	b := Empty(NewRect(0, 0, 2, 2))
	assert.Equal(t, EmptyCell, b.Get(5, 5))
}
