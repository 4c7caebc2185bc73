package tuicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyCellIsBlankSpace(t *testing.T) {
	assert.Equal(t, " ", EmptyCell.Symbol)
	assert.EqualValues(t, 1, EmptyCell.Width)
	assert.False(t, EmptyCell.IsLead())
	assert.False(t, EmptyCell.IsTrail())
}

func TestTrailCellCarriesStyleButNoSymbol(t *testing.T) {
	style := StyleEmpty.WithFG(NamedColor(Red))
	tc := trailCell(style)
	assert.Equal(t, "", tc.Symbol)
	assert.EqualValues(t, 0, tc.Width)
	assert.True(t, tc.IsTrail())
	assert.Equal(t, style, tc.Style)
}

func TestIsLeadOnlyForWidthTwo(t *testing.T) {
	narrow := Cell{Symbol: "A", Width: 1}
	wide := Cell{Symbol: "世", Width: 2}
	assert.False(t, narrow.IsLead())
	assert.True(t, wide.IsLead())
}
