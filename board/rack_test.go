package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRackFill(t *testing.T) {
	var r Rack
	r.Fill()
	assert.Equal(t, 9, r.NumTiles())
	assert.Equal(t, []int8{1, 2, 3, 4, 5, 6, 7, 8, 9}, r.TilesOn())
	for v := int8(1); v <= MaxTileValue; v++ {
		assert.True(t, r.Has(v))
	}
}

func TestRackTakeAdd(t *testing.T) {
	var r Rack
	r.Fill()
	r.Take(5)
	assert.False(t, r.Has(5))
	assert.Equal(t, 8, r.NumTiles())
	assert.Equal(t, []int8{1, 2, 3, 4, 6, 7, 8, 9}, r.TilesOn())

	r.Add(5)
	assert.True(t, r.Has(5))
	assert.Equal(t, 9, r.NumTiles())

	// Taking a value that isn't there changes nothing.
	r.Take(5)
	r.Take(5)
	assert.Equal(t, 8, r.NumTiles())
}

func TestRackDuplicates(t *testing.T) {
	var r Rack
	r.Set([]int8{5, 5, 5, 2})
	assert.Equal(t, 4, r.NumTiles())
	assert.Equal(t, 3, r.Count(5))
	assert.Equal(t, []int8{2, 5, 5, 5}, r.TilesOn())

	r.Take(5)
	assert.True(t, r.Has(5))
	assert.Equal(t, 2, r.Count(5))
}

func TestRackSetIgnoresOutOfRange(t *testing.T) {
	var r Rack
	r.Set([]int8{0, 3, 12, -4, 7})
	assert.Equal(t, 2, r.NumTiles())
	assert.Equal(t, []int8{3, 7}, r.TilesOn())
}

func TestRackEmpty(t *testing.T) {
	var r Rack
	assert.True(t, r.Empty())
	assert.Equal(t, []int8{}, r.TilesOn())

	r.Add(9)
	assert.False(t, r.Empty())
	r.Take(9)
	assert.True(t, r.Empty())

	r.Fill()
	r.Clear()
	assert.True(t, r.Empty())
	assert.Equal(t, 0, r.NumTiles())
}
