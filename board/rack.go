package board

// Rack is a machine-friendly representation of a player's unplaced tiles:
// a per-value count array. Duplicate values are allowed (custom tile sets),
// so this is a multiset, not a set. Rack is a value type; assigning one
// copies it.
type Rack struct {
	// counts[v] is the number of unplaced tiles of value v. Index 0 is
	// unused (no zero-value tile).
	counts   [MaxTileValue + 1]uint8
	numTiles uint8
}

// Fill sets the rack to the standard starting pool: one tile of each
// value 1 through 9.
func (r *Rack) Fill() {
	r.Clear()
	for v := 1; v <= MaxTileValue; v++ {
		r.counts[v] = 1
	}
	r.numTiles = MaxTileValue
}

// Clear empties the rack.
func (r *Rack) Clear() {
	for i := range r.counts {
		r.counts[i] = 0
	}
	r.numTiles = 0
}

// Set replaces the rack's contents with the given values. Values outside
// 1..MaxTileValue are ignored; the caller validates user input.
func (r *Rack) Set(tiles []int8) {
	r.Clear()
	for _, t := range tiles {
		if t >= 1 && t <= MaxTileValue {
			r.counts[t]++
			r.numTiles++
		}
	}
}

// Has reports whether at least one tile of the given value remains.
func (r *Rack) Has(tile int8) bool {
	if tile < 1 || tile > MaxTileValue {
		return false
	}
	return r.counts[tile] > 0
}

// Take removes one tile of the given value. Taking a value that is not
// on the rack is a no-op.
func (r *Rack) Take(tile int8) {
	if !r.Has(tile) {
		return
	}
	r.counts[tile]--
	r.numTiles--
}

// Add returns one tile of the given value to the rack.
func (r *Rack) Add(tile int8) {
	if tile < 1 || tile > MaxTileValue {
		return
	}
	r.counts[tile]++
	r.numTiles++
}

// Count returns the number of unplaced tiles of the given value.
func (r *Rack) Count(tile int8) int {
	if tile < 1 || tile > MaxTileValue {
		return 0
	}
	return int(r.counts[tile])
}

// TilesOn returns the rack's current tiles in ascending order, with
// multiplicity.
func (r *Rack) TilesOn() []int8 {
	tiles := make([]int8, 0, r.numTiles)
	for v := int8(1); v <= MaxTileValue; v++ {
		for j := uint8(0); j < r.counts[v]; j++ {
			tiles = append(tiles, v)
		}
	}
	return tiles
}

// NumTiles returns the number of unplaced tiles.
func (r *Rack) NumTiles() int {
	return int(r.numTiles)
}

// Empty reports whether the rack has no tiles left.
func (r *Rack) Empty() bool {
	return r.numTiles == 0
}
