// Package zobrist generates the position keys for hexuki boards.
// https://en.wikipedia.org/wiki/Zobrist_hashing
//
// One key per (cell, tile value) pair plus a single side-to-move key. A
// position's hash is the XOR of the keys of all placed tiles, XOR the side
// key iff player 2 is to move. Every move application XORs in exactly one
// tile key and the side key, so incremental updates are self-inverse and
// always agree with a from-scratch recomputation.
package zobrist

import (
	"lukechampine.com/frand"
)

const bignum = 1<<63 - 2

const (
	numCells      = 19
	numTileValues = 10 // 0 unused, 1..9 playable
)

var (
	tileKeys [numCells][numTileValues]uint64
	sideKey  uint64
)

func init() {
	for i := 0; i < numCells; i++ {
		for j := 0; j < numTileValues; j++ {
			tileKeys[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	sideKey = frand.Uint64n(bignum) + 1
}

// TileKey returns the key for tile value val sitting on cell hex. The
// caller guarantees 0 <= hex < 19 and 0 <= val <= 9.
func TileKey(hex, val int) uint64 {
	return tileKeys[hex][val]
}

// SideKey returns the side-to-move key. It is XORed into the hash once per
// move, and is present in a full hash exactly when player 2 is to move.
func SideKey() uint64 {
	return sideKey
}

// Full computes a position hash from scratch: occupied is the 19-bit
// occupancy mask, values the per-cell tile values, p2ToMove the side
// indicator.
func Full(occupied uint32, values *[numCells]uint8, p2ToMove bool) uint64 {
	key := uint64(0)
	for i := 0; i < numCells; i++ {
		if occupied&(1<<uint(i)) == 0 {
			continue
		}
		key ^= tileKeys[i][values[i]]
	}
	if p2ToMove {
		key ^= sideKey
	}
	return key
}
