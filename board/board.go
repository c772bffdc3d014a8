package board

import (
	"math/bits"

	"github.com/Zoidburgh/HEXPIXI/move"
	"github.com/Zoidburgh/HEXPIXI/zobrist"
)

// Player identifiers. Player 1 moves first in a fresh game.
const (
	Player1 = 1
	Player2 = 2
)

// Board is the complete game state: cell occupancy and values, both
// players' racks, the side to move, and the incrementally maintained
// position hash.
//
// Board holds no pointers or slices, so assigning one makes a deep copy.
// Search keeps a single Board and mutates it with strictly paired
// MakeMove/UnmakeMove calls; everything MakeMove touches, UnmakeMove
// restores.
type Board struct {
	occupied uint32
	values   [NumHexes]uint8
	racks    [2]Rack
	onTurn   int8
	hash     uint64
}

// New returns a board set up for a standard game.
func New() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset restores the standard start: only the center cell occupied,
// holding a value-1 tile, full racks for both players, player 1 to move.
// The starting tile comes from neither rack.
func (b *Board) Reset() {
	b.occupied = 1 << CenterHex
	b.values = [NumHexes]uint8{}
	b.values[CenterHex] = StartingTile
	b.racks[0].Fill()
	b.racks[1].Fill()
	b.onTurn = Player1
	b.recomputeHash()
}

func (b *Board) recomputeHash() {
	b.hash = zobrist.Full(b.occupied, &b.values, b.onTurn == Player2)
}

// Copy returns a detached copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// Hash returns the position hash. It covers every occupied cell's value
// and the side to move.
func (b *Board) Hash() uint64 {
	return b.hash
}

// SideToMove returns Player1 or Player2.
func (b *Board) SideToMove() int {
	return int(b.onTurn)
}

// OccupiedCount returns the number of cells holding a tile.
func (b *Board) OccupiedCount() int {
	return bits.OnesCount32(b.occupied)
}

// IsHexOccupied reports whether the cell holds a tile. Out-of-range ids
// report false.
func (b *Board) IsHexOccupied(hex int) bool {
	if hex < 0 || hex >= NumHexes {
		return false
	}
	return b.occupied&(1<<uint(hex)) != 0
}

// GetTileValue returns the value on a cell, or 0 when the cell is empty
// or out of range.
func (b *Board) GetTileValue(hex int) int {
	if hex < 0 || hex >= NumHexes {
		return 0
	}
	return int(b.values[hex])
}

// IsGameOver reports whether every cell is occupied. Occupancy, not move
// count: a restored position may start with any number of tiles placed.
func (b *Board) IsGameOver() bool {
	return b.occupied == FullBoardMask
}

// IsTileAvailable reports whether the player still holds a tile of the
// given value.
func (b *Board) IsTileAvailable(player, value int) bool {
	if player != Player1 && player != Player2 {
		return false
	}
	if value < 1 || value > MaxTileValue {
		return false
	}
	return b.racks[player-1].Has(int8(value))
}

// GetAvailableTiles returns the player's unplaced tiles in ascending
// order, with multiplicity.
func (b *Board) GetAvailableTiles(player int) []int8 {
	if player != Player1 && player != Player2 {
		return nil
	}
	return b.racks[player-1].TilesOn()
}

// IsMoveLegal reports whether a tile may be placed on the cell,
// regardless of which tile: the cell must be empty, adjacent to at least
// one occupied cell, and the placement must keep the longest chain on the
// board within one of the second longest.
func (b *Board) IsMoveLegal(hex int) bool {
	if hex < 0 || hex >= NumHexes {
		return false
	}
	if b.occupied&(1<<uint(hex)) != 0 {
		return false
	}
	if b.occupied&adjacentMask[hex] == 0 {
		return false
	}
	return b.chainConstraintAllows(hex)
}

// chainConstraintAllows runs the chain balance rule for a hypothetical
// placement. It walks the 15 precomputed scan lines against a local
// occupancy mask with the candidate bit set, tracking the longest and
// second-longest maximal runs and the longest run through the candidate.
// The placement is allowed iff the run through the candidate is at most
// one longer than the second-longest run anywhere.
//
// This is the hottest function in the engine. It mutates nothing and
// allocates nothing; tile values are irrelevant, only occupancy.
func (b *Board) chainConstraintAllows(hex int) bool {
	occ := b.occupied | 1<<uint(hex)
	target := int8(hex)

	maxLen := 0
	secondMax := 0
	longestThrough := 0

	for i := range chainLines {
		runLen := 0
		containsTarget := false
		for _, cell := range chainLines[i] {
			if occ&(1<<uint(cell)) != 0 {
				runLen++
				if cell == target {
					containsTarget = true
				}
				continue
			}
			if runLen > 0 {
				if runLen > maxLen {
					secondMax = maxLen
					maxLen = runLen
				} else if runLen > secondMax {
					secondMax = runLen
				}
				if containsTarget && runLen > longestThrough {
					longestThrough = runLen
				}
				runLen = 0
				containsTarget = false
			}
		}
		// Run extending to the end of the line.
		if runLen > 0 {
			if runLen > maxLen {
				secondMax = maxLen
				maxLen = runLen
			} else if runLen > secondMax {
				secondMax = runLen
			}
			if containsTarget && runLen > longestThrough {
				longestThrough = runLen
			}
		}
	}

	return longestThrough <= secondMax+1
}

// IsValidMove reports whether the side to move can play the move: the
// cell must be legal and the tile value still on the mover's rack.
func (b *Board) IsValidMove(m move.Move) bool {
	if m.IsNull() {
		return false
	}
	if !b.IsMoveLegal(int(m.Hex)) {
		return false
	}
	return b.racks[b.onTurn-1].Has(m.Tile)
}

// GetValidMoves enumerates every playable move for the side to move:
// each legal empty cell crossed with each distinct tile value remaining
// on the mover's rack. Cells ascend; values ascend within a cell.
func (b *Board) GetValidMoves() []move.Move {
	return b.AppendValidMoves(nil)
}

// AppendValidMoves appends the side to move's valid moves to dst and
// returns the extended slice. Search passes per-ply buffers here to
// enumerate without allocating.
func (b *Board) AppendValidMoves(dst []move.Move) []move.Move {
	rack := &b.racks[b.onTurn-1]

	// Distinct values only; duplicates on the rack would generate the
	// same move twice.
	var distinct [MaxTileValue]int8
	n := 0
	for v := int8(1); v <= MaxTileValue; v++ {
		if rack.counts[v] > 0 {
			distinct[n] = v
			n++
		}
	}
	if n == 0 {
		return dst
	}

	for hex := 0; hex < NumHexes; hex++ {
		if b.occupied&(1<<uint(hex)) != 0 {
			continue
		}
		if !b.IsMoveLegal(hex) {
			continue
		}
		for i := 0; i < n; i++ {
			dst = append(dst, move.Move{Hex: int8(hex), Tile: distinct[i]})
		}
	}
	return dst
}

// MakeMove places the tile, consumes it from the mover's rack, folds the
// placement and the side key into the hash, and flips the turn. The move
// must be valid; MakeMove does not check.
func (b *Board) MakeMove(m move.Move) {
	b.occupied |= 1 << uint(m.Hex)
	b.values[m.Hex] = uint8(m.Tile)
	b.racks[b.onTurn-1].Take(m.Tile)
	b.hash ^= zobrist.TileKey(int(m.Hex), int(m.Tile)) ^ zobrist.SideKey()
	b.onTurn = otherPlayer(b.onTurn)
}

// UnmakeMove reverses MakeMove, in reverse order: flip the turn back,
// revert the hash (XOR is self-inverse), return the tile to the rack,
// clear the cell.
func (b *Board) UnmakeMove(m move.Move) {
	b.onTurn = otherPlayer(b.onTurn)
	b.hash ^= zobrist.TileKey(int(m.Hex), int(m.Tile)) ^ zobrist.SideKey()
	b.racks[b.onTurn-1].Add(m.Tile)
	b.occupied &^= 1 << uint(m.Hex)
	b.values[m.Hex] = 0
}

func otherPlayer(p int8) int8 {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// GetScore returns the player's score: the sum, over the player's five
// scoring lanes, of the product of tile values on that lane's occupied
// cells. A lane with no occupied cells contributes 0, so an empty board
// scores 0 for both players.
func (b *Board) GetScore(player int) int {
	if player != Player1 && player != Player2 {
		return 0
	}
	total := 0
	for _, lane := range scoringLanes[player-1] {
		product := 1
		occupiedInLane := 0
		for _, cell := range lane {
			if b.occupied&(1<<uint(cell)) != 0 {
				product *= int(b.values[cell])
				occupiedInLane++
			}
		}
		if occupiedInLane > 0 {
			total += product
		}
	}
	return total
}

// ChainLengths returns the length of every maximal run of occupied cells
// across the 15 scan lines. Order is scan order; for diagnostics and
// tests only.
func (b *Board) ChainLengths() []int {
	var lengths []int
	for i := range chainLines {
		runLen := 0
		for _, cell := range chainLines[i] {
			if b.occupied&(1<<uint(cell)) != 0 {
				runLen++
				continue
			}
			if runLen > 0 {
				lengths = append(lengths, runLen)
				runLen = 0
			}
		}
		if runLen > 0 {
			lengths = append(lengths, runLen)
		}
	}
	return lengths
}

// Mirrored reports whether the position is symmetric across the center
// column. The anti-mirror placement rule this once served is permanently
// disabled; the check remains as a diagnostic.
func (b *Board) Mirrored() bool {
	for hex := range b.values {
		m := mirrorHexes[hex]
		if int(m) == hex {
			continue
		}
		if b.values[hex] != b.values[m] {
			return false
		}
	}
	return true
}

// SetHexValue places a tile on a cell directly, bypassing legality, rack
// accounting, and the turn. For setting up positions; recomputes the hash
// from scratch. Out-of-range ids are ignored.
func (b *Board) SetHexValue(hex, value int) {
	if hex < 0 || hex >= NumHexes {
		return
	}
	b.occupied |= 1 << uint(hex)
	b.values[hex] = uint8(value)
	b.recomputeHash()
}

// RemoveHexValue clears a cell directly, bypassing rack accounting and
// the turn. Recomputes the hash from scratch. Out-of-range ids are
// ignored.
func (b *Board) RemoveHexValue(hex int) {
	if hex < 0 || hex >= NumHexes {
		return
	}
	b.occupied &^= 1 << uint(hex)
	b.values[hex] = 0
	b.recomputeHash()
}

// SetAvailableTiles replaces a player's rack wholesale. Duplicates are
// kept; values outside 1..9 are dropped.
func (b *Board) SetAvailableTiles(player int, tiles []int8) {
	if player != Player1 && player != Player2 {
		return
	}
	b.racks[player-1].Set(tiles)
}

// SetSideToMove sets which player moves next and recomputes the hash.
// Values other than Player1 or Player2 are ignored.
func (b *Board) SetSideToMove(player int) {
	if player != Player1 && player != Player2 {
		return
	}
	b.onTurn = int8(player)
	b.recomputeHash()
}

// ClearBoard removes every tile, leaving racks and the turn alone.
// Recomputes the hash from scratch.
func (b *Board) ClearBoard() {
	b.occupied = 0
	b.values = [NumHexes]uint8{}
	b.recomputeHash()
}
