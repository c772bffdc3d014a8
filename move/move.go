// Package move defines the hexuki move representation: a tile face value
// placed on one of the 19 board cells.
package move

import (
	"fmt"
	"strconv"
	"strings"
)

// Move is a single placement: tile value Tile played on cell Hex. It is a
// small value type; copy it freely.
type Move struct {
	Hex  int8
	Tile int8
}

// Null is the sentinel returned when a position has no legal plays.
var Null = Move{Hex: -1, Tile: 0}

// New creates a move from plain ints.
func New(hex, tile int) Move {
	return Move{Hex: int8(hex), Tile: int8(tile)}
}

// IsNull reports whether this is the "no move" sentinel.
func (m Move) IsNull() bool {
	return m.Hex < 0
}

// Equals is structural equality.
func (m Move) Equals(o Move) bool {
	return m.Hex == o.Hex && m.Tile == o.Tile
}

// String renders the move in game notation, e.g. h9:5. The null move
// renders as "(none)".
func (m Move) String() string {
	if m.IsNull() {
		return "(none)"
	}
	return fmt.Sprintf("h%d:%d", m.Hex, m.Tile)
}

// Parse reads game notation (h<cell>:<value>) back into a Move. It only
// validates shape and numeric ranges, not legality on any particular board.
func Parse(s string) (Move, error) {
	s = strings.TrimSpace(s)
	rest, ok := strings.CutPrefix(s, "h")
	if !ok {
		return Null, fmt.Errorf("move %q does not start with 'h'", s)
	}
	hexStr, tileStr, ok := strings.Cut(rest, ":")
	if !ok {
		return Null, fmt.Errorf("move %q is missing the ':' separator", s)
	}
	hex, err := strconv.Atoi(hexStr)
	if err != nil {
		return Null, fmt.Errorf("bad cell in move %q: %w", s, err)
	}
	tile, err := strconv.Atoi(tileStr)
	if err != nil {
		return Null, fmt.Errorf("bad tile in move %q: %w", s, err)
	}
	if hex < 0 || hex > 18 {
		return Null, fmt.Errorf("cell %d out of range in move %q", hex, s)
	}
	if tile < 1 || tile > 9 {
		return Null, fmt.Errorf("tile %d out of range in move %q", tile, s)
	}
	return New(hex, tile), nil
}
