package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// LoadPosition replaces the board state with the position encoded in s:
//
//	h<cell>:<value>,...|p1:<v>,<v>,...|p2:<v>,...|turn:<1|2>
//
// Sections may appear in any order. An omitted p1/p2 section means a full
// default rack; an omitted turn section means player 1. Unknown sections
// and fragmentary hex pairs are skipped; numbers that are present but
// unparseable, and values outside their domain, are errors. On error the
// board is left untouched.
func (b *Board) LoadPosition(s string) error {
	var nb Board
	nb.racks[0].Fill()
	nb.racks[1].Fill()
	nb.onTurn = Player1

	for _, section := range strings.Split(strings.TrimSpace(s), "|") {
		switch {
		case section == "":
			continue
		case strings.HasPrefix(section, "p1:"):
			tiles, err := parseTileList(section[3:])
			if err != nil {
				return fmt.Errorf("p1 tiles: %w", err)
			}
			nb.racks[0].Set(tiles)
		case strings.HasPrefix(section, "p2:"):
			tiles, err := parseTileList(section[3:])
			if err != nil {
				return fmt.Errorf("p2 tiles: %w", err)
			}
			nb.racks[1].Set(tiles)
		case strings.HasPrefix(section, "turn:"):
			t, err := strconv.Atoi(section[5:])
			if err != nil {
				return fmt.Errorf("turn: %w", err)
			}
			if t != Player1 && t != Player2 {
				return fmt.Errorf("turn must be 1 or 2, got %d", t)
			}
			nb.onTurn = int8(t)
		case section[0] == 'h':
			if err := parseHexSection(&nb, section); err != nil {
				return err
			}
		default:
			log.Debug().Str("section", section).Msg("skipping unknown position section")
		}
	}

	nb.recomputeHash()
	*b = nb
	return nil
}

func parseHexSection(nb *Board, section string) error {
	for _, pair := range strings.Split(section, ",") {
		if len(pair) < 4 {
			continue
		}
		colon := strings.IndexByte(pair, ':')
		if colon < 0 {
			continue
		}
		cell, err := strconv.Atoi(pair[1:colon])
		if err != nil {
			return fmt.Errorf("cell id in %q: %w", pair, err)
		}
		if cell < 0 || cell >= NumHexes {
			return fmt.Errorf("cell id %d out of range", cell)
		}
		val, err := strconv.Atoi(pair[colon+1:])
		if err != nil {
			return fmt.Errorf("tile value in %q: %w", pair, err)
		}
		if val < 1 || val > MaxTileValue {
			return fmt.Errorf("tile value %d out of range", val)
		}
		nb.occupied |= 1 << uint(cell)
		nb.values[cell] = uint8(val)
	}
	return nil
}

func parseTileList(s string) ([]int8, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	tiles := make([]int8, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("tile %q: %w", p, err)
		}
		if v < 1 || v > MaxTileValue {
			return nil, fmt.Errorf("tile value %d out of range", v)
		}
		tiles = append(tiles, int8(v))
	}
	return tiles, nil
}

// SavePosition encodes the board in the LoadPosition format. All four
// sections are always emitted, in the order h|p1|p2|turn; occupied cells
// ascend by id and rack values ascend, so equal states serialize
// identically.
func (b *Board) SavePosition() string {
	var sb strings.Builder
	first := true
	for hex := 0; hex < NumHexes; hex++ {
		if b.occupied&(1<<uint(hex)) == 0 {
			continue
		}
		if !first {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "h%d:%d", hex, b.values[hex])
		first = false
	}

	sb.WriteString("|p1:")
	writeTileList(&sb, b.racks[0].TilesOn())
	sb.WriteString("|p2:")
	writeTileList(&sb, b.racks[1].TilesOn())
	fmt.Fprintf(&sb, "|turn:%d", b.onTurn)
	return sb.String()
}

func writeTileList(sb *strings.Builder, tiles []int8) {
	for i, t := range tiles {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(t)))
	}
}
