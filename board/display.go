package board

import (
	"fmt"
	"strings"
)

const cellSpacing = 4

// ToDisplayText returns a human-readable rendering of the board for the
// shell: the hex grid with tile values (dots for empty cells), then
// scores, racks, and the side to move.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for r := int8(0); r < numRows; r++ {
		line := []byte(strings.Repeat(" ", numCols*cellSpacing))
		for c := int8(0); c < numCols; c++ {
			id := hexAt(r, c)
			if id < 0 {
				continue
			}
			sym := byte('.')
			if b.occupied&(1<<uint(id)) != 0 {
				sym = '0' + b.values[id]
			}
			line[int(c)*cellSpacing] = sym
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "\nScores  P1: %d  P2: %d\n", b.GetScore(Player1), b.GetScore(Player2))
	fmt.Fprintf(&sb, "Tiles   P1: %s  P2: %s\n",
		formatTiles(b.racks[0].TilesOn()), formatTiles(b.racks[1].TilesOn()))
	fmt.Fprintf(&sb, "Player %d to move, %d/%d cells filled\n",
		b.onTurn, b.OccupiedCount(), NumHexes)
	return sb.String()
}

func formatTiles(tiles []int8) string {
	if len(tiles) == 0 {
		return "(none)"
	}
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = fmt.Sprintf("%d", t)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// CellIDGrid returns the static cell-id layout in the same shape as the
// board rendering, for move entry.
func CellIDGrid() string {
	var sb strings.Builder
	for r := int8(0); r < numRows; r++ {
		line := []byte(strings.Repeat(" ", numCols*(cellSpacing+1)))
		for c := int8(0); c < numCols; c++ {
			id := hexAt(r, c)
			if id < 0 {
				continue
			}
			copy(line[int(c)*(cellSpacing+1):], fmt.Sprintf("h%d", id))
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
