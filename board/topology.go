package board

// The 19 cells form a radius-2 hexagon laid out on a double-height grid of
// 9 rows by 5 columns. Rows step by 2 within a column, so all six hex
// neighbor directions are unit offsets in grid coordinates. Cell ids are
// assigned row-major over the grid positions that exist.

const (
	// NumHexes is the number of cells on the board.
	NumHexes = 19
	// CenterHex is the cell pre-filled at the start of a standard game.
	CenterHex = 9
	// MaxTileValue is the highest tile face value.
	MaxTileValue = 9
	// StartingTile is the value placed on the center cell by Reset.
	StartingTile = 1

	numRows = 9
	numCols = 5
)

// FullBoardMask has one bit set for every cell.
const FullBoardMask = (1 << NumHexes) - 1

type gridCoord struct {
	row, col int8
}

// hexPositions maps cell id to grid coordinate.
var hexPositions = [NumHexes]gridCoord{
	{0, 2},
	{1, 1}, {1, 3},
	{2, 0}, {2, 2}, {2, 4},
	{3, 1}, {3, 3},
	{4, 0}, {4, 2}, {4, 4},
	{5, 1}, {5, 3},
	{6, 0}, {6, 2}, {6, 4},
	{7, 1}, {7, 3},
	{8, 2},
}

// hexDirections are the six neighbor offsets in grid coordinates.
var hexDirections = [6]gridCoord{
	{-2, 0}, {2, 0}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// chainDirections are the three orientations straight runs are scanned in:
// vertical, down-right, down-left. Each orientation slices the board into
// 5 lines, giving the 15 scan lines used by the chain constraint.
var chainDirections = [3]gridCoord{
	{2, 0}, {1, 1}, {1, -1},
}

type chainStarter struct {
	startHex int8
	dir      gridCoord
}

var (
	rowColToHex   [numRows][numCols]int8
	adjacentHexes [NumHexes][]int8
	adjacentMask  [NumHexes]uint32

	// chainStarters are the 15 (start cell, direction) pairs; chainLines
	// holds each line's full cell sequence, precomputed so the constraint
	// walk never does coordinate arithmetic.
	chainStarters []chainStarter
	chainLines    [15][]int8

	// scoringLanes[p] are the five lanes whose products sum to player
	// p+1's score: the down-right lines for player 1, down-left for
	// player 2. Either set covers every cell exactly once.
	scoringLanes [2][][]int8

	// centerColumnHexes and mirrorHexes are bookkeeping left over from
	// the retired anti-symmetry rule. Nothing in legality or search reads
	// them; they feed the Mirrored diagnostic only.
	centerColumnHexes []int8
	mirrorHexes       [NumHexes]int8
)

func init() {
	for r := range rowColToHex {
		for c := range rowColToHex[r] {
			rowColToHex[r][c] = -1
		}
	}
	for id, pos := range hexPositions {
		rowColToHex[pos.row][pos.col] = int8(id)
	}

	for id, pos := range hexPositions {
		for _, d := range hexDirections {
			n := hexAt(pos.row+d.row, pos.col+d.col)
			if n >= 0 {
				adjacentHexes[id] = append(adjacentHexes[id], n)
				adjacentMask[id] |= 1 << uint(n)
			}
		}
	}

	lineIdx := 0
	for dirIdx, d := range chainDirections {
		var lines [][]int8
		for id, pos := range hexPositions {
			if hexAt(pos.row-d.row, pos.col-d.col) >= 0 {
				// Not the head of a line in this orientation.
				continue
			}
			line := []int8{int8(id)}
			r, c := pos.row+d.row, pos.col+d.col
			for {
				n := hexAt(r, c)
				if n < 0 {
					break
				}
				line = append(line, n)
				r += d.row
				c += d.col
			}
			chainStarters = append(chainStarters, chainStarter{int8(id), d})
			chainLines[lineIdx] = line
			lineIdx++
			lines = append(lines, line)
		}
		switch dirIdx {
		case 1:
			scoringLanes[0] = lines
		case 2:
			scoringLanes[1] = lines
		}
	}

	for id, pos := range hexPositions {
		if pos.col == numCols/2 {
			centerColumnHexes = append(centerColumnHexes, int8(id))
		}
		mirrorHexes[id] = hexAt(pos.row, numCols-1-pos.col)
	}
}

// hexAt returns the cell id at a grid coordinate, or -1 if none exists.
func hexAt(row, col int8) int8 {
	if row < 0 || row >= numRows || col < 0 || col >= numCols {
		return -1
	}
	return rowColToHex[row][col]
}

// AdjacentHexes returns the neighbors of a cell, or nil for an
// out-of-range id.
func AdjacentHexes(hex int) []int8 {
	if hex < 0 || hex >= NumHexes {
		return nil
	}
	out := make([]int8, len(adjacentHexes[hex]))
	copy(out, adjacentHexes[hex])
	return out
}
