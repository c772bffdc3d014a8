package board

// Canned positions for tests and the shell's `position` command. All are
// in LoadPosition format.
const (
	// StartPosition is the standard opening: center tile placed, full
	// racks, player 1 to move. Loading it is equivalent to Reset.
	StartPosition = "h9:1|p1:1,2,3,4,5,6,7,8,9|p2:1,2,3,4,5,6,7,8,9|turn:1"

	// MidgamePosition is the position after 1. h4:5 h6:3 2. h12:9 h7:7,
	// a legal opening line.
	MidgamePosition = "h4:5,h6:3,h7:7,h9:1,h12:9|p1:1,2,3,4,6,7,8|p2:1,2,4,5,6,8,9|turn:1"

	// SpinePosition has a vertical run of three through the center. Not
	// reachable by legal play (the chain rule forbids building it), but
	// it shows the rule binding: extending the spine at either end is
	// illegal until side chains catch up.
	SpinePosition = "h4:2,h9:1,h14:2|p1:1,3,4,5,6,7,8,9|p2:1,3,4,5,6,7,8,9|turn:1"

	// PuzzlePosition leaves the center empty with tiles beside it. Game
	// over is by occupancy, not move count, so a board set up this way
	// has a 19th placement available.
	PuzzlePosition = "h4:5,h6:3|p1:1,2,3,4,6,7,8,9|p2:1,2,4,5,6,7,8,9|turn:1"

	// EndgamePosition is a puzzle two moves from the end: only the top
	// and bottom cells are empty and each player holds one tile.
	EndgamePosition = "h1:2,h2:3,h3:4,h4:5,h5:6,h6:7,h7:8,h8:9,h9:1," +
		"h10:1,h11:2,h12:3,h13:4,h14:5,h15:6,h16:7,h17:8|p1:1|p2:9|turn:1"

	// BlankPosition has no tiles anywhere and empty racks. No move is
	// ever legal; useful for exercising the no-moves path.
	BlankPosition = "|p1:|p2:|turn:1"
)

// SamplePositions maps shell-friendly names to the canned positions.
var SamplePositions = map[string]string{
	"start":   StartPosition,
	"midgame": MidgamePosition,
	"spine":   SpinePosition,
	"puzzle":  PuzzlePosition,
	"endgame": EndgamePosition,
	"blank":   BlankPosition,
}
