package shell

import "fmt"

const usageText = `hexpixi shell commands:

  show (s)              display the board, scores, tiles, side to move
  ids                   display the cell numbering used in move notation
  moves (gen)           list every valid move in this position
  play h<cell>:<value>  make a move, e.g. play h4:5
  undo                  take back the last played move
  solve [depth [ms]]    search for the best move; defaults from config
  autoplay [options]    let the engine finish the game against itself
  load <position>       restore a position from its string form
  save                  print the current position string
  position [name]       load a named sample position, or list the names
  score                 print both players' lane scores
  tiles                 print both players' remaining tiles
  reset                 back to the standard starting position
  config [key value]    show settings, or change one
  help [command]        this text, or details on one command
  exit (bye)            leave the shell

Use help <command> for details, and help rules for how the game works.`

var helpTopics = map[string]string{
	"play": `play h<cell>:<value>

Places one of your remaining tiles. The cell must be empty, touch an
occupied cell, and respect the chain rule (see help rules). The tile
value must still be in your pool. Use ids to see the cell numbers.`,

	"solve": `solve [maxdepth [timelimit-ms]]

Runs the engine on the current position and prints the best move, its
score from the mover's point of view, and search statistics. With no
arguments the configured max-depth and time-limit-ms apply. The board
is not changed; follow up with play if you want the move made.`,

	"autoplay": `autoplay [-depth n] [-time ms] [-file path]

The engine plays both sides until the board is full (or a side runs out
of tiles), printing each move. -depth and -time override the configured
search settings for every move; -file writes each move and the position
after it to the given file.`,

	"load": `load <position-string>

Restores a position from the save format:

  h<cell>:<value>,...|p1:<tiles>|p2:<tiles>|turn:<1|2>

Omitted tile sections default to the full 1-9 pool, omitted turn to
player 1. Quote the string if it contains spaces. A bad string leaves
the current position untouched.`,

	"save": `save

Prints the current position in load format: occupied cells, both tile
pools in ascending order, and the side to move.`,

	"position": `position [name]

Loads one of the built-in sample positions; with no name, lists them.`,

	"config": `config [setting value]

With no arguments, shows every setting. With a setting name and value,
changes it for this session: config max-depth 8. Search-related
settings apply the next time solve or autoplay runs.`,

	"rules": `Two players alternate placing tiles on the 19-cell board. A move must
go on an empty cell next to an occupied one, and may not grow a chain
two ahead of the rest: after the move, the longest straight run of
occupied cells through the new tile may be at most one longer than the
longest run elsewhere. Player 1 scores the product of tile values along
each down-right diagonal, player 2 along each down-left diagonal; lane
products are summed and the higher total wins when the board fills.`,
}

func usage() (*Response, error) {
	return msg(usageText), nil
}

func usageTopic(topic string) (*Response, error) {
	text, ok := helpTopics[topic]
	if !ok {
		return nil, fmt.Errorf("there is no help text for the topic %q", topic)
	}
	return msg(text), nil
}
