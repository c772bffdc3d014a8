package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/Zoidburgh/HEXPIXI/ai/minimax"
	"github.com/Zoidburgh/HEXPIXI/board"
	"github.com/Zoidburgh/HEXPIXI/config"
	"github.com/Zoidburgh/HEXPIXI/move"
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) show() (*Response, error) {
	return msg(sc.b.ToDisplayText()), nil
}

func (sc *ShellController) ids() (*Response, error) {
	return msg(board.CellIDGrid()), nil
}

func (sc *ShellController) genMoves() (*Response, error) {
	moves := sc.b.GetValidMoves()
	if len(moves) == 0 {
		return msg("no valid moves"), nil
	}
	notated := lo.Map(moves, func(m move.Move, _ int) string {
		return m.String()
	})
	rows := lo.Map(lo.Chunk(notated, 9), func(row []string, _ int) string {
		return strings.Join(row, " ")
	})
	return msg(fmt.Sprintf("%d valid moves:\n%s", len(moves), strings.Join(rows, "\n"))), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("play needs one move in h<cell>:<value> notation, e.g. `play h4:5`")
	}
	m, err := move.Parse(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if !sc.b.IsValidMove(m) {
		return nil, fmt.Errorf("move %s is not valid in this position", m)
	}
	sc.b.MakeMove(m)
	sc.history = append(sc.history, m)
	return msg(sc.b.ToDisplayText()), nil
}

func (sc *ShellController) undo() (*Response, error) {
	if len(sc.history) == 0 {
		return nil, errors.New("nothing to undo")
	}
	last := sc.history[len(sc.history)-1]
	sc.b.UnmakeMove(last)
	sc.history = sc.history[:len(sc.history)-1]
	return msg(fmt.Sprintf("took back %s\n%s", last, sc.b.ToDisplayText())), nil
}

// searchConfig builds the engine configuration from the current settings.
func (sc *ShellController) searchConfig() minimax.SearchConfig {
	searchCfg := minimax.DefaultConfig()
	searchCfg.MaxDepth = sc.cfg.GetInt(config.ConfigMaxDepth)
	searchCfg.TimeLimit = time.Duration(sc.cfg.GetInt(config.ConfigTimeLimitMs)) * time.Millisecond
	searchCfg.TTSizeMB = sc.cfg.GetInt(config.ConfigTTSizeMB)
	searchCfg.Verbose = sc.cfg.GetBool(config.ConfigVerbose)
	return searchCfg
}

func (sc *ShellController) solve(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 2 {
		return nil, errors.New("solve takes at most a depth and a time limit in ms")
	}
	searchCfg := sc.searchConfig()
	if len(cmd.args) > 0 {
		d, err := strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, fmt.Errorf("bad depth %q: %w", cmd.args[0], err)
		}
		searchCfg.MaxDepth = d
	}
	if len(cmd.args) > 1 {
		ms, err := strconv.Atoi(cmd.args[1])
		if err != nil {
			return nil, fmt.Errorf("bad time limit %q: %w", cmd.args[1], err)
		}
		searchCfg.TimeLimit = time.Duration(ms) * time.Millisecond
	}

	// The search gets its own copy; the displayed board cannot drift even
	// if a search is interrupted.
	result := minimax.FindBestMove(context.Background(), sc.b.Copy(), searchCfg)
	return msg(formatSearchResult(result)), nil
}

func formatSearchResult(r minimax.SearchResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "best move %s, score %d (depth %d)\n", r.BestMove, r.Score, r.Depth)
	nps := float64(0)
	if r.Elapsed > 0 {
		nps = float64(r.Nodes) / r.Elapsed.Seconds()
	}
	fmt.Fprintf(&sb, "%d nodes in %v (%.0f nps)\n", r.Nodes, r.Elapsed.Round(time.Millisecond), nps)
	fmt.Fprintf(&sb, "tt hits/misses: %d/%d", r.TTHits, r.TTMisses)
	if r.Timeout {
		sb.WriteString("\n(search hit the time budget; best completed depth shown)")
	}
	return sb.String()
}

// autoplay has the engine play both sides until the game ends. Options:
// -depth and -time override the configured search settings per move,
// -file appends each move and resulting position to a game log.
func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	searchCfg := sc.searchConfig()
	searchCfg.Verbose = false

	depth, err := cmd.options.IntDefault("depth", searchCfg.MaxDepth)
	if err != nil {
		return nil, err
	}
	searchCfg.MaxDepth = depth
	ms, err := cmd.options.IntDefault("time", int(searchCfg.TimeLimit/time.Millisecond))
	if err != nil {
		return nil, err
	}
	searchCfg.TimeLimit = time.Duration(ms) * time.Millisecond

	var gameLog *os.File
	if logPath := cmd.options.String("file"); logPath != "" {
		gameLog, err = os.Create(logPath)
		if err != nil {
			return nil, err
		}
		defer gameLog.Close()
	}

	for !sc.b.IsGameOver() {
		result := minimax.FindBestMove(context.Background(), sc.b.Copy(), searchCfg)
		if result.BestMove.IsNull() {
			// board not full but the mover is out of tiles or blocked
			sc.showMessage("no more valid moves")
			break
		}
		player := sc.b.SideToMove()
		sc.b.MakeMove(result.BestMove)
		sc.history = append(sc.history, result.BestMove)
		sc.showMessage(fmt.Sprintf("player %d plays %s (score %d, depth %d)",
			player, result.BestMove, result.Score, result.Depth))
		if gameLog != nil {
			fmt.Fprintf(gameLog, "%s %s\n", result.BestMove, sc.b.SavePosition())
		}
	}
	return msg(sc.b.ToDisplayText()), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("load needs one position string; quote it if it contains spaces")
	}
	if err := sc.b.LoadPosition(cmd.args[0]); err != nil {
		return nil, err
	}
	sc.history = sc.history[:0]
	return msg(sc.b.ToDisplayText()), nil
}

func (sc *ShellController) save() (*Response, error) {
	return msg(sc.b.SavePosition()), nil
}

func (sc *ShellController) position(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		names := lo.Keys(board.SamplePositions)
		sort.Strings(names)
		return msg("sample positions: " + strings.Join(names, " ")), nil
	}
	pos, ok := board.SamplePositions[cmd.args[0]]
	if !ok {
		return nil, fmt.Errorf("no sample position named %q", cmd.args[0])
	}
	if err := sc.b.LoadPosition(pos); err != nil {
		return nil, err
	}
	sc.history = sc.history[:0]
	return msg(sc.b.ToDisplayText()), nil
}

func (sc *ShellController) score() (*Response, error) {
	return msg(fmt.Sprintf("P1: %d  P2: %d",
		sc.b.GetScore(board.Player1), sc.b.GetScore(board.Player2))), nil
}

func (sc *ShellController) tiles() (*Response, error) {
	format := func(tiles []int8) string {
		if len(tiles) == 0 {
			return "(none)"
		}
		return strings.Join(lo.Map(tiles, func(t int8, _ int) string {
			return strconv.Itoa(int(t))
		}), " ")
	}
	return msg(fmt.Sprintf("P1: %s\nP2: %s",
		format(sc.b.GetAvailableTiles(board.Player1)),
		format(sc.b.GetAvailableTiles(board.Player2)))), nil
}

func (sc *ShellController) reset() (*Response, error) {
	sc.b.Reset()
	sc.history = sc.history[:0]
	return msg(sc.b.ToDisplayText()), nil
}

func (sc *ShellController) configCmd(cmd *shellcmd) (*Response, error) {
	switch len(cmd.args) {
	case 0:
		settings := sc.cfg.Settings()
		keys := lo.Keys(settings)
		sort.Strings(keys)
		lines := lo.Map(keys, func(k string, _ int) string {
			return fmt.Sprintf("%-14s %v", k, settings[k])
		})
		return msg(strings.Join(lines, "\n")), nil
	case 2:
		if err := sc.cfg.Set(cmd.args[0], cmd.args[1]); err != nil {
			return nil, err
		}
		return msg(cmd.args[0] + " = " + cmd.args[1]), nil
	}
	return nil, errors.New("usage: config, or config <setting> <value>")
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return usage()
	}
	return usageTopic(cmd.args[0])
}
