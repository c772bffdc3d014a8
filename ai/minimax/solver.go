// Package minimax implements the engine's search: iterative-deepening
// negamax with alpha-beta pruning, a transposition table, killer moves,
// and a history heuristic, all under a wall-clock budget. The search
// mutates the caller's board through strictly paired make/unmake calls
// and always hands it back in the state it received it.
package minimax

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Zoidburgh/HEXPIXI/board"
	"github.com/Zoidburgh/HEXPIXI/move"
)

const (
	// infinity sits outside any reachable evaluation.
	infinity = 1000000
	// decisiveScore marks evaluations that mean the game is settled;
	// deepening stops once a completed depth reports one. Lane products
	// never reach it today, so this is a guard for richer evaluations.
	decisiveScore = 900000
	// timeoutCheckInterval is how many nodes pass between clock checks.
	timeoutCheckInterval = 1000
)

// SearchConfig controls a single FindBestMove invocation.
type SearchConfig struct {
	// MaxDepth is the deepest ply searched. Values above MaxPly clamp.
	MaxDepth int
	// TimeLimit bounds wall-clock search time. Zero or negative means
	// unbounded.
	TimeLimit time.Duration
	// UseIterativeDeepening searches depth 1, 2, ... MaxDepth so a
	// timeout can fall back to the last completed depth.
	UseIterativeDeepening bool
	UseMoveOrdering       bool
	UseTranspositionTable bool
	// TTSizeMB is the transposition table budget in megabytes; 0
	// derives one from system memory.
	TTSizeMB int
	// Verbose logs a summary line after each completed depth.
	Verbose bool
}

// DefaultConfig returns the standard search settings: 20 plies, 30
// seconds, every optimization on.
func DefaultConfig() SearchConfig {
	return SearchConfig{
		MaxDepth:              20,
		TimeLimit:             30 * time.Second,
		UseIterativeDeepening: true,
		UseMoveOrdering:       true,
		UseTranspositionTable: true,
		TTSizeMB:              128,
	}
}

// SearchResult reports the outcome of a search.
type SearchResult struct {
	// BestMove is the strongest move found, or Null when the position
	// has no legal moves.
	BestMove move.Move
	// Score is from the mover's perspective; positive means the side to
	// move stands better.
	Score int
	// Depth is the deepest fully completed search depth.
	Depth int
	// Nodes counts positions visited in completed depths.
	Nodes uint64
	// Elapsed is total wall-clock search time.
	Elapsed time.Duration
	// Timeout reports that the budget expired mid-depth and the result
	// fell back to the last completed depth.
	Timeout  bool
	TTHits   uint64
	TTMisses uint64
}

type searcher struct {
	cfg SearchConfig
	b   *board.Board
	ctx context.Context

	tt      *TranspositionTable
	killers killerMoves
	history historyTable

	nodes      atomic.Uint64
	sinceCheck int

	start       time.Time
	deadline    time.Time
	hasDeadline bool
	aborted     bool

	moveBufs   [][]move.Move
	scoredBufs [][]scoredMove
}

// FindBestMove searches the position and returns the strongest move for
// the side to move within the configured depth and time budget. Cancel
// ctx to stop early; cancellation is handled exactly like an expired
// time limit. The board comes back in the state it went in.
func FindBestMove(ctx context.Context, b *board.Board, cfg SearchConfig) SearchResult {
	if cfg.MaxDepth < 1 {
		cfg.MaxDepth = 1
	}
	if cfg.MaxDepth > MaxPly {
		cfg.MaxDepth = MaxPly
	}

	s := &searcher{
		cfg:        cfg,
		b:          b,
		ctx:        ctx,
		start:      time.Now(),
		moveBufs:   make([][]move.Move, MaxPly+1),
		scoredBufs: make([][]scoredMove, MaxPly+1),
	}
	if cfg.TimeLimit > 0 {
		s.deadline = s.start.Add(cfg.TimeLimit)
		s.hasDeadline = true
	}
	if cfg.UseTranspositionTable {
		s.tt = NewTranspositionTable(cfg.TTSizeMB)
	}
	s.killers.clear()

	g := &errgroup.Group{}
	done := make(chan bool)

	g.Go(func() error {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		var lastNodes uint64
		for {
			select {
			case <-done:
				return nil
			case <-ticker.C:
				nodes := s.nodes.Load()
				log.Debug().Uint64("nps", nodes-lastNodes).Msg("nodes-per-second")
				lastNodes = nodes
			}
		}
	})

	var result SearchResult
	g.Go(func() error {
		result = s.search()
		done <- true
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("search-failed")
	}

	result.Elapsed = time.Since(s.start)
	if s.tt != nil {
		result.TTHits = s.tt.Hits()
		result.TTMisses = s.tt.Misses()
	}
	return result
}

func (s *searcher) search() SearchResult {
	rootMoves := s.b.GetValidMoves()

	if len(rootMoves) == 0 {
		// Nothing to play; report the static evaluation.
		return SearchResult{BestMove: move.Null, Score: int(s.evaluate())}
	}
	if len(rootMoves) == 1 {
		return s.searchForcedMove(rootMoves[0])
	}
	if s.cfg.UseIterativeDeepening {
		return s.iterativelyDeepen(rootMoves)
	}
	return s.searchFixedDepth(rootMoves)
}

// searchForcedMove handles a position with exactly one legal move: play
// it and search the reply so the reported score reflects full depth
// rather than a static peek at the surface.
func (s *searcher) searchForcedMove(only move.Move) SearchResult {
	var result SearchResult
	result.BestMove = only

	s.b.MakeMove(only)
	fallback := -s.evaluate()
	score := -s.alphaBeta(s.cfg.MaxDepth-1, -infinity, infinity, 0)
	s.b.UnmakeMove(only)

	if s.aborted {
		result.Timeout = true
		score = fallback
	}
	result.Score = int(score)
	result.Depth = s.cfg.MaxDepth
	result.Nodes = s.nodes.Load()
	return result
}

func (s *searcher) iterativelyDeepen(rootMoves []move.Move) SearchResult {
	var result SearchResult
	result.BestMove = rootMoves[0]
	result.Score = -infinity

	for depth := 1; depth <= s.cfg.MaxDepth; depth++ {
		depthStart := s.nodes.Load()

		alpha := int32(-infinity)
		beta := int32(infinity)
		currentBest := move.Null
		currentScore := int32(-infinity)

		// Reorder the root by what the previous pass learned.
		if depth > 1 && s.cfg.UseMoveOrdering {
			s.orderMoves(rootMoves, move.Null, 0)
		}

		depthTimedOut := false
		for _, m := range rootMoves {
			s.b.MakeMove(m)
			score := -s.alphaBeta(depth-1, -beta, -alpha, 1)
			s.b.UnmakeMove(m)

			// Clock first, score second: a value from a cut-short
			// subtree must not be trusted.
			if s.aborted || s.expired() {
				depthTimedOut = true
				break
			}

			if score > currentScore {
				currentScore = score
				currentBest = m
				if score > alpha {
					alpha = score
				}
			}
		}

		if depthTimedOut {
			result.Timeout = true
			break
		}

		result.BestMove = currentBest
		result.Score = int(currentScore)
		result.Depth = depth
		result.Nodes += s.nodes.Load() - depthStart

		lvl := zerolog.DebugLevel
		if s.cfg.Verbose {
			lvl = zerolog.InfoLevel
		}
		log.WithLevel(lvl).Int("depth", depth).
			Int("score", int(currentScore)).
			Str("move", currentBest.String()).
			Uint64("nodes", s.nodes.Load()-depthStart).
			Dur("elapsed", time.Since(s.start)).
			Msg("depth-complete")

		if currentScore > decisiveScore-100 || -currentScore > decisiveScore-100 {
			break
		}
	}
	return result
}

func (s *searcher) searchFixedDepth(rootMoves []move.Move) SearchResult {
	var result SearchResult

	alpha := int32(-infinity)
	beta := int32(infinity)
	bestScore := int32(-infinity)
	bestMove := rootMoves[0]

	if s.cfg.UseMoveOrdering {
		s.orderMoves(rootMoves, move.Null, 0)
	}

	for _, m := range rootMoves {
		s.b.MakeMove(m)
		score := -s.alphaBeta(s.cfg.MaxDepth-1, -beta, -alpha, 1)
		s.b.UnmakeMove(m)

		if s.aborted {
			result.Timeout = true
			break
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			if score > alpha {
				alpha = score
			}
		}
	}

	result.BestMove = bestMove
	result.Score = int(bestScore)
	result.Depth = s.cfg.MaxDepth
	result.Nodes = s.nodes.Load()
	return result
}

// alphaBeta is the negamax recursion. Scores are always from the
// perspective of the side to move at the node. A zero return with the
// aborted flag set carries no meaning; callers discard it.
func (s *searcher) alphaBeta(depth int, alpha, beta int32, ply int) int32 {
	s.nodes.Add(1)
	if s.sinceCheck++; s.sinceCheck >= timeoutCheckInterval {
		s.sinceCheck = 0
		if s.expired() {
			s.aborted = true
		}
	}
	if s.aborted {
		return 0
	}

	if depth == 0 || s.b.IsGameOver() {
		return s.evaluate()
	}

	hash := s.b.Hash()
	ttMove := move.Null

	if s.cfg.UseTranspositionTable {
		if entry, ok := s.tt.probe(hash); ok && int(entry.depth) >= depth {
			// Entries from shallower searches are ignored entirely:
			// even seeding move ordering from one skews deeper results.
			switch entry.flag {
			case TTExact:
				return entry.score
			case TTLower:
				if entry.score > alpha {
					alpha = entry.score
				}
			case TTUpper:
				if entry.score < beta {
					beta = entry.score
				}
			}
			if alpha >= beta {
				return entry.score
			}
			ttMove = entry.play
		}
	}

	moves := s.b.AppendValidMoves(s.moveBufs[ply][:0])
	s.moveBufs[ply] = moves
	if len(moves) == 0 {
		return s.evaluate()
	}

	if s.cfg.UseMoveOrdering {
		s.orderMoves(moves, ttMove, ply)
	}

	bestScore := int32(-infinity)
	bestMove := moves[0]
	flag := TTUpper

	for _, m := range moves {
		s.b.MakeMove(m)
		score := -s.alphaBeta(depth-1, -beta, -alpha, ply+1)
		s.b.UnmakeMove(m)
		if s.aborted {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			if score > alpha {
				alpha = score
				flag = TTExact
			}
		}
		if alpha >= beta {
			flag = TTLower
			s.killers.update(ply, bestMove)
			s.history.update(bestMove, depth)
			break
		}
	}

	if s.cfg.UseTranspositionTable {
		s.tt.store(hash, TableEntry{
			score: bestScore,
			play:  bestMove,
			flag:  flag,
			depth: uint8(depth),
		})
	}
	return bestScore
}

// evaluate scores the position for the side to move: own lane total
// minus the opponent's.
func (s *searcher) evaluate() int32 {
	p1 := s.b.GetScore(board.Player1)
	p2 := s.b.GetScore(board.Player2)
	if s.b.SideToMove() == board.Player1 {
		return int32(p1 - p2)
	}
	return int32(p2 - p1)
}

func (s *searcher) expired() bool {
	if s.ctx != nil && s.ctx.Err() != nil {
		return true
	}
	return s.hasDeadline && !time.Now().Before(s.deadline)
}
