package minimax

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/Zoidburgh/HEXPIXI/board"
	"github.com/Zoidburgh/HEXPIXI/move"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

// testConfig returns a small, unbounded-time configuration so results
// are reproducible on any machine.
func testConfig(depth int) SearchConfig {
	cfg := DefaultConfig()
	cfg.MaxDepth = depth
	cfg.TimeLimit = 0
	cfg.TTSizeMB = 1
	return cfg
}

func TestSearchLeavesBoardUntouched(t *testing.T) {
	is := is.New(t)
	b := board.New()
	saved := b.SavePosition()
	hash := b.Hash()

	result := FindBestMove(context.Background(), b, testConfig(4))
	is.True(!result.BestMove.IsNull())
	is.Equal(b.SavePosition(), saved)
	is.Equal(b.Hash(), hash)
}

func TestSearchDeterministic(t *testing.T) {
	is := is.New(t)

	run := func() SearchResult {
		b := board.New()
		is.NoErr(b.LoadPosition(board.MidgamePosition))
		return FindBestMove(context.Background(), b, testConfig(4))
	}
	first := run()
	second := run()

	is.Equal(first.BestMove, second.BestMove)
	is.Equal(first.Score, second.Score)
	is.Equal(first.Depth, second.Depth)
	is.Equal(first.Nodes, second.Nodes)
}

func TestSearchReportsProgress(t *testing.T) {
	is := is.New(t)
	b := board.New()
	result := FindBestMove(context.Background(), b, testConfig(4))

	is.Equal(result.Depth, 4)
	is.True(result.Nodes > 0)
	is.True(result.Elapsed > 0)
	is.True(!result.Timeout)
	is.True(b.IsValidMove(result.BestMove))
	// Transpositions are everywhere in this game (move order rarely
	// matters to the final arrangement), so a depth-4 search must see
	// table hits.
	is.True(result.TTHits > 0)
}

func TestEndgameExactValue(t *testing.T) {
	is := is.New(t)
	b := board.New()
	is.NoErr(b.LoadPosition(board.EndgamePosition))

	// Two cells left: h0 and h18, player 1 holding a 1 and player 2 a
	// 9. Placing the 1 on h18 keeps player 2's 9 off the long bottom
	// lanes; the final margin is -60 instead of -300.
	result := FindBestMove(context.Background(), b, testConfig(5))
	is.Equal(result.BestMove, move.New(18, 1))
	is.Equal(result.Score, -60)

	// The game tree is only two plies deep, so any depth that covers it
	// yields the same value.
	shallow := FindBestMove(context.Background(), b, testConfig(2))
	is.Equal(shallow.Score, -60)
	is.Equal(shallow.BestMove, move.New(18, 1))
}

func TestForcedMoveSearchedDeep(t *testing.T) {
	is := is.New(t)
	b := board.New()
	is.NoErr(b.LoadPosition(board.EndgamePosition))
	b.MakeMove(move.New(0, 1))

	// Player 2 has one cell and one tile left.
	result := FindBestMove(context.Background(), b, testConfig(6))
	is.Equal(result.BestMove, move.New(18, 9))
	is.Equal(result.Score, 300)
	is.Equal(result.Depth, 6) // reported at the configured depth
	is.True(result.Nodes > 0)
}

func TestNoMovesReturnsStaticEval(t *testing.T) {
	is := is.New(t)
	b := board.New()
	is.NoErr(b.LoadPosition(board.BlankPosition))

	result := FindBestMove(context.Background(), b, testConfig(5))
	is.True(result.BestMove.IsNull())
	is.Equal(result.Score, 0)
	is.Equal(result.Depth, 0)
	is.Equal(result.Nodes, uint64(0))
}

func TestTimeoutFallsBackToCompletedDepth(t *testing.T) {
	is := is.New(t)
	b := board.New()

	cfg := DefaultConfig()
	cfg.MaxDepth = 20
	cfg.TimeLimit = 30 * time.Millisecond
	cfg.TTSizeMB = 1

	result := FindBestMove(context.Background(), b, cfg)
	is.True(result.Timeout)
	is.True(result.Depth >= 1)
	is.True(result.Depth < 20)
	is.True(!result.BestMove.IsNull())
	is.True(b.IsValidMove(result.BestMove))
}

func TestContextCancelStopsSearch(t *testing.T) {
	is := is.New(t)
	b := board.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := testConfig(20)
	start := time.Now()
	result := FindBestMove(ctx, b, cfg)
	is.True(result.Timeout)
	is.Equal(result.Depth, 0)
	is.True(time.Since(start) < 5*time.Second)
}

func TestOptimizationsDoNotChangeTheScore(t *testing.T) {
	is := is.New(t)

	run := func(ordering, tt bool) SearchResult {
		b := board.New()
		is.NoErr(b.LoadPosition(board.MidgamePosition))
		cfg := testConfig(3)
		cfg.UseMoveOrdering = ordering
		cfg.UseTranspositionTable = tt
		return FindBestMove(context.Background(), b, cfg)
	}

	full := run(true, true)
	noOrdering := run(false, true)
	noTable := run(true, false)
	bare := run(false, false)

	is.Equal(full.Score, noOrdering.Score)
	is.Equal(full.Score, noTable.Score)
	is.Equal(full.Score, bare.Score)
}

func TestFixedDepthMatchesIterative(t *testing.T) {
	is := is.New(t)

	b1 := board.New()
	is.NoErr(b1.LoadPosition(board.MidgamePosition))
	iter := FindBestMove(context.Background(), b1, testConfig(3))

	b2 := board.New()
	is.NoErr(b2.LoadPosition(board.MidgamePosition))
	cfg := testConfig(3)
	cfg.UseIterativeDeepening = false
	fixed := FindBestMove(context.Background(), b2, cfg)

	is.Equal(iter.Score, fixed.Score)
	is.Equal(fixed.Depth, 3)
}

func BenchmarkSearchMidgameDepth4(bench *testing.B) {
	pos := board.New()
	if err := pos.LoadPosition(board.MidgamePosition); err != nil {
		bench.Fatal(err)
	}
	cfg := testConfig(4)
	bench.ResetTimer()
	for i := 0; i < bench.N; i++ {
		FindBestMove(context.Background(), pos, cfg)
	}
}
