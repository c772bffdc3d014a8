package minimax

import (
	"testing"

	"github.com/matryer/is"

	"github.com/Zoidburgh/HEXPIXI/move"
)

func newBareSearcher() *searcher {
	s := &searcher{
		moveBufs:   make([][]move.Move, MaxPly+1),
		scoredBufs: make([][]scoredMove, MaxPly+1),
	}
	s.killers.clear()
	return s
}

func TestKillerUpdateShifts(t *testing.T) {
	is := is.New(t)
	var k killerMoves
	k.clear()

	m1 := move.New(4, 5)
	m2 := move.New(6, 3)

	k.update(2, m1)
	is.True(k.isKiller(2, m1))
	is.True(!k.isKiller(3, m1)) // other plies unaffected

	k.update(2, m2)
	is.True(k.isKiller(2, m2))
	is.True(k.isKiller(2, m1)) // shifted to the second slot

	// Re-storing the current primary killer must not duplicate it into
	// both slots.
	k.update(2, m2)
	is.True(k.isKiller(2, m1))

	m3 := move.New(9, 1)
	k.update(2, m3)
	is.True(k.isKiller(2, m3))
	is.True(k.isKiller(2, m2))
	is.True(!k.isKiller(2, m1)) // pushed out
}

func TestKillerOutOfRangePly(t *testing.T) {
	is := is.New(t)
	var k killerMoves
	k.clear()
	m := move.New(4, 5)
	k.update(-1, m)
	k.update(MaxPly, m)
	is.True(!k.isKiller(-1, m))
	is.True(!k.isKiller(MaxPly, m))
}

func TestHistoryAccumulatesDepthSquared(t *testing.T) {
	is := is.New(t)
	var h historyTable
	m := move.New(12, 9)
	h.update(m, 3)
	h.update(m, 5)
	is.Equal(h.score(m), int32(9+25))
	is.Equal(h.score(move.New(12, 8)), int32(0))
}

func TestOrderMovesPriorities(t *testing.T) {
	is := is.New(t)
	s := newBareSearcher()

	ttMove := move.New(7, 2)
	killer := move.New(6, 9)
	s.killers.update(3, killer)

	moves := []move.Move{
		move.New(4, 1),  // plain: 100 + ring bonus 30
		move.New(0, 3),  // plain: 300 + edge bonus 20
		killer,          // killer slot
		ttMove,          // hash move
	}
	s.orderMoves(moves, ttMove, 3)

	is.True(moves[0].Equals(ttMove))
	is.True(moves[1].Equals(killer))
	is.True(moves[2].Equals(move.New(0, 3)))
	is.True(moves[3].Equals(move.New(4, 1)))
}

func TestOrderMovesHistoryOutranksBonuses(t *testing.T) {
	is := is.New(t)
	s := newBareSearcher()

	quiet := move.New(3, 1)  // no placement bonus, low tile
	strong := move.New(9, 9) // center bonus, highest tile
	s.history.update(quiet, 40) // 1600 points of history credit

	moves := []move.Move{strong, quiet}
	s.orderMoves(moves, move.Null, 0)
	is.True(moves[0].Equals(quiet))
}

func TestOrderMovesDeterministicTieBreak(t *testing.T) {
	is := is.New(t)
	s := newBareSearcher()

	// Same tile value, both on ring cells: identical scores. The tie
	// must break by cell id so ordering is reproducible.
	moves := []move.Move{move.New(6, 5), move.New(4, 5)}
	s.orderMoves(moves, move.Null, 0)
	is.True(moves[0].Equals(move.New(4, 5)))
	is.True(moves[1].Equals(move.New(6, 5)))
}
