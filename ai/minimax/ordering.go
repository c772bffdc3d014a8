package minimax

import (
	"sort"

	"github.com/Zoidburgh/HEXPIXI/board"
	"github.com/Zoidburgh/HEXPIXI/move"
)

// MaxPly caps per-ply bookkeeping (killer slots, reusable move buffers).
// A game holds at most 19 placements, so 50 leaves slack for any
// configuration.
const MaxPly = 50

const (
	hashMoveScore   = 10000000
	killerBaseScore = 1000000
)

// killerMoves holds up to two moves per ply that recently caused beta
// cutoffs there. Trying them early at sibling nodes is cheap and prunes
// well because siblings tend to share refutations.
type killerMoves struct {
	killer1 [MaxPly]move.Move
	killer2 [MaxPly]move.Move
}

func (k *killerMoves) clear() {
	for i := range k.killer1 {
		k.killer1[i] = move.Null
		k.killer2[i] = move.Null
	}
}

func (k *killerMoves) update(ply int, m move.Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if !m.Equals(k.killer1[ply]) {
		k.killer2[ply] = k.killer1[ply]
		k.killer1[ply] = m
	}
}

func (k *killerMoves) isKiller(ply int, m move.Move) bool {
	if ply < 0 || ply >= MaxPly {
		return false
	}
	return m.Equals(k.killer1[ply]) || m.Equals(k.killer2[ply])
}

// historyTable accumulates depth-squared credit for (cell, value) pairs
// that caused cutoffs anywhere in the tree. It persists across deepening
// passes within one search.
type historyTable struct {
	scores [board.NumHexes][board.MaxTileValue + 1]int32
}

func (h *historyTable) update(m move.Move, depth int) {
	h.scores[m.Hex][m.Tile] += int32(depth * depth)
}

func (h *historyTable) score(m move.Move) int32 {
	return h.scores[m.Hex][m.Tile]
}

type scoredMove struct {
	m     move.Move
	score int32
}

// orderMoves sorts moves in place, most promising first: the hash move,
// then killers at this ply, then history credit plus static placement
// bonuses. Ties break by cell then value, making the order a total order
// so repeated searches of one position are identical.
func (s *searcher) orderMoves(moves []move.Move, ttMove move.Move, ply int) {
	scored := s.scoredBufs[ply][:0]
	for _, m := range moves {
		scored = append(scored, scoredMove{m: m, score: s.moveScore(m, ttMove, ply)})
	}
	s.scoredBufs[ply] = scored

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		if scored[i].m.Hex != scored[j].m.Hex {
			return scored[i].m.Hex < scored[j].m.Hex
		}
		return scored[i].m.Tile < scored[j].m.Tile
	})

	for i := range scored {
		moves[i] = scored[i].m
	}
}

func (s *searcher) moveScore(m move.Move, ttMove move.Move, ply int) int32 {
	if !ttMove.IsNull() && m.Equals(ttMove) {
		return hashMoveScore
	}
	if s.killers.isKiller(ply, m) {
		return killerBaseScore + int32(m.Tile)*10
	}

	score := s.history.score(m) + int32(m.Tile)*100
	switch m.Hex {
	case 9:
		score += 50 // center, when a puzzle leaves it open
	case 4, 6, 7, 11, 12:
		score += 30 // ring around the center
	case 0, 2, 16, 18:
		score += 20 // edge cells that seed several lanes
	}
	return score
}
