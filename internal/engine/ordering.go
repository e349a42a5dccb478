package engine

import (
	"github.com/dkelso/chesscore/internal/board"
)

// Move ordering tiers, highest first: TT move, then MVV-LVA captures,
// then killers, then history for the rest.
const (
	ttMoveScore   = 10000000
	captureBase   = 1000000
	killerScore1  = 900000
	killerScore2  = 800000
	historyMax    = 1000000
)

// MoveOrderer holds the per-search ordering state: killer moves (two
// per ply) and the history heuristic (indexed by [side][from][to]).
type MoveOrderer struct {
	killers [MaxPly][2]board.Move
	history [2][64][64]int
}

// NewMoveOrderer creates an empty orderer.
func NewMoveOrderer() *MoveOrderer {
	return &MoveOrderer{}
}

// Clear resets killers and history for a new search.
func (mo *MoveOrderer) Clear() {
	for i := range mo.killers {
		mo.killers[i][0] = board.NoMove
		mo.killers[i][1] = board.NoMove
	}
	for c := range mo.history {
		for i := range mo.history[c] {
			for j := range mo.history[c][i] {
				mo.history[c][i][j] = 0
			}
		}
	}
}

// ScoreMoves assigns an ordering score to every move in the list.
func (mo *MoveOrderer) ScoreMoves(b *board.Board, moves *board.MoveList, ply int, ttMove board.Move) []int {
	scores := make([]int, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		scores[i] = mo.scoreMove(b, moves.Get(i), ply, ttMove)
	}
	return scores
}

// scoreMove implements the four-tier ordering formula: TT move highest,
// then MVV-LVA captures (victim value minus attacker value breaks ties
// among same-victim captures), then the two killer slots, then the
// non-negative history score for the rest.
func (mo *MoveOrderer) scoreMove(b *board.Board, m board.Move, ply int, ttMove board.Move) int {
	if m == ttMove {
		return ttMoveScore
	}

	if m.IsCapture() {
		attacker := b.PieceAt(m.From()).Type()
		var victim board.PieceType
		if m.IsEnPassant() {
			victim = board.Pawn
		} else {
			victim = b.PieceAt(m.To()).Type()
		}
		score := captureBase + board.PieceValue[victim] - board.PieceValue[attacker]

		// A capture that loses material on the exchange (SEE < 0) is no
		// better than a quiet move once the whole sequence plays out;
		// score it by its history value like a quiet move, below the
		// killer tier, instead of letting MVV-LVA rank it among the good
		// captures.
		if SEE(b, m) < 0 {
			score = mo.history[b.PieceAt(m.From()).Color()][m.From()][m.To()]
		}
		return score
	}

	if m == mo.killers[ply][0] {
		return killerScore1
	}
	if m == mo.killers[ply][1] {
		return killerScore2
	}

	us := b.PieceAt(m.From()).Color()
	return mo.history[us][m.From()][m.To()]
}

// PickMove selects the highest-scoring move among moves[i:] and swaps it
// into position i, alongside its score. Used by the search loop instead
// of a full up-front sort, since alpha-beta often cuts off before later
// moves are ever examined.
func PickMove(moves *board.MoveList, scores []int, i int) {
	n := moves.Len()
	best := i
	for j := i + 1; j < n; j++ {
		if scores[j] > scores[best] {
			best = j
		}
	}
	if best != i {
		moves.Swap(i, best)
		scores[i], scores[best] = scores[best], scores[i]
	}
}

// SortMoves performs a full selection sort by score, descending. A
// selection sort is worth it here: n is bounded by 256 and moves near
// the front (which dominate cutoff frequency) get placed first without
// waiting on a full sort to finish.
func SortMoves(moves *board.MoveList, scores []int) {
	n := moves.Len()
	for i := 0; i < n-1; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if scores[j] > scores[best] {
				best = j
			}
		}
		if best != i {
			moves.Swap(i, best)
			scores[i], scores[best] = scores[best], scores[i]
		}
	}
}

// UpdateKillers records a quiet move that caused a beta cutoff at ply,
// shifting the previous first killer into the second slot.
func (mo *MoveOrderer) UpdateKillers(m board.Move, ply int) {
	if ply >= MaxPly || mo.killers[ply][0] == m {
		return
	}
	mo.killers[ply][1] = mo.killers[ply][0]
	mo.killers[ply][0] = m
}

// UpdateHistory adds depth^2 to the history score for a quiet move that
// caused a cutoff, clamped to historyMax so it can never outweigh a
// killer bonus by an unbounded amount.
func (mo *MoveOrderer) UpdateHistory(us board.Color, m board.Move, depth int) {
	from, to := m.From(), m.To()
	mo.history[us][from][to] += depth * depth
	if mo.history[us][from][to] > historyMax {
		mo.history[us][from][to] = historyMax
	}
}
