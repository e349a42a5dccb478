package engine

import (
	"github.com/dkelso/chesscore/internal/board"
)

// Search-wide constants.
const (
	Infinity  = 30000
	MateScore = 29000
	MaxPly    = 128

	nullMoveReduction = 3   // fixed R for null-move pruning
	deltaMargin       = 900 // quiescence delta-pruning margin, in centipawns
)

// PVTable stores the principal variation discovered at each ply,
// triangular-array style: pv.moves[ply] is valid from index ply through
// length[ply]-1.
type PVTable struct {
	length [MaxPly]int
	moves  [MaxPly][MaxPly]board.Move
}

func (pv *PVTable) reset(ply int) {
	pv.length[ply] = ply
}

func (pv *PVTable) update(ply int, m board.Move) {
	pv.moves[ply][ply] = m
	for i := ply + 1; i < pv.length[ply+1]; i++ {
		pv.moves[ply][i] = pv.moves[ply+1][i]
	}
	pv.length[ply] = pv.length[ply+1]
	if pv.length[ply] <= ply {
		pv.length[ply] = ply + 1
	}
}

// Line returns the principal variation found by the last completed search.
func (pv *PVTable) Line() []board.Move {
	return pv.moves[0][:pv.length[0]]
}

// Searcher runs iterative-deepening negamax with alpha-beta pruning, a
// transposition table, null-move pruning, PVS, LMR, and quiescence
// search. It is not safe for concurrent use — the core searches on a
// single goroutine (see the module's concurrency model).
type Searcher struct {
	tt      *TranspositionTable
	orderer *MoveOrderer
	pv      PVTable
	nodes   uint64
	stopped bool

	// noise is the leaf evaluation noise for the search currently in
	// progress, set once per SearchAtDepth/Search call and read by every
	// eval call underneath it (negamax's leaf return, quiescence's
	// stand-pat and horizon cutoff).
	noise int

	// pathHashes holds the Zobrist keys of every position from the start
	// of the game up through the current search node, used to detect
	// repetition. Positions from before this search began are supplied
	// via SetRootHistory; positions made during the search are pushed
	// and popped alongside board.Make/Undo.
	pathHashes []uint64
}

// NewSearcher creates a searcher backed by the given transposition table.
func NewSearcher(tt *TranspositionTable) *Searcher {
	return &Searcher{
		tt:      tt,
		orderer: NewMoveOrderer(),
	}
}

// Reset clears move-ordering state (killers, history) ahead of a new game.
func (s *Searcher) Reset() {
	s.orderer.Clear()
	s.stopped = false
}

// Stop requests that any in-progress search return as soon as possible.
func (s *Searcher) Stop() {
	s.stopped = true
}

// IsStopped reports whether Stop has been called since the last Reset.
func (s *Searcher) IsStopped() bool {
	return s.stopped
}

// Nodes returns the number of nodes visited by the most recent Search call.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// SetRootHistory supplies the Zobrist hashes of positions reached so far
// in the game (oldest first), so that repetitions spanning the boundary
// between prior play and the current search are detected.
func (s *Searcher) SetRootHistory(hashes []uint64) {
	s.pathHashes = append(s.pathHashes[:0], hashes...)
}

// GetPV returns the principal variation from the most recently completed depth.
func (s *Searcher) GetPV() []board.Move {
	return s.pv.Line()
}

// SearchAtDepth searches to a single fixed depth and returns the best
// move and its score, without resetting node counts or the stop flag —
// callers driving their own iterative-deepening loop (see Engine) call
// this once per depth and benefit from the transposition table filling
// in across depths. noise adds uniform leaf-evaluation noise in
// [-noise, +noise] (0 disables it), matching this module's external
// search(board, depth, noise=0) signature.
func (s *Searcher) SearchAtDepth(b *board.Board, depth, noise int) (board.Move, int) {
	s.noise = noise
	score := s.negamax(b, depth, 0, -Infinity, Infinity, false)

	var bestMove board.Move
	if line := s.pv.Line(); len(line) > 0 {
		bestMove = line[0]
	}
	if bestMove == board.NoMove && !s.stopped {
		if moves := b.LegalMoves(); moves.Len() > 0 {
			bestMove = moves.Get(0)
		}
	}
	return bestMove, score
}

// Search runs iterative deepening from depth 1 to maxDepth and returns
// the best move and its score from the last fully completed iteration.
// There is no time control: every requested depth is searched in full
// (or until Stop is called), per the module's scope. See SearchAtDepth
// for noise.
func (s *Searcher) Search(b *board.Board, maxDepth, noise int) (board.Move, int) {
	s.nodes = 0
	s.stopped = false

	var bestMove board.Move
	var bestScore int

	for depth := 1; depth <= maxDepth; depth++ {
		move, score := s.SearchAtDepth(b, depth, noise)
		if s.stopped {
			break
		}

		bestMove, bestScore = move, score

		// Once a forced mate is found, deeper iterations can only find
		// the same mate or a slower one under this move ordering — stop
		// early rather than burn iterations re-proving it.
		if bestScore > MateScore-MaxPly || bestScore < -MateScore+MaxPly {
			break
		}
	}

	return bestMove, bestScore
}

// eval evaluates b with the current search's leaf noise applied.
func (s *Searcher) eval(b *board.Board) int {
	return EvaluateNoisy(b, s.noise)
}

// negamax searches the subtree rooted at b to the given depth, returning
// a score from the side-to-move's perspective. noNull is true only on
// the node immediately after a null move, forbidding a second null move
// in a row (two consecutive null moves are equivalent to no move at
// all, and would let null-move pruning cut based on nothing).
func (s *Searcher) negamax(b *board.Board, depth, ply, alpha, beta int, noNull bool) int {
	s.nodes++
	s.pv.reset(ply)

	if ply > 0 && s.isDraw(b) {
		return 0
	}
	if ply >= MaxPly-1 {
		return s.eval(b)
	}

	inCheck := b.InCheck()

	if depth <= 0 {
		if !inCheck {
			return s.quiescence(b, alpha, beta, ply)
		}
		// Check extension: never drop into quiescence while in check —
		// quiescence only considers captures, so it could miss a forced
		// mate or the only legal reply. Extend one ply instead.
		depth = 1
	}

	isPV := beta-alpha > 1

	var ttMove board.Move
	if entry, ok := s.tt.Probe(b.Hash); ok {
		ttMove = entry.BestMove
		if int(entry.Depth) >= depth {
			score := AdjustScoreFromTT(int(entry.Score), ply)
			switch entry.Flag {
			case TTExact:
				return score
			case TTLowerBound:
				if score >= beta {
					return score
				}
			case TTUpperBound:
				if score <= alpha {
					return score
				}
			}
		}
	}

	// Null-move pruning: skip our move entirely and see if the opponent
	// is still in trouble even with a free tempo. Not sound in pure
	// pawn endgames (zugzwang), so it requires non-pawn material.
	if !isPV && !inCheck && !noNull && depth >= 3 && ply > 0 && b.HasNonPawnMaterial() {
		nu := b.MakeNull()
		score := -s.negamax(b, depth-1-nullMoveReduction, ply+1, -beta, -beta+1, true)
		b.UndoNull(nu)
		if s.stopped {
			return 0
		}
		if score >= beta {
			return beta
		}
	}

	moves := b.LegalMoves()
	if moves.Len() == 0 {
		if inCheck {
			return -MateScore + ply
		}
		return 0
	}

	scores := s.orderer.ScoreMoves(b, moves, ply, ttMove)

	origAlpha := alpha
	bestScore := -Infinity
	bestMove := moves.Get(0)

	for i := 0; i < moves.Len(); i++ {
		PickMove(moves, scores, i)
		m := moves.Get(i)
		isCapture := m.IsCapture()
		isKiller := m == s.orderer.killers[ply][0] || m == s.orderer.killers[ply][1]

		b.Make(m)
		s.pathHashes = append(s.pathHashes, b.Hash)
		givesCheck := b.InCheck()

		var score int
		switch {
		case i == 0:
			score = -s.negamax(b, depth-1, ply+1, -beta, -alpha, false)
		default:
			reduction := 0
			if i >= 3 && depth >= 3 && !inCheck && !isCapture && !isKiller && !givesCheck {
				if i >= 6 {
					reduction = 2
				} else {
					reduction = 1
				}
			}
			score = -s.negamax(b, depth-1-reduction, ply+1, -alpha-1, -alpha, false)
			if score > alpha && reduction > 0 {
				score = -s.negamax(b, depth-1, ply+1, -alpha-1, -alpha, false)
			}
			if score > alpha && score < beta {
				score = -s.negamax(b, depth-1, ply+1, -beta, -alpha, false)
			}
		}

		s.pathHashes = s.pathHashes[:len(s.pathHashes)-1]
		b.Undo(m)

		if s.stopped {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			if score > alpha {
				alpha = score
				s.pv.update(ply, m)
				if alpha >= beta {
					if !isCapture {
						s.orderer.UpdateKillers(m, ply)
						s.orderer.UpdateHistory(b.SideToMove, m, depth)
					}
					break
				}
			}
		}
	}

	flag := TTExact
	switch {
	case bestScore <= origAlpha:
		flag = TTUpperBound
	case bestScore >= beta:
		flag = TTLowerBound
	}
	s.tt.Store(b.Hash, depth, AdjustScoreToTT(bestScore, ply), flag, bestMove)

	return bestScore
}

// quiescence extends the search along captures only, until the position
// is "quiet" (no more captures, or none worth considering), to avoid
// the horizon effect of stopping mid-exchange.
func (s *Searcher) quiescence(b *board.Board, alpha, beta, ply int) int {
	s.nodes++

	if ply >= MaxPly-1 {
		return s.eval(b)
	}

	standPat := s.eval(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if standPat+deltaMargin < alpha {
		return alpha
	}

	captures := b.LegalCaptures()
	scores := s.orderer.ScoreMoves(b, captures, ply, board.NoMove)

	for i := 0; i < captures.Len(); i++ {
		PickMove(captures, scores, i)
		m := captures.Get(i)

		// A capture that loses material even after the full exchange
		// can't recover the ground standPat has already lost against
		// alpha; skip it rather than searching a doomed line.
		if standPat+SEE(b, m) < alpha-deltaMargin {
			continue
		}

		b.Make(m)
		score := -s.quiescence(b, -beta, -alpha, ply+1)
		b.Undo(m)

		if s.stopped {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// isDraw reports whether b should be scored as a draw: the fifty-move
// rule, insufficient material, or a position repeated earlier in this
// path (checked every other ply, since repetition requires the same
// side to move).
func (s *Searcher) isDraw(b *board.Board) bool {
	if b.HalfMoveClock >= 100 {
		return true
	}
	if b.InsufficientMaterial() {
		return true
	}

	n := len(s.pathHashes)
	if n == 0 {
		return false
	}
	hash := s.pathHashes[n-1]
	limit := b.HalfMoveClock
	for i := n - 3; i >= 0 && i >= n-1-limit; i -= 2 {
		if s.pathHashes[i] == hash {
			return true
		}
	}
	return false
}
