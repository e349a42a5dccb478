package engine

import (
	"time"

	"github.com/dkelso/chesscore/internal/board"
)

// SearchInfo reports progress after each completed iterative-deepening
// depth, mirroring the fields a UCI "info" line carries.
type SearchInfo struct {
	Depth    int
	Score    int
	Nodes    uint64
	Time     time.Duration
	PV       []board.Move
	HashFull int
}

// Difficulty selects a fixed search depth. There is no time control in
// this module — difficulty is expressed purely as how many plies deep
// the search goes.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// DifficultyDepth maps a difficulty level to its search depth.
var DifficultyDepth = map[Difficulty]int{
	Easy:   3,
	Medium: 5,
	Hard:   7,
}

// Engine wraps a Searcher and transposition table behind a depth-based
// API, reporting per-depth progress via OnInfo the way a UCI frontend
// would want to relay it.
type Engine struct {
	searcher   *Searcher
	tt         *TranspositionTable
	difficulty Difficulty

	OnInfo func(SearchInfo)
}

// NewEngine creates a chess engine with a transposition table sized to
// approximately ttSizeMB megabytes.
func NewEngine(ttSizeMB int) *Engine {
	tt := NewTranspositionTable(ttSizeMB)
	return &Engine{
		searcher:   NewSearcher(tt),
		tt:         tt,
		difficulty: Medium,
	}
}

// SetDifficulty sets the engine's search depth.
func (e *Engine) SetDifficulty(d Difficulty) {
	e.difficulty = d
}

// Search finds the best move for b at the engine's configured difficulty,
// with no leaf-evaluation noise.
func (e *Engine) Search(b *board.Board) board.Move {
	return e.SearchDepth(b, DifficultyDepth[e.difficulty], 0)
}

// SearchDepth runs iterative deepening from depth 1 to maxDepth, invoking
// OnInfo after every completed depth, and returns the deepest move
// found. noise adds uniform leaf-evaluation noise in [-noise, +noise]
// (0 disables it), matching this module's external
// search(board, depth, noise=0) signature.
func (e *Engine) SearchDepth(b *board.Board, maxDepth, noise int) board.Move {
	e.searcher.Reset()
	start := time.Now()

	var bestMove board.Move

	for depth := 1; depth <= maxDepth; depth++ {
		move, score := e.searcher.SearchAtDepth(b, depth, noise)
		if e.searcher.IsStopped() {
			break
		}
		if move != board.NoMove {
			bestMove = move
		}

		if e.OnInfo != nil {
			e.OnInfo(SearchInfo{
				Depth:    depth,
				Score:    score,
				Nodes:    e.searcher.Nodes(),
				Time:     time.Since(start),
				PV:       e.searcher.GetPV(),
				HashFull: e.tt.HashFull(),
			})
		}

		if score > MateScore-MaxPly || score < -MateScore+MaxPly {
			break
		}
	}

	return bestMove
}

// Stop requests that any in-progress search return as soon as possible.
func (e *Engine) Stop() {
	e.searcher.Stop()
}

// Clear empties the transposition table and move-ordering state.
func (e *Engine) Clear() {
	e.tt.Clear()
	e.searcher.Reset()
}

// SetRootHistory forwards to the underlying searcher, see Searcher.SetRootHistory.
func (e *Engine) SetRootHistory(hashes []uint64) {
	e.searcher.SetRootHistory(hashes)
}

// TT returns the engine's transposition table, so a caller can snapshot
// or reload it (see internal/ttstore) independently of a search call.
func (e *Engine) TT() *TranspositionTable {
	return e.tt
}

// Perft counts leaf nodes at the given depth, for move-generator testing.
func (e *Engine) Perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		b.Make(m)
		nodes += e.Perft(b, depth-1)
		b.Undo(m)
	}
	return nodes
}

// Evaluate returns the static evaluation of b, with noise=0 disabling
// the optional leaf noise this module's evaluate(board, noise=0)
// signature allows.
func (e *Engine) Evaluate(b *board.Board, noise int) int {
	return EvaluateNoisy(b, noise)
}

// ScoreToString renders a centipawn score, or a mate distance, as text.
func ScoreToString(score int) string {
	if score > MateScore-MaxPly {
		mateIn := (MateScore - score + 1) / 2
		return "Mate in " + itoa(mateIn)
	}
	if score < -MateScore+MaxPly {
		mateIn := (MateScore + score + 1) / 2
		return "Mated in " + itoa(mateIn)
	}

	sign := ""
	if score < 0 {
		sign = "-"
		score = -score
	}
	pawns := score / 100
	centipawns := score % 100
	return sign + itoa(pawns) + "." + itoa(centipawns)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + itoa(-n)
	}
	s := ""
	for n > 0 {
		s = string('0'+byte(n%10)) + s
		n /= 10
	}
	return s
}
