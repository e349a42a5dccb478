package engine

import (
	"math/rand"

	"github.com/dkelso/chesscore/internal/board"
)

// Piece-square tables, White's perspective, a1 first. Values are added
// on top of material and are looked up directly for White and via
// Square.Mirror() for Black, so one table serves both sides.
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

// kingPST favors the castled corners. There is deliberately no separate
// endgame table: the evaluator is material + PST only, with no game
// phase to taper between.
var kingPST = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var psts = [6][64]int{
	board.Pawn:   pawnPST,
	board.Knight: knightPST,
	board.Bishop: bishopPST,
	board.Rook:   rookPST,
	board.Queen:  queenPST,
	board.King:   kingPST,
}

// Evaluate scores a position in centipawns from the side-to-move's
// perspective: positive means the side to move is better. Internally
// material and PST bonuses are accumulated from White's perspective and
// negated for Black, per the standard PST convention (White's table
// read directly, Black's read via Square.Mirror()).
func Evaluate(b *board.Board) int {
	score := 0

	for pt := board.Pawn; pt <= board.King; pt++ {
		whitePieces := b.Pieces[board.White][pt]
		for whitePieces != 0 {
			sq := whitePieces.PopLSB()
			score += board.PieceValue[pt] + psts[pt][sq]
		}

		blackPieces := b.Pieces[board.Black][pt]
		for blackPieces != 0 {
			sq := blackPieces.PopLSB()
			score -= board.PieceValue[pt] + psts[pt][sq.Mirror()]
		}
	}

	if b.SideToMove == board.Black {
		score = -score
	}
	return score
}

// EvaluateNoisy adds uniform noise in [-n, n] to Evaluate's result, used
// to weaken the engine deterministically-in-distribution (e.g. self-play
// at a fixed depth against itself needs some variety to avoid repeating
// the same game). n=0 disables it. Noise is drawn from the process RNG,
// not a per-call seed, matching the module's external interface
// (evaluate(board, noise=0)).
func EvaluateNoisy(b *board.Board, n int) int {
	score := Evaluate(b)
	if n <= 0 {
		return score
	}
	return score + rand.Intn(2*n+1) - n
}
