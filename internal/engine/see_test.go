package engine

import (
	"testing"

	"github.com/dkelso/chesscore/internal/board"
)

func TestSEEWinningCapture(t *testing.T) {
	// White pawn takes a defended-only-by-nothing knight: pure material gain.
	b, err := board.ParseFEN("4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := board.ParseUCIMove("e4d5", b)
	if err != nil {
		t.Fatal(err)
	}
	if got := SEE(b, m); got != board.PieceValue[board.Knight] {
		t.Errorf("SEE(exd5) = %d, want %d", got, board.PieceValue[board.Knight])
	}
}

func TestSEELosingCapture(t *testing.T) {
	// A rook capturing a pawn defended by a knight loses the rook for a pawn.
	b, err := board.ParseFEN("4k3/8/8/8/3p4/8/2n5/3R3K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := board.ParseUCIMove("d1d4", b)
	if err != nil {
		t.Fatal(err)
	}
	want := board.PieceValue[board.Pawn] - board.PieceValue[board.Rook]
	if got := SEE(b, m); got != want {
		t.Errorf("SEE(Rxd4) = %d, want %d", got, want)
	}
}

func TestSEENonCaptureIsZero(t *testing.T) {
	b := board.NewBoard()
	m, err := board.ParseUCIMove("e2e4", b)
	if err != nil {
		t.Fatal(err)
	}
	if got := SEE(b, m); got != 0 {
		t.Errorf("SEE(quiet move) = %d, want 0", got)
	}
}

func TestSEEEqualTrade(t *testing.T) {
	// Pawn takes pawn, recaptured by pawn: dead-even trade nets to zero.
	b, err := board.ParseFEN("4k3/8/2p5/3p4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := board.ParseUCIMove("e4d5", b)
	if err != nil {
		t.Fatal(err)
	}
	if got := SEE(b, m); got != 0 {
		t.Errorf("SEE(exd5) = %d, want 0", got)
	}
}
