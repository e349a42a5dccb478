package engine

import (
	"testing"

	"github.com/dkelso/chesscore/internal/board"
)

// TestEvaluateSymmetric checks that mirroring a position vertically and
// swapping every piece's color, without changing who is to move,
// negates the score: whoever was ahead is now behind by the same
// margin, from the same mover's perspective.
func TestEvaluateSymmetric(t *testing.T) {
	cases := []struct{ a, b string }{
		{
			"4k3/8/8/8/3P4/8/8/4K3 w - - 0 1",
			"4k3/8/8/3p4/8/8/8/4K3 w - - 0 1",
		},
		{
			"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			"r3k2r/pppbbppp/2n2q1P/1P2p3/3pn3/BN2PNP1/P1PPQPB1/R3K2R w KQkq - 0 1",
		},
	}

	for _, c := range cases {
		ba, err := board.ParseFEN(c.a)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", c.a, err)
		}
		bb, err := board.ParseFEN(c.b)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", c.b, err)
		}

		sa, sb := Evaluate(ba), Evaluate(bb)
		if sa != -sb {
			t.Errorf("Evaluate(%q)=%d != -Evaluate(%q)=%d, expected color-flip negation", c.a, sa, c.b, -sb)
		}
	}
}

// TestEvaluateNoisyBounds checks that EvaluateNoisy stays within
// [score-n, score+n] and that n=0 disables noise entirely.
func TestEvaluateNoisyBounds(t *testing.T) {
	b := board.NewBoard()
	score := Evaluate(b)

	if got := EvaluateNoisy(b, 0); got != score {
		t.Errorf("EvaluateNoisy(b, 0) = %d, want exactly Evaluate(b) = %d", got, score)
	}

	const n = 25
	for i := 0; i < 200; i++ {
		got := EvaluateNoisy(b, n)
		if got < score-n || got > score+n {
			t.Fatalf("EvaluateNoisy(b, %d) = %d, outside [%d, %d]", n, got, score-n, score+n)
		}
	}
}
