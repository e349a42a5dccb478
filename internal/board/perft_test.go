package board

import "testing"

// perft counts the number of leaf nodes at the given depth. This is the
// standard oracle for move generator correctness: a mismatch means
// either too many, too few, or wrong moves are being produced somewhere
// in the tree.
func perft(b *Board, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := b.LegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}

	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		b.Make(m)
		nodes += perft(b, depth-1)
		b.Undo(m)
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		// Depth 5 takes longer, enable for thorough testing:
		// {5, 4865609},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := perft(b, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftKiwipete exercises castling and en passant in one position.
// Promotions only appear in this tree from depth 4, which is disabled.
func TestPerftKiwipete(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
		// {4, 4085603}, // enable for thorough testing
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := perft(b, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

func TestPerftPosition3(t *testing.T) {
	b, err := ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -")
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := perft(b, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftEnPassantPin covers the horizontal-pin edge case: the black
// pawn on e4 could capture en passant on d3, but doing so removes both
// the d-pawn and the capturing pawn from the fourth rank, exposing the
// black king on a4 to the white rook on h4.
func TestPerftEnPassantPin(t *testing.T) {
	b, err := ParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	moves := b.LegalMoves()
	for i := 0; i < moves.Len(); i++ {
		if m := moves.Get(i); m.IsEnPassant() {
			t.Errorf("en passant move %v should be illegal (horizontal pin)", m)
		}
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 6},
		{2, 94},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := perft(b, tc.depth)
			if got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}
