package board

import "testing"

func TestCheckmate(t *testing.T) {
	// White: Ka1, Ra8. Black: Kh8 boxed in by its own pawns on g7/h7.
	b, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("error parsing FEN:", err)
	}

	if !b.InCheck() {
		t.Error("expected black king to be in check")
	}
	if !b.IsCheckmate() {
		t.Error("expected checkmate but got false")
	}
	if b.IsStalemate() {
		t.Error("checkmate should not also report as stalemate")
	}
}

func TestNotCheckmate(t *testing.T) {
	// Black king on h8 can simply capture the checking rook on g8.
	b, err := ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("error parsing FEN:", err)
	}

	if b.IsCheckmate() {
		t.Error("expected NOT checkmate but got true")
	}
}
