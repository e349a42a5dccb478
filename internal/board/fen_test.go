package board

import "testing"

// TestFENRoundTrip checks that ParseFEN followed by ToFEN reproduces
// the original FEN, when the original is already in ToFEN's canonical
// 6-field form.
func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"3k4/8/8/8/8/8/4P3/4K3 w - e3 0 1",
	}

	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := b.ToFEN(); got != fen {
			t.Errorf("round trip mismatch:\n  in:  %s\n  out: %s", fen, got)
		}
	}
}

func TestFENRoundTripViaReparse(t *testing.T) {
	// Non-canonical castling-rights ordering still round-trips once the
	// output is reparsed, even if the string form itself changes.
	const fen = "r3k2r/8/8/8/8/8/8/R3K2R b kQ - 3 10"

	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}

	out := b.ToFEN()
	b2, err := ParseFEN(out)
	if err != nil {
		t.Fatalf("ParseFEN(%q) (reparse): %v", out, err)
	}
	if out2 := b2.ToFEN(); out2 != out {
		t.Errorf("reparse mismatch:\n  first:  %s\n  second: %s", out, out2)
	}
}

func TestParseFENInvalid(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq - 0 1",
	}
	for _, fen := range cases {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q): expected error, got nil", fen)
		}
	}
}
