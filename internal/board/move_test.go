package board

import "testing"

// TestUCIMoveRoundTrip checks that every legal move in a variety of
// positions survives a String/ParseUCIMove round trip unchanged, per
// spec section 4.10's generation-and-match parsing contract.
func TestUCIMoveRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}

		moves := b.LegalMoves()
		for i := 0; i < moves.Len(); i++ {
			m := moves.Get(i)
			uci := m.String()

			parsed, err := ParseUCIMove(uci, b)
			if err != nil {
				t.Errorf("fen %q: ParseUCIMove(%q) failed: %v", fen, uci, err)
				continue
			}
			if parsed != m {
				t.Errorf("fen %q: ParseUCIMove(%q) = %v, want %v", fen, uci, parsed, m)
			}
		}
	}
}

func TestParseUCIMoveRejectsIllegal(t *testing.T) {
	b := NewBoard()

	if _, err := ParseUCIMove("e2e5", b); err == nil {
		t.Error("expected error for pseudo-legal-looking but illegal move e2e5")
	}
	if _, err := ParseUCIMove("z9z9", b); err == nil {
		t.Error("expected error for malformed squares")
	}
	if _, err := ParseUCIMove("e2", b); err == nil {
		t.Error("expected error for too-short move string")
	}
}
