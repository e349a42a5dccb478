package validator

import "testing"

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestValidateAppliesLegalMove(t *testing.T) {
	res, err := Validate(startFEN, "e2e4")
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if res.Status != StatusValid {
		t.Fatalf("Status = %v, want %v", res.Status, StatusValid)
	}
	if res.GameState != GameStateActive {
		t.Errorf("GameState = %v, want %v", res.GameState, GameStateActive)
	}
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if res.NewFEN != want {
		t.Errorf("NewFEN = %q, want %q", res.NewFEN, want)
	}
}

func TestValidateRejectsIllegalMove(t *testing.T) {
	res, err := Validate(startFEN, "e2e5")
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if res.Status != StatusInvalid {
		t.Fatalf("Status = %v, want %v", res.Status, StatusInvalid)
	}
}

func TestValidateRejectsBadFEN(t *testing.T) {
	_, err := Validate("not a fen", "e2e4")
	if err == nil {
		t.Fatal("expected an error for a malformed FEN")
	}
}

func TestValidateFoolsMateCheckmate(t *testing.T) {
	// Position after 1.f3 e5 2.g4, black to deliver Qh4#.
	fen := "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2"
	res, err := Validate(fen, "d8h4")
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if res.Status != StatusValid {
		t.Fatalf("Status = %v, want %v", res.Status, StatusValid)
	}
	if res.GameState != GameStateCheckmate {
		t.Errorf("GameState = %v, want %v", res.GameState, GameStateCheckmate)
	}
}

func TestValidateFiftyMoveDraw(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/4K3 w - - 99 60"
	res, err := Validate(fen, "e1e2")
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if res.GameState != GameStateDraw50 {
		t.Errorf("GameState = %v, want %v", res.GameState, GameStateDraw50)
	}
}

func TestValidateInsufficientMaterial(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/4KN2 w - - 0 1"
	res, err := Validate(fen, "e1e2")
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if res.GameState != GameStateDrawInsufficient {
		t.Errorf("GameState = %v, want %v", res.GameState, GameStateDrawInsufficient)
	}
}
