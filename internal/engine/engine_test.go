package engine

import (
	"testing"

	"github.com/dkelso/chesscore/internal/board"
)

func TestSearchBasic(t *testing.T) {
	b := board.NewBoard()
	eng := NewEngine(16)
	eng.SetDifficulty(Easy)

	move := eng.Search(b)
	if move == board.NoMove {
		t.Error("Search returned NoMove for starting position")
	}
	t.Logf("Best move: %s", move.String())
}

func TestSearchMateInOne(t *testing.T) {
	b, err := board.ParseFEN("6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	eng := NewEngine(16)
	move := eng.SearchDepth(b, 2, 0)

	if move.String() != "e1e8" {
		t.Errorf("expected mate-in-one e1e8, got %s", move.String())
	}
}

func TestSearchReportsInfo(t *testing.T) {
	b := board.NewBoard()
	eng := NewEngine(16)

	var depths []int
	eng.OnInfo = func(info SearchInfo) {
		depths = append(depths, info.Depth)
	}

	eng.SearchDepth(b, 3, 0)

	if len(depths) != 3 {
		t.Fatalf("expected info for 3 depths, got %d", len(depths))
	}
	for i, d := range depths {
		if d != i+1 {
			t.Errorf("expected depths in order 1,2,3, got %v", depths)
			break
		}
	}
}

func TestPerft(t *testing.T) {
	b := board.NewBoard()
	eng := NewEngine(1)

	if got := eng.Perft(b, 3); got != 8902 {
		t.Errorf("perft(3) from start = %d, want 8902", got)
	}
}

func TestScoreToString(t *testing.T) {
	if got := ScoreToString(150); got != "1.50" {
		t.Errorf("ScoreToString(150) = %q, want %q", got, "1.50")
	}
	if got := ScoreToString(MateScore - 3); got != "Mate in 2" {
		t.Errorf("ScoreToString(mate) = %q, want %q", got, "Mate in 2")
	}
}
