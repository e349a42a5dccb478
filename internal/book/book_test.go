package book

import (
	"testing"

	"github.com/dkelso/chesscore/internal/board"
)

func openTestBook(t *testing.T) *Book {
	t.Helper()
	b, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

func TestBookPutAndProbe(t *testing.T) {
	bk := openTestBook(t)
	pos := board.NewBoard()

	if err := bk.Put(PositionKey(pos), []Candidate{
		{UCI: "e2e4", Weight: 100},
	}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	move, found := bk.Probe(pos)
	if !found {
		t.Fatal("expected to find move in book")
	}
	if move.From() != board.E2 || move.To() != board.E4 {
		t.Errorf("expected e2e4, got %s", move.String())
	}

	size, err := bk.Size()
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if size != 1 {
		t.Errorf("expected book size 1, got %d", size)
	}
}

func TestBookMiss(t *testing.T) {
	bk := openTestBook(t)
	pos := board.NewBoard()

	move, found := bk.Probe(pos)
	if found {
		t.Error("expected book miss on empty book")
	}
	if move != board.NoMove {
		t.Errorf("expected NoMove on miss, got %s", move.String())
	}
}

func TestBookIgnoresIllegalCandidate(t *testing.T) {
	bk := openTestBook(t)
	pos := board.NewBoard()

	if err := bk.Put(PositionKey(pos), []Candidate{
		{UCI: "e2e5", Weight: 50}, // not legal from the starting position
		{UCI: "d2d4", Weight: 50},
	}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	move, found := bk.Probe(pos)
	if !found {
		t.Fatal("expected the legal candidate to be found")
	}
	if move.String() != "d2d4" {
		t.Errorf("expected d2d4, got %s", move.String())
	}
}

func TestBookFollowsTransposition(t *testing.T) {
	bk := openTestBook(t)

	// 1.Nf3 Nf6 2.Nc3 and 1.Nc3 Nf6 2.Nf3 reach the same position.
	stored := board.NewBoard()
	for _, s := range []string{"g1f3", "g8f6", "b1c3"} {
		stored.Make(mustParseUCI(t, stored, s))
	}

	if err := bk.Put(PositionKey(stored), []Candidate{
		{UCI: "d7d5", Weight: 100},
	}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	pos := board.NewBoard()
	for _, s := range []string{"b1c3", "g8f6", "g1f3"} {
		pos.Make(mustParseUCI(t, pos, s))
	}

	move, found := bk.Probe(pos)
	if !found {
		t.Fatal("expected a book move after the transposed move order")
	}
	if move.String() != "d7d5" {
		t.Errorf("expected d7d5, got %s", move.String())
	}
}

func TestPositionKeyDropsMoveCounters(t *testing.T) {
	a := board.NewBoard()
	b, err := board.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 5 12")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}

	if PositionKey(a) != PositionKey(b) {
		t.Errorf("expected identical keys regardless of move counters, got %q vs %q",
			PositionKey(a), PositionKey(b))
	}
}

func mustParseUCI(t *testing.T, b *board.Board, s string) board.Move {
	t.Helper()
	m, err := board.ParseUCIMove(s, b)
	if err != nil {
		t.Fatalf("ParseUCIMove(%s) failed: %v", s, err)
	}
	return m
}
