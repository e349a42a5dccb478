package ttstore

import (
	"testing"

	"github.com/dkelso/chesscore/internal/board"
	"github.com/dkelso/chesscore/internal/engine"
)

func TestSaveAndLoad(t *testing.T) {
	store, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	defer store.Close()

	tt := engine.NewTranspositionTable(1)
	b := board.NewBoard()
	move, err := board.ParseUCIMove("e2e4", b)
	if err != nil {
		t.Fatal(err)
	}
	tt.Store(b.Hash, 4, 37, engine.TTExact, move)

	if err := store.Save(tt); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := engine.NewTranspositionTable(1)
	if err := store.Load(reloaded); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	entry, ok := reloaded.Probe(b.Hash)
	if !ok {
		t.Fatal("expected reloaded table to contain the stored entry")
	}
	if entry.BestMove != move || entry.Score != 37 || entry.Depth != 4 {
		t.Errorf("reloaded entry mismatch: %+v", entry)
	}
}

func TestLoadWithoutSaveIsNoop(t *testing.T) {
	store, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	defer store.Close()

	tt := engine.NewTranspositionTable(1)
	if err := store.Load(tt); err != nil {
		t.Errorf("Load on empty store should be a no-op, got: %v", err)
	}
}
