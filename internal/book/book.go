// Package book implements a Badger-backed opening book keyed by
// position, the way the original engine's OPENING_BOOK map is: the
// board+side+castling+ep fields of a position's FEN, with the
// halfmove/fullmove counters stripped off so transpositions reaching
// the same position by a different move order share a book entry.
package book

import (
	"encoding/json"
	"errors"
	"math/rand"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/dkelso/chesscore/internal/board"
	"github.com/dkelso/chesscore/internal/storage"
)

// Candidate is one weighted move stored under a position key.
type Candidate struct {
	UCI    string `json:"uci"`
	Weight int    `json:"weight"`
}

// Book is a position-keyed opening book backed by Badger.
type Book struct {
	db *badger.DB
}

// Open opens (creating if necessary) the book database in the module's
// standard data directory.
func Open() (*Book, error) {
	dir, err := storage.SubDir("book")
	if err != nil {
		return nil, err
	}
	return OpenAt(dir)
}

// OpenAt opens the book database at a specific directory, for tests and
// for cmd/bookload pointing at a build-time book file.
func OpenAt(dir string) (*Book, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Book{db: db}, nil
}

// Close closes the underlying database.
func (b *Book) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// PositionKey returns the book key for a position: the first four
// fields of its FEN (piece placement, side to move, castling rights,
// en passant square), dropping the halfmove and fullmove counters so
// the same position always keys to the same book entry regardless of
// how it was reached or how long the game has run.
func PositionKey(b *board.Board) string {
	fields := strings.Fields(b.ToFEN())
	if len(fields) < 4 {
		return strings.Join(fields, " ")
	}
	return strings.Join(fields[:4], " ")
}

// Put stores the candidate move list for a position key, overwriting
// any existing entry. Used by cmd/bookload during book population.
func (b *Book) Put(key string, candidates []Candidate) error {
	data, err := json.Marshal(candidates)
	if err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// candidatesAt returns the raw candidate list stored for a position key.
func (b *Book) candidatesAt(key string) ([]Candidate, error) {
	var candidates []Candidate

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &candidates)
		})
	})

	return candidates, err
}

// Probe looks up pos by its PositionKey and returns a book move,
// selected by weighted random choice among the stored candidates that
// are still legal in pos (a stored candidate can go stale if the book
// was populated from a mislabeled position). ok is false if the book
// has no entry for pos, or none of its candidates are legal.
func (b *Book) Probe(pos *board.Board) (board.Move, bool) {
	if b == nil {
		return board.NoMove, false
	}

	candidates, err := b.candidatesAt(PositionKey(pos))
	if err != nil || len(candidates) == 0 {
		return board.NoMove, false
	}

	legal := make([]Candidate, 0, len(candidates))
	moves := make([]board.Move, 0, len(candidates))
	for _, c := range candidates {
		m, err := board.ParseUCIMove(c.UCI, pos)
		if err != nil {
			continue
		}
		legal = append(legal, c)
		moves = append(moves, m)
	}
	if len(legal) == 0 {
		return board.NoMove, false
	}

	total := 0
	for _, c := range legal {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total == 0 {
		return moves[0], true
	}

	r := rand.Intn(total)
	cumulative := 0
	for i, c := range legal {
		if c.Weight <= 0 {
			continue
		}
		cumulative += c.Weight
		if r < cumulative {
			return moves[i], true
		}
	}
	return moves[len(moves)-1], true
}

// ProbeAll returns every stored candidate for a position key without
// touching board legality, for inspection tools.
func (b *Book) ProbeAll(key string) ([]Candidate, error) {
	if b == nil {
		return nil, nil
	}
	return b.candidatesAt(key)
}

// Size returns the number of stored position keys.
func (b *Book) Size() (int, error) {
	count := 0
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
