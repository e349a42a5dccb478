// Package ttstore persists a transposition table's contents to Badger
// between process runs, so a long-lived opening position doesn't have to
// be re-searched cold every time the engine starts.
package ttstore

import (
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/dkelso/chesscore/internal/engine"
	"github.com/dkelso/chesscore/internal/storage"
)

const snapshotKey = "tt-snapshot"

// Store wraps a Badger database holding a single transposition-table snapshot.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the ttstore database in the
// module's standard data directory.
func Open() (*Store, error) {
	dir, err := storage.SubDir("ttcache")
	if err != nil {
		return nil, err
	}
	return OpenAt(dir)
}

// OpenAt opens the ttstore database at a specific directory.
func OpenAt(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save snapshots tt and writes it to the database, replacing any prior snapshot.
func (s *Store) Save(tt *engine.TranspositionTable) error {
	data := tt.Snapshot()
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(snapshotKey), data)
	})
}

// Load reloads the stored snapshot into tt. It is a no-op, returning no
// error, if no snapshot has ever been saved.
func (s *Store) Load(tt *engine.TranspositionTable) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return tt.Restore(val)
		})
	})
}
