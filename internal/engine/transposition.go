package engine

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dkelso/chesscore/internal/board"
)

// TTFlag indicates the kind of bound a stored score represents.
type TTFlag uint8

const (
	TTExact      TTFlag = iota // score is exact
	TTLowerBound               // score is a fail-high (beta cutoff): true score >= Score
	TTUpperBound               // score is a fail-low: true score <= Score
)

// TTEntry is one slot of the transposition table, sized to 16 bytes so a
// cache line holds four of them.
type TTEntry struct {
	Key      uint64
	BestMove board.Move
	Score    int16
	Depth    int8
	Flag     TTFlag
}

// TranspositionTable is a fixed-size, power-of-two-indexed hash table of
// search results. The core is single-threaded (see spec's concurrency
// model), so entries are a plain slice with no locking; a torn read
// during an external probe is caught by the Key equality check.
type TranspositionTable struct {
	entries []TTEntry
	mask    uint64

	hits   uint64
	probes uint64
	stores uint64
}

// NewTranspositionTable creates a table sized to approximately sizeMB
// megabytes, rounded down to a power of two entry count.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	const entrySize = 16 // runtime size of TTEntry, padding included
	numEntries := (uint64(sizeMB) * 1024 * 1024) / entrySize
	numEntries = roundDownToPowerOf2(numEntries)
	if numEntries == 0 {
		numEntries = 1
	}

	return &TranspositionTable{
		entries: make([]TTEntry, numEntries),
		mask:    numEntries - 1,
	}
}

func roundDownToPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Probe looks up a position. The returned entry's BestMove is usable
// whenever ok is true, even if the caller ultimately can't use Score
// (insufficient depth or the wrong bound for the current window).
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	tt.probes++
	idx := hash & tt.mask
	entry := tt.entries[idx]

	if entry.Key == hash && entry.Depth > 0 {
		tt.hits++
		return entry, true
	}
	return TTEntry{}, false
}

// Store records a search result, replacing the current occupant of the
// slot if it holds a different position (at any depth), or the same
// position at a depth no greater than the new one (depth-preferred
// replacement for a repeated key).
func (tt *TranspositionTable) Store(hash uint64, depth int, score int, flag TTFlag, bestMove board.Move) {
	idx := hash & tt.mask
	entry := &tt.entries[idx]

	if entry.Key != hash || depth >= int(entry.Depth) {
		entry.Key = hash
		entry.BestMove = bestMove
		entry.Score = int16(score)
		entry.Depth = int8(depth)
		entry.Flag = flag
		tt.stores++
	}
}

// Clear empties the table and resets its instrumentation counters.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
	tt.hits, tt.probes, tt.stores = 0, 0, 0
}

// HashFull returns the permille of the table occupied, sampled over the
// first 1000 slots (or the whole table if smaller).
func (tt *TranspositionTable) HashFull() int {
	sampleSize := 1000
	if uint64(sampleSize) > uint64(len(tt.entries)) {
		sampleSize = len(tt.entries)
	}
	if sampleSize == 0 {
		return 0
	}

	used := 0
	for i := 0; i < sampleSize; i++ {
		if tt.entries[i].Depth > 0 {
			used++
		}
	}
	return (used * 1000) / sampleSize
}

// HitRate returns the fraction of probes that found a usable entry, as a percentage.
func (tt *TranspositionTable) HitRate() float64 {
	if tt.probes == 0 {
		return 0
	}
	return float64(tt.hits) / float64(tt.probes) * 100
}

// Size returns the number of slots in the table.
func (tt *TranspositionTable) Size() uint64 {
	return uint64(len(tt.entries))
}

// AdjustScoreFromTT converts a mate score stored relative to the TT
// entry's own subtree back into a score relative to the search root, by
// shifting it by the number of plies between the root and here.
func AdjustScoreFromTT(score int, ply int) int {
	if score > MateScore-MaxPly {
		return score - ply
	}
	if score < -MateScore+MaxPly {
		return score + ply
	}
	return score
}

// Snapshot serializes the occupied slots of the table to a binary blob,
// for internal/ttstore to persist between process runs. The table's own
// size is recorded first so Restore can refuse a mismatched snapshot
// rather than silently misapplying slot indices.
func (tt *TranspositionTable) Snapshot() []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint64(len(tt.entries)))

	for i, e := range tt.entries {
		if e.Depth == 0 && e.Key == 0 {
			continue
		}
		binary.Write(&buf, binary.LittleEndian, uint32(i))
		binary.Write(&buf, binary.LittleEndian, e.Key)
		binary.Write(&buf, binary.LittleEndian, uint16(e.BestMove))
		binary.Write(&buf, binary.LittleEndian, e.Score)
		binary.Write(&buf, binary.LittleEndian, e.Depth)
		binary.Write(&buf, binary.LittleEndian, uint8(e.Flag))
	}
	return buf.Bytes()
}

// Restore reloads a blob produced by Snapshot. It fails if the snapshot
// was taken from a table of a different size, since slot indices would
// no longer correspond to the same positions.
func (tt *TranspositionTable) Restore(data []byte) error {
	r := bytes.NewReader(data)

	var size uint64
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return err
	}
	if size != uint64(len(tt.entries)) {
		return fmt.Errorf("ttstore: snapshot size %d does not match table size %d", size, len(tt.entries))
	}

	for {
		var idx uint32
		if err := binary.Read(r, binary.LittleEndian, &idx); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		var e TTEntry
		var moveBits uint16
		var flagBits uint8
		if err := binary.Read(r, binary.LittleEndian, &e.Key); err != nil {
			return err
		}
		if err := binary.Read(r, binary.LittleEndian, &moveBits); err != nil {
			return err
		}
		if err := binary.Read(r, binary.LittleEndian, &e.Score); err != nil {
			return err
		}
		if err := binary.Read(r, binary.LittleEndian, &e.Depth); err != nil {
			return err
		}
		if err := binary.Read(r, binary.LittleEndian, &flagBits); err != nil {
			return err
		}
		e.BestMove = board.Move(moveBits)
		e.Flag = TTFlag(flagBits)

		if idx < uint32(len(tt.entries)) {
			tt.entries[idx] = e
		}
	}
}

// AdjustScoreToTT is the inverse of AdjustScoreFromTT, applied before storing.
func AdjustScoreToTT(score int, ply int) int {
	if score > MateScore-MaxPly {
		return score + ply
	}
	if score < -MateScore+MaxPly {
		return score - ply
	}
	return score
}
