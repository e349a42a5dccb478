package board

// UndoInfo captures the irreversible context a Make needs to restore on
// Undo: whatever the moved piece's own from/to squares don't already
// tell you how to reverse.
type UndoInfo struct {
	CapturedPiece  Piece // NoPiece if the move was not a capture
	EnPassant      Square
	CastlingRights CastlingRights
	HalfMoveClock  int
	FullMoveNumber int
	Hash           uint64
}

// pushHistory records the pre-move state at the new ply, then returns a
// pointer to it so Make can fill in CapturedPiece as it discovers it.
func (b *Board) pushHistory() *UndoInfo {
	b.history = append(b.history, UndoInfo{
		CapturedPiece:  NoPiece,
		EnPassant:      b.EnPassant,
		CastlingRights: b.CastlingRights,
		HalfMoveClock:  b.HalfMoveClock,
		FullMoveNumber: b.FullMoveNumber,
		Hash:           b.Hash,
	})
	return &b.history[len(b.history)-1]
}

// popHistory drops and returns the most recent history entry.
func (b *Board) popHistory() UndoInfo {
	n := len(b.history) - 1
	info := b.history[n]
	b.history = b.history[:n]
	return info
}
