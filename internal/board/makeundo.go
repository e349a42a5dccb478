package board

// NullUndo is the minimal state MakeNull needs to reverse: null moves
// touch nothing but side-to-move and the en-passant square.
type NullUndo struct {
	EnPassant Square
	Hash      uint64
}

// Make applies a pseudo-legal move to the board, updating bitboards,
// mailbox, occupancy, castling rights, en-passant square, halfmove
// clock, full-move counter, and the Zobrist key incrementally, and
// pushes an UndoInfo recording everything Undo needs to reverse it.
// Make does not itself check legality; callers that need a legal-only
// move must verify via LegalMoves or check the king afterward.
func (b *Board) Make(m Move) {
	undo := b.pushHistory()

	us := b.SideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	piece := b.PieceAt(from)
	pt := piece.Type()

	b.Hash ^= zobristSideToMove
	b.Hash ^= zobristCastling[b.CastlingRights]
	if b.EnPassant != NoSquare {
		b.Hash ^= zobristEnPassant[b.EnPassant.File()]
	}
	b.EnPassant = NoSquare

	switch {
	case m.IsEnPassant():
		capSq := epCaptureSquare(us, to)
		captured := b.removePiece(capSq)
		b.Hash ^= zobristPiece[them][Pawn][capSq]
		undo.CapturedPiece = captured
	case m.IsCapture():
		captured := b.removePiece(to)
		b.Hash ^= zobristPiece[them][captured.Type()][to]
		undo.CapturedPiece = captured
	}

	b.movePiece(from, to)
	b.Hash ^= zobristPiece[us][pt][from]
	b.Hash ^= zobristPiece[us][pt][to]

	if m.IsPromotion() {
		promo := m.Promotion()
		b.Pieces[us][Pawn] &^= SquareBB(to)
		b.Pieces[us][promo] |= SquareBB(to)
		b.Mailbox[to] = NewPiece(promo, us)
		b.Hash ^= zobristPiece[us][Pawn][to]
		b.Hash ^= zobristPiece[us][promo][to]
	}

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(m.Flag(), from.Rank())
		b.movePiece(rookFrom, rookTo)
		b.Hash ^= zobristPiece[us][Rook][rookFrom]
		b.Hash ^= zobristPiece[us][Rook][rookTo]
	}

	if pt == King {
		if us == White {
			b.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			b.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}
	if from == A1 || to == A1 {
		b.CastlingRights &^= WhiteQueenSideCastle
	}
	if from == H1 || to == H1 {
		b.CastlingRights &^= WhiteKingSideCastle
	}
	if from == A8 || to == A8 {
		b.CastlingRights &^= BlackQueenSideCastle
	}
	if from == H8 || to == H8 {
		b.CastlingRights &^= BlackKingSideCastle
	}
	b.Hash ^= zobristCastling[b.CastlingRights]

	if m.IsDoublePush() {
		epSquare := Square((int(from) + int(to)) / 2)
		b.EnPassant = epSquare
		b.Hash ^= zobristEnPassant[epSquare.File()]
	}

	if pt == Pawn || undo.CapturedPiece != NoPiece {
		b.HalfMoveClock = 0
	} else {
		b.HalfMoveClock++
	}

	if us == Black {
		b.FullMoveNumber++
	}

	b.SideToMove = them
}

// Undo reverses the most recent Make. The move passed must be the exact
// move that was just made; the board's own history stack supplies
// everything else.
func (b *Board) Undo(m Move) {
	info := b.popHistory()

	them := b.SideToMove
	us := them.Other()
	from, to := m.From(), m.To()

	if m.IsPromotion() {
		promo := m.Promotion()
		b.Pieces[us][promo] &^= SquareBB(to)
		b.Pieces[us][Pawn] |= SquareBB(to)
		b.Mailbox[to] = NewPiece(Pawn, us)
	}

	b.movePiece(to, from)

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(m.Flag(), from.Rank())
		b.movePiece(rookTo, rookFrom)
	}

	if m.IsEnPassant() {
		capSq := epCaptureSquare(us, to)
		b.setPiece(info.CapturedPiece, capSq)
	} else if info.CapturedPiece != NoPiece {
		b.setPiece(info.CapturedPiece, to)
	}

	b.CastlingRights = info.CastlingRights
	b.EnPassant = info.EnPassant
	b.HalfMoveClock = info.HalfMoveClock
	b.FullMoveNumber = info.FullMoveNumber
	b.Hash = info.Hash
	b.SideToMove = us
}

// MakeNull passes the move without changing the board, used by null-move
// pruning: side to move flips, en passant is cleared (a skipped move
// cannot be captured en passant), nothing else changes.
func (b *Board) MakeNull() NullUndo {
	undo := NullUndo{EnPassant: b.EnPassant, Hash: b.Hash}

	if b.EnPassant != NoSquare {
		b.Hash ^= zobristEnPassant[b.EnPassant.File()]
		b.EnPassant = NoSquare
	}
	b.Hash ^= zobristSideToMove
	b.SideToMove = b.SideToMove.Other()

	return undo
}

// UndoNull reverses MakeNull.
func (b *Board) UndoNull(u NullUndo) {
	b.SideToMove = b.SideToMove.Other()
	b.EnPassant = u.EnPassant
	b.Hash = u.Hash
}

func epCaptureSquare(us Color, to Square) Square {
	if us == White {
		return to - 8
	}
	return to + 8
}

func castleRookSquares(flag MoveFlag, rank int) (from, to Square) {
	if flag == FlagCastleKingSide {
		return NewSquare(7, rank), NewSquare(5, rank)
	}
	return NewSquare(0, rank), NewSquare(3, rank)
}
