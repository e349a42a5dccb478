package board

import "fmt"

// CastlingRights packs the four independent castling booleans (WK, WQ,
// BK, BQ) into one byte, keyed the way FEN's "KQkq" field is.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                             // q
	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// Board is a complete chess position: piece placement, occupancy, side
// to move, castling/en-passant/clock state, the incremental Zobrist
// key, and the make/undo history stack.
type Board struct {
	// Pieces[color][pieceType] bitboards.
	Pieces [2][6]Bitboard

	// Occupied[color] and AllOccupied are redundant with Pieces, cached
	// for O(1) attack generation.
	Occupied    [2]Bitboard
	AllOccupied Bitboard

	// Mailbox is a per-square piece lookup, redundant with the
	// bitboards but O(1) (invariant: Mailbox[s] agrees with Pieces).
	Mailbox [64]Piece

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // en passant target square, NoSquare if none
	HalfMoveClock  int    // halfmoves since last pawn move or capture
	FullMoveNumber int    // starts at 1, increments after Black's move

	Hash uint64 // Zobrist key, maintained incrementally

	KingSquare [2]Square // cached king positions

	// history is the undo stack. history[0] holds the context of the
	// set-up position; each Make appends a snapshot of the state before
	// the move, which Undo pops to restore it. After a Make, the current
	// position's own context lives in the fields above, not in history.
	history []UndoInfo
}

// GamePly returns the number of halfmoves applied since the position
// was set up (also the current index into history).
func (b *Board) GamePly() int {
	return len(b.history) - 1
}

// NewBoard creates the standard starting position.
func NewBoard() *Board {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		panic("board: invalid embedded start FEN: " + err.Error())
	}
	return b
}

// Clear resets the board to empty, ready for FEN population.
func (b *Board) Clear() {
	*b = Board{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
	b.KingSquare[White] = NoSquare
	b.KingSquare[Black] = NoSquare
	for sq := range b.Mailbox {
		b.Mailbox[sq] = NoPiece
	}
	b.history = []UndoInfo{{EnPassant: NoSquare, CastlingRights: NoCastling}}
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece {
	return b.Mailbox[sq]
}

// IsEmpty returns true if the square is empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Mailbox[sq] == NoPiece
}

// setPiece places a piece on an empty square. Violating the "empty
// square" precondition is a ContractViolation (an engine bug).
func (b *Board) setPiece(piece Piece, sq Square) {
	if DebugAssertions && b.Mailbox[sq] != NoPiece {
		panic(fmt.Sprintf("board: setPiece on occupied square %s", sq))
	}
	c, pt := piece.Color(), piece.Type()
	bb := SquareBB(sq)

	b.Pieces[c][pt] |= bb
	b.Occupied[c] |= bb
	b.AllOccupied |= bb
	b.Mailbox[sq] = piece

	if pt == King {
		b.KingSquare[c] = sq
	}
}

// removePiece removes and returns the piece on a non-empty square.
// Violating the "occupied square" precondition is a ContractViolation.
func (b *Board) removePiece(sq Square) Piece {
	piece := b.Mailbox[sq]
	if DebugAssertions && piece == NoPiece {
		panic(fmt.Sprintf("board: removePiece on empty square %s", sq))
	}
	c, pt := piece.Color(), piece.Type()
	bb := SquareBB(sq)

	b.Pieces[c][pt] &^= bb
	b.Occupied[c] &^= bb
	b.AllOccupied &^= bb
	b.Mailbox[sq] = NoPiece

	return piece
}

// movePiece relocates the piece on `from` to `to`, which must be empty.
func (b *Board) movePiece(from, to Square) {
	piece := b.removePiece(from)
	b.setPiece(piece, to)
}

// findKings locates and caches the king squares from the bitboards.
func (b *Board) findKings() {
	b.KingSquare[White] = b.Pieces[White][King].LSB()
	b.KingSquare[Black] = b.Pieces[Black][King].LSB()
}

// String renders a human-readable board diagram, used by tests and debug logging.
func (b *Board) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			piece := b.PieceAt(sq)
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", b.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", b.CastlingRights)
	s += fmt.Sprintf("En passant: %s\n", b.EnPassant)
	s += fmt.Sprintf("Halfmove clock: %d\n", b.HalfMoveClock)
	s += fmt.Sprintf("Full move: %d\n", b.FullMoveNumber)
	s += fmt.Sprintf("Hash: %016x\n", b.Hash)
	return s
}

// Material returns the material balance in centipawns, positive favors White.
func (b *Board) Material() int {
	score := 0
	for pt := Pawn; pt < King; pt++ {
		score += b.Pieces[White][pt].PopCount() * PieceValue[pt]
		score -= b.Pieces[Black][pt].PopCount() * PieceValue[pt]
	}
	return score
}

// HasNonPawnMaterial returns true if the side to move has any piece
// other than pawns and king. Used to avoid null-move pruning in pure
// pawn endgames, where zugzwang makes the null-move assumption unsound.
func (b *Board) HasNonPawnMaterial() bool {
	us := b.SideToMove
	return b.Pieces[us][Knight]|b.Pieces[us][Bishop]|b.Pieces[us][Rook]|b.Pieces[us][Queen] != 0
}

// InsufficientMaterial reports whether neither side has enough material
// to deliver checkmate. Per spec: K vs K, K+N vs K, and K+B vs K (either
// color) are detected; same-colored-bishop K+B vs K+B is not.
func (b *Board) InsufficientMaterial() bool {
	if b.Pieces[White][Pawn]|b.Pieces[Black][Pawn] != 0 {
		return false
	}
	if b.Pieces[White][Rook]|b.Pieces[Black][Rook] != 0 {
		return false
	}
	if b.Pieces[White][Queen]|b.Pieces[Black][Queen] != 0 {
		return false
	}

	whiteMinors := b.Pieces[White][Knight].PopCount() + b.Pieces[White][Bishop].PopCount()
	blackMinors := b.Pieces[Black][Knight].PopCount() + b.Pieces[Black][Bishop].PopCount()

	// K vs K, or K+(one minor) vs K.
	return whiteMinors <= 1 && blackMinors <= 1 && whiteMinors+blackMinors <= 1
}
