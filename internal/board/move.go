package board

import "fmt"

// MoveFlag tags the kind of a move. Bit 3 (0x8) marks a capture, bit 2
// (0x4) marks a promotion; the remaining two bits distinguish the
// specific move within those categories.
type MoveFlag uint16

const (
	FlagQuiet           MoveFlag = 0x0
	FlagDoublePush      MoveFlag = 0x1
	FlagCastleKingSide  MoveFlag = 0x2
	FlagCastleQueenSide MoveFlag = 0x3
	FlagPromoteN        MoveFlag = 0x4
	FlagPromoteB        MoveFlag = 0x5
	FlagPromoteR        MoveFlag = 0x6
	FlagPromoteQ        MoveFlag = 0x7
	FlagCapture         MoveFlag = 0x8
	FlagEnPassant       MoveFlag = 0x9
	FlagPromoCaptureN   MoveFlag = 0xC
	FlagPromoCaptureB   MoveFlag = 0xD
	FlagPromoCaptureR   MoveFlag = 0xE
	FlagPromoCaptureQ   MoveFlag = 0xF
)

// Move packs a move into 16 bits: flag(4) | from(6) | to(6). The zero
// value is a1-a1 Quiet, used as the null-move sentinel.
type Move uint16

// NoMove is the null-move sentinel: a1a1, Quiet.
const NoMove Move = 0

func packMove(flag MoveFlag, from, to Square) Move {
	return Move(flag)<<12 | Move(from)<<6 | Move(to)
}

// NewMove creates a move with an explicit flag. Used by the generator,
// which already knows which of the flag's variants applies.
func NewMove(flag MoveFlag, from, to Square) Move {
	return packMove(flag, from, to)
}

// NewQuiet creates a non-capturing, non-special move.
func NewQuiet(from, to Square) Move {
	return packMove(FlagQuiet, from, to)
}

// NewCapture creates a capturing move.
func NewCapture(from, to Square) Move {
	return packMove(FlagCapture, from, to)
}

// NewDoublePush creates a pawn double-push move.
func NewDoublePush(from, to Square) Move {
	return packMove(FlagDoublePush, from, to)
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(from, to Square) Move {
	return packMove(FlagEnPassant, from, to)
}

// NewCastleKingSide creates a king-side castling move (king's movement).
func NewCastleKingSide(from, to Square) Move {
	return packMove(FlagCastleKingSide, from, to)
}

// NewCastleQueenSide creates a queen-side castling move (king's movement).
func NewCastleQueenSide(from, to Square) Move {
	return packMove(FlagCastleQueenSide, from, to)
}

// promoFlag maps a promotion PieceType to its {non-capture, capture} flags.
var promoFlag = map[PieceType][2]MoveFlag{
	Knight: {FlagPromoteN, FlagPromoCaptureN},
	Bishop: {FlagPromoteB, FlagPromoCaptureB},
	Rook:   {FlagPromoteR, FlagPromoCaptureR},
	Queen:  {FlagPromoteQ, FlagPromoCaptureQ},
}

// NewPromotion creates a non-capturing promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	return packMove(promoFlag[promo][0], from, to)
}

// NewPromoCapture creates a promotion-capture move.
func NewPromoCapture(from, to Square, promo PieceType) Move {
	return packMove(promoFlag[promo][1], from, to)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m >> 6) & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m & 0x3F)
}

// Flag returns the move's flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag(m >> 12)
}

// IsCapture returns true if the move's flag has the capture bit set.
func (m Move) IsCapture() bool {
	return m.Flag()&0x8 != 0
}

// IsPromotion returns true if the move's flag has the promotion bit set.
func (m Move) IsPromotion() bool {
	return m.Flag()&0x4 != 0
}

// IsEnPassant returns true if this is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// IsCastle returns true if this is a castling move.
func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagCastleKingSide || f == FlagCastleQueenSide
}

// IsDoublePush returns true if this is a pawn double push.
func (m Move) IsDoublePush() bool {
	return m.Flag() == FlagDoublePush
}

// IsQuiet returns true if the move is neither a capture nor a promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// Promotion returns the promotion piece type. Only valid when IsPromotion().
func (m Move) Promotion() PieceType {
	switch m.Flag() & 0x3 {
	case 0:
		return Knight
	case 1:
		return Bishop
	case 2:
		return Rook
	default:
		return Queen
	}
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		promoChars := map[PieceType]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}
		s += string(promoChars[m.Promotion()])
	}
	return s
}

// ParseUCIMove parses a UCI move string against the position's legal
// moves, returning the exact packed Move whose string matches. Per
// spec section 4.10, UCI parsing works by generation-and-match rather
// than by independently inferring move flags from the string.
func ParseUCIMove(s string, b *Board) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}
	if _, err := ParseSquare(s[0:2]); err != nil {
		return NoMove, err
	}
	if _, err := ParseSquare(s[2:4]); err != nil {
		return NoMove, err
	}

	moves := b.LegalMoves()
	for i := 0; i < moves.Len(); i++ {
		mv := moves.Get(i)
		if mv.String() == s {
			return mv, nil
		}
	}
	return NoMove, fmt.Errorf("not a legal move: %s", s)
}

// MoveList is a fixed-size list of moves to avoid allocations. 256 is
// the maximum number of pseudo-legal moves in any reachable position.
type MoveList struct {
	moves [256]Move
	count int
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Swap swaps two moves in the list, used by the move-ordering sort.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice sharing the list's backing array.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
