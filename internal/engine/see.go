package engine

import "github.com/dkelso/chesscore/internal/board"

// SEE (static exchange evaluation) estimates the material outcome of a
// sequence of captures on m.To(), without playing the moves out. It
// walks the exchange square by square, always bringing in the least
// valuable attacker on each side, and folds the resulting gain array
// back to a single score from the mover's perspective.
//
// This refines move ordering's MVV-LVA capture tier (a bad capture,
// SEE < 0, is scored like a quiet move, by its history value, even
// though MVV-LVA alone would rank it above quiet moves) and lets
// quiescence search skip
// captures that can't possibly recover the material already lost.
func SEE(b *board.Board, m board.Move) int {
	target := m.To()
	from := m.From()

	attacker := b.PieceAt(from)
	if attacker == board.NoPiece {
		return 0
	}

	var victim board.PieceType
	if m.IsEnPassant() {
		victim = board.Pawn
	} else if captured := b.PieceAt(target); captured != board.NoPiece {
		victim = captured.Type()
	} else {
		return 0 // non-capture, nothing to evaluate
	}

	occupied := b.AllOccupied
	occupied = occupied.Clear(from)
	if m.IsEnPassant() {
		epVictim := board.NewSquare(target.File(), from.Rank())
		occupied = occupied.Clear(epVictim)
	}

	gain := make([]int, 0, 32)
	gain = append(gain, board.PieceValue[victim])

	side := attacker.Color().Other()
	sideTarget := attacker.Type()

	for {
		sq, piece := getLeastValuableAttacker(b, target, side, occupied)
		if sq == board.NoSquare {
			break
		}

		// A king can't recapture into check; if the only attacker left
		// on this side is the king and the square is still defended, the
		// exchange stops here.
		if piece.Type() == board.King {
			if next, _ := getLeastValuableAttacker(b, target, side.Other(), occupied.Clear(sq)); next != board.NoSquare {
				break
			}
		}

		gain = append(gain, board.PieceValue[sideTarget]-gain[len(gain)-1])
		occupied = occupied.Clear(sq)
		sideTarget = piece.Type()
		side = side.Other()
	}

	for i := len(gain) - 1; i > 0; i-- {
		if -gain[i] < gain[i-1] {
			gain[i-1] = -gain[i]
		}
	}

	return gain[0]
}

// getLeastValuableAttacker finds the cheapest piece of side that
// attacks target given the (possibly already-thinned) occupied
// bitboard, in pawn/knight/bishop/rook/queen/king order.
func getLeastValuableAttacker(b *board.Board, target board.Square, side board.Color, occupied board.Bitboard) (board.Square, board.Piece) {
	pawns := b.Pieces[side][board.Pawn] & occupied
	if attackers := board.PawnAttacks(target, side.Other()) & pawns; attackers != 0 {
		return attackers.LSB(), board.NewPiece(board.Pawn, side)
	}

	knights := b.Pieces[side][board.Knight] & occupied
	if attackers := board.KnightAttacks(target) & knights; attackers != 0 {
		return attackers.LSB(), board.NewPiece(board.Knight, side)
	}

	bishopAttacks := board.BishopAttacks(target, occupied)
	rookAttacks := board.RookAttacks(target, occupied)

	bishops := b.Pieces[side][board.Bishop] & occupied
	if attackers := bishopAttacks & bishops; attackers != 0 {
		return attackers.LSB(), board.NewPiece(board.Bishop, side)
	}

	rooks := b.Pieces[side][board.Rook] & occupied
	if attackers := rookAttacks & rooks; attackers != 0 {
		return attackers.LSB(), board.NewPiece(board.Rook, side)
	}

	queens := b.Pieces[side][board.Queen] & occupied
	if attackers := (bishopAttacks | rookAttacks) & queens; attackers != 0 {
		return attackers.LSB(), board.NewPiece(board.Queen, side)
	}

	kings := b.Pieces[side][board.King] & occupied
	if attackers := board.KingAttacks(target) & kings; attackers != 0 {
		return attackers.LSB(), board.NewPiece(board.King, side)
	}

	return board.NoSquare, board.NoPiece
}
