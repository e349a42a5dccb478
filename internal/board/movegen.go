package board

// LegalMoves generates every legal move in the position: pseudo-legal
// generation followed by a make/undo filter (spec's own doc for this
// package deliberately trades the extra make/undo cost for a filter
// that can't miss a horizontal-pin or discovered-check edge case).
func (b *Board) LegalMoves() *MoveList {
	us := b.SideToMove
	pseudo := b.PseudoLegalMoves()
	result := &MoveList{}

	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		b.Make(m)
		attacked := b.IsSquareAttacked(b.KingSquare[us], us.Other())
		b.Undo(m)
		if !attacked {
			result.Add(m)
		}
	}
	return result
}

// PseudoLegalMoves generates all moves obeying piece movement rules,
// without checking whether the mover's own king ends up in check.
func (b *Board) PseudoLegalMoves() *MoveList {
	ml := &MoveList{}
	b.generateAllMoves(ml)
	return ml
}

// LegalCaptures generates every legal capturing move (including
// en passant and capture-promotions), plus the non-capturing
// push-promotions, used by quiescence search.
func (b *Board) LegalCaptures() *MoveList {
	us := b.SideToMove
	pseudo := &MoveList{}
	b.generatePseudoCaptures(pseudo)
	result := &MoveList{}

	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		b.Make(m)
		attacked := b.IsSquareAttacked(b.KingSquare[us], us.Other())
		b.Undo(m)
		if !attacked {
			result.Add(m)
		}
	}
	return result
}

func (b *Board) generateAllMoves(ml *MoveList) {
	us := b.SideToMove
	occupied := b.AllOccupied
	enemies := b.Occupied[us.Other()]

	b.generatePawnMoves(ml, us, enemies, occupied)

	knights := b.Pieces[us][Knight]
	for knights != 0 {
		from := knights.PopLSB()
		targets := KnightAttacks(from) &^ b.Occupied[us]
		addTargets(ml, from, targets, enemies)
	}

	bishops := b.Pieces[us][Bishop]
	for bishops != 0 {
		from := bishops.PopLSB()
		targets := BishopAttacks(from, occupied) &^ b.Occupied[us]
		addTargets(ml, from, targets, enemies)
	}

	rooks := b.Pieces[us][Rook]
	for rooks != 0 {
		from := rooks.PopLSB()
		targets := RookAttacks(from, occupied) &^ b.Occupied[us]
		addTargets(ml, from, targets, enemies)
	}

	queens := b.Pieces[us][Queen]
	for queens != 0 {
		from := queens.PopLSB()
		targets := QueenAttacks(from, occupied) &^ b.Occupied[us]
		addTargets(ml, from, targets, enemies)
	}

	b.generateKingMoves(ml, us, enemies)
	b.generateCastlingMoves(ml, us)
}

// addTargets emits a Quiet or Capture move to each set bit of targets.
func addTargets(ml *MoveList, from Square, targets, enemies Bitboard) {
	for targets != 0 {
		to := targets.PopLSB()
		if enemies&SquareBB(to) != 0 {
			ml.Add(NewCapture(from, to))
		} else {
			ml.Add(NewQuiet(from, to))
		}
	}
}

// generatePawnMoves emits pawn moves via two independent branches: pushes
// (with their own promotion sub-branch) and diagonal captures (with
// their own promotion sub-branch), plus en passant. Keeping the push and
// capture branches separate, rather than merging them into one loop over
// "all pawn destinations", avoids a class of bug where a push landing on
// the promotion rank is mistaken for a capture-promotion or vice versa.
// This split matches _examples/original_source/Engine/Board.cpp's
// generate_pawn_moves directly: a quiet push branch (plain push plus the
// rank-2/rank-7 double push), a promotion branch gated on the
// second/seventh rank, and separately, on the attack side, four
// promotion-capture variants versus plain captures and en passant.
func (b *Board) generatePawnMoves(ml *MoveList, us Color, enemies, occupied Bitboard) {
	pawns := b.Pieces[us][Pawn]
	empty := ^occupied

	var push1, push2, attackL, attackR Bitboard
	var promotionRank Bitboard
	var pushDir int

	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & Rank3).North() & empty
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		promotionRank = Rank8
		pushDir = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & Rank6).South() & empty
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		promotionRank = Rank1
		pushDir = -8
	}

	// Push branch.
	nonPromo := push1 &^ promotionRank
	for nonPromo != 0 {
		to := nonPromo.PopLSB()
		ml.Add(NewQuiet(Square(int(to)-pushDir), to))
	}
	for push2 != 0 {
		to := push2.PopLSB()
		ml.Add(NewDoublePush(Square(int(to)-2*pushDir), to))
	}
	promoPush := push1 & promotionRank
	for promoPush != 0 {
		to := promoPush.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir), to, false)
	}

	// Capture branch.
	nonPromoL := attackL &^ promotionRank
	for nonPromoL != 0 {
		to := nonPromoL.PopLSB()
		ml.Add(NewCapture(Square(int(to)-pushDir+1), to))
	}
	nonPromoR := attackR &^ promotionRank
	for nonPromoR != 0 {
		to := nonPromoR.PopLSB()
		ml.Add(NewCapture(Square(int(to)-pushDir-1), to))
	}
	promoL := attackL & promotionRank
	for promoL != 0 {
		to := promoL.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir+1), to, true)
	}
	promoR := attackR & promotionRank
	for promoR != 0 {
		to := promoR.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir-1), to, true)
	}

	if b.EnPassant != NoSquare {
		epBB := SquareBB(b.EnPassant)
		var epAttackers Bitboard
		if us == White {
			epAttackers = (epBB.SouthWest() | epBB.SouthEast()) & pawns
		} else {
			epAttackers = (epBB.NorthWest() | epBB.NorthEast()) & pawns
		}
		for epAttackers != 0 {
			from := epAttackers.PopLSB()
			ml.Add(NewEnPassant(from, b.EnPassant))
		}
	}
}

// addPromotions adds all four promotion moves, queen first (the move
// ordering heuristic relies on trying the strongest promotion first).
func addPromotions(ml *MoveList, from, to Square, capture bool) {
	if capture {
		ml.Add(NewPromoCapture(from, to, Queen))
		ml.Add(NewPromoCapture(from, to, Rook))
		ml.Add(NewPromoCapture(from, to, Bishop))
		ml.Add(NewPromoCapture(from, to, Knight))
		return
	}
	ml.Add(NewPromotion(from, to, Queen))
	ml.Add(NewPromotion(from, to, Rook))
	ml.Add(NewPromotion(from, to, Bishop))
	ml.Add(NewPromotion(from, to, Knight))
}

func (b *Board) generateKingMoves(ml *MoveList, us Color, enemies Bitboard) {
	from := b.KingSquare[us]
	if from == NoSquare {
		return
	}
	targets := KingAttacks(from) &^ b.Occupied[us]
	addTargets(ml, from, targets, enemies)
}

func (b *Board) generateCastlingMoves(ml *MoveList, us Color) {
	them := us.Other()

	if us == White {
		if b.CastlingRights&WhiteKingSideCastle != 0 &&
			b.AllOccupied&(SquareBB(F1)|SquareBB(G1)) == 0 &&
			!b.IsSquareAttacked(E1, them) && !b.IsSquareAttacked(F1, them) && !b.IsSquareAttacked(G1, them) {
			ml.Add(NewCastleKingSide(E1, G1))
		}
		if b.CastlingRights&WhiteQueenSideCastle != 0 &&
			b.AllOccupied&(SquareBB(B1)|SquareBB(C1)|SquareBB(D1)) == 0 &&
			!b.IsSquareAttacked(E1, them) && !b.IsSquareAttacked(D1, them) && !b.IsSquareAttacked(C1, them) {
			ml.Add(NewCastleQueenSide(E1, C1))
		}
	} else {
		if b.CastlingRights&BlackKingSideCastle != 0 &&
			b.AllOccupied&(SquareBB(F8)|SquareBB(G8)) == 0 &&
			!b.IsSquareAttacked(E8, them) && !b.IsSquareAttacked(F8, them) && !b.IsSquareAttacked(G8, them) {
			ml.Add(NewCastleKingSide(E8, G8))
		}
		if b.CastlingRights&BlackQueenSideCastle != 0 &&
			b.AllOccupied&(SquareBB(B8)|SquareBB(C8)|SquareBB(D8)) == 0 &&
			!b.IsSquareAttacked(E8, them) && !b.IsSquareAttacked(D8, them) && !b.IsSquareAttacked(C8, them) {
			ml.Add(NewCastleQueenSide(E8, C8))
		}
	}
}

// generatePseudoCaptures emits captures, capture-promotions, en passant,
// and (since quiescence must also resolve them) push-promotions.
func (b *Board) generatePseudoCaptures(ml *MoveList) {
	us := b.SideToMove
	enemies := b.Occupied[us.Other()]
	occupied := b.AllOccupied

	pawns := b.Pieces[us][Pawn]
	var attackL, attackR Bitboard
	var promotionRank Bitboard
	var pushDir int

	if us == White {
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		promotionRank = Rank8
		pushDir = 8
	} else {
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		promotionRank = Rank1
		pushDir = -8
	}

	nonPromoL := attackL &^ promotionRank
	for nonPromoL != 0 {
		to := nonPromoL.PopLSB()
		ml.Add(NewCapture(Square(int(to)-pushDir+1), to))
	}
	nonPromoR := attackR &^ promotionRank
	for nonPromoR != 0 {
		to := nonPromoR.PopLSB()
		ml.Add(NewCapture(Square(int(to)-pushDir-1), to))
	}
	promoL := attackL & promotionRank
	for promoL != 0 {
		to := promoL.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir+1), to, true)
	}
	promoR := attackR & promotionRank
	for promoR != 0 {
		to := promoR.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir-1), to, true)
	}

	empty := ^occupied
	var push1 Bitboard
	if us == White {
		push1 = pawns.North() & empty & Rank8
	} else {
		push1 = pawns.South() & empty & Rank1
	}
	for push1 != 0 {
		to := push1.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir), to, false)
	}

	if b.EnPassant != NoSquare {
		epBB := SquareBB(b.EnPassant)
		var epAttackers Bitboard
		if us == White {
			epAttackers = (epBB.SouthWest() | epBB.SouthEast()) & pawns
		} else {
			epAttackers = (epBB.NorthWest() | epBB.NorthEast()) & pawns
		}
		for epAttackers != 0 {
			from := epAttackers.PopLSB()
			ml.Add(NewEnPassant(from, b.EnPassant))
		}
	}

	knights := b.Pieces[us][Knight]
	for knights != 0 {
		from := knights.PopLSB()
		attacks := KnightAttacks(from) & enemies
		for attacks != 0 {
			ml.Add(NewCapture(from, attacks.PopLSB()))
		}
	}

	bishops := b.Pieces[us][Bishop]
	for bishops != 0 {
		from := bishops.PopLSB()
		attacks := BishopAttacks(from, occupied) & enemies
		for attacks != 0 {
			ml.Add(NewCapture(from, attacks.PopLSB()))
		}
	}

	rooks := b.Pieces[us][Rook]
	for rooks != 0 {
		from := rooks.PopLSB()
		attacks := RookAttacks(from, occupied) & enemies
		for attacks != 0 {
			ml.Add(NewCapture(from, attacks.PopLSB()))
		}
	}

	queens := b.Pieces[us][Queen]
	for queens != 0 {
		from := queens.PopLSB()
		attacks := QueenAttacks(from, occupied) & enemies
		for attacks != 0 {
			ml.Add(NewCapture(from, attacks.PopLSB()))
		}
	}

	from := b.KingSquare[us]
	if from != NoSquare {
		attacks := KingAttacks(from) & enemies
		for attacks != 0 {
			ml.Add(NewCapture(from, attacks.PopLSB()))
		}
	}
}

// HasLegalMoves returns true if the side to move has at least one legal
// move. Short-circuits on the first one found rather than generating
// the full legal list.
func (b *Board) HasLegalMoves() bool {
	us := b.SideToMove
	pseudo := b.PseudoLegalMoves()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		b.Make(m)
		attacked := b.IsSquareAttacked(b.KingSquare[us], us.Other())
		b.Undo(m)
		if !attacked {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if the side to move is in check with no legal moves.
func (b *Board) IsCheckmate() bool {
	return b.InCheck() && !b.HasLegalMoves()
}

// IsStalemate returns true if the side to move is not in check but has no legal moves.
func (b *Board) IsStalemate() bool {
	return !b.InCheck() && !b.HasLegalMoves()
}
