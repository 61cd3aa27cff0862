package board

// MoveSet is the pseudo-legal generation result for a single piece. En
// passant eligibility is part of the result rather than a state write:
// generation never mutates the position.
type MoveSet struct {
	// Destinations holds every candidate destination square.
	Destinations Bitboard

	// EnPassant is the en passant capture destination contained in
	// Destinations, or NoSquare. The captured pawn sits one rank behind
	// the destination, not on it.
	EnPassant Square

	// Promotion is true when the piece is a pawn and some destination
	// lies on its final rank. The promoted kind is chosen by the caller
	// before the move is committed.
	Promotion bool
}

// PseudoLegalMoves generates the candidate destinations for the piece on sq,
// ignoring king safety. The empty set is returned for an empty or invalid
// square.
func (p *Position) PseudoLegalMoves(sq Square) MoveSet {
	if !sq.IsValid() {
		return MoveSet{EnPassant: NoSquare}
	}
	pc := p.PieceAt(sq)
	if pc == NoPiece {
		return MoveSet{EnPassant: NoSquare}
	}
	return p.pseudoMoves(sq, pc)
}

// pseudoMoves dispatches on the piece kind. The Piece union is closed, so
// the switch is exhaustive; there is no silent fallthrough for an unknown
// symbol.
func (p *Position) pseudoMoves(sq Square, pc Piece) MoveSet {
	us := pc.Color()
	ms := MoveSet{EnPassant: NoSquare}

	switch pc.Type() {
	case Pawn:
		return p.pawnMoves(sq, us)
	case Knight:
		ms.Destinations = KnightAttacks(sq) &^ p.Occupied[us]
	case Bishop:
		ms.Destinations = BishopAttacks(sq, p.AllOccupied) &^ p.Occupied[us]
	case Rook:
		ms.Destinations = RookAttacks(sq, p.AllOccupied) &^ p.Occupied[us]
	case Queen:
		ms.Destinations = QueenAttacks(sq, p.AllOccupied) &^ p.Occupied[us]
	case King:
		ms.Destinations = KingAttacks(sq)&^p.Occupied[us] | p.castleMoves(sq, us)
	}

	return ms
}

// pawnMoves generates pushes, double pushes, diagonal captures and the en
// passant capture for a single pawn.
func (p *Position) pawnMoves(sq Square, us Color) MoveSet {
	bb := SquareBB(sq)
	empty := ^p.AllOccupied
	them := us.Other()

	var push1, push2, promoRank Bitboard
	if us == White {
		push1 = bb.North() & empty
		// The double push needs both the intermediate and destination
		// squares empty; masking push1 to rank 3 keeps it to pawns on
		// their starting rank.
		push2 = (push1 & Rank3).North() & empty
		promoRank = Rank8
	} else {
		push1 = bb.South() & empty
		push2 = (push1 & Rank6).South() & empty
		promoRank = Rank1
	}

	dest := push1 | push2
	dest |= PawnAttacks(sq, us) & p.Occupied[them]

	ms := MoveSet{EnPassant: NoSquare}

	// The en passant window is open for exactly one ply after an enemy
	// double push; the target square is diagonal-adjacent only for pawns
	// on an adjacent file, so the attack table doubles as the adjacency
	// test.
	if p.EnPassant != NoSquare && PawnAttacks(sq, us).IsSet(p.EnPassant) {
		dest = dest.Set(p.EnPassant)
		ms.EnPassant = p.EnPassant
	}

	ms.Destinations = dest
	ms.Promotion = dest&promoRank != 0
	return ms
}

// Castling squares per color: king home, transit square, rook home,
// and the squares that must be empty between king and rook.
var castleSides = [2][2]struct {
	kingFrom, kingTo, transit, rookFrom Square
	between                             Bitboard
}{
	White: {
		{E1, G1, F1, H1, SquareBB(F1) | SquareBB(G1)},                // kingside
		{E1, C1, D1, A1, SquareBB(B1) | SquareBB(C1) | SquareBB(D1)}, // queenside
	},
	Black: {
		{E8, G8, F8, H8, SquareBB(F8) | SquareBB(G8)},
		{E8, C8, D8, A8, SquareBB(B8) | SquareBB(C8) | SquareBB(D8)},
	},
}

// castleMoves returns castling destinations for the king on sq. Checked
// here: the rights flag, the empty between-squares, the rook still home,
// and that neither the king's square nor its transit square is attacked
// (pre-move occupancy). The destination square's safety is decided by the
// legality filter against the post-move occupancy.
func (p *Position) castleMoves(sq Square, us Color) Bitboard {
	them := us.Other()
	var dest Bitboard

	for side, sc := range castleSides[us] {
		kingSide := side == 0
		if !p.CastlingRights.CanCastle(us, kingSide) {
			continue
		}
		if sq != sc.kingFrom {
			continue
		}
		if p.AllOccupied&sc.between != 0 {
			continue
		}
		if !p.Pieces[us][Rook].IsSet(sc.rookFrom) {
			continue
		}
		if p.IsSquareAttacked(sc.kingFrom, them) || p.IsSquareAttacked(sc.transit, them) {
			continue
		}
		dest = dest.Set(sc.kingTo)
	}

	return dest
}

// classify builds the concrete Move for a from/to pair, attaching the
// castling/en passant/promotion flag the executor needs. Promotions default
// to queen; CommitMove substitutes the caller's choice.
func (p *Position) classify(from, to Square, pc Piece) Move {
	switch {
	case pc.Type() == King && abs(int(to)-int(from)) == 2 && to.Rank() == from.Rank():
		return NewCastling(from, to)
	case pc.Type() == Pawn && p.EnPassant != NoSquare && to == p.EnPassant:
		return NewEnPassant(from, to)
	case pc.Type() == Pawn && to.RelativeRank(pc.Color()) == 7:
		return NewPromotion(from, to, Queen)
	}
	return NewMove(from, to)
}

// LegalMoves returns the legal destinations for the piece on sq for the side
// to move. The empty set is returned when sq is empty, out of bounds, or
// holds an opposing piece. Each candidate is vetted by trial execution:
// apply, test own-king safety, revert.
func (p *Position) LegalMoves(sq Square) Bitboard {
	if !sq.IsValid() {
		return Empty
	}
	pc := p.PieceAt(sq)
	if pc == NoPiece || pc.Color() != p.SideToMove() {
		return Empty
	}

	ms := p.pseudoMoves(sq, pc)
	legal := Empty

	for dest := ms.Destinations; dest != 0; {
		to := dest.PopLSB()
		m := p.classify(sq, to, pc)

		undo := p.Apply(m, Trial)
		if !p.IsInCheck(pc.Color()) {
			legal = legal.Set(to)
		}
		p.Revert(undo)
	}

	return legal
}

// HasLegalMoves returns true if the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	occ := p.Occupied[p.SideToMove()]
	for occ != 0 {
		if !p.LegalMoves(occ.PopLSB()).Empty() {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if the side to move is in check with no legal
// moves.
func (p *Position) IsCheckmate() bool {
	return p.IsInCheck(p.SideToMove()) && !p.HasLegalMoves()
}

// IsStalemate returns true if the side to move is not in check but has no
// legal moves.
func (p *Position) IsStalemate() bool {
	return !p.IsInCheck(p.SideToMove()) && !p.HasLegalMoves()
}
