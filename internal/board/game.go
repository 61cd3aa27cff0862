package board

// CommitMove validates and applies the move from->to for the side to move.
// promo names the promoted kind when the move is a pawn reaching its final
// rank; it is ignored for every other move. On error the position is
// unchanged.
func (p *Position) CommitMove(from, to Square, promo PieceType) error {
	if !from.IsValid() || !to.IsValid() {
		return ErrOutOfBounds
	}

	pc := p.PieceAt(from)
	if pc == NoPiece {
		return ErrEmptySquare
	}
	if pc.Color() != p.SideToMove() {
		return ErrWrongSideToMove
	}

	if !p.LegalMoves(from).IsSet(to) {
		return ErrIllegalDestination
	}

	var m Move
	if pc.Type() == Pawn && to.RelativeRank(pc.Color()) == 7 {
		switch promo {
		case NoPieceType:
			return ErrPromotionChoiceRequired
		case Knight, Bishop, Rook, Queen:
			m = NewPromotion(from, to, promo)
		default:
			return ErrPromotionChoiceInvalid
		}
	} else {
		m = p.classify(from, to, pc)
	}

	p.Apply(m, Committed)
	return nil
}
