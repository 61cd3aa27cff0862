package board

// Apply executes m on the position and returns the undo record. All move
// kinds route through here; Trial and Committed share the identical
// board-effect path so the legality filter exercises the same code the
// committed game does.
//
// Board effects, in order: en passant victim removal or ordinary capture
// removal, piece relocation, promotion swap, castling rook hop. Committed
// mode additionally closes the previous en passant window, updates castling
// rights, records the move, advances the ply and recomputes check for the
// new side to move. Trial mode leaves all of that untouched.
func (p *Position) Apply(m Move, mode ApplyMode) Undo {
	undo := Undo{prev: *p}

	from, to := m.From(), m.To()
	pc := p.PieceAt(from)
	if pc == NoPiece {
		return undo
	}
	us := pc.Color()

	p.LastCaptured = NoPiece
	if m.IsEnPassant() {
		// The victim pawn sits behind the destination square.
		victim := to - 8
		if us == Black {
			victim = to + 8
		}
		p.LastCaptured = p.removePiece(victim)
	} else if p.PieceAt(to) != NoPiece {
		p.LastCaptured = p.removePiece(to)
	}

	p.movePiece(from, to)

	if m.IsPromotion() {
		bb := SquareBB(to)
		p.Pieces[us][Pawn] &^= bb
		p.Pieces[us][m.Promotion()] |= bb
	}

	if m.IsCastling() {
		rookFrom, rookTo := rookCastleSquares(to)
		p.movePiece(rookFrom, rookTo)
	}

	if mode == Committed {
		p.EnPassant = NoSquare
		if pc.Type() == Pawn && abs(int(to)-int(from)) == 16 {
			p.EnPassant = Square((int(from) + int(to)) / 2)
		}

		p.updateCastlingRights(pc, from, to)

		p.LastMove = m
		p.LastMoved = pc.Type()
		p.PlyCount++
		p.updateCheck()
	}

	return undo
}

// Revert restores the position to the state captured by undo. Apply
// followed by Revert is bit-identical by construction.
func (p *Position) Revert(undo Undo) {
	*p = undo.prev
}

// rookCastleSquares maps the king's castling destination to the rook's
// from/to squares.
func rookCastleSquares(kingTo Square) (Square, Square) {
	switch kingTo {
	case G1:
		return H1, F1
	case C1:
		return A1, D1
	case G8:
		return H8, F8
	case C8:
		return A8, D8
	}
	return NoSquare, NoSquare
}

// updateCastlingRights clears rights when a king or rook leaves its home
// square, or when a rook is captured on one. Rights only ever shrink.
func (p *Position) updateCastlingRights(pc Piece, from, to Square) {
	if p.CastlingRights == 0 {
		return
	}

	if pc.Type() == King {
		if pc.Color() == White {
			p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}

	for _, sq := range [2]Square{from, to} {
		switch sq {
		case A1:
			p.CastlingRights &^= WhiteQueenSideCastle
		case H1:
			p.CastlingRights &^= WhiteKingSideCastle
		case A8:
			p.CastlingRights &^= BlackQueenSideCastle
		case H8:
			p.CastlingRights &^= BlackKingSideCastle
		}
	}
}
