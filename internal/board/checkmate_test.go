package board

import (
	"testing"
)

// Fool's Mate: 1.f3 e5 2.g4 Qh4#. White is in check and every white piece
// has an empty legal move set.
func TestFoolsMate(t *testing.T) {
	pos := NewPosition()

	moves := []struct{ from, to Square }{
		{F2, F3}, {E7, E5},
		{G2, G4}, {D8, H4},
	}
	for _, mv := range moves {
		if err := pos.CommitMove(mv.from, mv.to, NoPieceType); err != nil {
			t.Fatalf("CommitMove(%s, %s): %v", mv.from, mv.to, err)
		}
	}

	t.Log("Fool's Mate position:")
	t.Log(pos)

	if !pos.IsInCheck(White) {
		t.Error("white not reported in check")
	}
	if !pos.InCheck {
		t.Error("cached check status not set")
	}

	occ := pos.Occupied[White]
	for occ != 0 {
		sq := occ.PopLSB()
		if got := pos.LegalMoves(sq); !got.Empty() {
			t.Errorf("LegalMoves(%s) = %v, want empty set", sq, got.Squares())
		}
	}

	if !pos.IsCheckmate() {
		t.Error("Expected checkmate but got false")
	}
	if pos.IsStalemate() {
		t.Error("checkmate position reported as stalemate")
	}
}

func TestBackRankMate(t *testing.T) {
	// White: Ka1, Ra8. Black: Kh8, pawns g7 h7 blocking escape.
	pos := mustParseFEN(t, "R6k/6pp/8/8/8/8/8/K7 b - - 0 1")

	t.Log("Checkmate position:")
	t.Log(pos)

	if !pos.IsCheckmate() {
		t.Error("Expected checkmate but got false")
	}
}

func TestNotCheckmateKingCanCapture(t *testing.T) {
	// Rook gives check on g8 but the king can take it.
	pos := mustParseFEN(t, "6Rk/8/8/8/8/8/8/K7 b - - 0 1")

	if pos.IsCheckmate() {
		t.Error("Expected NOT checkmate but got true")
	}
	if !pos.LegalMoves(H8).IsSet(G8) {
		t.Error("king cannot capture the checking rook")
	}
}

// Not in check, no legal moves: stalemate, not checkmate.
func TestStalemate(t *testing.T) {
	// Black king on a8 is boxed in by the queen on b6.
	pos := mustParseFEN(t, "k7/8/1Q6/8/8/8/8/7K b - - 0 1")

	if pos.IsInCheck(Black) {
		t.Fatal("stalemate fixture has black in check")
	}
	if pos.HasLegalMoves() {
		t.Fatal("stalemate fixture has legal moves")
	}
	if !pos.IsStalemate() {
		t.Error("Expected stalemate but got false")
	}
	if pos.IsCheckmate() {
		t.Error("stalemate position reported as checkmate")
	}
}

// A check must be answerable by block, capture, or king move.
func TestCheckEvasions(t *testing.T) {
	// Black queen checks on h4 after 1.f3 e5 2.h3 Qh4+. The g-pawn can
	// block on g3 and that is white's only answer apart from none: the
	// king has no flight square.
	pos := NewPosition()
	for _, mv := range []struct{ from, to Square }{
		{F2, F3}, {E7, E5},
		{H2, H3}, {D8, H4},
	} {
		if err := pos.CommitMove(mv.from, mv.to, NoPieceType); err != nil {
			t.Fatalf("CommitMove(%s, %s): %v", mv.from, mv.to, err)
		}
	}

	if !pos.IsInCheck(White) {
		t.Fatal("white not in check")
	}
	if pos.IsCheckmate() {
		t.Fatal("position is not mate, g3 blocks")
	}

	if got := pos.LegalMoves(G2); got != SquareBB(G3) {
		t.Errorf("LegalMoves(g2) = %v, want only g3", got.Squares())
	}
	if got := pos.LegalMoves(E1); !got.Empty() {
		t.Errorf("LegalMoves(e1) = %v, want empty set", got.Squares())
	}
}
