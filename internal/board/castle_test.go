package board

import (
	"testing"
)

func TestCastlingAvailable(t *testing.T) {
	pos := mustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	got := pos.LegalMoves(E1)
	if !got.IsSet(G1) {
		t.Error("kingside castle g1 missing")
	}
	if !got.IsSet(C1) {
		t.Error("queenside castle c1 missing")
	}
}

// The transit square must not be attacked under the pre-move occupancy.
func TestCastlingTransitAttacked(t *testing.T) {
	// Black rook on f8 covers f1: kingside is off, queenside unaffected.
	pos := mustParseFEN(t, "r3kr2/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	got := pos.LegalMoves(E1)
	if got.IsSet(G1) {
		t.Error("kingside castle allowed through attacked f1")
	}
	if !got.IsSet(C1) {
		t.Error("queenside castle lost to an attack on f1")
	}
}

// The destination square's safety is caught by the legality filter.
func TestCastlingIntoCheck(t *testing.T) {
	// Black rook on g8 covers g1.
	pos := mustParseFEN(t, "r3k1r1/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	if pos.LegalMoves(E1).IsSet(G1) {
		t.Error("castle into check on g1 allowed")
	}
}

func TestCastlingWhileInCheck(t *testing.T) {
	// Black rook on e8 checks the king on e1.
	pos := mustParseFEN(t, "4r2k/8/8/8/8/8/8/R3K2R w KQ - 0 1")

	if !pos.IsInCheck(White) {
		t.Fatal("fixture: white not in check")
	}
	got := pos.LegalMoves(E1)
	if got.IsSet(G1) || got.IsSet(C1) {
		t.Errorf("castling allowed while in check: %v", got.Squares())
	}
}

func TestCastlingBlocked(t *testing.T) {
	// Bishop on f1 blocks kingside; knight on b1 blocks queenside even
	// though b1 is not a king transit square.
	pos := mustParseFEN(t, "r3k2r/8/8/8/8/8/8/RN2KB1R w KQkq - 0 1")

	got := pos.LegalMoves(E1)
	if got.IsSet(G1) {
		t.Error("kingside castle allowed through occupied f1")
	}
	if got.IsSet(C1) {
		t.Error("queenside castle allowed with b1 occupied")
	}
}

func TestCastlingWithoutRights(t *testing.T) {
	pos := mustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1")

	got := pos.LegalMoves(E1)
	if got.IsSet(G1) || got.IsSet(C1) {
		t.Errorf("castling allowed without rights: %v", got.Squares())
	}
}

// The queenside rook passes through b1; the king does not. An attack on b1
// must not forbid queenside castling.
func TestCastlingQueensideB1Attacked(t *testing.T) {
	pos := mustParseFEN(t, "1r2k3/8/8/8/8/8/8/R3K3 w Q - 0 1")

	if !pos.LegalMoves(E1).IsSet(C1) {
		t.Error("queenside castle refused over an attack on b1")
	}
}
