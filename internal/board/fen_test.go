package board

import (
	"testing"
)

func TestParseFENStartingPosition(t *testing.T) {
	pos := mustParseFEN(t, StartFEN)

	if pos.SideToMove() != White {
		t.Errorf("SideToMove = %s, want White", pos.SideToMove())
	}
	if pos.CastlingRights != AllCastling {
		t.Errorf("CastlingRights = %s, want KQkq", pos.CastlingRights)
	}
	if pos.EnPassant != NoSquare {
		t.Errorf("EnPassant = %s, want -", pos.EnPassant)
	}
	if pos.AllOccupied.PopCount() != 32 {
		t.Errorf("piece count = %d, want 32", pos.AllOccupied.PopCount())
	}
	if pos.KingSquare[White] != E1 || pos.KingSquare[Black] != E8 {
		t.Errorf("kings at %s/%s, want e1/e8", pos.KingSquare[White], pos.KingSquare[Black])
	}
	if err := pos.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 14",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	}

	for _, fen := range fens {
		pos := mustParseFEN(t, fen)
		if got := pos.ToFEN(); got != fen {
			t.Errorf("round trip:\n in  %s\n out %s", fen, got)
		}
	}
}

func TestPlyParity(t *testing.T) {
	tests := []struct {
		fen  string
		ply  int
		side Color
	}{
		{StartFEN, 0, White},
		{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", 1, Black},
		{"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2", 2, White},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 14", 27, Black},
	}

	for _, tc := range tests {
		pos := mustParseFEN(t, tc.fen)
		if pos.PlyCount != tc.ply {
			t.Errorf("%s: PlyCount = %d, want %d", tc.fen, pos.PlyCount, tc.ply)
		}
		if pos.SideToMove() != tc.side {
			t.Errorf("%s: SideToMove = %s, want %s", tc.fen, pos.SideToMove(), tc.side)
		}
	}
}

func TestParseFENRejectsGarbage(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",          // 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KXkq - 0 1", // bad rights
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", // rank overflow
		"8/8/8/8/8/8/8/8 w - - 0 1",                                // no kings
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", // bad fullmove
	}

	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) accepted", fen)
		}
	}
}

func TestParseFENSetsCheck(t *testing.T) {
	// Fool's Mate final position, white to move and mated.
	pos := mustParseFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 3")

	if !pos.InCheck {
		t.Error("InCheck not set for a checked side to move")
	}
	if !pos.IsCheckmate() {
		t.Error("Expected checkmate but got false")
	}
}
