package board

import (
	"fmt"
	"strings"
)

// CastlingRights represents the available castling options.
// Rights are monotonic: once cleared they are never restored.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
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

// CanCastle returns true if the given side may still castle in the given
// direction. A set flag is necessary but not sufficient; full legality is
// decided during move generation.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// Position is the complete game state: the twelve piece occupancy bitboards
// plus everything derived from the move history that the rules still need
// (turn parity, the one-ply en passant window, castling rights, check
// status). It is a fixed-size value; callers that need history keep their
// own stack of copies.
type Position struct {
	// Piece bitboards, indexed [Color][PieceType]. Pairwise disjoint;
	// their union is AllOccupied.
	Pieces [2][6]Bitboard

	// Cached occupancy unions.
	Occupied    [2]Bitboard
	AllOccupied Bitboard

	// Cached king squares for check detection.
	KingSquare [2]Square

	// PlyCount is incremented once per committed move.
	// White moves on even plies.
	PlyCount int

	// LastMove and LastMoved describe the most recent committed move;
	// they exist to validate en passant eligibility on the very next ply.
	LastMove  Move
	LastMoved PieceType

	// LastCaptured records the piece removed by the most recent apply,
	// before removal, so trial callers can restore it exactly.
	LastCaptured Piece

	// EnPassant is the capture target square during the single ply after
	// a qualifying double pawn push, NoSquare otherwise.
	EnPassant Square

	// InCheck is the check status of the side to move, recomputed after
	// every committed move.
	InCheck bool

	CastlingRights CastlingRights
}

// NewPosition creates the standard starting position: all rights enabled,
// ply zero, White to move.
func NewPosition() *Position {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		// StartFEN is a compile-time constant; failing to parse it is a
		// programmer error, not a reachable input.
		panic(err)
	}
	return pos
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}

// SideToMove returns the color whose turn it is. White moves on even plies.
func (p *Position) SideToMove() Color {
	return Color(p.PlyCount & 1)
}

// CastleRights reports the remaining castling rights for a color.
func (p *Position) CastleRights(c Color) (kingSide, queenSide bool) {
	return p.CastlingRights.CanCastle(c, true), p.CastlingRights.CanCastle(c, false)
}

// FullOccupancy returns the union of all twelve piece bitboards.
func (p *Position) FullOccupancy() Bitboard {
	return p.AllOccupied
}

// PieceAt returns the piece at the given square, or NoPiece if the square is
// empty or out of bounds. Callers must treat NoPiece as a valid answer.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	bb := SquareBB(sq)

	if p.AllOccupied&bb == 0 {
		return NoPiece
	}

	var c Color
	if p.Occupied[White]&bb != 0 {
		c = White
	} else {
		c = Black
	}

	for pt := Pawn; pt <= King; pt++ {
		if p.Pieces[c][pt]&bb != 0 {
			return NewPiece(pt, c)
		}
	}

	return NoPiece
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.AllOccupied&SquareBB(sq) == 0
}

// IsEnemy reports whether the piece on sq belongs to the opponent of pc.
// Querying an empty square is an error: "no piece" is distinct from both
// "enemy" and "friendly".
func (p *Position) IsEnemy(pc Piece, sq Square) (bool, error) {
	if !sq.IsValid() {
		return false, ErrOutOfBounds
	}
	other := p.PieceAt(sq)
	if other == NoPiece {
		return false, ErrEmptySquare
	}
	return other.Color() != pc.Color(), nil
}

// setPiece places a piece on a square.
func (p *Position) setPiece(piece Piece, sq Square) {
	if piece == NoPiece {
		return
	}
	c := piece.Color()
	pt := piece.Type()
	bb := SquareBB(sq)

	p.Pieces[c][pt] |= bb
	p.Occupied[c] |= bb
	p.AllOccupied |= bb

	if pt == King {
		p.KingSquare[c] = sq
	}
}

// removePiece removes and returns the piece on a square.
func (p *Position) removePiece(sq Square) Piece {
	piece := p.PieceAt(sq)
	if piece == NoPiece {
		return NoPiece
	}

	c := piece.Color()
	pt := piece.Type()
	bb := SquareBB(sq)

	p.Pieces[c][pt] &^= bb
	p.Occupied[c] &^= bb
	p.AllOccupied &^= bb

	return piece
}

// movePiece relocates the piece on from to to. The destination must be empty.
func (p *Position) movePiece(from, to Square) {
	piece := p.PieceAt(from)
	if piece == NoPiece {
		return
	}

	c := piece.Color()
	pt := piece.Type()
	moveBB := SquareBB(from) | SquareBB(to)

	p.Pieces[c][pt] ^= moveBB
	p.Occupied[c] ^= moveBB
	p.AllOccupied ^= moveBB

	if pt == King {
		p.KingSquare[c] = to
	}
}

// updateOccupied recalculates the occupancy caches from the piece bitboards.
func (p *Position) updateOccupied() {
	p.Occupied[White] = Empty
	p.Occupied[Black] = Empty

	for pt := Pawn; pt <= King; pt++ {
		p.Occupied[White] |= p.Pieces[White][pt]
		p.Occupied[Black] |= p.Pieces[Black][pt]
	}

	p.AllOccupied = p.Occupied[White] | p.Occupied[Black]
}

// findKings locates and caches the king squares.
func (p *Position) findKings() {
	p.KingSquare[White] = p.Pieces[White][King].LSB()
	p.KingSquare[Black] = p.Pieces[Black][King].LSB()
}

// Validate checks the internal invariants: pairwise-disjoint bitboards whose
// union matches the occupancy caches, and exactly one king per color.
// Violations are programmer errors; they cannot be produced by any input
// reaching the external surface.
func (p *Position) Validate() error {
	var union Bitboard
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			if union&bb != 0 {
				return fmt.Errorf("overlapping bitboards: %v %v", c, pt)
			}
			union |= bb
		}
	}
	if union != p.AllOccupied {
		return fmt.Errorf("occupancy cache out of sync")
	}
	if p.Occupied[White]|p.Occupied[Black] != p.AllOccupied {
		return fmt.Errorf("color occupancy cache out of sync")
	}

	if p.Pieces[White][King].PopCount() != 1 {
		return fmt.Errorf("white must have exactly one king")
	}
	if p.Pieces[Black][King].PopCount() != 1 {
		return fmt.Errorf("black must have exactly one king")
	}
	if p.KingSquare[White] != p.Pieces[White][King].LSB() ||
		p.KingSquare[Black] != p.Pieces[Black][King].LSB() {
		return fmt.Errorf("king square cache out of sync")
	}

	if (p.Pieces[White][Pawn]|p.Pieces[Black][Pawn])&(Rank1|Rank8) != 0 {
		return fmt.Errorf("pawns cannot be on rank 1 or 8")
	}

	return nil
}

// Material returns the material balance in pawns (positive favors white).
func (p *Position) Material() int {
	score := 0
	for pt := Pawn; pt < King; pt++ {
		score += p.Pieces[White][pt].PopCount() * PieceValue[pt]
		score -= p.Pieces[Black][pt].PopCount() * PieceValue[pt]
	}
	return score
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s (ply %d)\n", p.SideToMove(), p.PlyCount)
	fmt.Fprintf(&sb, "Castling: %s\n", p.CastlingRights)
	fmt.Fprintf(&sb, "En passant: %s\n", p.EnPassant)
	fmt.Fprintf(&sb, "In check: %v\n", p.InCheck)
	return sb.String()
}
