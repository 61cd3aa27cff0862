package board

import "fmt"

// Move encodes a chess move in 16 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-13: promotion piece (0=Knight, 1=Bishop, 2=Rook, 3=Queen)
// bits 14-15: flags (0=normal, 1=promotion, 2=en passant, 3=castling)
type Move uint16

// Move flags
const (
	FlagNormal    uint16 = 0 << 14
	FlagPromotion uint16 = 1 << 14
	FlagEnPassant uint16 = 2 << 14
	FlagCastling  uint16 = 3 << 14
)

// NoMove represents an invalid or absent move.
const NoMove Move = 0

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move(from) | Move(to)<<6 | Move(promo-Knight)<<12 | Move(FlagPromotion)
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(FlagEnPassant)
}

// NewCastling creates a castling move, encoded as the king's movement.
func NewCastling(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(FlagCastling)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Flag returns the move flag bits.
func (m Move) Flag() uint16 {
	return uint16(m) & 0xC000
}

// Promotion returns the promotion piece type. Only meaningful when
// IsPromotion is true.
func (m Move) Promotion() PieceType {
	return PieceType((m>>12)&3) + Knight
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Flag() == FlagPromotion
}

// IsCastling returns true if this is a castling move.
func (m Move) IsCastling() bool {
	return m.Flag() == FlagCastling
}

// IsEnPassant returns true if this is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// String returns the long algebraic form of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()

	if m.IsPromotion() {
		s += string("nbrq"[m.Promotion()-Knight])
	}

	return s
}

// ParseMove parses a long algebraic move string against a position, so that
// castling and en passant are flagged correctly.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NoMove, fmt.Errorf("invalid move string: %q", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		return NewPromotion(from, to, promo), nil
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("no piece at %s: %w", from, ErrEmptySquare)
	}

	switch {
	case piece.Type() == King && abs(int(to)-int(from)) == 2:
		return NewCastling(from, to), nil
	case piece.Type() == Pawn && to == pos.EnPassant:
		return NewEnPassant(from, to), nil
	}

	return NewMove(from, to), nil
}

// ApplyMode selects how the executor applies a move.
type ApplyMode uint8

const (
	// Trial mutates bitboards only; game state (ply, rights, en passant
	// window, check status) is untouched. Used by the legality filter,
	// which always reverts.
	Trial ApplyMode = iota

	// Committed mutates bitboards and advances the game state.
	Committed
)

// Undo captures the position before an apply so the caller can restore it
// exactly, including any captured piece. The position is fixed-size value
// data, so a full snapshot is cheap and makes the trial round-trip
// bit-identical by construction.
type Undo struct {
	prev Position
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
