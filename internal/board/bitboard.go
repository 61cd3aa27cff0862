package board

import (
	"math/bits"
	"strings"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8.
type Bitboard uint64

// File masks
const (
	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = 0x0202020202020202
	FileG Bitboard = 0x4040404040404040
	FileH Bitboard = 0x8080808080808080
)

// Rank masks
const (
	Rank1 Bitboard = 0x00000000000000FF
	Rank2 Bitboard = 0x000000000000FF00
	Rank3 Bitboard = 0x0000000000FF0000
	Rank4 Bitboard = 0x00000000FF000000
	Rank5 Bitboard = 0x000000FF00000000
	Rank6 Bitboard = 0x0000FF0000000000
	Rank7 Bitboard = 0x00FF000000000000
	Rank8 Bitboard = 0xFF00000000000000
)

// Edge masks used to stop shifted boards from wrapping across files.
const (
	Empty     Bitboard = 0
	NotFileA  Bitboard = ^FileA
	NotFileH  Bitboard = ^FileH
	NotFileAB Bitboard = ^(FileA | FileB)
	NotFileGH Bitboard = ^(FileG | FileH)
)

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Set sets the bit at the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | (1 << sq)
}

// Clear clears the bit at the given square.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ (1 << sq)
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&(1<<sq) != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the lowest set square, or NoSquare for an empty board.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the highest set square, or NoSquare for an empty board.
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest set square.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Empty returns true if no bits are set.
func (b Bitboard) Empty() bool {
	return b == 0
}

// Shift operations for move generation. East/west shifts mask off the
// wrapped file so a piece on the h-file never "moves" to the a-file.

// North shifts the bitboard one rank up (toward rank 8).
func (b Bitboard) North() Bitboard {
	return b << 8
}

// South shifts the bitboard one rank down (toward rank 1).
func (b Bitboard) South() Bitboard {
	return b >> 8
}

// East shifts the bitboard one file right (toward file h).
func (b Bitboard) East() Bitboard {
	return (b << 1) & NotFileA
}

// West shifts the bitboard one file left (toward file a).
func (b Bitboard) West() Bitboard {
	return (b >> 1) & NotFileH
}

// NorthEast shifts the bitboard one square toward the h8 corner.
func (b Bitboard) NorthEast() Bitboard {
	return (b << 9) & NotFileA
}

// NorthWest shifts the bitboard one square toward the a8 corner.
func (b Bitboard) NorthWest() Bitboard {
	return (b << 7) & NotFileH
}

// SouthEast shifts the bitboard one square toward the h1 corner.
func (b Bitboard) SouthEast() Bitboard {
	return (b >> 7) & NotFileA
}

// SouthWest shifts the bitboard one square toward the a1 corner.
func (b Bitboard) SouthWest() Bitboard {
	return (b >> 9) & NotFileH
}

// Squares returns a slice of all set squares, low to high.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}

// String returns a visual representation of the bitboard.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			if b.IsSet(NewSquare(file, rank)) {
				sb.WriteString("x ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
