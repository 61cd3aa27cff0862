package board

// Attack generation. Knight, king and pawn attacks come from precomputed
// per-square tables; sliding attacks ray-cast through per-direction ray
// tables, clipping each ray at its first blocker. A ray never extends past
// the first occupied square, and the table construction walks file/rank
// deltas so a ray can never wrap across the board edge.

// Ray directions, indexed into rayAttacks.
const (
	dirNorth = iota
	dirSouth
	dirEast
	dirWest
	dirNorthEast
	dirNorthWest
	dirSouthEast
	dirSouthWest
	numDirs
)

var dirDeltas = [numDirs][2]int{
	dirNorth:     {0, 1},
	dirSouth:     {0, -1},
	dirEast:      {1, 0},
	dirWest:      {-1, 0},
	dirNorthEast: {1, 1},
	dirNorthWest: {-1, 1},
	dirSouthEast: {1, -1},
	dirSouthWest: {-1, -1},
}

var (
	rayAttacks    [numDirs][64]Bitboard
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // [Color][Square], capture diagonals only

	// Squares strictly between two aligned squares, and the full line
	// through them. Used for castling emptiness and pin-aware tests.
	betweenBB [64][64]Bitboard
)

func init() {
	initRayAttacks()
	initKnightAttacks()
	initKingAttacks()
	initPawnAttacks()
	initBetweenBB()
}

func initRayAttacks() {
	for sq := A1; sq <= H8; sq++ {
		for dir := 0; dir < numDirs; dir++ {
			df, dr := dirDeltas[dir][0], dirDeltas[dir][1]
			f, r := sq.File()+df, sq.Rank()+dr
			for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
				rayAttacks[dir][sq] |= SquareBB(NewSquare(f, r))
				f += df
				r += dr
			}
		}
	}
}

func initKnightAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		// 2+1 jumps in every direction; the file masks reject offsets
		// that would wrap across the a/h edge.
		attacks := Empty
		attacks |= (bb << 17) & NotFileA  // NNE
		attacks |= (bb << 15) & NotFileH  // NNW
		attacks |= (bb >> 17) & NotFileH  // SSW
		attacks |= (bb >> 15) & NotFileA  // SSE
		attacks |= (bb << 10) & NotFileAB // ENE
		attacks |= (bb << 6) & NotFileGH  // WNW
		attacks |= (bb >> 10) & NotFileGH // WSW
		attacks |= (bb >> 6) & NotFileAB  // ESE

		knightAttacks[sq] = attacks
	}
}

func initKingAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		attacks := bb.North() | bb.South()
		attacks |= bb.East() | bb.West()
		attacks |= bb.NorthEast() | bb.NorthWest()
		attacks |= bb.SouthEast() | bb.SouthWest()

		kingAttacks[sq] = attacks
	}
}

func initPawnAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		// A pawn attacks its capture diagonals only, never the push
		// square ahead of it.
		pawnAttacks[White][sq] = bb.NorthEast() | bb.NorthWest()
		pawnAttacks[Black][sq] = bb.SouthEast() | bb.SouthWest()
	}
}

func initBetweenBB() {
	for sq1 := A1; sq1 <= H8; sq1++ {
		for dir := 0; dir < numDirs; dir++ {
			df, dr := dirDeltas[dir][0], dirDeltas[dir][1]
			var between Bitboard
			f, r := sq1.File()+df, sq1.Rank()+dr
			for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
				sq2 := NewSquare(f, r)
				betweenBB[sq1][sq2] = between
				between |= SquareBB(sq2)
				f += df
				r += dr
			}
		}
	}
}

// positiveDir reports whether a ray's squares have higher indices than its
// origin, which decides whether the first blocker is the lowest or highest
// set bit on the ray.
func positiveDir(dir int) bool {
	switch dir {
	case dirNorth, dirEast, dirNorthEast, dirNorthWest:
		return true
	}
	return false
}

// slidingAttack returns the attacked squares along one ray, stopping at
// (and including) the first occupied square.
func slidingAttack(dir int, sq Square, occupied Bitboard) Bitboard {
	attacks := rayAttacks[dir][sq]
	blockers := attacks & occupied
	if blockers != 0 {
		var first Square
		if positiveDir(dir) {
			first = blockers.LSB()
		} else {
			first = blockers.MSB()
		}
		attacks &^= rayAttacks[dir][first]
	}
	return attacks
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the pawn capture diagonals for a square and color.
func PawnAttacks(sq Square, c Color) Bitboard {
	return pawnAttacks[c][sq]
}

// BishopAttacks returns the bishop attack bitboard for a square with the
// given occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return slidingAttack(dirNorthEast, sq, occupied) |
		slidingAttack(dirNorthWest, sq, occupied) |
		slidingAttack(dirSouthEast, sq, occupied) |
		slidingAttack(dirSouthWest, sq, occupied)
}

// RookAttacks returns the rook attack bitboard for a square with the given
// occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return slidingAttack(dirNorth, sq, occupied) |
		slidingAttack(dirSouth, sq, occupied) |
		slidingAttack(dirEast, sq, occupied) |
		slidingAttack(dirWest, sq, occupied)
}

// QueenAttacks returns the queen attack bitboard for a square with the given
// occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// Between returns the squares strictly between two squares, or empty if they
// are not aligned on a rank, file or diagonal.
func Between(sq1, sq2 Square) Bitboard {
	return betweenBB[sq1][sq2]
}

// AttackersByColor returns the pieces of color c attacking sq, under the
// given occupancy. Attacks are generated from sq as if it were occupied by
// each attacker type, then matched against the real pieces; this is
// observably equivalent to unioning every attacker's move set.
func (p *Position) AttackersByColor(sq Square, c Color, occupied Bitboard) Bitboard {
	victim := c.Other()
	return (pawnAttacks[victim][sq] & p.Pieces[c][Pawn]) |
		(knightAttacks[sq] & p.Pieces[c][Knight]) |
		(kingAttacks[sq] & p.Pieces[c][King]) |
		(BishopAttacks(sq, occupied) & (p.Pieces[c][Bishop] | p.Pieces[c][Queen])) |
		(RookAttacks(sq, occupied) & (p.Pieces[c][Rook] | p.Pieces[c][Queen]))
}

// IsSquareAttacked returns true if the square is attacked by the given color
// under the current occupancy.
func (p *Position) IsSquareAttacked(sq Square, byColor Color) bool {
	return p.AttackersByColor(sq, byColor, p.AllOccupied) != 0
}

// IsInCheck reports whether the given color's king is attacked.
func (p *Position) IsInCheck(c Color) bool {
	kingBB := p.Pieces[c][King]
	if kingBB == 0 {
		return false
	}
	return p.IsSquareAttacked(kingBB.LSB(), c.Other())
}

// updateCheck recomputes the committed check status for the side to move.
func (p *Position) updateCheck() {
	p.InCheck = p.IsInCheck(p.SideToMove())
}
