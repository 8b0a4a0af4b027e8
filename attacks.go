package chess

import "math/bits"

// Precomputed non-sliding attack tables, built once at package init and
// read-only afterwards.
var knightAttacks [64]BitBoard
var kingAttacks [64]BitBoard
var pawnAttacks [2][64]BitBoard

// Ray tables used by both the sliding-attack backends and by pin/check
// detection. rookRays[sq][d] and bishopRays[sq][d] hold every square
// from sq to the edge of the board in direction d, including the edge
// square and excluding sq itself. Rook directions: 0=N 1=S 2=E 3=W. Bishop
// directions: 0=NE 1=NW 2=SE 3=SW.
var rookRays [64][4]BitBoard
var bishopRays [64][4]BitBoard

func init() {
	initNonSlidingAttacks()
	initRays()
}

func initNonSlidingAttacks() {
	knightOffsets := [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets := [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	for sq := 0; sq < 64; sq++ {
		f, r := sq%8, sq/8
		var kn, ki BitBoard
		for _, o := range knightOffsets {
			ff, rr := f+o[1], r+o[0]
			if ff >= 0 && ff < 8 && rr >= 0 && rr < 8 {
				kn |= Square(rr*8 + ff).Bit()
			}
		}
		for _, o := range kingOffsets {
			ff, rr := f+o[1], r+o[0]
			if ff >= 0 && ff < 8 && rr >= 0 && rr < 8 {
				ki |= Square(rr*8 + ff).Bit()
			}
		}
		knightAttacks[sq] = kn
		kingAttacks[sq] = ki

		if r < 7 {
			if f > 0 {
				pawnAttacks[White][sq] |= Square((r+1)*8 + f - 1).Bit()
			}
			if f < 7 {
				pawnAttacks[White][sq] |= Square((r+1)*8 + f + 1).Bit()
			}
		}
		if r > 0 {
			if f > 0 {
				pawnAttacks[Black][sq] |= Square((r-1)*8 + f - 1).Bit()
			}
			if f < 7 {
				pawnAttacks[Black][sq] |= Square((r-1)*8 + f + 1).Bit()
			}
		}
	}
}

func initRays() {
	for sq := 0; sq < 64; sq++ {
		f, r := sq%8, sq/8

		var ray BitBoard
		for rr := r + 1; rr < 8; rr++ {
			ray |= Square(rr*8 + f).Bit()
		}
		rookRays[sq][0] = ray

		ray = 0
		for rr := r - 1; rr >= 0; rr-- {
			ray |= Square(rr*8 + f).Bit()
		}
		rookRays[sq][1] = ray

		ray = 0
		for ff := f + 1; ff < 8; ff++ {
			ray |= Square(r*8 + ff).Bit()
		}
		rookRays[sq][2] = ray

		ray = 0
		for ff := f - 1; ff >= 0; ff-- {
			ray |= Square(r*8 + ff).Bit()
		}
		rookRays[sq][3] = ray

		ray = 0
		for rr, ff := r+1, f+1; rr < 8 && ff < 8; rr, ff = rr+1, ff+1 {
			ray |= Square(rr*8 + ff).Bit()
		}
		bishopRays[sq][0] = ray

		ray = 0
		for rr, ff := r+1, f-1; rr < 8 && ff >= 0; rr, ff = rr+1, ff-1 {
			ray |= Square(rr*8 + ff).Bit()
		}
		bishopRays[sq][1] = ray

		ray = 0
		for rr, ff := r-1, f+1; rr >= 0 && ff < 8; rr, ff = rr-1, ff+1 {
			ray |= Square(rr*8 + ff).Bit()
		}
		bishopRays[sq][2] = ray

		ray = 0
		for rr, ff := r-1, f-1; rr >= 0 && ff >= 0; rr, ff = rr-1, ff-1 {
			ray |= Square(rr*8 + ff).Bit()
		}
		bishopRays[sq][3] = ray
	}
}

// KnightAttacksFrom returns the knight attack mask from sq.
func KnightAttacksFrom(sq Square) BitBoard { return knightAttacks[sq] }

// KingAttacksFrom returns the king attack mask from sq.
func KingAttacksFrom(sq Square) BitBoard { return kingAttacks[sq] }

// PawnAttacksFrom returns the diagonal capture targets of a color c
// pawn standing on sq.
func PawnAttacksFrom(c Color, sq Square) BitBoard { return pawnAttacks[c][sq] }

// popcount is a tiny helper over bits.OnesCount64, used by the magic
// search in sliders_magic.go and by the slider tests.
func popcount(x uint64) int { return bits.OnesCount64(x) }
