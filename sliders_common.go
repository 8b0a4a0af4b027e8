package chess

import "math/bits"

// Relevant-occupancy masks for the two sliding-attack backends: every
// square a rook/bishop ray passes through, excluding the board edge
// (the edge square never changes whether it blocks, so it is dropped
// from the index to shrink the tables).
var rookMask [64]BitBoard
var bishopMask [64]BitBoard

func init() {
	for sq := 0; sq < 64; sq++ {
		f, r := sq%8, sq/8

		var rm BitBoard
		for rr := r + 1; rr < 7; rr++ {
			rm |= Square(rr*8 + f).Bit()
		}
		for rr := r - 1; rr > 0; rr-- {
			rm |= Square(rr*8 + f).Bit()
		}
		for ff := f + 1; ff < 7; ff++ {
			rm |= Square(r*8 + ff).Bit()
		}
		for ff := f - 1; ff > 0; ff-- {
			rm |= Square(r*8 + ff).Bit()
		}
		rookMask[sq] = rm

		var bm BitBoard
		for rr, ff := r+1, f+1; rr < 7 && ff < 7; rr, ff = rr+1, ff+1 {
			bm |= Square(rr*8 + ff).Bit()
		}
		for rr, ff := r+1, f-1; rr < 7 && ff > 0; rr, ff = rr+1, ff-1 {
			bm |= Square(rr*8 + ff).Bit()
		}
		for rr, ff := r-1, f+1; rr > 0 && ff < 7; rr, ff = rr-1, ff+1 {
			bm |= Square(rr*8 + ff).Bit()
		}
		for rr, ff := r-1, f-1; rr > 0 && ff > 0; rr, ff = rr-1, ff-1 {
			bm |= Square(rr*8 + ff).Bit()
		}
		bishopMask[sq] = bm
	}
}

// rookAttacksSlow walks the four rook rays one square at a time,
// stopping at (and including) the first blocker. It is the ground
// truth used to build both sliding-attack backends and to verify them
// in tests; it is not on the hot path.
func rookAttacksSlow(sq Square, occ BitBoard) BitBoard {
	var attacks BitBoard
	for d := 0; d < 4; d++ {
		ray := rookRays[sq][d]
		blockers := ray & occ
		if blockers != 0 {
			var first Square
			if d == 0 || d == 2 {
				first = blockers.LSB()
			} else {
				first = blockers.MSB()
			}
			ray &^= rookRays[first][d]
		}
		attacks |= ray
	}
	return attacks
}

// bishopAttacksSlow is the bishop equivalent of rookAttacksSlow.
func bishopAttacksSlow(sq Square, occ BitBoard) BitBoard {
	var attacks BitBoard
	for d := 0; d < 4; d++ {
		ray := bishopRays[sq][d]
		blockers := ray & occ
		if blockers != 0 {
			var first Square
			if d == 0 || d == 1 {
				first = blockers.LSB()
			} else {
				first = blockers.MSB()
			}
			ray &^= bishopRays[first][d]
		}
		attacks |= ray
	}
	return attacks
}

// QueenAttacks is the union of rook and bishop attacks from sq.
func QueenAttacks(sq Square, occ BitBoard) BitBoard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// pext extracts the bits of x at the positions set in mask, packing
// them into the low bits of the result, in mask-bit order. A software
// fallback for hardware PEXT; used by the PEXT backend to compute
// table indices and by both backends' initializers via pdep.
func pext(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m & -m))
		if (x>>bit)&1 != 0 {
			res |= 1 << idx
		}
		idx++
	}
	return res
}

// pdep deposits the low bits of x into the positions set in mask, the
// inverse of pext. Used to enumerate every occupancy subset of a mask
// by feeding pdep the integers 0..2^popcount(mask)-1.
func pdep(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m & -m))
		if (x>>idx)&1 != 0 {
			res |= 1 << bit
		}
		idx++
	}
	return res
}
