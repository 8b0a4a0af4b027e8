//go:build !pext

package chess

import "math/rand"

// Black-magic sliding attack backend (the portable default; see
// sliders_pext.go for the PEXT-indexed alternative selected with
// `-tags pext`). For each square, a magic multiplier maps the masked
// occupancy to a dense table index: ((occ & mask) * magic) >> shift.
var rookMagic [64]uint64
var bishopMagic [64]uint64
var rookShift [64]uint
var bishopShift [64]uint
var rookAttackTable [64][]BitBoard
var bishopAttackTable [64][]BitBoard

func init() {
	initMagics()
}

func initMagics() {
	// Fixed seed: table construction must be deterministic across runs
	// and across processes, since two backends are required to agree
	// bit-for-bit on every (square, occupancy) pair.
	rnd := rand.New(rand.NewSource(0x5A6E1C0DE))

	for sq := 0; sq < 64; sq++ {
		buildMagic(Square(sq), rookMask[sq], rookAttacksSlow, &rookMagic[sq], &rookShift[sq], &rookAttackTable[sq], rnd)
		buildMagic(Square(sq), bishopMask[sq], bishopAttacksSlow, &bishopMagic[sq], &bishopShift[sq], &bishopAttackTable[sq], rnd)
	}
}

func buildMagic(sq Square, mask BitBoard, slow func(Square, BitBoard) BitBoard, magic *uint64, shift *uint, table *[]BitBoard, rnd *rand.Rand) {
	bitsN := mask.PopCount()
	size := 1 << bitsN
	sh := uint(64 - bitsN)

	occs := make([]BitBoard, size)
	refs := make([]BitBoard, size)
	for i := 0; i < size; i++ {
		occ := BitBoard(pdep(uint64(i), uint64(mask)))
		occs[i] = occ
		refs[i] = slow(sq, occ)
	}

	tbl := make([]BitBoard, size)
	for attempt := 0; ; attempt++ {
		m := rnd.Uint64() & rnd.Uint64() & rnd.Uint64()
		if popcount(uint64(mask)*m>>56) < 6 {
			continue
		}
		for i := range tbl {
			tbl[i] = 0xFFFFFFFFFFFFFFFF // sentinel: unused slot
		}
		ok := true
		for i := 0; i < size; i++ {
			idx := (uint64(occs[i]) * m) >> sh
			if tbl[idx] == 0xFFFFFFFFFFFFFFFF || tbl[idx] == refs[i] {
				tbl[idx] = refs[i]
			} else {
				ok = false
				break
			}
		}
		if ok {
			for i := range tbl {
				if tbl[i] == 0xFFFFFFFFFFFFFFFF {
					tbl[i] = 0
				}
			}
			*magic = m
			*shift = sh
			*table = tbl
			return
		}
	}
}

// RookAttacks returns the rook attack bitboard from sq given the
// current total occupancy.
func RookAttacks(sq Square, occ BitBoard) BitBoard {
	idx := (uint64(occ&rookMask[sq]) * rookMagic[sq]) >> rookShift[sq]
	return rookAttackTable[sq][idx]
}

// BishopAttacks returns the bishop attack bitboard from sq given the
// current total occupancy.
func BishopAttacks(sq Square, occ BitBoard) BitBoard {
	idx := (uint64(occ&bishopMask[sq]) * bishopMagic[sq]) >> bishopShift[sq]
	return bishopAttackTable[sq][idx]
}
