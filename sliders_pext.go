//go:build pext

package chess

// PEXT sliding attack backend, selected at build time with `-tags
// pext`. Go has no portable PEXT intrinsic without assembly, so this
// uses the software pext/pdep helpers in sliders_common.go; the table
// layout is what a hardware-PEXT build would use (index = pext(occ,
// mask), no multiplier, no shift), so swapping in a real intrinsic
// later only touches the two functions at the bottom of this file.
var rookAttackTable [64][]BitBoard
var bishopAttackTable [64][]BitBoard

func init() {
	for sq := 0; sq < 64; sq++ {
		buildPextTable(Square(sq), rookMask[sq], rookAttacksSlow, &rookAttackTable[sq])
		buildPextTable(Square(sq), bishopMask[sq], bishopAttacksSlow, &bishopAttackTable[sq])
	}
}

func buildPextTable(sq Square, mask BitBoard, slow func(Square, BitBoard) BitBoard, table *[]BitBoard) {
	size := 1 << mask.PopCount()
	tbl := make([]BitBoard, size)
	for i := 0; i < size; i++ {
		occ := BitBoard(pdep(uint64(i), uint64(mask)))
		tbl[i] = slow(sq, occ)
	}
	*table = tbl
}

// RookAttacks returns the rook attack bitboard from sq given the
// current total occupancy.
func RookAttacks(sq Square, occ BitBoard) BitBoard {
	idx := pext(uint64(occ), uint64(rookMask[sq]))
	return rookAttackTable[sq][idx]
}

// BishopAttacks returns the bishop attack bitboard from sq given the
// current total occupancy.
func BishopAttacks(sq Square, occ BitBoard) BitBoard {
	idx := pext(uint64(occ), uint64(bishopMask[sq]))
	return bishopAttackTable[sq][idx]
}
