package chess

import "math/rand"

// Zobrist key schedule: one 64-bit key per (piece, square), one per
// castling-rights subset (0..15, keyed directly by the 4-bit mask
// rather than 4 independently-XORed keys; either choice is fine as
// long as it's fixed), one per en-passant file, and one for side to
// move. Keys are generated once from a fixed seed so hashes are
// reproducible across runs and processes.
var zobristPiece [16][64]uint64
var zobristCastle [16]uint64
var zobristEnPassant [8]uint64
var zobristSide uint64

func init() {
	rnd := rand.New(rand.NewSource(0xC0FFEE))

	for p := 0; p < 16; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

func zobristPieceKey(p Piece, sq Square) uint64 { return zobristPiece[p][sq] }
