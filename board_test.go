package chess

import "testing"

func TestZobristIncrementalMatchesRecompute(t *testing.T) {
	b := Default()
	var list MoveList
	Generate(b, FilterAll, &list)
	for i := 0; i < list.Len(); i++ {
		after := MakeMove(b, list.Get(i))
		if after.Hash() != after.computeHash() {
			t.Fatalf("move %s: incremental hash %#x != recomputed %#x", list.Get(i), after.Hash(), after.computeHash())
		}
	}
}

func TestZobristDistinguishesPositions(t *testing.T) {
	b := Default()
	e4, err := MakeUciMove(b, "e2e4")
	if err != nil {
		t.Fatalf("MakeUciMove: %v", err)
	}
	d4, err := MakeUciMove(b, "d2d4")
	if err != nil {
		t.Fatalf("MakeUciMove: %v", err)
	}
	if e4.Hash() == d4.Hash() {
		t.Fatal("distinct positions should not share a Zobrist hash")
	}
	if e4.Hash() == b.Hash() {
		t.Fatal("moving should change the hash")
	}
}

func TestValidateCatchesPlacementMismatch(t *testing.T) {
	b := Default()
	broken := *b
	broken.board[16] = MakePiece(White, Queen) // mutate the mailbox without touching the bitboards
	if err := broken.Validate(); err == nil {
		t.Fatal("Validate should reject a mailbox/bitboard mismatch")
	}
}

func TestMakeNullMoveTogglesSideOnly(t *testing.T) {
	b := Default()
	nb := MakeNullMove(b)
	if nb.SideToMove() == b.SideToMove() {
		t.Fatal("null move should flip side to move")
	}
	if nb.EnPassant() != NoSquare {
		t.Fatal("null move should clear the en-passant square")
	}
	if nb.Castling() != b.Castling() {
		t.Fatal("null move should preserve castling rights")
	}
	if nb.board != b.board {
		t.Fatal("null move should not change placement")
	}
}

func TestCastlingRightsClearedByRookCapture(t *testing.T) {
	// White rook a1 is undefended; a black rook on a8 can take it,
	// which must strip White's queenside castling right.
	b, err := ParseFEN("r3k3/8/8/8/8/8/8/R3K2R b KQq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	after, err := MakeUciMove(b, "a8a1")
	if err != nil {
		t.Fatalf("MakeUciMove(a8a1): %v", err)
	}
	if after.Castling().Has(CastleWhiteQ) {
		t.Fatal("capturing the a1 rook should clear White's queenside castling right")
	}
	if !after.Castling().Has(CastleWhiteK) {
		t.Fatal("White's kingside right should be untouched")
	}
}
