package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sortedUCI(list *MoveList) []string {
	out := make([]string, list.Len())
	for i := range out {
		out[i] = list.Get(i).UCI()
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// TestAllIsQuietDisjointUnionTactical pins the law that generating with
// FilterAll always yields exactly the disjoint union, as multisets, of
// generating with FilterQuiet and FilterTactical.
func TestAllIsQuietDisjointUnionTactical(t *testing.T) {
	for _, fen := range []string{StartFEN, KiwipeteFEN} {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN: %v", err)
		}
		var all, quiet, tactical MoveList
		Generate(b, FilterAll, &all)
		Generate(b, FilterQuiet, &quiet)
		Generate(b, FilterTactical, &tactical)

		if quiet.Len()+tactical.Len() != all.Len() {
			t.Fatalf("%s: quiet(%d) + tactical(%d) != all(%d)", fen, quiet.Len(), tactical.Len(), all.Len())
		}
		combined := append(sortedUCI(&quiet), sortedUCI(&tactical)...)
		for i := 1; i < len(combined); i++ {
			for j := i; j > 0 && combined[j-1] > combined[j]; j-- {
				combined[j-1], combined[j] = combined[j], combined[j-1]
			}
		}
		if diff := cmp.Diff(sortedUCI(&all), combined); diff != "" {
			t.Fatalf("%s: All != Quiet ⊎ Tactical (-all +quiet+tactical):\n%s", fen, diff)
		}
	}
}

func TestNoDuplicateMoves(t *testing.T) {
	b := Default()
	var list MoveList
	Generate(b, FilterAll, &list)
	seen := map[Move]bool{}
	for i := 0; i < list.Len(); i++ {
		m := list.Get(i)
		if seen[m] {
			t.Fatalf("duplicate move %s in generated list", m)
		}
		seen[m] = true
	}
}

func TestNoGeneratedMoveLeavesMoverInCheck(t *testing.T) {
	for _, fen := range []string{StartFEN, KiwipeteFEN, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"} {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN: %v", err)
		}
		var list MoveList
		Generate(b, FilterAll, &list)
		us := b.SideToMove()
		for i := 0; i < list.Len(); i++ {
			after := MakeMove(b, list.Get(i))
			if after.IsSquareAttacked(after.KingSquare(us), us.Other()) {
				t.Fatalf("%s: move %s leaves %s king in check", fen, list.Get(i), us)
			}
		}
	}
}

func TestStartPositionMoveCount(t *testing.T) {
	b := Default()
	var list MoveList
	Generate(b, FilterAll, &list)
	if list.Len() != 20 {
		t.Fatalf("start position has %d legal moves, want 20", list.Len())
	}
}

func TestKiwipeteQuietTacticalSplit(t *testing.T) {
	b, err := ParseFEN(KiwipeteFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var quiet, tactical MoveList
	Generate(b, FilterQuiet, &quiet)
	Generate(b, FilterTactical, &tactical)
	if quiet.Len() != 40 {
		t.Fatalf("Kiwipete quiet moves = %d, want 40", quiet.Len())
	}
	if tactical.Len() != 8 {
		t.Fatalf("Kiwipete tactical moves = %d, want 8", tactical.Len())
	}
}

func TestE2E4ProducesExpectedFEN(t *testing.T) {
	b := Default()
	next, err := MakeUciMove(b, "e2e4")
	if err != nil {
		t.Fatalf("MakeUciMove: %v", err)
	}
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if got := next.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestHorizontalEnPassantPin is the classic edge case: capturing en
// passant would expose the king to a rook along the fifth rank, once
// both pawns leave the rank simultaneously; a simple per-piece pin
// mask does not catch this and the capture must be simulated directly.
func TestHorizontalEnPassantPin(t *testing.T) {
	b, err := ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	afterDoublePush, err := MakeUciMove(b, "c7c5")
	if err != nil {
		t.Fatalf("MakeUciMove(c7c5): %v", err)
	}
	if afterDoublePush.EnPassant() == NoSquare {
		t.Fatal("double push should set an en-passant square")
	}
	var list MoveList
	Generate(afterDoublePush, FilterAll, &list)
	for i := 0; i < list.Len(); i++ {
		if m := list.Get(i); m.IsEnPassant() {
			t.Fatalf("en-passant capture %s should not be legal: it exposes the king along the rank", m)
		}
	}
}

func TestKiwipeteCastlingBothSides(t *testing.T) {
	b, err := ParseFEN(KiwipeteFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var list MoveList
	Generate(b, FilterAll, &list)
	want := map[string]bool{"e1g1": false, "e1c1": false}
	for i := 0; i < list.Len(); i++ {
		uci := list.Get(i).UCI()
		if _, ok := want[uci]; ok {
			want[uci] = true
		}
	}
	for uci, found := range want {
		if !found {
			t.Fatalf("expected castling move %s in Kiwipete legal moves", uci)
		}
	}
}

// TestCastlingRequiresRookOnHomeSquare guards against a stale
// castling-rights bit surviving on a hand-built FEN where the rook
// isn't actually there: generation must not fabricate a castle just
// because the rights bit is set.
func TestCastlingRequiresRookOnHomeSquare(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w K - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var list MoveList
	Generate(b, FilterAll, &list)
	for i := 0; i < list.Len(); i++ {
		if m := list.Get(i); m.IsCastle() {
			t.Fatalf("castling move %s generated with no rook on h1", m)
		}
	}
}

func TestUnderPromotionCapturesAreQuiet(t *testing.T) {
	m := NewMove(8, 1, FlagPromoCaptureN)
	if !m.IsQuiet() || m.IsTactical() {
		t.Fatal("under-promotion captures must classify as quiet under the default policy")
	}
	q := NewMove(8, 1, FlagPromoCaptureQ)
	if q.IsQuiet() || !q.IsTactical() {
		t.Fatal("queen-promotion captures must classify as tactical")
	}
}
