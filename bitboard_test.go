package chess

import "testing"

func TestToSquareContract(t *testing.T) {
	if sq, ok := Empty.ToSquare(); ok || sq != NoSquare {
		t.Fatalf("empty board: got (%v, %v), want (NoSquare, false)", sq, ok)
	}
	if sq, ok := (Square(12).Bit() | Square(40).Bit()).ToSquare(); ok || sq != NoSquare {
		t.Fatalf("multi-bit board: got (%v, %v), want (NoSquare, false)", sq, ok)
	}
	if sq, ok := Square(27).Bit().ToSquare(); !ok || sq != 27 {
		t.Fatalf("single-bit board: got (%v, %v), want (27, true)", sq, ok)
	}
}

func TestPopLSB(t *testing.T) {
	bb := Square(3).Bit() | Square(9).Bit() | Square(40).Bit()
	var got []Square
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLSB()
		got = append(got, sq)
	}
	want := []Square{3, 9, 40}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDirectionalShiftsDoNotWrapFiles(t *testing.T) {
	// a4 has no Left(): the a-file bit must be masked off before shifting.
	a4 := MakeSquare(0, 3).Bit()
	if a4.Left() != 0 {
		t.Fatalf("Left() from the a-file should be empty, got %s", a4.Left())
	}
	h4 := MakeSquare(7, 3).Bit()
	if h4.Right() != 0 {
		t.Fatalf("Right() from the h-file should be empty, got %s", h4.Right())
	}
}

func TestUpForIsColorRelative(t *testing.T) {
	e4 := MakeSquare(4, 3).Bit()
	e5 := MakeSquare(4, 4).Bit()
	e3 := MakeSquare(4, 2).Bit()
	if e4.UpFor(White) != e5 {
		t.Fatalf("White UpFor should move toward rank 8")
	}
	if e4.UpFor(Black) != e3 {
		t.Fatalf("Black UpFor should move toward rank 1")
	}
}
