package common

import "testing"

func TestMoreThanOne(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		want  bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"far one", 1 << 60, false},
		{"two ones", 3, true},
		{"three ones apart", 1<<6 | 1<<25 | 1<<36, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoreThanOne(tt.value); got != tt.want {
				t.Errorf("MoreThanOne(%x) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestAttackCounts(t *testing.T) {
	var d4 = ParseSquare("d4")
	var a1 = ParseSquare("a1")
	var h8 = ParseSquare("h8")
	tests := []struct {
		name  string
		piece int
		from  int
		occ   uint64
		want  int
	}{
		{"queen d4 empty", Queen, d4, 0, 27},
		{"rook a1 empty", Rook, a1, 0, 14},
		{"bishop a1 empty", Bishop, a1, 0, 7},
		{"bishop a1 blocked b2", Bishop, a1, SquareMask[ParseSquare("b2")], 1},
		{"knight h8", Knight, h8, 0, 2},
		{"knight d4", Knight, d4, 0, 8},
		{"king a1", King, a1, 0, 3},
		{"rook d4 boxed", Rook, d4, KingAttacks[d4], 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got = PopCount(PieceAttacks(tt.piece, tt.from, true, tt.occ))
			if got != tt.want {
				t.Errorf("attack count = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPawnAttacks(t *testing.T) {
	var e4 = ParseSquare("e4")
	var want = SquareMask[ParseSquare("d5")] | SquareMask[ParseSquare("f5")]
	if got := PawnAttacks(e4, true); got != want {
		t.Error("white pawn e4", got, want)
	}
	want = SquareMask[ParseSquare("d3")] | SquareMask[ParseSquare("f3")]
	if got := PawnAttacks(e4, false); got != want {
		t.Error("black pawn e4", got, want)
	}
	if got := PopCount(PawnAttacks(ParseSquare("a2"), true)); got != 1 {
		t.Error("white pawn a2", got)
	}
}

func TestMoveFields(t *testing.T) {
	var m = MakeMove(ParseSquare("e7"), ParseSquare("d8"), Pawn, Rook, Queen, false)
	if m.From() != ParseSquare("e7") || m.To() != ParseSquare("d8") ||
		m.MovingPiece() != Pawn || m.CapturedPiece() != Rook ||
		m.Promotion() != Queen || m.IsCastle() {
		t.Error("bad move fields", m)
	}
	if m.String() != "e7d8q" {
		t.Error(m.String())
	}
	var castle = MakeMove(ParseSquare("e1"), ParseSquare("g1"), King, Empty, Empty, true)
	if !castle.IsCastle() || castle.IsCapture() || castle.String() != "e1g1" {
		t.Error("bad castle", castle)
	}
}
