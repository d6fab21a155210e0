package eval

import (
	"strings"
	"testing"

	"github.com/turochamp/turochamp/pkg/board"
	. "github.com/turochamp/turochamp/pkg/common"
)

// Positions without en passant squares where neither king is in check.
var testFENs = []string{
	InitialPositionFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"6k1/5ppp/3r4/8/3R2b1/8/5PPP/R3qB1K b - - 0 1",
	"2rqkb1r/p1pnpppp/3p3n/3B4/2BPP3/1QP5/PP3PPP/RN2K1NR w KQk - 0 1",
	"r1bqkbnr/1ppp1ppp/p1n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 4",
}

func mustBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	var b, err = board.New(fen)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func flipSideToMove(fen string) string {
	var fields = strings.Fields(fen)
	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}
	return strings.Join(fields, " ")
}

func TestMobility(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 100},
		{2, 141},
		{8, 282},
		{27, 519},
	}
	for _, test := range tests {
		if got := Mobility(test.count); got != test.want {
			t.Error(test.count, got, test.want)
		}
	}
}

func TestEvalSymmetry(t *testing.T) {
	var e = NewEvaluationService()
	for _, fen := range testFENs {
		var score1 = e.Evaluate(mustBoard(t, fen))
		var score2 = e.Evaluate(mustBoard(t, flipSideToMove(fen)))
		if score1 != -score2 {
			t.Error(fen, score1, score2)
		}
	}
}

func TestEvalIdempotent(t *testing.T) {
	var e = NewEvaluationService()
	for _, fen := range testFENs {
		var p = mustBoard(t, fen)
		var before = p.String()
		var score1 = e.Evaluate(p)
		var score2 = e.Evaluate(p)
		if score1 != score2 {
			t.Error(fen, score1, score2)
		}
		if p.String() != before || p.Ply() != 0 {
			t.Error(fen, "position changed", p.String())
		}
	}
}

func TestInitialPosition(t *testing.T) {
	var e = NewEvaluationService()
	var p = mustBoard(t, InitialPositionFen)
	// knights 2*141, king 223, pieces 3*100, pawns 7*30
	if got := e.Positional(p); got != 1015 {
		t.Error("positional", got)
	}
	if got := e.Evaluate(p); got != 0 {
		t.Error("evaluate", got)
	}
}

func TestDefenders(t *testing.T) {
	var p = mustBoard(t, InitialPositionFen)
	var nonPawn, pawn [64]int
	countNonPawnDefenders(p, true, &nonPawn)
	countPawnDefenders(p, true, &pawn)
	tests := []struct {
		square  string
		nonPawn int
		pawn    int
	}{
		{"f3", 1, 2},
		{"c3", 1, 2},
		{"d2", 3, 0},
		{"e2", 3, 0},
		{"a3", 1, 1},
		{"d1", 0, 0},
		{"e4", 0, 0},
	}
	for _, test := range tests {
		var sq = ParseSquare(test.square)
		if nonPawn[sq] != test.nonPawn || pawn[sq] != test.pawn {
			t.Error(test.square, nonPawn[sq], pawn[sq])
		}
	}
}

func TestPieceSafety(t *testing.T) {
	tests := []struct {
		fen  string
		want int
	}{
		// knight on d4 and rook undefended
		{"4k3/8/8/8/3N4/8/8/R3K3 w - - 0 1", 0},
		// rook on d1 defends the knight
		{"4k3/8/8/8/3N4/8/8/3RK3 w - - 0 1", defendedOnceBonus},
		// rook and pawn defend the knight
		{"4k3/8/8/8/3N4/2P5/8/3RK3 w - - 0 1", defendedTwiceBonus},
	}
	var e = NewEvaluationService()
	for _, test := range tests {
		var p = mustBoard(t, test.fen)
		e.Positional(p)
		if got := e.pieceSafety(p, true); got != test.want {
			t.Error(test.fen, got, test.want)
		}
	}
}

func TestPawnCredit(t *testing.T) {
	var e = NewEvaluationService()
	var p = mustBoard(t, "4k3/8/4P3/8/8/8/8/4K3 w - - 0 1")
	e.Positional(p)
	// e6 pawn advanced four ranks, no piece defends it
	if got := e.pawnCredit(p, true); got != 80 {
		t.Error(got)
	}
	p = mustBoard(t, "4k3/8/8/8/8/4p3/8/4K3 b - - 0 1")
	e.Positional(p)
	if got := e.pawnCredit(p, false); got != 80 {
		t.Error(got)
	}
}
