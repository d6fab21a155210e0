package playout

import (
	"testing"

	"github.com/turochamp/turochamp/pkg/board"
	"github.com/turochamp/turochamp/pkg/common"
)

func TestPositionsDeterministic(t *testing.T) {
	var first, err = Positions(common.InitialPositionFen, 42, 5, 12)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Positions(common.InitialPositionFen, 42, 5, 12)
	if err != nil {
		t.Fatal(err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Error(i, first[i], second[i])
		}
	}
}

func TestPositionsAreValid(t *testing.T) {
	var fens, err = Positions(common.InitialPositionFen, 7, 10, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(fens) != 10 {
		t.Fatal(len(fens))
	}
	for _, fen := range fens {
		if _, err := board.New(fen); err != nil {
			t.Error(fen, err)
		}
	}
}

func TestPlayStopsAtMate(t *testing.T) {
	var b, err = board.New("R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if n := Play(b, NewRNG(1), 10); n != 0 {
		t.Error(n)
	}
}
