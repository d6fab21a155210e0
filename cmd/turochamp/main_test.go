package main

import (
	"testing"

	"github.com/turochamp/turochamp/pkg/common"
)

func TestNewBoard(t *testing.T) {
	var b, err = newBoard(common.InitialPositionFen, "e2e4 e7e5 g1f3")
	if err != nil {
		t.Fatal(err)
	}
	if want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"; b.String() != want {
		t.Error(b.String(), want)
	}
	if _, err := newBoard(common.InitialPositionFen, "e2e5"); err == nil {
		t.Error("illegal move accepted")
	}
	if _, err := newBoard("bad fen", ""); err == nil {
		t.Error("bad fen accepted")
	}
}
