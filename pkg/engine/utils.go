package engine

import (
	. "github.com/turochamp/turochamp/pkg/common"
)

const (
	stackSize     = 128
	maxHeight     = stackSize - 1
	maxDepth      = 64
	valueDraw     = 0
	valueMate     = 100000
	valueInfinity = 999999
	valueWin      = valueMate - 2*maxHeight
	valueLoss     = -valueWin
)

func lossIn(height int) int {
	return -valueMate + height
}

func newScore(v int) Score {
	if v >= valueWin {
		return Score{Mate: (valueMate - v + 1) / 2}
	} else if v <= valueLoss {
		return Score{Mate: (-valueMate - v) / 2}
	} else {
		return Score{Centipawns: v}
	}
}
