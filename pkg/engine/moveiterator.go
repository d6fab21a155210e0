package engine

import (
	. "github.com/turochamp/turochamp/pkg/common"
	material "github.com/turochamp/turochamp/pkg/eval/material"
)

const (
	sortTableKeyCapture   = 100000
	attackedSquarePenalty = 100
)

// orderMoves scores the moves into the buffer of the given height and sorts
// them best first. Captures go by most valuable victim, least valuable
// aggressor; a king counts as no aggressor since it never captures into an
// attacked square.
func (sc *searchContext) orderMoves(ml []Move, height int) []OrderedMove {
	var p = sc.position
	var side = p.WhiteToMove()
	var buffer = sc.stack[height].moveList[:len(ml)]
	for i, m := range ml {
		var score = 0
		if m.IsCapture() {
			score = sortTableKeyCapture + mvvlva(m)
		}
		if p.IsSquareAttacked(m.To()) {
			score -= attackedSquarePenalty
		}
		score += sc.history.Read(side, m)
		buffer[i] = OrderedMove{Move: m, Key: score}
	}
	sortMoves(buffer)
	return buffer
}

func mvvlva(move Move) int {
	return material.PieceValue(move.CapturedPiece()) - material.PieceValue(move.MovingPiece())
}

// sortMoves is a stable insertion sort, descending by key.
func sortMoves(moves []OrderedMove) {
	for i := 1; i < len(moves); i++ {
		j, t := i, moves[i]
		for ; j > 0 && moves[j-1].Key < t.Key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}

func isSorted(moves []OrderedMove) bool {
	for i := 1; i < len(moves); i++ {
		if moves[i-1].Key < moves[i].Key {
			return false
		}
	}
	return true
}
