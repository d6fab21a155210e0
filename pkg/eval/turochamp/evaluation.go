// Package eval implements a Turochamp-style evaluation: material plus a
// positional score built from mobility, a king exposure proxy, piece safety
// and pawn advancement.
package eval

import (
	"math"

	. "github.com/turochamp/turochamp/pkg/common"
	material "github.com/turochamp/turochamp/pkg/eval/material"
)

const (
	defendedOnceBonus  = 100
	defendedTwiceBonus = 150
	pawnRankBonus      = 20
	pawnDefendedBonus  = 30
)

type EvaluationService struct {
	nonPawnDefenders [64]int
	pawnDefenders    [64]int
	mobility         [64]int
}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate scores p for the side to move. The opponent's positional score
// is taken after a null move.
func (e *EvaluationService) Evaluate(p Position) int {
	var white = p.WhiteToMove()
	var score = material.Material(p, white) - material.Material(p, !white)
	score += e.Positional(p)
	score -= e.opponentPositional(p)
	return score
}

func (e *EvaluationService) opponentPositional(p Position) int {
	p.MakeNullMove()
	defer p.UndoNullMove()
	return e.Positional(p)
}

// Positional is the positional score of the side to move.
func (e *EvaluationService) Positional(p Position) int {
	var white = p.WhiteToMove()
	countNonPawnDefenders(p, white, &e.nonPawnDefenders)
	countPawnDefenders(p, white, &e.pawnDefenders)

	var score = e.mobilityScore(p.LegalMoves(false))
	score += kingSafety(p, white)
	score += e.pieceSafety(p, white)
	score += e.pawnCredit(p, white)
	return score
}

// mobilityScore groups non-pawn, non-castle moves by origin square. Each
// capture counts twice.
func (e *EvaluationService) mobilityScore(ml []Move) int {
	for i := range e.mobility {
		e.mobility[i] = 0
	}
	for _, m := range ml {
		if m.MovingPiece() == Pawn || m.IsCastle() {
			continue
		}
		if m.IsCapture() {
			e.mobility[m.From()] += 2
		} else {
			e.mobility[m.From()]++
		}
	}
	var score = 0
	for _, count := range e.mobility {
		score += Mobility(count)
	}
	return score
}

// Mobility is floor(sqrt(10000*count)): early moves of a piece are worth
// more than later ones.
func Mobility(count int) int {
	if count <= 0 {
		return 0
	}
	var r = int(math.Sqrt(float64(10000 * count)))
	for r*r > 10000*count {
		r--
	}
	for (r+1)*(r+1) <= 10000*count {
		r++
	}
	return r
}

// kingSafety counts the squares a queen would attack from the king square.
func kingSafety(p Position, white bool) int {
	var sq = p.KingSquare(white)
	if sq == SquareNone {
		return 0
	}
	return Mobility(PopCount(p.Attacks(Queen, sq, white)))
}

func (e *EvaluationService) pieceSafety(p Position, white bool) int {
	var score = 0
	for piece := Knight; piece <= Queen; piece++ {
		for x := p.Pieces(piece, white); x != 0; x &= x - 1 {
			var sq = FirstOne(x)
			var defenders = e.nonPawnDefenders[sq] + e.pawnDefenders[sq]
			if defenders >= 2 {
				score += defendedTwiceBonus
			} else if defenders == 1 {
				score += defendedOnceBonus
			}
		}
	}
	return score
}

func (e *EvaluationService) pawnCredit(p Position, white bool) int {
	var score = 0
	for x := p.Pieces(Pawn, white); x != 0; x &= x - 1 {
		var sq = FirstOne(x)
		score += pawnRankBonus * (RelativeRank(sq, white) - Rank2)
		if e.nonPawnDefenders[sq] > 0 {
			score += pawnDefendedBonus
		}
	}
	return score
}
