package eval

import (
	"github.com/turochamp/turochamp/pkg/common"
)

var pieceValues = [...]int{
	common.Empty:  0,
	common.Pawn:   100,
	common.Knight: 300,
	common.Bishop: 350,
	common.Rook:   500,
	common.Queen:  1000,
	common.King:   0,
}

// PieceValue is the material value of a piece type. The king has none.
func PieceValue(piece int) int {
	return pieceValues[piece]
}

// Material sums the piece values of one side.
func Material(p common.Position, white bool) int {
	var score = 0
	for piece := common.Pawn; piece <= common.Queen; piece++ {
		score += common.PopCount(p.Pieces(piece, white)) * pieceValues[piece]
	}
	return score
}

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

func (e *EvaluationService) Evaluate(p common.Position) int {
	var white = p.WhiteToMove()
	return Material(p, white) - Material(p, !white)
}
