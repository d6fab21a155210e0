package engine

import (
	. "github.com/turochamp/turochamp/pkg/common"
)

// alphaBeta is a fail-hard negamax search. At the root every move also
// carries the castling incentive, and the best move is tracked apart from
// alpha.
func (sc *searchContext) alphaBeta(alpha, beta, depth, height int) int {
	if depth <= 0 {
		return sc.quiescence(alpha, beta, height)
	}
	sc.nodes++

	var rootNode = height == 0
	var position = sc.position

	if !rootNode {
		if position.IsCheckmate() {
			return lossIn(height)
		}
		if position.IsDraw() {
			return valueDraw
		}
		if height >= maxHeight {
			return sc.evaluator.Evaluate(position)
		}
	}

	var side = position.WhiteToMove()
	var ml = sc.orderMoves(position.LegalMoves(false), height)
	var bestScore = -valueInfinity

	for i := range ml {
		var move = ml[i].Move
		var score int
		if rootNode {
			// the child window is shifted by the bonus so that cutoffs
			// below stay exact for the adjusted score
			var bonus = castlingBonus(position, move)
			score = bonus - sc.searchChild(move, bonus-beta, bonus-alpha, depth-1, height+1)
			if score > bestScore {
				bestScore = score
				sc.rootScore = score
				sc.rootMove = move
			}
		} else {
			score = -sc.searchChild(move, -beta, -alpha, depth-1, height+1)
		}
		if score > alpha {
			alpha = score
			if score >= beta {
				if !rootNode {
					sc.history.Update(side, move, depth)
				}
				return beta
			}
		}
	}
	return alpha
}

func (sc *searchContext) searchChild(move Move, alpha, beta, depth, height int) int {
	sc.position.MakeMove(move)
	defer sc.position.UndoMove()
	return sc.alphaBeta(alpha, beta, depth, height)
}

func (sc *searchContext) quiescence(alpha, beta, height int) int {
	sc.qnodes++
	var position = sc.position
	var eval = sc.evaluator.Evaluate(position)
	if eval >= beta {
		return beta
	}
	if eval > alpha {
		alpha = eval
	}
	if height >= maxHeight {
		return alpha
	}
	var ml = sc.orderMoves(position.LegalMoves(true), height)
	for i := range ml {
		var score = -sc.quiescenceChild(ml[i].Move, -beta, -alpha, height+1)
		if score > alpha {
			alpha = score
			if score >= beta {
				return beta
			}
		}
	}
	return alpha
}

func (sc *searchContext) quiescenceChild(move Move, alpha, beta, height int) int {
	sc.position.MakeMove(move)
	defer sc.position.UndoMove()
	return sc.quiescence(alpha, beta, height)
}
