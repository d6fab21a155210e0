package engine

import (
	. "github.com/turochamp/turochamp/pkg/common"
)

const (
	castleBonus           = 300
	castleNextMoveBonus   = 200
	castleRightsKeptBonus = 100
)

// castlingBonus rewards a root move for castling or for keeping the right to
// castle. The position is restored before returning.
func castlingBonus(p Position, move Move) int {
	if move.IsCastle() {
		return castleBonus
	}
	p.MakeMove(move)
	defer p.UndoMove()

	// p now has the opponent to move; a null move hands the turn back
	if p.IsSquareAttacked(p.KingSquare(p.WhiteToMove())) {
		return rightsBonus(p, !p.WhiteToMove())
	}
	p.MakeNullMove()
	defer p.UndoNullMove()
	if !p.CanCastle(true) && !p.CanCastle(false) {
		return 0
	}
	for _, m := range p.LegalMoves(false) {
		if m.IsCastle() {
			return castleNextMoveBonus
		}
	}
	return castleRightsKeptBonus
}

// rightsBonus is used when the opponent is in check after the move and the
// turn can not be passed back.
func rightsBonus(p Position, white bool) int {
	if p.HasCastleRights(white, true) || p.HasCastleRights(white, false) {
		return castleRightsKeptBonus
	}
	return 0
}
