package board

import . "github.com/turochamp/turochamp/pkg/common"

// IsSquareAttacked reports whether the opponent of the side to move attacks sq.
func (b *Board) IsSquareAttacked(sq int) bool {
	var st = b.top()
	return st.attackedBy(sq, !st.white)
}

// Attacks returns the attack set of a piece of the given type and color on sq
// under the current occupancy.
func (b *Board) Attacks(piece, sq int, white bool) uint64 {
	return PieceAttacks(piece, sq, white, b.Occupancy())
}

func (st *state) attackedBy(sq int, white bool) bool {
	var them = &st.pieces[sideOf(white)]
	var occ = st.colors[sideWhite] | st.colors[sideBlack]
	if PawnAttacks(sq, !white)&them[Pawn] != 0 ||
		KnightAttacks[sq]&them[Knight] != 0 ||
		KingAttacks[sq]&them[King] != 0 {
		return true
	}
	if BishopAttacks(sq, occ)&(them[Bishop]|them[Queen]) != 0 {
		return true
	}
	return RookAttacks(sq, occ)&(them[Rook]|them[Queen]) != 0
}

func (b *Board) IsCheck() bool {
	var st = b.top()
	var king = st.pieces[sideOf(st.white)][King]
	return king != 0 && st.attackedBy(FirstOne(king), !st.white)
}

func (b *Board) IsCheckmate() bool {
	return len(b.LegalMoves(false)) == 0 && b.IsCheck()
}

func (b *Board) IsStalemate() bool {
	return len(b.LegalMoves(false)) == 0 && !b.IsCheck()
}

// IsDraw covers stalemate, the fifty-move rule, insufficient material and
// repetition. A position already met in the current line is a draw; a
// position from the game before the search needs two earlier occurrences.
func (b *Board) IsDraw() bool {
	var st = b.top()
	if st.rule50 >= 100 {
		return true
	}
	if b.isInsufficientMaterial() {
		return true
	}
	if b.isRepeat() {
		return true
	}
	return b.IsStalemate()
}

func (b *Board) isInsufficientMaterial() bool {
	var st = b.top()
	var w, k = &st.pieces[sideWhite], &st.pieces[sideBlack]
	if (w[Pawn] | w[Rook] | w[Queen] | k[Pawn] | k[Rook] | k[Queen]) != 0 {
		return false
	}
	return !MoreThanOne(w[Knight] | w[Bishop] | k[Knight] | k[Bishop])
}

func (b *Board) isRepeat() bool {
	var st = b.top()
	if st.rule50 == 0 || st.null {
		return false
	}
	for i := len(b.stack) - 2; i >= 0; i-- {
		var prev = &b.stack[i]
		if prev.null {
			return false
		}
		if prev.key == st.key {
			return true
		}
		if prev.rule50 == 0 {
			return false
		}
	}
	var count = 0
	for _, key := range b.history {
		if key == st.key {
			count++
		}
	}
	return count >= 2
}
