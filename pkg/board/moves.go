package board

import (
	"fmt"

	"github.com/notnil/chess"
	. "github.com/turochamp/turochamp/pkg/common"
)

// LegalMoves returns the legal moves of the side to move in generator order,
// optionally restricted to captures (en passant included). The returned
// slice is shared and must not be modified.
func (b *Board) LegalMoves(capturesOnly bool) []Move {
	var st = b.top()
	st.generate()
	if capturesOnly {
		return st.captures
	}
	return st.legal
}

func (st *state) generate() {
	if st.genDone {
		return
	}
	st.genDone = true
	st.native = st.pos.ValidMoves()
	st.legal = make([]Move, 0, len(st.native))
	for _, cm := range st.native {
		var m = st.fromNative(cm)
		st.legal = append(st.legal, m)
		if m.IsCapture() {
			st.captures = append(st.captures, m)
		}
	}
}

func (st *state) fromNative(cm *chess.Move) Move {
	var from = int(cm.S1())
	var to = int(cm.S2())
	var moving, _ = st.pieceAt(from)
	var captured, _ = st.pieceAt(to)
	if cm.HasTag(chess.EnPassant) {
		captured = Pawn
	}
	var castle = cm.HasTag(chess.KingSideCastle) || cm.HasTag(chess.QueenSideCastle)
	return MakeMove(from, to, moving, captured, fromChessPieceType(cm.Promo()), castle)
}

func (st *state) findNative(m Move) *chess.Move {
	st.generate()
	for i, lm := range st.legal {
		if lm == m {
			return st.native[i]
		}
	}
	return nil
}

// ParseMoveUCI decodes a move like "e2e4" or "e7e8q" in the current position.
func (b *Board) ParseMoveUCI(s string) (Move, error) {
	return b.decode(chess.UCINotation{}, s)
}

// ParseMoveSAN decodes a move like "Nf3" or "exd5" in the current position.
func (b *Board) ParseMoveSAN(s string) (Move, error) {
	return b.decode(chess.AlgebraicNotation{}, s)
}

func (b *Board) decode(notation chess.Notation, s string) (Move, error) {
	var st = b.top()
	var cm, err = notation.Decode(st.pos, s)
	if err != nil {
		return MoveEmpty, fmt.Errorf("board: decode move %q: %w", s, err)
	}
	st.generate()
	for i, native := range st.native {
		if native.S1() == cm.S1() && native.S2() == cm.S2() && native.Promo() == cm.Promo() {
			return st.legal[i], nil
		}
	}
	return MoveEmpty, fmt.Errorf("board: move %q is not legal", s)
}

// MoveSAN renders a legal move of the current position in standard notation.
func (b *Board) MoveSAN(m Move) string {
	var st = b.top()
	var cm = st.findNative(m)
	if cm == nil {
		return m.String()
	}
	return chess.AlgebraicNotation{}.Encode(st.pos, cm)
}

func fromChessPieceType(pt chess.PieceType) int {
	switch pt {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	}
	return Empty
}
