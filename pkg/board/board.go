// Package board adapts github.com/notnil/chess to the push/pop position
// interface consumed by the search engine.
package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/notnil/chess"
	. "github.com/turochamp/turochamp/pkg/common"
)

const (
	sideWhite = 0
	sideBlack = 1
)

var _ Position = (*Board)(nil)

type state struct {
	pos      *chess.Position
	white    bool
	key      uint64
	rule50   int
	lastMove Move
	null     bool
	pieces   [2][King + 1]uint64
	colors   [2]uint64
	native   []*chess.Move
	legal    []Move
	captures []Move
	genDone  bool
	nullPos  *chess.Position
}

// Board is a mutable position with strict apply/undo stack semantics.
// Every MakeMove or MakeNullMove must be matched by exactly one UndoMove or
// UndoNullMove, in reverse order.
type Board struct {
	stack   []state
	history []uint64
}

func New(fen string) (*Board, error) {
	var opt, err = chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("board: parse fen %q: %w", fen, err)
	}
	var game = chess.NewGame(opt)
	var b = &Board{}
	b.push(newState(game.Position(), fenRule50(fen), MoveEmpty, false))
	return b, nil
}

// NewFromGame starts at the current position of g and remembers the earlier
// positions of the game for repetition detection.
func NewFromGame(g *chess.Game) *Board {
	var positions = g.Positions()
	var b = &Board{}
	for _, pos := range positions[:len(positions)-1] {
		var st = newState(pos, 0, MoveEmpty, false)
		b.history = append(b.history, st.key)
	}
	var pos = g.Position()
	b.push(newState(pos, fenRule50(pos.String()), MoveEmpty, false))
	return b
}

func NewInitial() *Board {
	var b, err = New(InitialPositionFen)
	if err != nil {
		panic(err)
	}
	return b
}

func fenRule50(fen string) int {
	var fields = strings.Fields(fen)
	if len(fields) < 5 {
		return 0
	}
	var n, err = strconv.Atoi(fields[4])
	if err != nil {
		return 0
	}
	return n
}

func newState(pos *chess.Position, rule50 int, lastMove Move, null bool) state {
	var st = state{
		pos:      pos,
		white:    pos.Turn() == chess.White,
		rule50:   rule50,
		lastMove: lastMove,
		null:     null,
	}
	for sq, piece := range pos.Board().SquareMap() {
		var pt = fromChessPieceType(piece.Type())
		if pt == Empty {
			continue
		}
		var side = sideWhite
		if piece.Color() == chess.Black {
			side = sideBlack
		}
		var mask = SquareMask[int(sq)]
		st.pieces[side][pt] |= mask
		st.colors[side] |= mask
	}
	st.key = zobristKey(pos, &st.pieces)
	return st
}

func (b *Board) push(st state) {
	b.stack = append(b.stack, st)
}

func (b *Board) top() *state {
	return &b.stack[len(b.stack)-1]
}

// Ply is the number of moves (null moves included) currently applied.
func (b *Board) Ply() int {
	return len(b.stack) - 1
}

func (b *Board) WhiteToMove() bool {
	return b.top().white
}

func (b *Board) LastMove() Move {
	return b.top().lastMove
}

// Key identifies the position: placement, side to move, castling and en passant.
func (b *Board) Key() uint64 {
	return b.top().key
}

// String returns the FEN of the current position.
func (b *Board) String() string {
	return b.top().pos.String()
}

// Position exposes the underlying notnil/chess position.
func (b *Board) Position() *chess.Position {
	return b.top().pos
}

// MakeMove plays a legal move. It panics if m is not legal here.
func (b *Board) MakeMove(m Move) {
	var st = b.top()
	var native = st.findNative(m)
	if native == nil {
		panic(fmt.Errorf("board: illegal move %v in %v", m, st.pos))
	}
	var rule50 = st.rule50 + 1
	if m.MovingPiece() == Pawn || m.IsCapture() {
		rule50 = 0
	}
	b.push(newState(st.pos.Update(native), rule50, m, false))
}

func (b *Board) UndoMove() {
	if len(b.stack) <= 1 {
		panic("board: undo without move")
	}
	if b.top().null {
		panic("board: undo move over null move")
	}
	b.stack = b.stack[:len(b.stack)-1]
}

// MakeNullMove passes the turn. The en passant square is cleared.
func (b *Board) MakeNullMove() {
	var st = b.top()
	if st.nullPos == nil {
		st.nullPos = nullPosition(st.pos, st.white)
	}
	b.push(newState(st.nullPos, st.rule50+1, MoveEmpty, true))
}

// nullPosition decodes the flipped FEN straight into a position, without
// the game bookkeeping of chess.NewGame.
func nullPosition(pos *chess.Position, white bool) *chess.Position {
	var fields = strings.Fields(pos.String())
	if white {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}
	fields[3] = "-"
	var result = &chess.Position{}
	if err := result.UnmarshalText([]byte(strings.Join(fields, " "))); err != nil {
		panic(fmt.Errorf("board: null move: %w", err))
	}
	return result
}

func (b *Board) UndoNullMove() {
	if len(b.stack) <= 1 || !b.top().null {
		panic("board: undo null move without null move")
	}
	b.stack = b.stack[:len(b.stack)-1]
}

// CanCastle reports whether the side to move still holds the castling right.
func (b *Board) CanCastle(kingSide bool) bool {
	return b.HasCastleRights(b.top().white, kingSide)
}

func (b *Board) HasCastleRights(white, kingSide bool) bool {
	var color = chess.White
	if !white {
		color = chess.Black
	}
	var side = chess.QueenSide
	if kingSide {
		side = chess.KingSide
	}
	return b.top().pos.CastleRights().CanCastle(color, side)
}

func (b *Board) Pieces(piece int, white bool) uint64 {
	return b.top().pieces[sideOf(white)][piece]
}

func (b *Board) PiecesByColor(white bool) uint64 {
	return b.top().colors[sideOf(white)]
}

func (b *Board) Occupancy() uint64 {
	var st = b.top()
	return st.colors[sideWhite] | st.colors[sideBlack]
}

func (b *Board) KingSquare(white bool) int {
	var kings = b.Pieces(King, white)
	if kings == 0 {
		return SquareNone
	}
	return FirstOne(kings)
}

// PieceAt returns the piece type and color on sq, or Empty.
func (b *Board) PieceAt(sq int) (piece int, white bool) {
	return b.top().pieceAt(sq)
}

func (st *state) pieceAt(sq int) (piece int, white bool) {
	var mask = SquareMask[sq]
	for side := sideWhite; side <= sideBlack; side++ {
		if st.colors[side]&mask == 0 {
			continue
		}
		for pt := Pawn; pt <= King; pt++ {
			if st.pieces[side][pt]&mask != 0 {
				return pt, side == sideWhite
			}
		}
	}
	return Empty, false
}

func sideOf(white bool) int {
	if white {
		return sideWhite
	}
	return sideBlack
}
