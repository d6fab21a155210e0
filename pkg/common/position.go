package common

// Position is the game state borrowed by search and evaluation. Moves and
// null moves share one stack: every MakeMove/MakeNullMove must be undone by
// the matching UndoMove/UndoNullMove in reverse order.
type Position interface {
	WhiteToMove() bool
	LegalMoves(capturesOnly bool) []Move
	IsCheckmate() bool
	IsDraw() bool
	MakeMove(m Move)
	UndoMove()
	MakeNullMove()
	UndoNullMove()
	// CanCastle reports the castling right of the side to move.
	CanCastle(kingSide bool) bool
	HasCastleRights(white, kingSide bool) bool
	// IsSquareAttacked reports whether the opponent of the side to move attacks sq.
	IsSquareAttacked(sq int) bool
	Attacks(piece, sq int, white bool) uint64
	Pieces(piece int, white bool) uint64
	KingSquare(white bool) int
}
