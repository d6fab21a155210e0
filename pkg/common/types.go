package common

import (
	"fmt"
	"time"
)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const (
	Empty int = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const MaxMoves = 256

type OrderedMove struct {
	Move Move
	Key  int
}

// Score is a search result as centipawns or as a distance to mate in moves.
type Score struct {
	Centipawns int
	Mate       int
}

func (s Score) String() string {
	if s.Mate != 0 {
		return fmt.Sprintf("mate %v", s.Mate)
	}
	return fmt.Sprintf("cp %v", s.Centipawns)
}

type LimitsType struct {
	Depth    int
	MoveTime time.Duration
}

type SearchParams struct {
	Position Position
	Limits   LimitsType
	Progress func(si SearchInfo)
}

type SearchInfo struct {
	Depth    int
	BestMove Move
	Score    Score
	Nodes    int64
	QNodes   int64
	Time     time.Duration
}

func (si SearchInfo) String() string {
	return fmt.Sprintf("depth %v score %v nodes %v qnodes %v time %v bestmove %v",
		si.Depth, si.Score, si.Nodes, si.QNodes, si.Time.Milliseconds(), si.BestMove)
}
