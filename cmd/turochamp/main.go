package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/notnil/chess"
	"github.com/turochamp/turochamp/internal/evalbuilder"
	"github.com/turochamp/turochamp/internal/logx"
	"github.com/turochamp/turochamp/pkg/board"
	"github.com/turochamp/turochamp/pkg/common"
	"github.com/turochamp/turochamp/pkg/engine"
)

const name = "Turochamp"

var (
	versionName = "dev"
	flgFen      string
	flgMoves    string
	flgDepth    int
	flgEval     string
	flgMoveTime time.Duration
	flgLog      string
)

func main() {
	flag.StringVar(&flgFen, "fen", common.InitialPositionFen, "start position")
	flag.StringVar(&flgMoves, "moves", "", "space separated moves in UCI notation played from the start position")
	flag.IntVar(&flgDepth, "depth", 4, "maximum search depth")
	flag.StringVar(&flgEval, "eval", "", "evaluation function: turochamp or material")
	flag.DurationVar(&flgMoveTime, "movetime", 0, "time budget for the move")
	flag.StringVar(&flgLog, "log", "info", "log level")
	flag.Parse()

	var logger = logx.NewLogger(logx.ParseLevel(flgLog))
	logger.Info().
		Str("version", versionName).
		Str("runtime", runtime.Version()).
		Str("eval", flgEval).
		Int("depth", flgDepth).
		Msg(name)

	var b, err = newBoard(flgFen, flgMoves)
	if err != nil {
		logger.Error().Err(err).Msg("bad position")
		os.Exit(1)
	}

	var options = engine.NewOptions(evalbuilder.Get(flgEval))
	options.MaxDepth = flgDepth
	options.Logger = logger
	var eng = engine.NewEngine(options)

	move, err := eng.Think(context.Background(), b, flgMoveTime)
	if err != nil {
		logger.Error().Err(err).Str("fen", b.String()).Msg("think failed")
		os.Exit(1)
	}
	fmt.Println("bestmove", move)
}

func newBoard(fen, moves string) (*board.Board, error) {
	var opt, err = chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	var game = chess.NewGame(opt, chess.UseNotation(chess.UCINotation{}))
	for _, move := range strings.Fields(moves) {
		if err := game.MoveStr(move); err != nil {
			return nil, fmt.Errorf("apply move %v: %w", move, err)
		}
	}
	return board.NewFromGame(game), nil
}
