package engine

import (
	"context"
	"errors"
	"time"

	. "github.com/turochamp/turochamp/pkg/common"
)

var ErrNoLegalMoves = errors.New("engine: no legal moves")

type Engine struct {
	Options   Options
	evaluator IEvaluator
	sc        searchContext
}

type IEvaluator interface {
	Evaluate(p Position) int
}

type searchContext struct {
	position  Position
	evaluator IEvaluator
	history   historyTable
	rootDepth int
	rootMove  Move
	rootScore int
	nodes     int64
	qnodes    int64
	stack     [stackSize]struct {
		moveList [MaxMoves]OrderedMove
	}
}

func NewEngine(options Options) *Engine {
	return &Engine{Options: options}
}

func (e *Engine) Prepare() {
	if e.evaluator == nil {
		e.evaluator = e.buildEvaluator()
		e.sc.evaluator = e.evaluator
	}
}

func (e *Engine) Clear() {
	e.sc.history.Clear()
}

// Search runs iterative deepening up to the depth limit and returns the
// result of the deepest completed iteration. The context is checked only
// between iterations and the first iteration always runs.
func (e *Engine) Search(ctx context.Context, searchParams SearchParams) SearchInfo {
	var start = time.Now()
	e.Prepare()
	var logger = e.Options.Logger
	var sc = &e.sc
	sc.position = searchParams.Position
	defer func() { sc.position = nil }()

	var depthLimit = searchParams.Limits.Depth
	if depthLimit <= 0 {
		depthLimit = e.Options.MaxDepth
	}
	depthLimit = Min(depthLimit, maxDepth)

	logger.Debug().
		Int("maxdepth", depthLimit).
		Dur("movetime", searchParams.Limits.MoveTime).
		Msg("search started")

	var result SearchInfo
	if len(sc.position.LegalMoves(false)) == 0 {
		logger.Debug().Msg("search finished: no legal moves")
		return result
	}

	for depth := 1; depth <= depthLimit; depth++ {
		if depth > 1 && ctx.Err() != nil {
			break
		}
		sc.nodes = 0
		sc.qnodes = 0
		sc.history.Clear()
		sc.rootDepth = depth
		sc.rootMove = MoveEmpty
		sc.rootScore = -valueInfinity
		sc.alphaBeta(-valueInfinity, valueInfinity, depth, 0)

		result = SearchInfo{
			Depth:    depth,
			BestMove: sc.rootMove,
			Score:    newScore(sc.rootScore),
			Nodes:    sc.nodes,
			QNodes:   sc.qnodes,
			Time:     time.Since(start),
		}
		logger.Debug().
			Int("depth", result.Depth).
			Stringer("score", result.Score).
			Stringer("bestmove", result.BestMove).
			Int64("nodes", result.Nodes).
			Int64("qnodes", result.QNodes).
			Dur("elapsed", result.Time).
			Msg("iteration finished")
		if searchParams.Progress != nil {
			searchParams.Progress(result)
		}
	}

	logger.Debug().
		Stringer("bestmove", result.BestMove).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")
	return result
}

// Think chooses a move for the side to move in p. The time budget is
// recorded but does not shorten the search.
func (e *Engine) Think(ctx context.Context, p Position, budget time.Duration) (Move, error) {
	var si = e.Search(ctx, SearchParams{
		Position: p,
		Limits:   LimitsType{MoveTime: budget},
	})
	if si.BestMove == MoveEmpty {
		return MoveEmpty, ErrNoLegalMoves
	}
	return si.BestMove, nil
}

func (e *Engine) buildEvaluator() IEvaluator {
	var evaluationService = e.Options.EvalBuilder()
	if e, ok := evaluationService.(IEvaluator); ok {
		return e
	}
	panic(errors.New("bad eval builder"))
}
