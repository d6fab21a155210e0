package tactic

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/turochamp/turochamp/pkg/board"
	"github.com/turochamp/turochamp/pkg/common"
	"golang.org/x/sync/errgroup"
)

type IEngine interface {
	Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo
}

type Report struct {
	Total   int
	Solved  int
	Nodes   int64
	Elapsed time.Duration
}

type solveResult struct {
	index  int
	solved bool
	info   common.SearchInfo
}

// SolveTactic searches every test to a fixed depth. Each worker owns its
// engine and builds a fresh board per test.
func SolveTactic(
	ctx context.Context,
	tests []EpdItem,
	newEngine func() IEngine,
	depth int,
	workers int,
	logger zerolog.Logger,
) (Report, error) {
	logger.Info().
		Int("tests", len(tests)).
		Int("depth", depth).
		Int("workers", workers).
		Msg("solveTactic started")

	if workers < 1 {
		workers = 1
	}
	var start = time.Now()
	g, ctx := errgroup.WithContext(ctx)

	var indexes = make(chan int)
	var results = make(chan solveResult)

	g.Go(func() error {
		defer close(indexes)
		for i := range tests {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case indexes <- i:
			}
		}
		return nil
	})

	var wg = &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			var eng = newEngine()
			for index := range indexes {
				var res, err = solve(ctx, eng, &tests[index], depth)
				if err != nil {
					return err
				}
				res.index = index
				select {
				case <-ctx.Done():
					return ctx.Err()
				case results <- res:
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	var report = Report{Total: len(tests)}
	for res := range results {
		report.Nodes += res.info.Nodes + res.info.QNodes
		if res.solved {
			report.Solved++
		} else {
			logger.Debug().
				Str("id", tests[res.index].id).
				Str("fen", tests[res.index].fen).
				Stringer("bestmove", res.info.BestMove).
				Msg("not solved")
		}
	}
	if err := g.Wait(); err != nil {
		return report, err
	}
	report.Elapsed = time.Since(start)

	logger.Info().
		Int("solved", report.Solved).
		Int("total", report.Total).
		Int64("nodes", report.Nodes).
		Dur("elapsed", report.Elapsed).
		Msg("solveTactic finished")
	return report, nil
}

func solve(ctx context.Context, eng IEngine, test *EpdItem, depth int) (solveResult, error) {
	var b, err = board.New(test.fen)
	if err != nil {
		return solveResult{}, err
	}
	var info = eng.Search(ctx, common.SearchParams{
		Position: b,
		Limits:   common.LimitsType{Depth: depth},
	})
	var solved = false
	for _, bm := range test.bestMoves {
		if bm == info.BestMove {
			solved = true
			break
		}
	}
	return solveResult{solved: solved, info: info}, nil
}
