package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/turochamp/turochamp/internal/playout"
	"github.com/turochamp/turochamp/internal/tactic"
	"github.com/turochamp/turochamp/pkg/board"
	"github.com/turochamp/turochamp/pkg/common"
)

func benchmarkHandler() error {
	var (
		testPath = cliArgs.GetString("testpath", "")
		evalName = cliArgs.GetString("eval", "")
		depth    = cliArgs.GetInt("depth", 3)
		count    = cliArgs.GetInt("count", 20)
		seed     = cliArgs.GetInt("seed", 1)
	)

	logger.Info().
		Str("testpath", testPath).
		Str("eval", evalName).
		Int("depth", depth).
		Msg("benchmark started")
	defer logger.Info().Msg("benchmark finished")

	var fens, err = benchmarkPositions(testPath, count, uint64(seed))
	if err != nil {
		return err
	}
	var eng = newEngine(evalName, depth)
	eng.Options.Logger = logger.Level(zerolog.WarnLevel)
	benchmark(fens, eng, depth)
	return nil
}

func benchmarkPositions(testPath string, count int, seed uint64) ([]string, error) {
	if testPath == "" {
		return playout.Positions(common.InitialPositionFen, seed, count, 16)
	}
	var tests, err = tactic.LoadEpd(mapPath(testPath), logger)
	if err != nil {
		return nil, err
	}
	var fens []string
	for i := range tests {
		fens = append(fens, tests[i].Fen())
	}
	return fens, nil
}

func benchmark(fens []string, eng tactic.IEngine, depth int) {
	var ctx = context.Background()
	var start = time.Now()
	var nodes int64
	for _, fen := range fens {
		var b, err = board.New(fen)
		if err != nil {
			logger.Warn().Err(err).Msg("skip position")
			continue
		}
		var searchInfo = eng.Search(ctx, common.SearchParams{
			Position: b,
			Limits:   common.LimitsType{Depth: depth},
		})
		nodes += searchInfo.Nodes + searchInfo.QNodes
	}
	var elapsed = time.Since(start)
	fmt.Println("Time", elapsed)
	fmt.Println("Nodes", nodes)
	if elapsed.Milliseconds() > 0 {
		fmt.Println("kNPS", nodes/elapsed.Milliseconds())
	}
}
