package main

import (
	"context"

	"github.com/pkg/profile"
	"github.com/turochamp/turochamp/pkg/board"
	"github.com/turochamp/turochamp/pkg/common"
)

// go tool pprof cpu.pprof
func profileHandler() error {
	var (
		dir      = mapPath(cliArgs.GetString("dir", "."))
		evalName = cliArgs.GetString("eval", "")
		depth    = cliArgs.GetInt("depth", 4)
	)

	logger.Info().
		Str("dir", dir).
		Str("eval", evalName).
		Msg("profile started")
	defer logger.Info().Msg("profile finished")

	var b, err = board.New("r1bqkbnr/1ppp1ppp/p1n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 4")
	if err != nil {
		return err
	}
	var eng = newEngine(evalName, depth)

	defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet).Stop()
	var si = eng.Search(context.Background(), common.SearchParams{
		Position: b,
		Limits:   common.LimitsType{Depth: depth},
	})
	logger.Info().Stringer("result", si).Msg("search")
	return nil
}
