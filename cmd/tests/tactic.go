package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/turochamp/turochamp/internal/tactic"
)

func tacticHandler() error {
	var (
		filepath = mapPath(cliArgs.GetString("testpath", "~/chess/tests/tests.epd"))
		evalName = cliArgs.GetString("eval", "")
		depth    = cliArgs.GetInt("depth", 4)
		workers  = cliArgs.GetInt("workers", runtime.NumCPU())
	)

	var tests, err = tactic.LoadEpd(filepath, logger)
	if err != nil {
		return err
	}
	report, err := tactic.SolveTactic(context.Background(), tests,
		func() tactic.IEngine {
			var eng = newEngine(evalName, depth)
			eng.Options.Logger = logger.Level(zerolog.WarnLevel)
			return eng
		},
		depth, workers, logger)
	if err != nil {
		return err
	}
	fmt.Printf("Solved %v/%v\n", report.Solved, report.Total)
	return nil
}
