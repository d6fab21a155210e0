package main

import (
	"os"

	"github.com/turochamp/turochamp/internal/evalbuilder"
	"github.com/turochamp/turochamp/internal/logx"
	"github.com/turochamp/turochamp/pkg/engine"
)

var cliArgs = NewCommandArgs(os.Args)

var logger = logx.NewLogger(logx.ParseLevel(cliArgs.GetString("log", "info")))

func main() {
	var handler = NewCommandHandler()
	handler.Add("tactic", tacticHandler)
	handler.Add("benchmark", benchmarkHandler)
	handler.Add("profile", profileHandler)
	var err = handler.Execute(cliArgs.CommandName())
	if err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newEngine(evalName string, depth int) *engine.Engine {
	var options = engine.NewOptions(evalbuilder.Get(evalName))
	options.MaxDepth = depth
	options.Logger = logger
	var eng = engine.NewEngine(options)
	eng.Prepare()
	return eng
}
