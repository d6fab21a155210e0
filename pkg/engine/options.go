package engine

import (
	"github.com/rs/zerolog"
)

type Options struct {
	MaxDepth    int
	EvalBuilder func() interface{}
	Logger      zerolog.Logger
}

func NewOptions(evalBuilder func() interface{}) Options {
	return Options{
		MaxDepth:    4,
		EvalBuilder: evalBuilder,
		Logger:      zerolog.Nop(),
	}
}
