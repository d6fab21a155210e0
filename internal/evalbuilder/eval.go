package evalbuilder

import (
	"fmt"

	material "github.com/turochamp/turochamp/pkg/eval/material"
	turochamp "github.com/turochamp/turochamp/pkg/eval/turochamp"
)

func Get(key string) func() interface{} {
	return func() interface{} {
		switch key {
		case "", "turochamp":
			return turochamp.NewEvaluationService()
		case "material":
			return material.NewEvaluationService()
		}
		panic(fmt.Errorf("bad eval %v", key))
	}
}
