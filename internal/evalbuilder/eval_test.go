package evalbuilder

import (
	"testing"

	material "github.com/turochamp/turochamp/pkg/eval/material"
	turochamp "github.com/turochamp/turochamp/pkg/eval/turochamp"
)

func TestGet(t *testing.T) {
	if _, ok := Get("")().(*turochamp.EvaluationService); !ok {
		t.Error("default")
	}
	if _, ok := Get("turochamp")().(*turochamp.EvaluationService); !ok {
		t.Error("turochamp")
	}
	if _, ok := Get("material")().(*material.EvaluationService); !ok {
		t.Error("material")
	}
}

func TestGetUnknownPanics(t *testing.T) {
	var build = Get("nnue")
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	build()
}
