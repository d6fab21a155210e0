package tactic

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
	"github.com/turochamp/turochamp/pkg/engine"
	material "github.com/turochamp/turochamp/pkg/eval/material"
)

const testEpd = `# sample
6k1/5ppp/8/8/8/8/8/R5K1 w - - bm Ra8#; id "mate.1";
3q2k1/5ppp/8/8/3Q4/8/5PPP/6K1 b - - bm Qxd4; id "queen.1";
8/8/8/8 w - - bm Zz9;
rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - id "no.bm";
`

func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	var path = filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func checkItems(t *testing.T, items []EpdItem) {
	t.Helper()
	if len(items) != 2 {
		t.Fatal(len(items))
	}
	if items[0].id != "mate.1" || items[0].bestMoves[0].String() != "a1a8" {
		t.Error(items[0].id, items[0].bestMoves)
	}
	if items[1].id != "queen.1" || items[1].bestMoves[0].String() != "d8d4" {
		t.Error(items[1].id, items[1].bestMoves)
	}
	if items[1].Fen() != "3q2k1/5ppp/8/8/3Q4/8/5PPP/6K1 b - - 0 1" {
		t.Error(items[1].Fen())
	}
}

func TestLoadEpd(t *testing.T) {
	var path = writeTestFile(t, "tests.epd", []byte(testEpd))
	var items, err = LoadEpd(path, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	checkItems(t, items)
}

func TestLoadEpdZstd(t *testing.T) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		t.Fatal(err)
	}
	var compressed = encoder.EncodeAll([]byte(testEpd), nil)
	encoder.Close()

	var path = writeTestFile(t, "tests.epd.zst", compressed)
	items, err := LoadEpd(path, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	checkItems(t, items)
}

func TestLoadEpdMissingFile(t *testing.T) {
	if _, err := LoadEpd(filepath.Join(t.TempDir(), "none.epd"), zerolog.Nop()); err == nil {
		t.Error("expected error")
	}
}

func TestSolveTactic(t *testing.T) {
	var items, err = ReadEpd(strings.NewReader(testEpd), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	var newEngine = func() IEngine {
		var eng = engine.NewEngine(engine.NewOptions(func() interface{} {
			return material.NewEvaluationService()
		}))
		eng.Prepare()
		return eng
	}
	report, err := SolveTactic(context.Background(), items, newEngine, 2, 2, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if report.Total != 2 || report.Solved != 2 || report.Nodes == 0 {
		t.Error(report)
	}
}
