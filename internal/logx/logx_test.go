package logx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	var logger = newLogger(&buf, zerolog.InfoLevel)
	logger.Debug().Msg("hidden")
	logger.Info().Int("depth", 3).Msg("shown")
	var out = buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Error(out)
	}
	if !strings.Contains(out, "logx_test.go") {
		t.Error(out)
	}
}

func TestParseLevel(t *testing.T) {
	var tests = []struct {
		name string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, test := range tests {
		if got := ParseLevel(test.name); got != test.want {
			t.Error(test.name, got, test.want)
		}
	}
}
