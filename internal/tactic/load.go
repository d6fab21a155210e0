package tactic

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
	"github.com/turochamp/turochamp/pkg/board"
	"github.com/turochamp/turochamp/pkg/common"
)

type EpdItem struct {
	content   string
	fen       string
	id        string
	bestMoves []common.Move
}

func (item *EpdItem) Fen() string { return item.fen }

func (item *EpdItem) String() string { return item.content }

// LoadEpd reads test positions from an EPD file. Files ending in .zst are
// decompressed on the fly. Lines that do not parse are logged and skipped.
func LoadEpd(filePath string, logger zerolog.Logger) ([]EpdItem, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(filePath, ".zst") {
		decoder, err := zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("tactic: open %v: %w", filePath, err)
		}
		defer decoder.Close()
		r = decoder
	}
	return ReadEpd(r, logger)
}

func ReadEpd(r io.Reader, logger zerolog.Logger) ([]EpdItem, error) {
	var result []EpdItem
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var test, err = parseEpdTest(line)
		if err != nil {
			logger.Warn().Err(err).Msg("skip epd line")
			continue
		}
		result = append(result, test)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func parseEpdTest(s string) (EpdItem, error) {
	var bmBegin = strings.Index(s, " bm ")
	if bmBegin < 0 {
		return EpdItem{}, fmt.Errorf("no best moves %v", s)
	}
	var bmEnd = strings.Index(s[bmBegin:], ";")
	if bmEnd < 0 {
		return EpdItem{}, fmt.Errorf("unterminated best moves %v", s)
	}
	var fen = epdFen(s[:bmBegin])

	var b, err = board.New(fen)
	if err != nil {
		return EpdItem{}, err
	}

	var bestMoves []common.Move
	for _, sBestMove := range strings.Fields(s[bmBegin+4 : bmBegin+bmEnd]) {
		var move, err = b.ParseMoveSAN(strings.TrimRight(sBestMove, "+#!?"))
		if err != nil {
			return EpdItem{}, fmt.Errorf("parse move failed %v: %w", s, err)
		}
		bestMoves = append(bestMoves, move)
	}
	if len(bestMoves) == 0 {
		return EpdItem{}, fmt.Errorf("empty best moves %v", s)
	}

	return EpdItem{
		content:   s,
		fen:       fen,
		id:        epdID(s),
		bestMoves: bestMoves,
	}, nil
}

// epdFen completes the four EPD position fields with move counters.
func epdFen(s string) string {
	var fields = strings.Fields(s)
	if len(fields) == 4 {
		fields = append(fields, "0", "1")
	}
	return strings.Join(fields, " ")
}

func epdID(s string) string {
	var index = strings.Index(s, "id \"")
	if index < 0 {
		return ""
	}
	var rest = s[index+4:]
	var end = strings.Index(rest, "\"")
	if end < 0 {
		return ""
	}
	return rest[:end]
}
