// Package playout produces reproducible positions by playing random legal
// moves from a start position.
package playout

import (
	"encoding/binary"

	"github.com/turochamp/turochamp/pkg/board"
	"lukechampine.com/frand"
)

// NewRNG returns a deterministic generator for the given seed.
func NewRNG(seed uint64) *frand.RNG {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return frand.NewCustom(key[:], 1024, 12)
}

// Play applies up to plies random moves to b and returns how many were
// applied. It stops early on checkmate or draw.
func Play(b *board.Board, rng *frand.RNG, plies int) int {
	var played = 0
	for ; played < plies; played++ {
		if b.IsCheckmate() || b.IsDraw() {
			break
		}
		var ml = b.LegalMoves(false)
		b.MakeMove(ml[rng.Intn(len(ml))])
	}
	return played
}

// Positions returns count FENs, each reached by a random game of up to
// plies moves from fen. Games that end before the last ply are kept as is.
func Positions(fen string, seed uint64, count, plies int) ([]string, error) {
	var rng = NewRNG(seed)
	var result = make([]string, 0, count)
	for i := 0; i < count; i++ {
		var b, err = board.New(fen)
		if err != nil {
			return nil, err
		}
		Play(b, rng, plies)
		result = append(result, b.String())
	}
	return result, nil
}
