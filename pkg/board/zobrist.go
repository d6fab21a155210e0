package board

import (
	"github.com/notnil/chess"
	. "github.com/turochamp/turochamp/pkg/common"
	"lukechampine.com/frand"
)

var (
	pieceKeys     [2][King + 1][64]uint64
	sideKey       uint64
	castleKeys    [4]uint64
	enPassantKeys [8]uint64
)

func init() {
	var seed [32]byte
	copy(seed[:], "turochamp zobrist keys")
	var rng = frand.NewCustom(seed[:], 1024, 12)
	for side := range pieceKeys {
		for piece := Pawn; piece <= King; piece++ {
			for sq := range pieceKeys[side][piece] {
				pieceKeys[side][piece][sq] = rng.Uint64n(^uint64(0))
			}
		}
	}
	sideKey = rng.Uint64n(^uint64(0))
	for i := range castleKeys {
		castleKeys[i] = rng.Uint64n(^uint64(0))
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rng.Uint64n(^uint64(0))
	}
}

// zobristKey hashes placement, side to move, castling rights and en passant
// file when a capture there is possible. Move counters are left out so
// repeated positions share a key.
func zobristKey(pos *chess.Position, pieces *[2][King + 1]uint64) uint64 {
	var key uint64
	for side := range pieces {
		for piece := Pawn; piece <= King; piece++ {
			for x := pieces[side][piece]; x != 0; x &= x - 1 {
				key ^= pieceKeys[side][piece][FirstOne(x)]
			}
		}
	}
	if pos.Turn() == chess.Black {
		key ^= sideKey
	}
	var rights = pos.CastleRights()
	for i, cr := range []struct {
		color chess.Color
		side  chess.Side
	}{
		{chess.White, chess.KingSide},
		{chess.White, chess.QueenSide},
		{chess.Black, chess.KingSide},
		{chess.Black, chess.QueenSide},
	} {
		if rights.CanCastle(cr.color, cr.side) {
			key ^= castleKeys[i]
		}
	}
	if ep := pos.EnPassantSquare(); ep != chess.NoSquare {
		var white = pos.Turn() == chess.White
		if PawnAttacks(int(ep), !white)&pieces[sideOf(white)][Pawn] != 0 {
			key ^= enPassantKeys[File(int(ep))]
		}
	}
	return key
}
