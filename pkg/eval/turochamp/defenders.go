package eval

import . "github.com/turochamp/turochamp/pkg/common"

// countNonPawnDefenders counts, per square, the knights, bishops, rooks and
// queens of one side that attack it.
func countNonPawnDefenders(p Position, white bool, counts *[64]int) {
	for i := range counts {
		counts[i] = 0
	}
	for piece := Knight; piece <= Queen; piece++ {
		for x := p.Pieces(piece, white); x != 0; x &= x - 1 {
			var from = FirstOne(x)
			for y := p.Attacks(piece, from, white); y != 0; y &= y - 1 {
				counts[FirstOne(y)]++
			}
		}
	}
}

// countPawnDefenders counts, per square, the pawns of one side that attack it.
func countPawnDefenders(p Position, white bool, counts *[64]int) {
	for i := range counts {
		counts[i] = 0
	}
	for x := p.Pieces(Pawn, white); x != 0; x &= x - 1 {
		for y := PawnAttacks(FirstOne(x), white); y != 0; y &= y - 1 {
			counts[FirstOne(y)]++
		}
	}
}
