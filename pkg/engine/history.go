package engine

import . "github.com/turochamp/turochamp/pkg/common"

// historyTable rewards quiet and noisy moves alike for causing cutoffs.
type historyTable [2 * 64 * 64]int

func (h *historyTable) Clear() {
	for i := range h {
		h[i] = 0
	}
}

func (h *historyTable) Read(side bool, m Move) int {
	return h[sideFromToIndex(side, m)]
}

func (h *historyTable) Update(side bool, m Move, depth int) {
	h[sideFromToIndex(side, m)] += depth * depth
}

func sideFromToIndex(side bool, move Move) int {
	var result = (move.From() << 6) | move.To()
	if side {
		result |= 1 << 12
	}
	return result
}
