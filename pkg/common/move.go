package common

type Move int32

const MoveEmpty = Move(0)

const castleFlag = 1 << 21

func MakeMove(from, to, movingPiece, capturedPiece, promotion int, castle bool) Move {
	var m = Move(from ^ (to << 6) ^ (movingPiece << 12) ^ (capturedPiece << 15) ^ (promotion << 18))
	if castle {
		m |= castleFlag
	}
	return m
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) MovingPiece() int {
	return int((m >> 12) & 7)
}

func (m Move) CapturedPiece() int {
	return int((m >> 15) & 7)
}

func (m Move) Promotion() int {
	return int((m >> 18) & 7)
}

func (m Move) IsCastle() bool {
	return m&castleFlag != 0
}

func (m Move) IsCapture() bool {
	return m.CapturedPiece() != Empty
}

// String returns the move in UCI long algebraic notation.
func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var sPromotion = ""
	if m.Promotion() != Empty {
		sPromotion = string("nbrq"[m.Promotion()-Knight])
	}
	return SquareName(m.From()) + SquareName(m.To()) + sPromotion
}
