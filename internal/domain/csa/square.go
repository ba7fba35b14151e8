package csa

import "strconv"

// Square is a board cell. File and rank are expected in 1..9; 0/0 stands for
// "off the board" (a drop origin or a piece in hand).
type Square struct {
	File int
	Rank int
}

func NewSquare(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// String writes file and rank back to back, e.g. 7/6 -> "76".
// Values above 9 are not clamped and produce a longer token.
func (s Square) String() string {
	return strconv.Itoa(s.File) + strconv.Itoa(s.Rank)
}

func (s Square) onBoard() bool {
	return s.File >= 1 && s.File <= 9 && s.Rank >= 1 && s.Rank <= 9
}

func (s Square) offBoard() bool {
	return s.File == 0 && s.Rank == 0
}
