package csa

import "strings"

// Cell is an occupied board cell.
type Cell struct {
	Color Color
	Piece PieceType
}

// Board is a full 9x9 setup. Board[0] is rank 1 (line "P1"), and each row
// lists its cells in the order they are written. A nil cell is empty.
type Board [9][9]*Cell

// Layout is the primary section of a Position: either Bulk or Sparse.
type Layout interface {
	writeLayout(b *strings.Builder)
}

// Bulk writes the whole board as P1..P9 lines.
type Bulk struct {
	Board Board
}

// Sparse writes a single "PI" line. In CSA the listed pieces are the ones
// taken off the standard starting setup (handicap games).
type Sparse struct {
	Drops []Drop
}

type Drop struct {
	Square Square
	Piece  PieceType
}

// Placement is an extra "P+SQPT" line. Square 00 puts the piece in hand.
type Placement struct {
	Color  Color
	Square Square
	Piece  PieceType
}

type Position struct {
	// Layout may be nil, which is written as an empty "PI" line.
	Layout     Layout
	Adds       []Placement
	SideToMove Color
}

func (bl Bulk) writeLayout(b *strings.Builder) {
	for i, row := range bl.Board {
		b.WriteString("P")
		b.WriteByte(byte('1' + i))
		for _, c := range row {
			if c == nil {
				b.WriteString(" * ")
				continue
			}
			b.WriteString(c.Color.String())
			b.WriteString(c.Piece.String())
		}
		b.WriteString("\n")
	}
}

func (sp Sparse) writeLayout(b *strings.Builder) {
	b.WriteString("PI")
	for _, d := range sp.Drops {
		b.WriteString(d.Square.String())
		b.WriteString(d.Piece.String())
	}
	b.WriteString("\n")
}

func (p Position) writeTo(b *strings.Builder) {
	layout := p.Layout
	if layout == nil {
		layout = Sparse{}
	}
	layout.writeLayout(b)

	for _, a := range p.Adds {
		b.WriteString("P")
		b.WriteString(a.Color.String())
		b.WriteString(a.Square.String())
		b.WriteString(a.Piece.String())
		b.WriteString("\n")
	}

	b.WriteString(p.SideToMove.String())
	b.WriteString("\n")
}

func (p Position) String() string {
	var b strings.Builder
	p.writeTo(&b)
	return b.String()
}
