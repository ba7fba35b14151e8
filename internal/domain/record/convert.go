package record

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"shogi_csa/internal/domain/csa"
	errs "shogi_csa/internal/errors"
)

var colorNames = map[string]csa.Color{
	"black": csa.Black,
	"white": csa.White,
}

var pieceNames = map[string]csa.PieceType{
	"pawn":       csa.Pawn,
	"lance":      csa.Lance,
	"knight":     csa.Knight,
	"silver":     csa.Silver,
	"gold":       csa.Gold,
	"bishop":     csa.Bishop,
	"rook":       csa.Rook,
	"king":       csa.King,
	"pro_pawn":   csa.ProPawn,
	"pro_lance":  csa.ProLance,
	"pro_knight": csa.ProKnight,
	"pro_silver": csa.ProSilver,
	"horse":      csa.Horse,
	"dragon":     csa.Dragon,
	"all":        csa.All,
}

var specialActions = map[string]csa.Action{
	"toryo":        csa.Toryo,
	"chudan":       csa.Chudan,
	"sennichite":   csa.Sennichite,
	"time_up":      csa.TimeUp,
	"illegal_move": csa.IllegalMove,
	"jishogi":      csa.Jishogi,
	"kachi":        csa.Kachi,
	"hikiwake":     csa.Hikiwake,
	"matta":        csa.Matta,
	"tsumi":        csa.Tsumi,
	"fuzumi":       csa.Fuzumi,
	"error":        csa.Error,
}

func parseColor(name string) (csa.Color, error) {
	// an omitted side defaults to black
	if name == "" {
		return csa.Black, nil
	}
	c, ok := colorNames[name]
	if !ok {
		return 0, fmt.Errorf("color %q: %w", name, errs.ErrUnknownColor)
	}
	return c, nil
}

func parsePiece(name string) (csa.PieceType, error) {
	pt, ok := pieceNames[name]
	if !ok {
		return 0, fmt.Errorf("piece %q: %w", name, errs.ErrUnknownPiece)
	}
	return pt, nil
}

func (s Square) toCSA() csa.Square {
	return csa.NewSquare(s[0], s[1])
}

func seconds(n int64) time.Duration {
	return time.Duration(n) * time.Second
}

// ToCSA converts the document into the domain record. It only rejects
// names it cannot map; range checks are left to csa.GameRecord.Validate.
func (r Record) ToCSA() (*csa.GameRecord, error) {
	g := &csa.GameRecord{
		BlackPlayer: r.Metadata.BlackPlayer,
		WhitePlayer: r.Metadata.WhitePlayer,
		Event:       r.Metadata.Event,
		Site:        r.Metadata.Site,
		Opening:     r.Metadata.Opening,
	}

	var err error
	if g.StartTime, err = r.Metadata.StartTime.toCSA(); err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	if g.EndTime, err = r.Metadata.EndTime.toCSA(); err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}
	if tl := r.Metadata.TimeLimit; tl != nil {
		g.TimeLimit = &csa.TimeLimit{MainTime: seconds(tl.MainTime), Byoyomi: seconds(tl.Byoyomi)}
	}

	if g.StartPos, err = r.Position.ToCSA(); err != nil {
		return nil, err
	}

	g.Moves = make([]csa.MoveRecord, 0, len(r.Moves))
	for i, m := range r.Moves {
		mr, err := m.ToCSA()
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		g.Moves = append(g.Moves, mr)
	}
	return g, nil
}

func (t *TimeDoc) toCSA() (*csa.Time, error) {
	if t == nil {
		return nil, nil
	}
	date, err := civil.ParseDate(t.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidDate, err)
	}
	out := &csa.Time{Date: date}
	if t.Time != "" {
		clock, err := civil.ParseTime(t.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrInvalidDate, err)
		}
		out.Time = &clock
	}
	return out, nil
}

func (p PositionDoc) ToCSA() (csa.Position, error) {
	var pos csa.Position
	var err error

	if pos.SideToMove, err = parseColor(p.SideToMove); err != nil {
		return pos, fmt.Errorf("side to move: %w", err)
	}

	switch {
	case p.Board != nil && len(p.Drops) > 0:
		return pos, fmt.Errorf("position has both board and drops: %w", errs.ErrInvalidRecord)
	case p.Board != nil:
		board, err := boardToCSA(p.Board)
		if err != nil {
			return pos, err
		}
		pos.Layout = csa.Bulk{Board: board}
	default:
		drops := make([]csa.Drop, 0, len(p.Drops))
		for i, d := range p.Drops {
			pt, err := parsePiece(d.Piece)
			if err != nil {
				return pos, fmt.Errorf("drop %d: %w", i+1, err)
			}
			drops = append(drops, csa.Drop{Square: d.Square.toCSA(), Piece: pt})
		}
		pos.Layout = csa.Sparse{Drops: drops}
	}

	for i, a := range p.Adds {
		c, err := parseColor(a.Color)
		if err != nil {
			return pos, fmt.Errorf("placement %d: %w", i+1, err)
		}
		pt, err := parsePiece(a.Piece)
		if err != nil {
			return pos, fmt.Errorf("placement %d: %w", i+1, err)
		}
		pos.Adds = append(pos.Adds, csa.Placement{Color: c, Square: a.Square.toCSA(), Piece: pt})
	}
	return pos, nil
}

func boardToCSA(rows [][]*PieceDoc) (csa.Board, error) {
	var board csa.Board
	if len(rows) != 9 {
		return board, fmt.Errorf("board has %d rows, want 9: %w", len(rows), errs.ErrInvalidRecord)
	}
	for r, row := range rows {
		if len(row) != 9 {
			return board, fmt.Errorf("board row %d has %d cells, want 9: %w", r+1, len(row), errs.ErrInvalidRecord)
		}
		for f, cell := range row {
			if cell == nil {
				continue
			}
			c, err := parseColor(cell.Color)
			if err != nil {
				return board, fmt.Errorf("board P%d cell %d: %w", r+1, f+1, err)
			}
			pt, err := parsePiece(cell.Piece)
			if err != nil {
				return board, fmt.Errorf("board P%d cell %d: %w", r+1, f+1, err)
			}
			board[r][f] = &csa.Cell{Color: c, Piece: pt}
		}
	}
	return board, nil
}

func (m MoveDoc) ToCSA() (csa.MoveRecord, error) {
	var mr csa.MoveRecord
	if m.Elapsed != nil {
		mr.Time = csa.Ptr(seconds(*m.Elapsed))
	}

	switch m.Action {
	case "move":
		c, err := parseColor(m.Color)
		if err != nil {
			return mr, err
		}
		pt, err := parsePiece(m.Piece)
		if err != nil {
			return mr, err
		}
		mr.Action = csa.Move(c, m.From.toCSA(), m.To.toCSA(), pt)
	case "illegal_action":
		c, err := parseColor(m.Color)
		if err != nil {
			return mr, err
		}
		mr.Action = csa.IllegalAction(c)
	default:
		a, ok := specialActions[m.Action]
		if !ok {
			return mr, fmt.Errorf("action %q: %w", m.Action, errs.ErrUnknownAction)
		}
		mr.Action = a
	}
	return mr, nil
}
