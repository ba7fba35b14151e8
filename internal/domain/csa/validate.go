package csa

import (
	"fmt"
	"time"

	"go.uber.org/multierr"

	errs "shogi_csa/internal/errors"
)

// Validate reports every value that would not produce well-formed CSA text:
// squares outside 1..9, impossible dates, negative durations and enum values
// outside their sets. The encoder never calls it; rendering stays total.
func (g *GameRecord) Validate() error {
	var err error

	for _, f := range []struct {
		name string
		t    *Time
	}{{"start time", g.StartTime}, {"end time", g.EndTime}} {
		if f.t != nil {
			err = multierr.Append(err, f.t.validate(f.name))
		}
	}
	if g.TimeLimit != nil {
		err = multierr.Append(err, validateDuration("time limit main time", g.TimeLimit.MainTime))
		err = multierr.Append(err, validateDuration("time limit byoyomi", g.TimeLimit.Byoyomi))
	}

	err = multierr.Append(err, g.StartPos.validate())

	for i, m := range g.Moves {
		err = multierr.Append(err, m.validate(fmt.Sprintf("move %d", i+1)))
	}
	return err
}

func (t Time) validate(name string) error {
	if !t.Date.IsValid() {
		return fmt.Errorf("%s: date %s: %w", name, t.Date, errs.ErrInvalidDate)
	}
	if t.Time != nil && !t.Time.IsValid() {
		return fmt.Errorf("%s: time %s: %w", name, t.Time, errs.ErrInvalidDate)
	}
	return nil
}

func validateDuration(name string, d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%s %s: %w", name, d, errs.ErrNegativeDuration)
	}
	return nil
}

func validateColor(name string, c Color) error {
	if !c.valid() {
		return fmt.Errorf("%s: %d: %w", name, uint8(c), errs.ErrUnknownColor)
	}
	return nil
}

func validatePiece(name string, pt PieceType, allowAll bool) error {
	if !pt.valid() || (pt == All && !allowAll) {
		return fmt.Errorf("%s: %d: %w", name, uint8(pt), errs.ErrUnknownPiece)
	}
	return nil
}

func validateSquare(name string, sq Square, allowOffBoard bool) error {
	if sq.onBoard() || (allowOffBoard && sq.offBoard()) {
		return nil
	}
	return fmt.Errorf("%s: %d/%d: %w", name, sq.File, sq.Rank, errs.ErrInvalidSquare)
}

func (p Position) validate() error {
	var err error
	switch l := p.Layout.(type) {
	case Bulk:
		err = l.Board.validate()
	case *Bulk:
		if l != nil {
			err = l.Board.validate()
		}
	case Sparse:
		err = validateDrops(l.Drops)
	case *Sparse:
		if l != nil {
			err = validateDrops(l.Drops)
		}
	}
	for i, a := range p.Adds {
		name := fmt.Sprintf("placement %d", i+1)
		err = multierr.Append(err, validateColor(name, a.Color))
		err = multierr.Append(err, validateSquare(name, a.Square, true))
		// AL only makes sense for pieces in hand.
		err = multierr.Append(err, validatePiece(name, a.Piece, a.Square.offBoard()))
	}
	return multierr.Append(err, validateColor("side to move", p.SideToMove))
}

func (bd Board) validate() error {
	var err error
	for r, row := range bd {
		for f, c := range row {
			if c == nil {
				continue
			}
			name := fmt.Sprintf("board P%d cell %d", r+1, f+1)
			err = multierr.Append(err, validateColor(name, c.Color))
			err = multierr.Append(err, validatePiece(name, c.Piece, false))
		}
	}
	return err
}

func validateDrops(drops []Drop) error {
	var err error
	for i, d := range drops {
		name := fmt.Sprintf("PI entry %d", i+1)
		err = multierr.Append(err, validateSquare(name, d.Square, false))
		err = multierr.Append(err, validatePiece(name, d.Piece, false))
	}
	return err
}

// Validate checks a single move list entry on its own.
func (m MoveRecord) Validate() error {
	return m.validate("move")
}

func (m MoveRecord) validate(name string) error {
	var err error
	if m.Time != nil {
		err = validateDuration(name+" elapsed", *m.Time)
	}
	return multierr.Append(err, m.Action.validate(name))
}

func (a Action) validate(name string) error {
	switch a.Kind {
	case ActionMove:
		return multierr.Combine(
			validateColor(name, a.Color),
			validateSquare(name+" from", a.From, true),
			validateSquare(name+" to", a.To, false),
			validatePiece(name, a.Piece, false),
		)
	case ActionIllegalAction:
		return validateColor(name, a.Color)
	}
	if a.Kind > ActionError {
		return fmt.Errorf("%s: %d: %w", name, uint8(a.Kind), errs.ErrUnknownAction)
	}
	return nil
}
