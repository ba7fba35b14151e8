// Package csa holds a shogi game record and its CSA V2.2 text encoding.
package csa

import (
	"io"
	"strconv"
	"strings"
	"time"
)

const Version = "V2.2"

// MoveRecord is one entry of the move list with the optional time the
// mover spent on it.
type MoveRecord struct {
	Action Action
	Time   *time.Duration
}

func (m MoveRecord) writeTo(b *strings.Builder) {
	b.WriteString(m.Action.String())
	b.WriteString("\n")
	if m.Time != nil {
		b.WriteString("T")
		b.WriteString(strconv.FormatInt(int64(*m.Time/time.Second), 10))
		b.WriteString("\n")
	}
}

func (m MoveRecord) String() string {
	var b strings.Builder
	m.writeTo(&b)
	return b.String()
}

// GameRecord is a complete game. Nil metadata fields are left out of the
// output entirely.
type GameRecord struct {
	BlackPlayer *string
	WhitePlayer *string
	Event       *string
	Site        *string
	StartTime   *Time
	EndTime     *Time
	TimeLimit   *TimeLimit
	Opening     *string
	StartPos    Position
	Moves       []MoveRecord
}

// Ptr returns a pointer to v, for filling optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// Encoder writes game records. The zero Encoder produces the canonical
// byte sequence.
type Encoder struct {
	// PadHour zero-pads the hour of $START_TIME and $END_TIME.
	PadHour bool
}

type header struct {
	label string
	value *string
}

func (e Encoder) headers(g *GameRecord) []header {
	formatTime := func(t *Time) *string {
		if t == nil {
			return nil
		}
		return Ptr(t.Format(e.PadHour))
	}
	var timeLimit *string
	if g.TimeLimit != nil {
		timeLimit = Ptr(g.TimeLimit.String())
	}

	return []header{
		{"N+", g.BlackPlayer},
		{"N-", g.WhitePlayer},
		{"$EVENT:", g.Event},
		{"$SITE:", g.Site},
		{"$START_TIME:", formatTime(g.StartTime)},
		{"$END_TIME:", formatTime(g.EndTime)},
		{"$TIME_LIMIT:", timeLimit},
		{"$OPENING:", g.Opening},
	}
}

// Encode writes the record to w. The header and position go out as one
// write, then one write per move.
func (e Encoder) Encode(w io.Writer, g *GameRecord) error {
	_, err := e.encode(w, g)
	return err
}

func (e Encoder) EncodeToString(g *GameRecord) string {
	var b strings.Builder
	_, _ = e.encode(&b, g)
	return b.String()
}

func (e Encoder) encode(w io.Writer, g *GameRecord) (int64, error) {
	var b strings.Builder
	b.WriteString(Version)
	b.WriteString("\n")
	for _, h := range e.headers(g) {
		if h.value == nil {
			continue
		}
		b.WriteString(h.label)
		b.WriteString(*h.value)
		b.WriteString("\n")
	}
	g.StartPos.writeTo(&b)

	var total int64
	flush := func() error {
		n, err := io.WriteString(w, b.String())
		total += int64(n)
		b.Reset()
		return err
	}
	if err := flush(); err != nil {
		return total, err
	}
	for _, m := range g.Moves {
		m.writeTo(&b)
		if err := flush(); err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteTo implements io.WriterTo with the canonical encoding.
func (g *GameRecord) WriteTo(w io.Writer) (int64, error) {
	return Encoder{}.encode(w, g)
}

func (g *GameRecord) String() string {
	return Encoder{}.EncodeToString(g)
}
