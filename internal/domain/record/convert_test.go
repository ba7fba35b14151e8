package record

import (
	"encoding/json"
	"errors"
	"testing"

	errs "shogi_csa/internal/errors"
)

const championshipJSON = `{
	"metadata": {
		"black_player": "NAKAHARA",
		"white_player": "YONENAGA",
		"event": "13th World Computer Shogi Championship",
		"site": "KAZUSA ARC",
		"start_time": {"date": "2003-05-03", "time": "10:30:00"},
		"end_time": {"date": "2003-05-03", "time": "11:11:05"},
		"time_limit": {"main_time": 1500, "byoyomi": 0},
		"opening": "YAGURA"
	},
	"position": {"side_to_move": "black"},
	"moves": [
		{"action": "move", "color": "black", "from": [8, 7], "to": [8, 6], "piece": "pawn", "elapsed": 5},
		{"action": "toryo"}
	]
}`

const championshipCSA = `V2.2
N+NAKAHARA
N-YONENAGA
$EVENT:13th World Computer Shogi Championship
$SITE:KAZUSA ARC
$START_TIME:2003/05/03 10:30:00
$END_TIME:2003/05/03 11:11:05
$TIME_LIMIT:00:25+00
$OPENING:YAGURA
PI
+
+8786FU
T5
%TORYO
`

func TestRecordToCSA(t *testing.T) {
	var rec Record
	if err := json.Unmarshal([]byte(championshipJSON), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	g, err := rec.ToCSA()
	if err != nil {
		t.Fatalf("ToCSA: %v", err)
	}
	if got := g.String(); got != championshipCSA {
		t.Errorf("rendered record mismatch\ngot:\n%s\nwant:\n%s", got, championshipCSA)
	}
}

func TestPositionDocToCSA(t *testing.T) {
	board := make([][]*PieceDoc, 9)
	for i := range board {
		board[i] = make([]*PieceDoc, 9)
	}
	board[8][4] = &PieceDoc{Color: "black", Piece: "king"}

	pos, err := PositionDoc{
		Board:      board,
		Adds:       []PlacementDoc{{Color: "white", Square: Square{0, 0}, Piece: "all"}},
		SideToMove: "white",
	}.ToCSA()
	if err != nil {
		t.Fatalf("ToCSA: %v", err)
	}
	want := "P1 *  *  *  *  *  *  *  *  * \n" +
		"P2 *  *  *  *  *  *  *  *  * \n" +
		"P3 *  *  *  *  *  *  *  *  * \n" +
		"P4 *  *  *  *  *  *  *  *  * \n" +
		"P5 *  *  *  *  *  *  *  *  * \n" +
		"P6 *  *  *  *  *  *  *  *  * \n" +
		"P7 *  *  *  *  *  *  *  *  * \n" +
		"P8 *  *  *  *  *  *  *  *  * \n" +
		"P9 *  *  *  * +OU *  *  *  * \n" +
		"P-00AL\n" +
		"-\n"
	if got := pos.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestToCSAErrors(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want error
	}{
		{
			"unknown piece",
			Record{Moves: []MoveDoc{{Action: "move", Color: "black", Piece: "queen"}}},
			errs.ErrUnknownPiece,
		},
		{
			"unknown action",
			Record{Moves: []MoveDoc{{Action: "resign"}}},
			errs.ErrUnknownAction,
		},
		{
			"unknown color",
			Record{Moves: []MoveDoc{{Action: "illegal_action", Color: "red"}}},
			errs.ErrUnknownColor,
		},
		{
			"bad date",
			Record{Metadata: Metadata{StartTime: &TimeDoc{Date: "2003/05/03"}}},
			errs.ErrInvalidDate,
		},
		{
			"short board",
			Record{Position: PositionDoc{Board: [][]*PieceDoc{{}}}},
			errs.ErrInvalidRecord,
		},
		{
			"board and drops",
			Record{Position: PositionDoc{
				Board: make([][]*PieceDoc, 9),
				Drops: []DropDoc{{Square: Square{8, 2}, Piece: "rook"}},
			}},
			errs.ErrInvalidRecord,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.rec.ToCSA()
			if !errors.Is(err, tt.want) {
				t.Errorf("ToCSA() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMoveDocToCSA(t *testing.T) {
	elapsed := int64(3)
	tests := []struct {
		doc  MoveDoc
		want string
	}{
		{MoveDoc{Action: "move", Color: "white", From: Square{0, 0}, To: Square{5, 5}, Piece: "bishop", Elapsed: &elapsed}, "-0055KA\nT3\n"},
		{MoveDoc{Action: "illegal_action", Color: "white"}, "%-ILLEGAL_ACTION\n"},
		{MoveDoc{Action: "time_up"}, "%TIME_UP\n"},
	}
	for _, tt := range tests {
		t.Run(tt.doc.Action, func(t *testing.T) {
			mr, err := tt.doc.ToCSA()
			if err != nil {
				t.Fatalf("ToCSA: %v", err)
			}
			if got := mr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
