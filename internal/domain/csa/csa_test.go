package csa

import (
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

func TestPieceType(t *testing.T) {
	tests := []struct {
		pt   PieceType
		want string
	}{
		{Pawn, "FU"},
		{Lance, "KY"},
		{Knight, "KE"},
		{Silver, "GI"},
		{Gold, "KI"},
		{Bishop, "KA"},
		{Rook, "HI"},
		{King, "OU"},
		{ProPawn, "TO"},
		{ProLance, "NY"},
		{ProKnight, "NK"},
		{ProSilver, "NG"},
		{Horse, "UM"},
		{Dragon, "RY"},
		{All, "AL"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.pt.String(); got != tt.want {
				t.Errorf("PieceType(%d).String() = %q, want %q", tt.pt, got, tt.want)
			}
		})
	}
}

func TestColor(t *testing.T) {
	var zero Color
	if zero != Black {
		t.Errorf("zero Color = %d, want Black", zero)
	}
	if Black.String() != "+" || White.String() != "-" {
		t.Errorf("colors = %q %q, want + -", Black, White)
	}
}

func TestAction(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   string
	}{
		{"move", Move(Black, NewSquare(7, 7), NewSquare(7, 6), Pawn), "+7776FU"},
		{"white drop", Move(White, Square{}, NewSquare(5, 5), Bishop), "-0055KA"},
		{"toryo", Toryo, "%TORYO"},
		{"chudan", Chudan, "%CHUDAN"},
		{"sennichite", Sennichite, "%SENNICHITE"},
		{"time up", TimeUp, "%TIME_UP"},
		{"illegal move", IllegalMove, "%ILLEGAL_MOVE"},
		{"illegal action black", IllegalAction(Black), "%+ILLEGAL_ACTION"},
		{"illegal action white", IllegalAction(White), "%-ILLEGAL_ACTION"},
		{"jishogi", Jishogi, "%JISHOGI"},
		{"kachi", Kachi, "%KACHI"},
		{"hikiwake", Hikiwake, "%HIKIWAKE"},
		{"matta", Matta, "%MATTA"},
		{"tsumi", Tsumi, "%TSUMI"},
		{"fuzumi", Fuzumi, "%FUZUMI"},
		{"error", Error, "%ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.action.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown action kind")
		}
	}()
	_ = Action{Kind: ActionError + 1}.String()
}

func TestSquareWideValues(t *testing.T) {
	if got := NewSquare(10, 3).String(); got != "103" {
		t.Errorf("String() = %q, want %q", got, "103")
	}
}

func TestTime(t *testing.T) {
	date := civil.Date{Year: 2003, Month: time.May, Day: 3}
	morning := civil.Time{Hour: 9, Minute: 5, Second: 7}

	tests := []struct {
		name    string
		t       Time
		padHour bool
		want    string
	}{
		{"date only", Time{Date: date}, false, "2003/05/03"},
		{"unpadded hour", Time{Date: date, Time: &morning}, false, "2003/05/03 9:05:07"},
		{"padded hour", Time{Date: date, Time: &morning}, true, "2003/05/03 09:05:07"},
		{"short year", Time{Date: civil.Date{Year: 987, Month: time.January, Day: 1}}, false, "987/01/01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.Format(tt.padHour); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.padHour, got, tt.want)
			}
		})
	}
}

func TestNow(t *testing.T) {
	now := Now()
	if now.Time == nil {
		t.Fatal("Now() has no time of day")
	}
	if !now.Date.IsValid() {
		t.Errorf("Now() date %v is not valid", now.Date)
	}
}

func TestTimeLimit(t *testing.T) {
	tests := []struct {
		main, byoyomi time.Duration
		want          string
	}{
		{1500 * time.Second, 0, "00:25+00"},
		{2*time.Hour + 59*time.Second, 30 * time.Second, "02:00+30"},
		{10 * time.Hour, 100 * time.Second, "10:00+100"},
		{90*time.Minute + 1500*time.Millisecond, 1900 * time.Millisecond, "01:30+01"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			tl := TimeLimit{MainTime: tt.main, Byoyomi: tt.byoyomi}
			if got := tl.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want string
	}{
		{"nil layout", Position{}, "PI\n+\n"},
		{"empty sparse", Position{Layout: Sparse{}, SideToMove: White}, "PI\n-\n"},
		{
			"handicap",
			Position{Layout: Sparse{Drops: []Drop{{NewSquare(8, 2), Rook}, {NewSquare(2, 2), Bishop}}}, SideToMove: White},
			"PI82HI22KA\n-\n",
		},
		{
			"placements",
			Position{Adds: []Placement{{Black, NewSquare(5, 9), King}, {White, Square{}, All}}},
			"PI\nP+59OU\nP-00AL\n+\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBulkEmptyBoard(t *testing.T) {
	got := Position{Layout: Bulk{}}.String()
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10:\n%s", len(lines), got)
	}
	empty := strings.Repeat(" * ", 9)
	for i, line := range lines[:9] {
		want := "P" + string(rune('1'+i)) + empty
		if line != want {
			t.Errorf("line %d = %q, want %q", i+1, line, want)
		}
	}
	if lines[9] != "+" {
		t.Errorf("side to move line = %q, want %q", lines[9], "+")
	}
}

func TestBulkBoard(t *testing.T) {
	var board Board
	board[0][4] = &Cell{White, King}
	board[8][4] = &Cell{Black, King}
	got := Position{Layout: Bulk{Board: board}}.String()

	lines := strings.Split(got, "\n")
	if want := "P1 *  *  *  * -OU *  *  *  * "; lines[0] != want {
		t.Errorf("P1 = %q, want %q", lines[0], want)
	}
	if want := "P9 *  *  *  * +OU *  *  *  * "; lines[8] != want {
		t.Errorf("P9 = %q, want %q", lines[8], want)
	}
}

func TestMoveRecord(t *testing.T) {
	m := MoveRecord{Action: Move(White, NewSquare(3, 3), NewSquare(3, 4), Pawn), Time: Ptr(12*time.Second + 900*time.Millisecond)}
	if got, want := m.String(), "-3334FU\nT12\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := (MoveRecord{Action: Toryo}).String(), "%TORYO\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func championshipRecord() *GameRecord {
	date := civil.Date{Year: 2003, Month: time.May, Day: 3}
	return &GameRecord{
		BlackPlayer: Ptr("NAKAHARA"),
		WhitePlayer: Ptr("YONENAGA"),
		Event:       Ptr("13th World Computer Shogi Championship"),
		Site:        Ptr("KAZUSA ARC"),
		StartTime:   &Time{Date: date, Time: &civil.Time{Hour: 10, Minute: 30}},
		EndTime:     &Time{Date: date, Time: &civil.Time{Hour: 11, Minute: 11, Second: 5}},
		TimeLimit:   &TimeLimit{MainTime: 1500 * time.Second},
		Opening:     Ptr("YAGURA"),
		Moves: []MoveRecord{
			{Action: Move(Black, NewSquare(8, 7), NewSquare(8, 6), Pawn), Time: Ptr(5 * time.Second)},
			{Action: Toryo},
		},
	}
}

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

func TestGameRecord(t *testing.T) {
	g := championshipRecord()
	if got := g.String(); got != championshipCSA {
		t.Errorf("String() mismatch\ngot:\n%s\nwant:\n%s", got, championshipCSA)
	}
	if again := g.String(); again != championshipCSA {
		t.Error("second rendering differs from the first")
	}
}

func TestGameRecordWithoutMetadata(t *testing.T) {
	g := &GameRecord{
		StartPos: Position{SideToMove: White},
		Moves:    []MoveRecord{{Action: Chudan}},
	}
	if got, want := g.String(), "V2.2\nPI\n-\n%CHUDAN\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGameRecordWriteTo(t *testing.T) {
	var b strings.Builder
	n, err := championshipRecord().WriteTo(&b)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if b.String() != championshipCSA {
		t.Errorf("WriteTo output differs from String()")
	}
	if n != int64(len(championshipCSA)) {
		t.Errorf("WriteTo n = %d, want %d", n, len(championshipCSA))
	}
}

func TestEncoderPadHour(t *testing.T) {
	g := &GameRecord{StartTime: &Time{
		Date: civil.Date{Year: 2024, Month: time.March, Day: 9},
		Time: &civil.Time{Hour: 8, Minute: 1, Second: 2},
	}}
	got := Encoder{PadHour: true}.EncodeToString(g)
	if !strings.Contains(got, "$START_TIME:2024/03/09 08:01:02\n") {
		t.Errorf("padded output missing start time line:\n%s", got)
	}
	if got := g.String(); !strings.Contains(got, "$START_TIME:2024/03/09 8:01:02\n") {
		t.Errorf("canonical output missing start time line:\n%s", got)
	}
}
