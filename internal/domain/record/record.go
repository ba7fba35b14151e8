package record

import "time"

// Record is a stored game record as it travels over HTTP and lives in MongoDB.
type Record struct {
	ID        string      `json:"id,omitempty" bson:"_id,omitempty"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	Metadata  Metadata    `json:"metadata" bson:"metadata"`
	Position  PositionDoc `json:"position" bson:"position"`
	Moves     []MoveDoc   `json:"moves" bson:"moves"`
}

type Metadata struct {
	BlackPlayer *string       `json:"black_player,omitempty" bson:"black_player,omitempty"`
	WhitePlayer *string       `json:"white_player,omitempty" bson:"white_player,omitempty"`
	Event       *string       `json:"event,omitempty" bson:"event,omitempty"`
	Site        *string       `json:"site,omitempty" bson:"site,omitempty"`
	StartTime   *TimeDoc      `json:"start_time,omitempty" bson:"start_time,omitempty"`
	EndTime     *TimeDoc      `json:"end_time,omitempty" bson:"end_time,omitempty"`
	TimeLimit   *TimeLimitDoc `json:"time_limit,omitempty" bson:"time_limit,omitempty"`
	Opening     *string       `json:"opening,omitempty" bson:"opening,omitempty"`
}

// TimeDoc holds a "2006-01-02" date and an optional "15:04:05" time of day.
type TimeDoc struct {
	Date string `json:"date" bson:"date"`
	Time string `json:"time,omitempty" bson:"time,omitempty"`
}

// TimeLimitDoc durations are whole seconds.
type TimeLimitDoc struct {
	MainTime int64 `json:"main_time" bson:"main_time"`
	Byoyomi  int64 `json:"byoyomi" bson:"byoyomi"`
}

// PositionDoc carries either Board (9 rows of 9 cells, null for empty) or
// Drops, never both.
type PositionDoc struct {
	Board      [][]*PieceDoc  `json:"board,omitempty" bson:"board,omitempty"`
	Drops      []DropDoc      `json:"drops,omitempty" bson:"drops,omitempty"`
	Adds       []PlacementDoc `json:"adds,omitempty" bson:"adds,omitempty"`
	SideToMove string         `json:"side_to_move,omitempty" bson:"side_to_move,omitempty"`
}

type PieceDoc struct {
	Color string `json:"color" bson:"color"`
	Piece string `json:"piece" bson:"piece"`
}

// Square is [file, rank].
type Square [2]int

type DropDoc struct {
	Square Square `json:"square" bson:"square"`
	Piece  string `json:"piece" bson:"piece"`
}

type PlacementDoc struct {
	Color  string `json:"color" bson:"color"`
	Square Square `json:"square" bson:"square"`
	Piece  string `json:"piece" bson:"piece"`
}

// MoveDoc is one move list entry. Action is "move" or one of the special
// actions ("toryo", "illegal_action", ...). Elapsed is in seconds.
type MoveDoc struct {
	Action  string `json:"action" bson:"action"`
	Color   string `json:"color,omitempty" bson:"color,omitempty"`
	From    Square `json:"from,omitempty" bson:"from,omitempty"`
	To      Square `json:"to,omitempty" bson:"to,omitempty"`
	Piece   string `json:"piece,omitempty" bson:"piece,omitempty"`
	Elapsed *int64 `json:"elapsed,omitempty" bson:"elapsed,omitempty"`
}

type CreateResponse struct {
	ID  string `json:"id"`
	CSA string `json:"csa"`
}

type AppendResponse struct {
	Lines string `json:"lines"`
}
