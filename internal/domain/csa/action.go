package csa

import "fmt"

type ActionKind uint8

const (
	ActionMove ActionKind = iota
	ActionToryo
	ActionChudan
	ActionSennichite
	ActionTimeUp
	ActionIllegalMove
	ActionIllegalAction
	ActionJishogi
	ActionKachi
	ActionHikiwake
	ActionMatta
	ActionTsumi
	ActionFuzumi
	ActionError
)

// Action is one ply of the move list: a piece move or a special "%" token.
// Color is used by ActionMove and ActionIllegalAction, From/To/Piece only by ActionMove.
type Action struct {
	Kind  ActionKind
	Color Color
	From  Square
	To    Square
	Piece PieceType
}

var (
	Toryo       = Action{Kind: ActionToryo}
	Chudan      = Action{Kind: ActionChudan}
	Sennichite  = Action{Kind: ActionSennichite}
	TimeUp      = Action{Kind: ActionTimeUp}
	IllegalMove = Action{Kind: ActionIllegalMove}
	Jishogi     = Action{Kind: ActionJishogi}
	Kachi       = Action{Kind: ActionKachi}
	Hikiwake    = Action{Kind: ActionHikiwake}
	Matta       = Action{Kind: ActionMatta}
	Tsumi       = Action{Kind: ActionTsumi}
	Fuzumi      = Action{Kind: ActionFuzumi}
	Error       = Action{Kind: ActionError}
)

// Move builds a piece move. A drop uses the zero Square as its origin.
func Move(c Color, from, to Square, pt PieceType) Action {
	return Action{Kind: ActionMove, Color: c, From: from, To: to, Piece: pt}
}

// IllegalAction marks the side that made an illegal action, rendered "%+ILLEGAL_ACTION".
func IllegalAction(c Color) Action {
	return Action{Kind: ActionIllegalAction, Color: c}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionMove:
		return a.Color.String() + a.From.String() + a.To.String() + a.Piece.String()
	case ActionToryo:
		return "%TORYO"
	case ActionChudan:
		return "%CHUDAN"
	case ActionSennichite:
		return "%SENNICHITE"
	case ActionTimeUp:
		return "%TIME_UP"
	case ActionIllegalMove:
		return "%ILLEGAL_MOVE"
	case ActionIllegalAction:
		return "%" + a.Color.String() + "ILLEGAL_ACTION"
	case ActionJishogi:
		return "%JISHOGI"
	case ActionKachi:
		return "%KACHI"
	case ActionHikiwake:
		return "%HIKIWAKE"
	case ActionMatta:
		return "%MATTA"
	case ActionTsumi:
		return "%TSUMI"
	case ActionFuzumi:
		return "%FUZUMI"
	case ActionError:
		return "%ERROR"
	}
	panic(fmt.Sprintf("csa: unknown action kind %d", uint8(a.Kind)))
}
