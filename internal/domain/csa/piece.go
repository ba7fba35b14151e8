package csa

import "fmt"

type PieceType uint8

const (
	Pawn PieceType = iota
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King
	ProPawn
	ProLance
	ProKnight
	ProSilver
	Horse
	Dragon
	// All is the wildcard used by "P+00AL" (every remaining piece to hand).
	All
)

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "FU"
	case Lance:
		return "KY"
	case Knight:
		return "KE"
	case Silver:
		return "GI"
	case Gold:
		return "KI"
	case Bishop:
		return "KA"
	case Rook:
		return "HI"
	case King:
		return "OU"
	case ProPawn:
		return "TO"
	case ProLance:
		return "NY"
	case ProKnight:
		return "NK"
	case ProSilver:
		return "NG"
	case Horse:
		return "UM"
	case Dragon:
		return "RY"
	case All:
		return "AL"
	}
	panic(fmt.Sprintf("csa: unknown piece type %d", uint8(pt)))
}

func (pt PieceType) valid() bool {
	return pt <= All
}
