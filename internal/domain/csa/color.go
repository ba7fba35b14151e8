package csa

import "fmt"

// Color is the side that moves. The zero value is Black (sente).
type Color uint8

const (
	Black Color = iota
	White
)

func (c Color) String() string {
	switch c {
	case Black:
		return "+"
	case White:
		return "-"
	}
	panic(fmt.Sprintf("csa: unknown color %d", uint8(c)))
}

func (c Color) valid() bool {
	return c == Black || c == White
}
