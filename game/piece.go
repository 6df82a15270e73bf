package game

import "strings"

// Piece is the content of a single grid cell.
type Piece int

const (
	Empty Piece = iota
	Red
	Yellow
)

// Opponent returns the other color. Empty has no opponent.
func (p Piece) Opponent() Piece {
	switch p {
	case Red:
		return Yellow
	case Yellow:
		return Red
	default:
		return Empty
	}
}

func (p Piece) String() string {
	switch p {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	default:
		return "Empty"
	}
}

// ParsePiece maps a color name (case-insensitive "red"/"yellow") to its piece.
func ParsePiece(name string) (Piece, bool) {
	switch strings.ToLower(name) {
	case "red":
		return Red, true
	case "yellow":
		return Yellow, true
	default:
		return Empty, false
	}
}

// Position addresses a grid cell. Row 0 is the top of the board.
type Position struct {
	Column int
	Row    int
}
