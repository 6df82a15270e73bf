package game

import (
	"fmt"
	"strings"
)

// String draws the board one row per line, top row first. With threats
// shown, empty cells under threat are marked R, Y or B (both colors).
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.grid.Height(); y++ {
		sb.WriteString("| ")
		for x := 0; x < b.grid.Width(); x++ {
			sb.WriteString(b.glyph(x, y))
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}

// Legend returns the column numbers aligned under String's output.
func (b *Board) Legend() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for x := 0; x < b.grid.Width(); x++ {
		fmt.Fprintf(&sb, "%d ", x%10)
	}
	sb.WriteString(" \n")
	return sb.String()
}

func (b *Board) glyph(x, y int) string {
	switch b.grid.Get(x, y) {
	case Red:
		return "0"
	case Yellow:
		return "O"
	}
	if !b.showThreats {
		return " "
	}
	pos := Position{Column: x, Row: y}
	red, yellow := b.HasThreat(pos, Red), b.HasThreat(pos, Yellow)
	switch {
	case red && yellow:
		return "B"
	case red:
		return "R"
	case yellow:
		return "Y"
	default:
		return " "
	}
}
