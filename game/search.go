package game

import (
	"iter"
	"math"
)

// Score evaluates the board for the search: Red maximizes, Yellow minimizes.
// A won board saturates to the extreme int. Otherwise every open threat
// counts 2^row for its color, except threats on the bottom row which are
// already in reach of a one-ply search.
func (b *Board) Score() int {
	switch b.winner {
	case Red:
		return math.MaxInt
	case Yellow:
		return math.MinInt
	}

	bottom := b.grid.Height() - 1
	score := 0
	for threat := range b.threats {
		if threat.Row == bottom {
			continue
		}
		weight := 1 << threat.Row
		switch threat.Piece {
		case Red:
			score = saturatingAdd(score, weight)
		case Yellow:
			score = saturatingAdd(score, -weight)
		}
	}
	return score
}

// saturatingAdd keeps heuristic sums strictly inside the win values.
func saturatingAdd(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-1-b:
		return math.MaxInt - 1
	case b < 0 && a < math.MinInt+1-b:
		return math.MinInt + 1
	}
	return a + b
}

// Moves yields one successor board per playable column, in column order.
// The sequence is taken from the board as it is when Moves is called.
func (b *Board) Moves() iter.Seq[*Board] {
	board := b.Clone()
	return func(yield func(*Board) bool) {
		for column, zone := range board.dropZones {
			if zone == 0 {
				continue
			}
			child := board.Clone()
			child.Drop(column)
			if !yield(child) {
				return
			}
		}
	}
}

// Columns returns the playable columns in increasing order.
func (b *Board) Columns() []int {
	columns := make([]int, 0, len(b.dropZones))
	for column, zone := range b.dropZones {
		if zone > 0 {
			columns = append(columns, column)
		}
	}
	return columns
}
