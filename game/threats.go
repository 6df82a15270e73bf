package game

// Direction vectors generating every line through a cell: diagonal, horizontal,
// anti-diagonal and vertical.
var directions = [4][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, 1}}

const (
	connect = 4
	reach   = connect - 1
)

// update records the threats completed by the windows of four cells that
// pass through (x, y). Only the lines crossing the changed cell can gain a
// threat, so the rest of the board is not rescanned.
func (b *Board) update(x, y int) {
	line := make([]Position, 0, 2*reach+1)
	for _, dir := range directions {
		line = line[:0]
		for d := -reach; d <= reach; d++ {
			px, py := x+d*dir[0], y+d*dir[1]
			if b.grid.Contains(px, py) {
				line = append(line, Position{Column: px, Row: py})
			}
		}
		if len(line) < connect {
			continue
		}
		b.scan(line)
	}
}

// scan slides a window of four over line, keeping a running tally of the
// pieces inside it.
func (b *Board) scan(line []Position) {
	var tally [3]int // indexed by Piece
	for i, pos := range line {
		tally[b.grid.Get(pos.Column, pos.Row)]++
		if i >= connect {
			early := line[i-connect]
			tally[b.grid.Get(early.Column, early.Row)]--
		}
		if i < reach || tally[Empty] != 1 {
			continue
		}
		for _, piece := range [2]Piece{Red, Yellow} {
			if tally[piece] == reach {
				gap := b.gap(line[i-reach : i+1])
				b.threats[Threat{Position: gap, Piece: piece}] = struct{}{}
			}
		}
	}
}

func (b *Board) gap(window []Position) Position {
	for _, pos := range window {
		if b.grid.Get(pos.Column, pos.Row) == Empty {
			return pos
		}
	}
	panic("window tally has an empty cell but none was found")
}
