package game

import (
	"connect4/meta"
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Threat marks an empty cell that would complete four in a row for Piece.
type Threat struct {
	Position
	Piece Piece
}

// Board is the full game state: the grid, the per-column landing rows, the
// open threats of both colors, the winner (Empty until someone connects four)
// and the color to move.
type Board struct {
	grid        *Grid[Piece]
	dropZones   []int
	threats     map[Threat]struct{}
	winner      Piece
	nextMove    Piece
	lastMove    int
	showThreats bool
}

// NewBoard returns an empty standard 7x6 board.
func NewBoard() *Board {
	return NewBoardWithSize(meta.DefaultWidth, meta.DefaultHeight)
}

// MaxHeight is the tallest board whose 2^row threat weights fit in an int.
const MaxHeight = 62

// NewBoardWithSize returns an empty board. Yellow moves first.
// It panics if height exceeds MaxHeight.
func NewBoardWithSize(width, height int) *Board {
	if height > MaxHeight {
		panic(fmt.Sprintf("board height %d exceeds %d", height, MaxHeight))
	}
	dropZones := make([]int, width)
	for i := range dropZones {
		dropZones[i] = height
	}
	return &Board{
		grid:      NewGrid(width, height, Empty),
		dropZones: dropZones,
		threats:   make(map[Threat]struct{}),
		winner:    Empty,
		nextMove:  Yellow,
		lastMove:  -1,
	}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		grid:        b.grid.Clone(),
		dropZones:   slices.Clone(b.dropZones),
		threats:     maps.Clone(b.threats),
		winner:      b.winner,
		nextMove:    b.nextMove,
		lastMove:    b.lastMove,
		showThreats: b.showThreats,
	}
}

func (b *Board) Width() int  { return b.grid.Width() }
func (b *Board) Height() int { return b.grid.Height() }

// Get returns the piece at (x, y).
func (b *Board) Get(x, y int) Piece { return b.grid.Get(x, y) }

// Winner returns the winning color, or Empty while nobody has won.
func (b *Board) Winner() Piece { return b.winner }

// NextMove returns the color to play.
func (b *Board) NextMove() Piece { return b.nextMove }

// LastMove returns the column of the most recent drop, -1 on a fresh board.
func (b *Board) LastMove() int { return b.lastMove }

// DropZone returns the row the next piece dropped into column will land on;
// 0 means the column is full.
func (b *Board) DropZone(column int) int { return b.dropZones[column] }

func (b *Board) SetShowThreats(show bool) { b.showThreats = show }

// CanDrop reports whether column is on the board and not full.
func (b *Board) CanDrop(column int) bool {
	return column >= 0 && column < len(b.dropZones) && b.dropZones[column] > 0
}

// Full reports whether every column is full.
func (b *Board) Full() bool {
	for _, zone := range b.dropZones {
		if zone > 0 {
			return false
		}
	}
	return true
}

// GameOver reports whether the board has a winner or no legal moves left.
func (b *Board) GameOver() bool {
	return b.winner != Empty || b.Full()
}

// Drop plays the next color into column and returns the landing row. A full
// column is rejected with ok == false and leaves the board untouched.
// Columns outside the board are a caller bug and panic.
func (b *Board) Drop(column int) (row int, ok bool) {
	if column < 0 || column >= len(b.dropZones) {
		panic(fmt.Sprintf("column %d outside board of width %d", column, len(b.dropZones)))
	}
	if b.dropZones[column] == 0 {
		return 0, false
	}
	b.dropZones[column]--
	row = b.dropZones[column]
	b.set(column, row, b.nextMove)
	b.nextMove = b.nextMove.Opponent()
	b.lastMove = column
	return row, true
}

// set places piece at (x, y), records a win if the cell was an open threat
// for that color, and rescans the lines through the cell.
func (b *Board) set(x, y int, piece Piece) {
	b.grid.Set(x, y, piece)
	pos := Position{Column: x, Row: y}
	if _, ok := b.threats[Threat{Position: pos, Piece: piece}]; ok && b.winner == Empty {
		b.winner = piece
	}
	// An occupied cell is nobody's gap
	delete(b.threats, Threat{Position: pos, Piece: Red})
	delete(b.threats, Threat{Position: pos, Piece: Yellow})
	b.update(x, y)
}

// HasThreat reports whether piece threatens to win at pos.
func (b *Board) HasThreat(pos Position, piece Piece) bool {
	_, ok := b.threats[Threat{Position: pos, Piece: piece}]
	return ok
}

// Threats returns the open threats ordered by column, row, then color.
func (b *Board) Threats() []Threat {
	threats := make([]Threat, 0, len(b.threats))
	for threat := range b.threats {
		threats = append(threats, threat)
	}
	slices.SortFunc(threats, func(a, c Threat) int {
		if a.Column != c.Column {
			return a.Column - c.Column
		}
		if a.Row != c.Row {
			return a.Row - c.Row
		}
		return int(a.Piece) - int(c.Piece)
	})
	return threats
}

// Equal compares grid contents and the color to move. Threats and winner
// are derived from the grid and not compared.
func (b *Board) Equal(other *Board) bool {
	return b.nextMove == other.nextMove && b.grid.Equal(other.grid)
}

// Hash is consistent with Equal.
func (b *Board) Hash() uint64 {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.nextMove))
	binary.Write(hasher, binary.LittleEndian, int64(b.grid.Width()))
	for _, piece := range b.grid.data {
		hasher.Write([]byte{byte(piece)})
	}

	return hasher.Sum64()
}
