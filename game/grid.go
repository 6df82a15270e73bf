package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Grid is a fixed-size two-dimensional array stored row by row.
type Grid[T comparable] struct {
	data   []T
	width  int
	height int
}

func NewGrid[T comparable](width, height int, fill T) *Grid[T] {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid grid size %dx%d", width, height))
	}
	data := make([]T, width*height)
	for i := range data {
		data[i] = fill
	}
	return &Grid[T]{data: data, width: width, height: height}
}

func (g *Grid[T]) Width() int  { return g.width }
func (g *Grid[T]) Height() int { return g.height }

// Get returns the cell at (x, y). Coordinates outside the grid panic.
func (g *Grid[T]) Get(x, y int) T {
	return g.data[g.index(x, y)]
}

// Set overwrites the cell at (x, y). Coordinates outside the grid panic.
func (g *Grid[T]) Set(x, y int, value T) {
	g.data[g.index(x, y)] = value
}

// Contains reports whether (x, y) lies inside the grid.
func (g *Grid[T]) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid[T]) index(x, y int) int {
	// A row-major slice would silently alias x >= width into the next row
	if !g.Contains(x, y) {
		panic(fmt.Sprintf("cell (%d, %d) outside %dx%d grid", x, y, g.width, g.height))
	}
	return y*g.width + x
}

func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{
		data:   slices.Clone(g.data),
		width:  g.width,
		height: g.height,
	}
}

// Equal compares dimensions and contents.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	return g.width == other.width && g.height == other.height && slices.Equal(g.data, other.data)
}
