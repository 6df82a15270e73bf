package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// play drops each column in turn and fails the test on a rejected drop.
func play(t *testing.T, b *Board, columns ...int) {
	t.Helper()
	for _, column := range columns {
		_, ok := b.Drop(column)
		require.True(t, ok, "Drop into column %d should be accepted", column)
	}
}

// drawSequence fills a 7x6 board without either color connecting four.
var drawSequence = []int{
	0, 1, 5, 5, 0, 2, 3, 2, 0, 3, 4, 5, 3, 6, 4, 3, 5, 6, 2, 2, 2,
	2, 3, 0, 4, 1, 6, 1, 0, 4, 5, 0, 1, 1, 1, 4, 4, 3, 5, 6, 6, 6,
}

// bruteForceThreats scans every window of four on the board.
func bruteForceThreats(b *Board) map[Threat]struct{} {
	threats := make(map[Threat]struct{})
	steps := [][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			for _, step := range steps {
				var window []Position
				for i := 0; i < 4; i++ {
					px, py := x+i*step[0], y+i*step[1]
					if !b.grid.Contains(px, py) {
						break
					}
					window = append(window, Position{Column: px, Row: py})
				}
				if len(window) < 4 {
					continue
				}
				var tally [3]int
				var gap Position
				for _, pos := range window {
					piece := b.Get(pos.Column, pos.Row)
					tally[piece]++
					if piece == Empty {
						gap = pos
					}
				}
				for _, piece := range []Piece{Red, Yellow} {
					if tally[Empty] == 1 && tally[piece] == 3 {
						threats[Threat{Position: gap, Piece: piece}] = struct{}{}
					}
				}
			}
		}
	}
	return threats
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, 7, b.Width())
	require.Equal(t, 6, b.Height())
	require.Equal(t, Yellow, b.NextMove(), "Yellow should move first")
	require.Equal(t, Empty, b.Winner())
	require.Equal(t, -1, b.LastMove())
	require.False(t, b.GameOver())
	require.Empty(t, b.Threats())
	for column := 0; column < 7; column++ {
		require.Equal(t, 6, b.DropZone(column))
	}
}

func TestBoardDrop(t *testing.T) {
	t.Run("stacking pieces from the bottom up", func(t *testing.T) {
		b := NewBoard()

		for i := 0; i < 6; i++ {
			row, ok := b.Drop(3)
			require.True(t, ok)
			require.Equal(t, 5-i, row, "Each piece should land on top of the previous one")
		}
		require.Equal(t, Yellow, b.Get(3, 5))
		require.Equal(t, Red, b.Get(3, 4))
		require.Equal(t, 0, b.DropZone(3))
		require.Equal(t, 3, b.LastMove())
	})

	t.Run("rejecting a full column", func(t *testing.T) {
		b := NewBoard()
		play(t, b, 3, 3, 3, 3, 3, 3)
		before := b.Clone()

		_, ok := b.Drop(3)

		require.False(t, ok, "Seventh drop into a column of height 6 should be rejected")
		require.Equal(t, before, b, "Board should be unchanged")
		require.Equal(t, Yellow, b.NextMove(), "Turn should not pass")

		row, ok := b.Drop(2)
		require.True(t, ok, "Other columns should stay playable")
		require.Equal(t, 5, row)
	})

	t.Run("alternating colors", func(t *testing.T) {
		b := NewBoard()
		play(t, b, 0)
		require.Equal(t, Red, b.NextMove())
		play(t, b, 1)
		require.Equal(t, Yellow, b.NextMove())
		require.Equal(t, Yellow, b.Get(0, 5))
		require.Equal(t, Red, b.Get(1, 5))
	})

	t.Run("panicking on a column outside the board", func(t *testing.T) {
		b := NewBoard()

		require.Panics(t, func() { b.Drop(7) })
		require.Panics(t, func() { b.Drop(-1) })
		require.Panics(t, func() { NewBoardWithSize(7, MaxHeight+1) }, "Taller boards overflow the score weights")
		require.False(t, b.CanDrop(7))
		require.False(t, b.CanDrop(-1))
		require.True(t, b.CanDrop(0))
	})
}

func TestBoardThreats(t *testing.T) {
	t.Run("three in a row on the bottom opens the fourth cell", func(t *testing.T) {
		b := NewBoard()
		play(t, b, 0, 6, 1, 6, 2)

		require.True(t, b.HasThreat(Position{Column: 3, Row: 5}, Yellow))
		require.Equal(t, []Threat{{Position: Position{Column: 3, Row: 5}, Piece: Yellow}}, b.Threats())
	})

	t.Run("filling the threat wins", func(t *testing.T) {
		b := NewBoard()
		play(t, b, 0, 6, 1, 6, 2, 5, 3)

		require.Equal(t, Yellow, b.Winner())
		require.True(t, b.GameOver())
		require.False(t, b.HasThreat(Position{Column: 3, Row: 5}, Yellow), "Filled cell should not stay a threat")
	})

	t.Run("blocking a threat clears it without winning", func(t *testing.T) {
		b := NewBoard()
		play(t, b, 0, 6, 1, 6, 2, 3)

		require.Equal(t, Empty, b.Winner(), "Red filling a Yellow threat should not win")
		require.False(t, b.HasThreat(Position{Column: 3, Row: 5}, Yellow))
		require.False(t, b.GameOver())
	})

	t.Run("vertical threat above a stack", func(t *testing.T) {
		b := NewBoard()
		play(t, b, 0, 6, 0, 5, 0)

		require.Equal(t, []Threat{{Position: Position{Column: 0, Row: 2}, Piece: Yellow}}, b.Threats())
	})

	t.Run("both colors threatening the same cell", func(t *testing.T) {
		b := NewBoard()
		play(t, b, 6, 0, 5, 2, 4, 1, 4, 4)

		gap := Position{Column: 3, Row: 5}
		require.True(t, b.HasThreat(gap, Red))
		require.True(t, b.HasThreat(gap, Yellow))
		require.Len(t, b.Threats(), 2)
	})

	t.Run("winner never changes once set", func(t *testing.T) {
		b := NewBoard()
		// Yellow connects on the bottom row while Red builds a column
		play(t, b, 0, 6, 1, 6, 2, 6, 3)
		require.Equal(t, Yellow, b.Winner())

		// Red fills its own open threat afterwards
		play(t, b, 6)
		require.Equal(t, Yellow, b.Winner())
	})

	t.Run("incremental threats match a full board scan", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for game := 0; game < 50; game++ {
			b := NewBoard()
			for !b.Full() {
				columns := b.Columns()
				play(t, b, columns[rng.Intn(len(columns))])

				require.Equal(t, bruteForceThreats(b), b.threats, "Threat set should equal a full scan")
				for threat := range b.threats {
					require.Equal(t, Empty, b.Get(threat.Column, threat.Row), "Threat should refer to an empty cell")
				}
			}
		}
	})

	t.Run("completing a threat only ever crowns the mover", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for game := 0; game < 50; game++ {
			b := NewBoard()
			for !b.GameOver() {
				columns := b.Columns()
				column := columns[rng.Intn(len(columns))]
				mover := b.NextMove()
				target := Position{Column: column, Row: b.DropZone(column) - 1}
				wasThreat := b.HasThreat(target, mover)

				play(t, b, column)

				if wasThreat {
					require.Equal(t, mover, b.Winner())
				} else {
					require.Equal(t, Empty, b.Winner())
				}
			}
		}
	})
}

func TestBoardFull(t *testing.T) {
	b := NewBoard()
	play(t, b, drawSequence...)

	require.True(t, b.Full())
	require.Equal(t, Empty, b.Winner(), "Draw sequence should not produce a winner")
	require.True(t, b.GameOver(), "Full board should be game over")
	require.Empty(t, b.Columns())
	count := 0
	for range b.Moves() {
		count++
	}
	require.Zero(t, count, "Full board should have no moves")
}

func TestBoardEquality(t *testing.T) {
	t.Run("transposed move orders are equal", func(t *testing.T) {
		a := NewBoard()
		play(t, a, 0, 1, 2, 3)
		b := NewBoard()
		play(t, b, 2, 3, 0, 1)

		require.True(t, a.Equal(b))
		require.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("derived state is ignored", func(t *testing.T) {
		a := NewBoard()
		play(t, a, 0, 6, 1, 6, 2)
		b := a.Clone()
		b.threats = map[Threat]struct{}{}
		b.winner = Red
		b.showThreats = true

		require.True(t, a.Equal(b))
		require.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("side to move is compared", func(t *testing.T) {
		a := NewBoard()
		b := NewBoard()
		b.nextMove = Red

		require.False(t, a.Equal(b))
		require.NotEqual(t, a.Hash(), b.Hash())
	})

	t.Run("clones are independent", func(t *testing.T) {
		a := NewBoard()
		play(t, a, 0, 6, 1, 6)
		b := a.Clone()
		play(t, b, 2)

		require.False(t, a.Equal(b))
		require.Empty(t, a.Threats(), "Original should not see the clone's threats")
		require.Equal(t, 6, a.DropZone(2), "Original column should stay empty")
		require.Equal(t, 5, b.DropZone(2), "Clone should have dropped into column 2")
	})
}
