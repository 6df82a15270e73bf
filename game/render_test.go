package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardString(t *testing.T) {
	b := NewBoard()
	play(t, b, 0, 6, 1, 6, 2)

	t.Run("plain pieces", func(t *testing.T) {
		want := "" +
			"|               |\n" +
			"|               |\n" +
			"|               |\n" +
			"|               |\n" +
			"|             0 |\n" +
			"| O O O       0 |\n"
		require.Equal(t, want, b.String())
	})

	t.Run("threat glyphs", func(t *testing.T) {
		shown := b.Clone()
		shown.SetShowThreats(true)

		require.Equal(t, "| O O O Y     0 |\n", shown.String()[5*18:])
	})

	t.Run("double threat glyph", func(t *testing.T) {
		d := NewBoard()
		play(t, d, 6, 0, 5, 2, 4, 1, 4, 4)
		d.SetShowThreats(true)

		require.Equal(t, "| 0 0 0 B O O O |\n", d.String()[5*18:])
	})

	t.Run("legend", func(t *testing.T) {
		require.Equal(t, "  0 1 2 3 4 5 6  \n", b.Legend())
	})
}
