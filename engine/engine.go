package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"errors"
)

// ErrIllegalMove is returned when a player picks a column the board rejects.
var ErrIllegalMove = errors.New("illegal move")

// Result is the outcome of a finished (or stopped) game.
type Result struct {
	Winner      game.Piece // Empty for a tie or an unfinished game
	Moves       []int      // Columns in play order
	Board       *game.Board
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

// searchReporter is implemented by players that search for their moves.
type searchReporter interface {
	LastSearch() (score int, metric metrics.SearchMetric)
}
