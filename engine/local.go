package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/player"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithOutput renders the board before every move and announces the result.
func WithOutput(out io.Writer) Option {
	return func(e *Engine) {
		e.out = out
	}
}

// WithMaxTurns stops the game after a number of moves.
func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// Engine runs a local game between two players over one board.
type Engine struct {
	board    *game.Board
	players  map[game.Piece]player.Player
	out      io.Writer
	maxTurns int
}

func New(board *game.Board, yellow, red player.Player, options ...Option) *Engine {
	if yellow == nil || red == nil {
		panic("need a player for each color")
	}
	e := &Engine{
		board:    board,
		players:  map[game.Piece]player.Player{game.Yellow: yellow, game.Red: red},
		out:      io.Discard,
		maxTurns: board.Width() * board.Height(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays until a color connects four, the board fills up, the turn limit
// is reached or ctx is done.
func (e *Engine) Run(ctx context.Context) (result Result, err error) {
	result.Board = e.board
	result.GameMetric = metrics.GameMetric{
		StartingPlayer: e.board.NextMove().String(),
		StartTime:      time.Now(),
	}
	defer func() {
		result.GameMetric.EndTime = time.Now()
		result.GameMetric.Duration = result.GameMetric.EndTime.Sub(result.GameMetric.StartTime)
		result.GameMetric.TotalMoves = len(result.Moves)
	}()

	log.Info().Msgf("%s (%s) is starting", e.board.NextMove(), e.players[e.board.NextMove()].Name())

	for turn := 1; !e.board.GameOver() && turn <= e.maxTurns; turn++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		fmt.Fprint(e.out, e.board, e.board.Legend())

		color := e.board.NextMove()
		p := e.players[color]
		column, err := p.FindMove(e.board)
		if err != nil {
			return result, fmt.Errorf("%s failed to find a move: %w", p.Name(), err)
		}
		if !e.board.CanDrop(column) {
			return result, fmt.Errorf("%s played column %d: %w", p.Name(), column, ErrIllegalMove)
		}
		e.board.Drop(column)
		result.Moves = append(result.Moves, column)

		moveMetric := metrics.MoveMetric{Step: turn, Player: color.String(), Column: column}
		if reporter, ok := p.(searchReporter); ok {
			moveMetric.Score, moveMetric.SearchMetric = reporter.LastSearch()
		}
		result.MoveMetrics = append(result.MoveMetrics, moveMetric)

		log.Debug().Int("turn", turn).Str("player", color.String()).Int("column", column).Msg("move played")
	}

	result.Winner = e.board.Winner()
	fmt.Fprint(e.out, e.board)
	switch {
	case result.Winner != game.Empty:
		result.GameMetric.Winner = result.Winner.String()
		fmt.Fprintf(e.out, "%s wins!\n", result.Winner)
		log.Info().Msgf("game over after %d moves, winner: %s", len(result.Moves), result.Winner)
	case e.board.Full():
		fmt.Fprintln(e.out, "Tie, nobody wins")
		log.Info().Msgf("game over after %d moves, tie", len(result.Moves))
	default:
		log.Warn().Msgf("stopped after %d moves without a result", len(result.Moves))
	}
	return result, nil
}
