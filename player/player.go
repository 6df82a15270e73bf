package player

import (
	"bufio"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrNoInput is returned when the input stream ends before a legal column.
var ErrNoInput = errors.New("no more input")

// Player chooses the column to play on a board where it is their turn.
type Player interface {
	Name() string
	FindMove(board *game.Board) (column int, err error)
}

// Human reads columns from a line-oriented text stream and prompts on out.
type Human struct {
	name    string
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(name string, in io.Reader, out io.Writer) *Human {
	return &Human{
		name:    name,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (h *Human) Name() string { return h.name }

// FindMove keeps prompting until a playable column is entered.
func (h *Human) FindMove(board *game.Board) (int, error) {
	for {
		fmt.Fprintf(h.out, "%s move:\n", board.NextMove())
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return 0, fmt.Errorf("failed to read move: %w", err)
			}
			return 0, fmt.Errorf("%s: %w", h.name, ErrNoInput)
		}

		column, err := strconv.Atoi(strings.TrimSpace(h.scanner.Text()))
		switch {
		case err != nil:
			fmt.Fprintln(h.out, "Type a number")
		case column < 0 || column >= board.Width():
			fmt.Fprintf(h.out, "Type a number from 0 - %d\n", board.Width()-1)
		case !board.CanDrop(column):
			fmt.Fprintln(h.out, "Can't move there")
		default:
			return column, nil
		}
	}
}

// Computer plays the move found by a minimax search. Red maximizes.
type Computer struct {
	name     string
	searcher *searcher.Searcher[*game.Board, int]
	last     searchRecord
}

type searchRecord struct {
	score  int
	metric metrics.SearchMetric
}

func NewComputer(name string, s *searcher.Searcher[*game.Board, int]) *Computer {
	return &Computer{name: name, searcher: s}
}

func (c *Computer) Name() string { return c.name }

func (c *Computer) FindMove(board *game.Board) (int, error) {
	result, ok := c.searcher.FindMove(board, board.NextMove() == game.Red)
	if !ok {
		return 0, fmt.Errorf("%s: no legal moves on a full board", c.name)
	}

	scores := make([]int, len(result.Candidates))
	for i, candidate := range result.Candidates {
		scores[i] = candidate.Score
	}
	log.Debug().
		Str("player", c.name).
		Ints("scores", scores).
		Int("column", result.Best.LastMove()).
		Int64("nodes", result.Metric.Nodes).
		Msg("search complete")

	c.last = searchRecord{score: result.Score, metric: result.Metric}
	return result.Best.LastMove(), nil
}

// LastSearch returns the score and metrics of the most recent FindMove.
func (c *Computer) LastSearch() (int, metrics.SearchMetric) {
	return c.last.score, c.last.metric
}
