package experiments

import (
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"connect4/player"
	"connect4/searcher"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Experiment is a named set of agents and the matchups between them.
type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig // Yellow, Red
	NumGames int                      // Per matchup
	Width    int
	Height   int
	Seed     uint64
}

// Pruning pits exhaustive and pruned searches of equal depth against each
// other; both sides play identically, so the records compare node counts.
func Pruning(numGames int, seed uint64) Experiment {
	exhaustive := metrics.AgentConfig{ID: 1, Depth: meta.DefaultDepth - 1, Prune: false, Goroutines: 1}
	pruned := metrics.AgentConfig{ID: 2, Depth: meta.DefaultDepth - 1, Prune: true, Goroutines: 1}
	return Experiment{
		Name:     "pruning",
		Configs:  []metrics.AgentConfig{exhaustive, pruned},
		MatchUps: [][2]metrics.AgentConfig{{exhaustive, pruned}, {pruned, exhaustive}},
		NumGames: numGames,
		Width:    meta.DefaultWidth,
		Height:   meta.DefaultHeight,
		Seed:     seed,
	}
}

// Depth pairs a shallow baseline against increasingly deep searches.
func Depth(numGames int, seed uint64) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Depth: 1, Prune: true, Goroutines: 1}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 2; depth <= meta.DefaultDepth; depth++ {
		config := metrics.AgentConfig{ID: depth, Depth: depth, Prune: true, Goroutines: meta.Goroutines}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config}, [2]metrics.AgentConfig{config, baseline})
	}
	return Experiment{
		Name:     "depth",
		Configs:  configs,
		MatchUps: matchUps,
		NumGames: numGames,
		Width:    meta.DefaultWidth,
		Height:   meta.DefaultHeight,
		Seed:     seed,
	}
}

// ByName returns one of the predefined experiments.
func ByName(name string, numGames int, seed uint64) (Experiment, error) {
	switch name {
	case "pruning":
		return Pruning(numGames, seed), nil
	case "depth":
		return Depth(numGames, seed), nil
	default:
		return Experiment{}, fmt.Errorf("unknown experiment %q", name)
	}
}

// Records holds everything an experiment produced.
type Records struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Run plays every matchup NumGames times.
func Run(ctx context.Context, ex Experiment) (Records, error) {
	records := Records{}
	rng := rand.New(rand.NewSource(ex.Seed))

	log.Info().Msgf("starting %s experiment...", ex.Name)

	for mi, matchUp := range ex.MatchUps {
		yellow, red := matchUp[0], matchUp[1]
		log.Info().Msgf("starting matchup %d of %d between yellow=%+v and red=%+v...", mi+1, len(ex.MatchUps), yellow, red)

		for i := 0; i < ex.NumGames; i++ {
			board := game.NewBoardWithSize(ex.Width, ex.Height)
			e := engine.New(board, newAgent(yellow, "yellow", rng.Uint64()), newAgent(red, "red", rng.Uint64()))

			result, err := e.Run(ctx)
			if err != nil {
				return records, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			id := uuid.NewString()
			records.Games = append(records.Games, metrics.GameRecord{
				ID:         id,
				Agent1:     yellow.ID,
				Agent2:     red.ID,
				GameMetric: result.GameMetric,
			})
			for _, mm := range result.MoveMetrics {
				records.Moves = append(records.Moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(ex.MatchUps), i+1, winnerName(result.Winner))
		}
	}

	log.Info().Msgf("completed %s experiment", ex.Name)
	return records, nil
}

// RunAndWrite runs ex and stores its configs and records under root.
func RunAndWrite(ctx context.Context, ex Experiment, root string) (string, error) {
	records, err := Run(ctx, ex)
	if err != nil {
		return "", err
	}

	writer, err := metrics.NewWriter(root, ex.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(ex.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(records.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(records.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

func newAgent(config metrics.AgentConfig, name string, seed uint64) player.Player {
	s := searcher.New[*game.Board, int](
		searcher.WithDepth(config.Depth),
		searcher.WithPruning(config.Prune),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithRand(rand.New(rand.NewSource(seed))),
		searcher.WithMetrics(),
	)
	return player.NewComputer(fmt.Sprintf("%s#%d", name, config.ID), s)
}

func winnerName(winner game.Piece) string {
	if winner == game.Empty {
		return "none"
	}
	return winner.String()
}
