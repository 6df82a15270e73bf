package main

import (
	"connect4/engine"
	"connect4/experiments"
	"connect4/game"
	"connect4/meta"
	"connect4/player"
	"connect4/searcher"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type config struct {
	width      int
	height     int
	depth      int
	prune      bool
	goroutines int
	human      string
	threats    bool
	seed       uint64
	maxTurns   int
	experiment string
	games      int
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "width", meta.DefaultWidth, "Number of columns")
	flag.IntVar(&cfg.height, "height", meta.DefaultHeight, "Number of rows")
	flag.IntVar(&cfg.depth, "depth", meta.DefaultDepth, "Plies searched below each candidate move")
	flag.BoolVar(&cfg.prune, "prune", true, "Use alpha-beta pruning")
	flag.IntVar(&cfg.goroutines, "goroutines", meta.Goroutines, "Number of goroutines evaluating candidate moves")
	flag.StringVar(&cfg.human, "human", "yellow", "Color played from stdin: yellow, red or none")
	flag.BoolVar(&cfg.threats, "threats", true, "Mark threatened cells on the board")
	flag.Uint64Var(&cfg.seed, "seed", 0, "Seed for tie-breaking (0 picks one from the clock)")
	flag.IntVar(&cfg.maxTurns, "max-turns", 0, "Stop after this many moves (0 for no limit)")
	flag.StringVar(&cfg.experiment, "experiment", "", "Run a self-play experiment instead (pruning or depth)")
	flag.IntVar(&cfg.games, "games", meta.Games, "Games per matchup in an experiment")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if cfg.seed == 0 {
		cfg.seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.experiment != "" {
		err = runExperiment(ctx, cfg)
	} else {
		err = runGame(ctx, cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("connect4 failed")
	}
}

func runGame(ctx context.Context, cfg config) error {
	if cfg.width < 1 || cfg.height < 1 || cfg.height > game.MaxHeight {
		return fmt.Errorf("invalid board size %dx%d", cfg.width, cfg.height)
	}
	board := game.NewBoardWithSize(cfg.width, cfg.height)
	board.SetShowThreats(cfg.threats)

	human, ok := game.ParsePiece(cfg.human)
	if !ok && !strings.EqualFold(cfg.human, "none") {
		return fmt.Errorf("invalid -human %q, want yellow, red or none", cfg.human)
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	players := map[game.Piece]player.Player{}
	for _, color := range []game.Piece{game.Yellow, game.Red} {
		if color == human {
			players[color] = player.NewHuman(color.String(), os.Stdin, os.Stdout)
			continue
		}
		s := searcher.New[*game.Board, int](
			searcher.WithDepth(cfg.depth),
			searcher.WithPruning(cfg.prune),
			searcher.WithGoroutines(cfg.goroutines),
			searcher.WithRand(rand.New(rand.NewSource(rng.Uint64()))),
			searcher.WithMetrics(),
		)
		players[color] = player.NewComputer(color.String(), s)
	}

	e := engine.New(board, players[game.Yellow], players[game.Red],
		engine.WithOutput(os.Stdout),
		engine.WithMaxTurns(cfg.maxTurns),
	)
	_, err := e.Run(ctx)
	return err
}

func runExperiment(ctx context.Context, cfg config) error {
	ex, err := experiments.ByName(cfg.experiment, cfg.games, cfg.seed)
	if err != nil {
		return err
	}
	dir, err := experiments.RunAndWrite(ctx, ex, meta.ExperimentsDir)
	if err != nil {
		return err
	}
	log.Info().Str("dir", dir).Msg("experiment records written")
	return nil
}
