package searcher

import (
	"connect4/experiments/metrics"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

type Option func(o *options)

type options struct {
	depth      int
	prune      bool
	goroutines int
	rng        *rand.Rand
	metrics    bool
}

// WithDepth sets how many plies below each candidate move are searched.
func WithDepth(depth int) Option {
	return func(o *options) {
		o.depth = depth
	}
}

// WithPruning toggles alpha-beta cutoffs.
func WithPruning(prune bool) Option {
	return func(o *options) {
		o.prune = prune
	}
}

// WithGoroutines evaluates the candidate moves in parallel.
func WithGoroutines(goroutines int) Option {
	return func(o *options) {
		if goroutines > 0 {
			o.goroutines = goroutines
		}
	}
}

// WithRand sets the source used to break ties between equally scored moves.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(o *options) {
		o.metrics = true
	}
}

// Candidate is a move considered at the root together with its value.
type Candidate[S any, V constraints.Ordered] struct {
	State S
	Score V
}

type Result[S any, V constraints.Ordered] struct {
	Best       S
	Score      V
	Candidates []Candidate[S, V]
	Metric     metrics.SearchMetric
}

// Searcher picks moves by running a minimax search under every legal move.
type Searcher[S State[S, V], V constraints.Ordered] struct {
	depth      int
	prune      bool
	goroutines int
	rng        *rand.Rand
	collector  metrics.Collector
}

func New[S State[S, V], V constraints.Ordered](opts ...Option) *Searcher[S, V] {
	o := options{ // Default values
		depth:      5,
		prune:      true,
		goroutines: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.depth < 0 {
		panic(fmt.Sprintf("search depth must not be negative, got %d", o.depth))
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	s := &Searcher[S, V]{
		depth:      o.depth,
		prune:      o.prune,
		goroutines: o.goroutines,
		rng:        o.rng,
		collector:  metrics.NewDummyCollector(),
	}
	if o.metrics {
		s.collector = metrics.NewCollector()
	}
	return s
}

func (s *Searcher[S, V]) Depth() int { return s.depth }

// FindMove scores every successor of state and returns one of the best for
// the side to move (highest if maximizing), chosen uniformly at random among
// ties. ok is false when state has no moves.
func (s *Searcher[S, V]) FindMove(state S, maximizing bool) (result Result[S, V], ok bool) {
	var candidates []Candidate[S, V]
	for child := range state.Moves() {
		candidates = append(candidates, Candidate[S, V]{State: child})
	}
	if len(candidates) == 0 {
		return result, false
	}

	s.collector.Start(s.goroutines, s.depth, s.prune)
	s.evaluate(candidates, maximizing)
	result.Metric = s.collector.Complete()

	extreme := candidates[0].Score
	for _, c := range candidates[1:] {
		if (maximizing && c.Score > extreme) || (!maximizing && c.Score < extreme) {
			extreme = c.Score
		}
	}
	var best []Candidate[S, V]
	for _, c := range candidates {
		if c.Score == extreme {
			best = append(best, c)
		}
	}
	pick := best[s.rng.Intn(len(best))]

	result.Best = pick.State
	result.Score = pick.Score
	result.Candidates = candidates
	return result, true
}

// evaluate fills in candidate scores. Each candidate owns its state, so
// workers share nothing but the task queue and the collector.
func (s *Searcher[S, V]) evaluate(candidates []Candidate[S, V], maximizing bool) {
	task := make(chan int, len(candidates))
	for i := range candidates {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(s.goroutines, len(candidates)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				c := &candidates[i]
				c.Score = search(c.State, s.depth, Unbounded[V](), Unbounded[V](), !maximizing, s.prune, s.collector)
			}
		}()
	}

	wg.Wait()
}
