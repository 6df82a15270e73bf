package searcher

import (
	"connect4/experiments/metrics"

	"golang.org/x/exp/constraints"
)

// Minimax returns the value of state searched depth plies ahead, pruning
// siblings once the alpha-beta window closes. Pruning never changes the
// value returned for an unbounded window, only the number of nodes visited.
func Minimax[S State[S, V], V constraints.Ordered](state S, depth int, alpha, beta Bound[V], maximizing bool) V {
	return search(state, depth, alpha, beta, maximizing, true, metrics.NewDummyCollector())
}

// Exhaustive is Minimax without pruning: every node down to depth is visited.
func Exhaustive[S State[S, V], V constraints.Ordered](state S, depth int, alpha, beta Bound[V], maximizing bool) V {
	return search(state, depth, alpha, beta, maximizing, false, metrics.NewDummyCollector())
}

func search[S State[S, V], V constraints.Ordered](state S, depth int, alpha, beta Bound[V], maximizing, prune bool, collector metrics.Collector) V {
	collector.AddNode()
	if depth == 0 || state.GameOver() {
		return state.Score()
	}

	var best V
	found := false
	for child := range state.Moves() {
		score := search(child, depth-1, alpha, beta, !maximizing, prune, collector)
		if maximizing {
			if !found || score > best {
				best = score
			}
			alpha = alpha.raise(score)
		} else {
			if !found || score < best {
				best = score
			}
			beta = beta.lower(score)
		}
		found = true

		if prune && cutoff(alpha, beta) {
			collector.AddCutoff()
			break
		}
	}

	if !found { // No legal moves although the state is not over
		return state.Score()
	}
	return best
}
