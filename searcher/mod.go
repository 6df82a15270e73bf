package searcher

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// State is a position of a two-player zero-sum game that the search can
// walk. Scores are from the maximizer's point of view.
type State[S any, V constraints.Ordered] interface {
	Score() V
	Moves() iter.Seq[S]
	GameOver() bool
}

// Bound is an optional alpha or beta value.
type Bound[V constraints.Ordered] struct {
	value V
	set   bool
}

// Unbounded returns a bound that has not been established yet.
func Unbounded[V constraints.Ordered]() Bound[V] {
	return Bound[V]{}
}

func At[V constraints.Ordered](value V) Bound[V] {
	return Bound[V]{value: value, set: true}
}

// Value returns the bound and whether it is set.
func (b Bound[V]) Value() (V, bool) {
	return b.value, b.set
}

func (b Bound[V]) raise(value V) Bound[V] {
	if !b.set || value > b.value {
		return At(value)
	}
	return b
}

func (b Bound[V]) lower(value V) Bound[V] {
	if !b.set || value < b.value {
		return At(value)
	}
	return b
}

// cutoff reports whether the window [alpha, beta] has closed.
func cutoff[V constraints.Ordered](alpha, beta Bound[V]) bool {
	return alpha.set && beta.set && beta.value <= alpha.value
}
