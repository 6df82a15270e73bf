// meta/meta.go
package meta

// DefaultWidth is the number of columns of a standard board.
const DefaultWidth = 7

// DefaultHeight is the number of rows of a standard board.
const DefaultHeight = 6

// DefaultDepth is the number of plies searched below each candidate move.
const DefaultDepth = 5

// Goroutines is the number of workers evaluating candidate moves.
const Goroutines = 4

// Games is the number of games per matchup in an experiment.
const Games = 10

// ExperimentsDir is where experiment records are written.
const ExperimentsDir = "experiments"
