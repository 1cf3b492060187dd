package engine

import (
	"log"
	"runtime"
	"time"

	"github.com/pkg/errors"
)

// Strategy selects how a move is picked.
type Strategy uint8

const (
	// AlphaBeta is negamax with alpha-beta pruning, the default.
	AlphaBeta Strategy = iota
	// Negamax searches the full tree without pruning. It returns the same
	// move and score as AlphaBeta, only slower.
	Negamax
	// Greedy looks two plies ahead on material only.
	Greedy
	// Random picks uniformly among the legal moves.
	Random
)

var strategyNames = map[Strategy]string{
	AlphaBeta: "alphabeta",
	Negamax:   "negamax",
	Greedy:    "greedy",
	Random:    "random",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStrategy maps a strategy name back onto its value.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}

// Config holds the search settings. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	Depth    int
	Strategy Strategy

	// Parallel searches each root move on its own clone of the position with
	// up to Workers goroutines.
	Parallel bool
	Workers  int

	// Deadline bounds a single search. Zero means no time limit.
	Deadline time.Duration

	// Seed feeds the random fallback and the Random and Greedy strategies.
	Seed int64

	// Logger receives one info line per search. Nil keeps the engine quiet.
	Logger *log.Logger
}

// DefaultConfig is a sequential alpha-beta search to DefaultDepth plies.
func DefaultConfig() Config {
	return Config{
		Depth:    DefaultDepth,
		Strategy: AlphaBeta,
		Workers:  runtime.NumCPU(),
		Seed:     1,
	}
}

// Validate reports the first setting that cannot be searched with.
func (c Config) Validate() error {
	if c.Depth < 1 {
		return errors.Wrapf(ErrInvalidDepth, "got %d", c.Depth)
	}
	if c.Parallel && c.Workers < 1 {
		return errors.Wrapf(ErrInvalidWorkers, "got %d", c.Workers)
	}
	if _, ok := strategyNames[c.Strategy]; !ok {
		return errors.Wrapf(ErrUnknownStrategy, "%d", c.Strategy)
	}
	return nil
}
