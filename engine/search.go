package engine

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/chewxy/math32"
	"github.com/spampots/ChessApp/chessmg"
)

// Result is what a search hands back to its caller.
type Result struct {
	Move  chessmg.Move
	Score float32 // from the side to move's point of view
	Found bool    // false when the caller must fall back to a random move
	PV    PVLine
	Stats SearchStats
}

// Engine picks moves according to its Config. It is safe for concurrent use;
// the positions it is given are not, so each caller passes its own.
type Engine struct {
	cfg Config

	mu  sync.Mutex
	rng *rand.Rand
}

// New validates cfg and builds an Engine.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, rng: rand.New(rand.NewSource(cfg.Seed))}, nil
}

// Config returns the settings the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// BestMove searches gs with the default settings. moves must be the legal
// moves of gs; ok is false when there is nothing to play.
func BestMove(gs *chessmg.GameState, moves []chessmg.Move) (chessmg.Move, bool) {
	s := &searcher{ctx: context.Background(), prune: true}
	r := s.rootSearch(gs, moves, DefaultDepth)
	gs.LegalMoves()
	return r.Move, r.Found
}

// Search picks a move for the side to move in gs. moves must be the legal
// moves of gs in any order; the slice is not modified. gs is searched in
// place and handed back in the same state, terminal flags included.
func (e *Engine) Search(ctx context.Context, gs *chessmg.GameState, moves []chessmg.Move) Result {
	start := time.Now()
	ctx, cancel := e.cfg.deadline(ctx)
	defer cancel()

	var r Result
	switch e.cfg.Strategy {
	case Random:
		r.Move, r.Found = e.randomMove(moves)
	case Greedy:
		r = e.greedy(gs, moves)
	default:
		prune := e.cfg.Strategy == AlphaBeta
		if e.cfg.Parallel && e.cfg.Workers > 1 && len(moves) > 1 {
			r = e.parallelRootSearch(ctx, gs, moves, prune)
		} else {
			s := &searcher{ctx: ctx, prune: prune}
			r = s.rootSearch(gs, moves, e.cfg.Depth)
		}
	}

	// Deep LegalMoves calls overwrote the terminal flags; restore them for
	// the root position.
	gs.LegalMoves()

	r.Stats.Elapsed = time.Since(start)
	e.logInfo(r)
	return r
}

func (e *Engine) logInfo(r Result) {
	if e.cfg.Logger == nil {
		return
	}
	e.cfg.Logger.Println(
		"info depth", e.cfg.Depth,
		"strategy", e.cfg.Strategy,
		"score", getMateOrCPScore(r.Score, r.PV),
		"nodes", r.Stats.Nodes,
		"time", r.Stats.Elapsed.Milliseconds(),
		"nps", r.Stats.NPS(),
		"pv", r.PV.String(),
	)
}

// searcher carries the per-search state that would otherwise be globals.
type searcher struct {
	ctx     context.Context
	prune   bool
	stopped bool
	stats   SearchStats
}

func colorSign(gs *chessmg.GameState) float32 {
	if gs.WhiteToMove() {
		return 1
	}
	return -1
}

// rootSearch runs the root of the negamax tree. The best move is the first,
// in ordered position, to reach the highest score. If the search is
// interrupted the best fully searched root move is kept.
func (s *searcher) rootSearch(gs *chessmg.GameState, moves []chessmg.Move, depth int) Result {
	s.stats.Nodes++
	var r Result
	if len(moves) == 0 || depth < 1 {
		return r
	}

	ordered := OrderMoves(moves)
	sign := colorSign(gs)
	alpha, beta := -Checkmate, Checkmate
	best := math32.Inf(-1)

	for _, m := range ordered {
		gs.ApplyMove(m)
		next := gs.LegalMoves()
		score, line := s.negamax(gs, next, depth-1, -beta, -alpha, -sign)
		score = -score
		gs.UndoMove()

		if s.stopped {
			break
		}
		if score > best {
			best = score
			r.Move, r.Score, r.Found = m, score, true
			r.PV = PVLine{Moves: prepend(m, line)}
		}
		if s.prune {
			alpha = Max(alpha, best)
			if alpha >= beta {
				s.stats.BetaCutoffs++
				break
			}
		}
	}

	r.Stats = s.stats
	return r
}

// negamax returns the score of gs for the side whose sign is given, along
// with the line that achieves it. moves are the legal moves of gs and are
// reordered in place. Every ApplyMove is undone before returning.
func (s *searcher) negamax(gs *chessmg.GameState, moves []chessmg.Move, depth int, alpha, beta, sign float32) (float32, []chessmg.Move) {
	s.stats.Nodes++
	if s.timeUp() {
		return 0, nil
	}

	if depth == 0 {
		s.stats.LeafEvals++
		return sign * ScoreBoard(gs), nil
	}
	if len(moves) == 0 {
		s.stats.TerminalNodes++
		return sign * ScoreBoard(gs), nil
	}

	orderMoves(moves)
	best := math32.Inf(-1)
	var line []chessmg.Move

	for _, m := range moves {
		gs.ApplyMove(m)
		next := gs.LegalMoves()
		score, child := s.negamax(gs, next, depth-1, -beta, -alpha, -sign)
		score = -score
		gs.UndoMove()

		if s.stopped {
			return 0, nil
		}
		if score > best {
			best = score
			line = prepend(m, child)
		}
		if s.prune {
			alpha = Max(alpha, best)
			if alpha >= beta {
				s.stats.BetaCutoffs++
				break
			}
		}
	}
	return best, line
}

type rootResult struct {
	score float32
	line  []chessmg.Move
	done  bool
	stats SearchStats
}

// parallelRootSearch searches every root move with a full window on its own
// clone. Picking the first strictly best index gives the same move and score
// as the sequential search.
func (e *Engine) parallelRootSearch(ctx context.Context, gs *chessmg.GameState, moves []chessmg.Move, prune bool) Result {
	ordered := OrderMoves(moves)
	sign := colorSign(gs)
	results := make([]rootResult, len(ordered))

	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := Min(e.cfg.Workers, len(ordered))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				clone := gs.Clone()
				s := &searcher{ctx: ctx, prune: prune}
				clone.ApplyMove(ordered[i])
				next := clone.LegalMoves()
				score, line := s.negamax(clone, next, e.cfg.Depth-1, -Checkmate, Checkmate, -sign)
				results[i] = rootResult{score: -score, line: line, done: !s.stopped, stats: s.stats}
			}
		}()
	}
	for i := range ordered {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var r Result
	r.Stats.Nodes = 1
	best := math32.Inf(-1)
	for i, res := range results {
		r.Stats.add(res.stats)
		if !res.done {
			continue
		}
		if res.score > best {
			best = res.score
			r.Move, r.Score, r.Found = ordered[i], res.score, true
			r.PV = PVLine{Moves: prepend(ordered[i], res.line)}
		}
	}
	return r
}
