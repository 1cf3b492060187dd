// Package play is the in-process contract a board front end drives: it owns
// one chessmg.GameState per game, keeps its legal moves current, turns square
// clicks into moves and asks the engine for replies.
package play

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/pkg/errors"
	"github.com/spampots/ChessApp/chessmg"
	"github.com/spampots/ChessApp/engine"
)

// Options configures a Game.
type Options struct {
	Engine engine.Config
	// FEN is the starting position; empty means the standard one.
	FEN    string
	Logger *log.Logger
}

// DefaultOptions plays from the initial position with the default engine.
func DefaultOptions() Options {
	return Options{Engine: engine.DefaultConfig()}
}

// Game is one game in progress. All methods are safe for concurrent use.
type Game struct {
	mu sync.Mutex

	id     string
	opts   Options
	state  *chessmg.GameState
	moves  []chessmg.Move // legal moves of state, refreshed after every change
	engine *engine.Engine

	// Click selection: the square picked first, or NoSquare.
	selected chessmg.Square
}

// NewGame starts a game from opts.FEN or the initial position.
func NewGame(opts Options) (*Game, error) {
	eng, err := engine.New(opts.Engine)
	if err != nil {
		return nil, errors.WithMessage(err, "play: engine config")
	}
	g := &Game{opts: opts, engine: eng}
	if err := g.load(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) load() error {
	state := chessmg.NewGameState()
	if g.opts.FEN != "" {
		var err error
		if state, err = chessmg.ParseFEN(g.opts.FEN); err != nil {
			return errors.WithMessage(err, "play: start position")
		}
	}
	g.state = state
	g.selected = chessmg.NoSquare
	g.refresh()
	return nil
}

// refresh regenerates the legal moves, which also sets the terminal flags.
func (g *Game) refresh() {
	g.moves = g.state.LegalMoves()
}

func (g *Game) logf(format string, args ...interface{}) {
	if g.opts.Logger != nil {
		g.opts.Logger.Printf("game %s: "+format, append([]interface{}{g.id}, args...)...)
	}
}

// ID is the registry key, empty for games made outside a Manager.
func (g *Game) ID() string { return g.id }

// LegalMoves returns the moves available to the side to move, in generation
// order.
func (g *Game) LegalMoves() []chessmg.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]chessmg.Move(nil), g.moves...)
}

// Targets lists the destination squares of the legal moves starting on from.
// It is empty unless from holds a piece of the side to move.
func (g *Game) Targets(from chessmg.Square) []chessmg.Square {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []chessmg.Square
	for _, m := range g.moves {
		if m.From == from {
			out = append(out, m.To)
		}
	}
	return out
}

// State returns a copy of the position for rendering or analysis.
func (g *Game) State() *chessmg.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Clone()
}

// FEN renders the current position.
func (g *Game) FEN() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.FEN()
}

// Status reports check, checkmate or stalemate for the side to move.
func (g *Game) Status() chessmg.Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Status()
}

// IsCheckmate and IsStalemate reflect the position after the last change.
func (g *Game) IsCheckmate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.IsCheckmate()
}

func (g *Game) IsStalemate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.IsStalemate()
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.over()
}

func (g *Game) over() bool {
	return g.state.IsCheckmate() || g.state.IsStalemate()
}

// Outcome is a one-line description of a finished game, or "" while it is
// still being played.
func (g *Game) Outcome() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch {
	case g.state.IsCheckmate() && g.state.WhiteToMove():
		return "Black wins by checkmate"
	case g.state.IsCheckmate():
		return "White wins by checkmate"
	case g.state.IsStalemate():
		return "Stalemate"
	}
	return ""
}

// TryMove plays from->to if it is legal. promotion picks the promoted piece;
// NoKind means queen. A rejected move leaves the game untouched.
func (g *Game) TryMove(from, to chessmg.Square, promotion chessmg.Kind) (chessmg.Move, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tryMove(from, to, promotion)
}

func (g *Game) tryMove(from, to chessmg.Square, promotion chessmg.Kind) (chessmg.Move, bool) {
	if g.over() {
		return chessmg.NoMove, false
	}
	m, ok := g.state.TryMove(from, to, promotion)
	if !ok {
		return chessmg.NoMove, false
	}
	g.selected = chessmg.NoSquare
	g.refresh()
	g.logf("%s played %s", m.Piece.Color(), m)
	return m, true
}

// Play applies a move given in long algebraic notation ("e2e4", "e7e8n").
func (g *Game) Play(notation string) (chessmg.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.over() {
		return chessmg.NoMove, ErrGameOver
	}
	candidate, err := chessmg.ParseMove(g.state, notation)
	if err != nil {
		return chessmg.NoMove, err
	}
	m, ok := g.tryMove(candidate.From, candidate.To, candidate.Promotion)
	if !ok {
		return chessmg.NoMove, errors.Wrapf(ErrIllegalMove, "%s in %s", notation, g.state.FEN())
	}
	return m, nil
}

// ClickResult describes what a square click did.
type ClickResult struct {
	Selected chessmg.Square // square now selected, NoSquare if none
	Move     chessmg.Move   // the move played by this click
	Moved    bool
}

// Click feeds one board click into the two-click selection. Clicking the
// selected square again clears the selection. A second click on another
// square tries the move; if it is not legal the second square becomes the
// new selection. promotion is only used when the move promotes. Clicks are
// ignored once the game is over.
func (g *Game) Click(sq chessmg.Square, promotion chessmg.Kind) ClickResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.over() || !sq.OnBoard() {
		return ClickResult{Selected: g.selected}
	}
	if sq == g.selected {
		g.selected = chessmg.NoSquare
		return ClickResult{Selected: chessmg.NoSquare}
	}
	if g.selected == chessmg.NoSquare {
		g.selected = sq
		return ClickResult{Selected: sq}
	}

	if m, ok := g.tryMove(g.selected, sq, promotion); ok {
		return ClickResult{Selected: chessmg.NoSquare, Move: m, Moved: true}
	}
	g.selected = sq
	return ClickResult{Selected: sq}
}

// Selected returns the square picked by the last click, or NoSquare.
func (g *Game) Selected() chessmg.Square {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selected
}

// Undo takes back the last move. It is a no-op at the start of the game.
func (g *Game) Undo() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state.UndoMove()
	g.selected = chessmg.NoSquare
	g.refresh()
}

// Reset returns to the starting position of the game.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	// The start position already parsed once, so it parses again.
	_ = g.load()
	g.logf("reset")
}

// BestMove asks the engine for a move without playing it. When the search
// returns nothing a random legal move is chosen instead. ok is false only
// when the side to move has no legal moves.
func (g *Game) BestMove(ctx context.Context) (m chessmg.Move, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.bestMove(ctx)
}

func (g *Game) bestMove(ctx context.Context) (chessmg.Move, bool) {
	if len(g.moves) == 0 {
		return chessmg.NoMove, false
	}
	r := g.engine.Search(ctx, g.state, g.moves)
	if r.Found {
		return r.Move, true
	}
	g.logf("search found no move, falling back to a random one")
	return g.engine.Fallback(g.moves)
}

// PlayBestMove searches and plays the engine's choice.
func (g *Game) PlayBestMove(ctx context.Context) (chessmg.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.over() {
		return chessmg.NoMove, ErrGameOver
	}
	m, ok := g.bestMove(ctx)
	if !ok {
		return chessmg.NoMove, ErrGameOver
	}
	played, ok := g.tryMove(m.From, m.To, m.Promotion)
	if !ok {
		// The engine only returns moves from g.moves.
		return chessmg.NoMove, errors.Wrapf(ErrIllegalMove, "engine move %s", m)
	}
	return played, nil
}

// MoveLog returns the moves played so far.
func (g *Game) MoveLog() []chessmg.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.MoveLog()
}

func (g *Game) String() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	b := g.state.Board()
	return fmt.Sprintf("%s%s to move\n", b.String(), g.state.SideToMove())
}
