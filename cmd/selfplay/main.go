// Command selfplay plays the engine against itself through the play package
// and replays every move on notnil/chess, stopping at the first disagreement.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
	"github.com/spampots/ChessApp/chessmg"
	"github.com/spampots/ChessApp/engine"
	"github.com/spampots/ChessApp/play"
)

func getenvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// referee mirrors the game on an independent rules implementation.
type referee struct {
	game *chess.Game
}

func newReferee(fen string) (*referee, error) {
	opts := []func(*chess.Game){chess.UseNotation(chess.UCINotation{})}
	if fen != "" {
		fenOpt, err := chess.FEN(fen)
		if err != nil {
			return nil, errors.Wrap(err, "referee")
		}
		opts = append(opts, fenOpt)
	}
	return &referee{game: chess.NewGame(opts...)}, nil
}

// apply plays move on the reference game and checks both boards agree.
func (r *referee) apply(move, ourFEN string) error {
	if err := r.game.MoveStr(move); err != nil {
		return errors.Wrapf(err, "reference rejected %s", move)
	}
	theirs := strings.Fields(r.game.FEN())
	ours := strings.Fields(ourFEN)
	if theirs[0] != ours[0] || theirs[1] != ours[1] {
		return errors.Errorf("positions diverged after %s:\n ours   %s\n theirs %s", move, ourFEN, r.game.FEN())
	}
	return nil
}

func main() {
	defaults := engine.DefaultConfig()

	fen := flag.String("fen", getenv("CHESSAPP_FEN", ""), "starting FEN (empty = startpos)")
	whiteDepth := flag.Int("white-depth", getenvInt("CHESSAPP_DEPTH", defaults.Depth), "search depth for White")
	blackDepth := flag.Int("black-depth", getenvInt("CHESSAPP_DEPTH", defaults.Depth), "search depth for Black")
	whiteStrategy := flag.String("white", "alphabeta", "strategy for White")
	blackStrategy := flag.String("black", "greedy", "strategy for Black")
	maxPlies := flag.Int("max-plies", getenvInt("CHESSAPP_MAX_PLIES", 200), "stop after this many plies")
	seed := flag.Int64("seed", 1, "seed for random and greedy strategies")
	parallel := flag.Bool("parallel", false, "search root moves in parallel")
	verbose := flag.Bool("v", false, "print the engine info line for every move")
	flag.Parse()

	var logger *log.Logger
	if *verbose {
		logger = log.New(os.Stdout, "", 0)
	}

	side := func(depth int, name string) *play.Game {
		strategy, err := engine.ParseStrategy(name)
		if err != nil {
			log.Fatalf("%v", err)
		}
		cfg := defaults
		cfg.Depth = depth
		cfg.Strategy = strategy
		cfg.Parallel = *parallel
		cfg.Seed = *seed
		cfg.Logger = logger
		g, err := play.NewGame(play.Options{Engine: cfg, FEN: *fen})
		if err != nil {
			log.Fatalf("%v", err)
		}
		return g
	}
	// One Game per side so each keeps its own engine settings; both replay
	// every move.
	white := side(*whiteDepth, *whiteStrategy)
	black := side(*blackDepth, *blackStrategy)

	ref, err := newReferee(*fen)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()
	var record []string
	for ply := 0; ply < *maxPlies && !white.Over(); ply++ {
		mover, other := white, black
		if white.State().SideToMove() == chessmg.Black {
			mover, other = black, white
		}
		m, err := mover.PlayBestMove(ctx)
		if err != nil {
			log.Fatalf("ply %d: %v", ply+1, err)
		}
		if _, err := other.Play(m.String()); err != nil {
			log.Fatalf("ply %d: %v", ply+1, err)
		}
		if err := ref.apply(m.String(), mover.FEN()); err != nil {
			log.Fatalf("ply %d: %v", ply+1, err)
		}
		record = append(record, m.String())
		// The reference also ends games on repetition, the 75-move rule
		// and insufficient material.
		if ref.game.Outcome() != chess.NoOutcome {
			break
		}
	}

	fmt.Println(ref.game.Position().Board().Draw())
	fmt.Println("moves:", strings.Join(record, " "))
	fmt.Println("fen:", white.FEN())
	if outcome := white.Outcome(); outcome != "" {
		fmt.Println("result:", outcome)
	} else {
		fmt.Printf("result: unfinished after %d plies (reference: %s %s)\n", len(record), ref.game.Outcome(), ref.game.Method())
	}
}
