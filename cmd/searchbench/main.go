package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/spampots/ChessApp/chessmg"
	"github.com/spampots/ChessApp/engine"
)

func getenvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func main() {
	defaults := engine.DefaultConfig()

	// --- Flags ---
	depthFlag := flag.Int("depth", getenvInt("CHESSAPP_DEPTH", defaults.Depth), "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	strategyFlag := flag.String("strategy", defaults.Strategy.String(), "alphabeta, negamax, greedy or random")
	parallelFlag := flag.Bool("parallel", false, "search root moves in parallel")
	workersFlag := flag.Int("workers", getenvInt("CHESSAPP_WORKERS", defaults.Workers), "worker goroutines for -parallel")
	deadlineFlag := flag.Duration("deadline", 0, "time limit per search (0 = none)")
	statsFlag := flag.Bool("stats", false, "dump search statistics after each search")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	strategy, err := engine.ParseStrategy(*strategyFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}

	cfg := defaults
	cfg.Depth = *depthFlag
	cfg.Strategy = strategy
	cfg.Parallel = *parallelFlag
	cfg.Workers = *workersFlag
	cfg.Deadline = *deadlineFlag
	cfg.Logger = log.New(os.Stdout, "", 0)

	eng, err := engine.New(cfg)
	if err != nil {
		log.Fatalf("engine config: %v", err)
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	// FEN selection
	fen := chessmg.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}
	repeat := *repeatFlag

	fmt.Printf("searchbench: fen=%q depth=%d strategy=%s parallel=%v repeat=%d\n",
		fen, cfg.Depth, cfg.Strategy, cfg.Parallel, repeat)

	var total engine.SearchStats
	startAll := time.Now()
	for i := 0; i < repeat; i++ {
		// Fresh position for each run
		gs, err := chessmg.ParseFEN(fen)
		if err != nil {
			log.Fatalf("bad fen: %v", err)
		}

		r := eng.Search(context.Background(), gs, gs.LegalMoves())
		if *statsFlag {
			r.Stats.Dump(os.Stdout)
		}
		total.Nodes += r.Stats.Nodes
		total.BetaCutoffs += r.Stats.BetaCutoffs

		best := "(none)"
		if r.Found {
			best = r.Move.String()
		}
		fmt.Printf("iteration %d: bestmove %s  time=%v\n", i+1, best, r.Stats.Elapsed)
	}
	total.Elapsed = time.Since(startAll)
	fmt.Printf("total time: %v  nodes: %d  cutoffs: %d  nps: %d\n",
		total.Elapsed, total.Nodes, total.BetaCutoffs, total.NPS())

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
