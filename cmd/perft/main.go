package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"strconv"
	"time"

	"github.com/spampots/ChessApp/chessmg"
	"github.com/spampots/ChessApp/internal/oracle"
	"golang.org/x/exp/maps"
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

func main() {
	fen := flag.String("fen", getenv("CHESSAPP_FEN", chessmg.FENStartPos), "FEN string (defaults to initial position)")
	depth := flag.Int("depth", getenvInt("CHESSAPP_DEPTH", 0), "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Cross-check the count against the external move generators")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	gs, err := chessmg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	// Optional divide output
	if *divide {
		div := chessmg.PerftDivide(gs, *depth)
		byName := make(map[string]uint64, len(div))
		var sum uint64
		for m, n := range div {
			byName[m.String()] = n
			sum += n
		}
		names := maps.Keys(byName)
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%s: %d\n", name, byName[name])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += chessmg.Perft(gs, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *verify {
		perRun := totalNodes / uint64(*repeat)
		failed := false
		for _, o := range oracle.All() {
			want, err := o.Perft(*fen, *depth)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", o.Name(), err)
				failed = true
				continue
			}
			if want != perRun {
				fmt.Println(oracle.Mismatch{Oracle: o.Name(), Want: want, Got: perRun})
				failed = true
				continue
			}
			fmt.Printf("%s: ok\n", o.Name())
		}
		if failed {
			os.Exit(1)
		}
	}

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}
