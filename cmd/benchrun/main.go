package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

type perftRun struct {
	label string
	fen   string
	depth string
}

var perftRuns = []perftRun{
	{"Initial", "", "3"},
	{"Initial", "", "4"},
	{"Initial", "", "5"},
	{"Kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", "3"},
	{"Kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", "4"},
	{"Position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", "5"},
}

func main() {
	// Run all benchmarks in bench/ with benchmem, then the perft and search
	// tools for throughput numbers.
	// Usage: go run ./cmd/benchrun [-verify]
	verify := len(os.Args) > 1 && os.Args[1] == "-verify"

	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	failed := false
	for _, r := range perftRuns {
		args := []string{"run", "./cmd/perft", "-depth", r.depth, "-label", r.label}
		if r.fen != "" {
			args = append(args, "-fen", r.fen)
		}
		if verify {
			args = append(args, "-verify")
		}
		if run("go", args...) != 0 {
			failed = true
		}
	}

	fmt.Println("\nSearch Performance:")
	run("go", "run", "./cmd/searchbench", "-depth", "3", "-repeat", "3")
	run("go", "run", "./cmd/searchbench", "-depth", "3", "-repeat", "3", "-parallel")

	if failed {
		os.Exit(1)
	}
}
