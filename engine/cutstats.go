package engine

import (
	"fmt"
	"io"
	"time"
)

// SearchStats collects counters for one search. Each searcher owns its own
// copy; parallel workers are merged when they finish.
type SearchStats struct {
	Nodes         uint64 // every negamax call, root included
	LeafEvals     uint64 // static evaluations at depth 0
	TerminalNodes uint64 // checkmate or stalemate reached before depth 0
	BetaCutoffs   uint64
	Elapsed       time.Duration
}

func (s *SearchStats) add(o SearchStats) {
	s.Nodes += o.Nodes
	s.LeafEvals += o.LeafEvals
	s.TerminalNodes += o.TerminalNodes
	s.BetaCutoffs += o.BetaCutoffs
}

// NPS is nodes per second, counting at least one millisecond.
func (s SearchStats) NPS() uint64 {
	ms := s.Elapsed.Milliseconds()
	if ms == 0 {
		ms = 1
	}
	return uint64(float64(s.Nodes*1000) / float64(ms))
}

// Dump writes the counters in the same "info string" shape as the info line.
func (s SearchStats) Dump(w io.Writer) {
	fmt.Fprintln(w, "info string Search statistics:")
	fmt.Fprintf(w, "info string   Nodes: %d\n", s.Nodes)
	fmt.Fprintf(w, "info string   Leaf evaluations: %d\n", s.LeafEvals)
	fmt.Fprintf(w, "info string   Terminal nodes: %d\n", s.TerminalNodes)
	fmt.Fprintf(w, "info string   Beta cutoffs: %d\n", s.BetaCutoffs)
	fmt.Fprintf(w, "info string   Time: %s\n", s.Elapsed)
}
