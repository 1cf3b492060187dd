package bench

import (
	"context"
	"testing"

	"github.com/spampots/ChessApp/chessmg"
	"github.com/spampots/ChessApp/engine"
)

func benchSearch(b *testing.B, fen string, mutate func(*engine.Config)) {
	cfg := engine.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	e, err := engine.New(cfg)
	if err != nil {
		b.Fatalf("engine.New: %v", err)
	}
	gs := mustFEN(b, fen)
	moves := gs.LegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := e.Search(context.Background(), gs, moves)
		b.ReportMetric(float64(r.Stats.Nodes), "nodes/op")
	}
}

func BenchmarkSearch_AlphaBeta_Initial(b *testing.B) {
	benchSearch(b, chessmg.FENStartPos, nil)
}

func BenchmarkSearch_AlphaBeta_Kiwipete(b *testing.B) {
	benchSearch(b, fenKiwipete, nil)
}

func BenchmarkSearch_Parallel_Kiwipete(b *testing.B) {
	benchSearch(b, fenKiwipete, func(c *engine.Config) { c.Parallel = true })
}

func BenchmarkSearch_Negamax_Pos6_D2(b *testing.B) {
	benchSearch(b, fenPos6, func(c *engine.Config) {
		c.Depth = 2
		c.Strategy = engine.Negamax
	})
}

func BenchmarkScoreBoard_Pos6(b *testing.B) {
	gs := mustFEN(b, fenPos6)
	gs.LegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.ScoreBoard(gs)
	}
}
