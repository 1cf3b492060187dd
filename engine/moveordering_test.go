package engine

import (
	"testing"

	"github.com/spampots/ChessApp/chessmg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findMove(t *testing.T, moves []chessmg.Move, s string) chessmg.Move {
	t.Helper()
	for _, m := range moves {
		if m.String() == s {
			return m
		}
	}
	t.Fatalf("move %s not generated", s)
	return chessmg.NoMove
}

func TestScoreMove(t *testing.T) {
	// White: pawn d4 can take the queen on e5, knight c3 can take the pawn
	// on b5, pawn g7 can promote on g8 or take the rook on h8.
	gs := mustFEN(t, "k6r/6P1/8/1p2q3/3P4/2N5/8/K7 w - - 0 1")
	moves := gs.LegalMoves()

	tests := []struct {
		move string
		want float32
	}{
		{"d4e5", 10*10 - 1 + 2},
		{"c3b5", 10*1 - 3},
		{"g7g8q", 9},
		{"g7h8q", 10*5 - 1 + 9 + 2},
		{"d4d5", 0},
		{"a1b1", 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, ScoreMove(findMove(t, moves, tt.move)), 1e-4, tt.move)
	}
}

func TestScoreMoveEnPassant(t *testing.T) {
	gs := mustFEN(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	m := findMove(t, gs.LegalMoves(), "e5d6")
	require.True(t, m.IsEnPassant())
	assert.InDelta(t, 10*1-1+2, ScoreMove(m), 1e-4)
}

func TestOrderMoves(t *testing.T) {
	gs := mustFEN(t, "k6r/6P1/8/1p2q3/3P4/2N5/8/K7 w - - 0 1")
	moves := gs.LegalMoves()
	original := append([]chessmg.Move(nil), moves...)

	ordered := OrderMoves(moves)
	require.Len(t, ordered, len(moves))
	assert.Equal(t, original, moves, "input must not be reordered")
	assert.Equal(t, "d4e5", ordered[0].String())
	assert.Equal(t, "g7h8q", ordered[1].String())

	for i := 1; i < len(ordered); i++ {
		assert.GreaterOrEqual(t, ScoreMove(ordered[i-1]), ScoreMove(ordered[i]))
	}

	// Equal scores keep generation order.
	var quiet []chessmg.Move
	for _, m := range ordered {
		if ScoreMove(m) == 0 {
			quiet = append(quiet, m)
		}
	}
	var wantQuiet []chessmg.Move
	for _, m := range original {
		if ScoreMove(m) == 0 {
			wantQuiet = append(wantQuiet, m)
		}
	}
	assert.Equal(t, wantQuiet, quiet)
}
