package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestOraclesAgreeOnStart(t *testing.T) {
	for _, o := range All() {
		t.Run(o.Name(), func(t *testing.T) {
			moves, err := o.Moves(startFEN)
			require.NoError(t, err)
			assert.Len(t, moves, 20)
			assert.Contains(t, moves, "e2e4")
			assert.Contains(t, moves, "g1f3")

			n, err := o.Perft(startFEN, 3)
			require.NoError(t, err)
			assert.Equal(t, uint64(8902), n)
		})
	}
}

func TestOraclesFoldPromotions(t *testing.T) {
	fen := "7k/P7/8/8/8/8/8/4K3 w - - 0 1"
	for _, o := range All() {
		t.Run(o.Name(), func(t *testing.T) {
			moves, err := o.Moves(fen)
			require.NoError(t, err)
			assert.Contains(t, moves, "a7a8")
			// a7a8 once plus five king moves.
			assert.Len(t, moves, 6)

			n, err := o.Perft(fen, 1)
			require.NoError(t, err)
			assert.Equal(t, uint64(6), n)
		})
	}
}

func TestCompare(t *testing.T) {
	assert.Nil(t, Compare([]string{"e2e4", "d2d4"}, []string{"d2d4", "e2e4"}))

	d := Compare([]string{"e2e4", "e1g1"}, []string{"e2e4", "d2d4"})
	require.NotNil(t, d)
	assert.Equal(t, []string{"d2d4"}, d.Missing)
	assert.Equal(t, []string{"e1g1"}, d.Extra)
	assert.Equal(t, "missing [d2d4], extra [e1g1]", d.String())
}

func TestMismatchString(t *testing.T) {
	m := Mismatch{Oracle: "goosemg", Want: 400, Got: 401}
	assert.Equal(t, "goosemg: 400, chessmg: 401", m.String())
}
