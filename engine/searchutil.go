package engine

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/spampots/ChessApp/chessmg"
)

// PVLine is the principal variation, root move first.
type PVLine struct {
	Moves []chessmg.Move
}

// GetPVMove returns the first move of the line, or NoMove.
func (pv PVLine) GetPVMove() chessmg.Move {
	if len(pv.Moves) == 0 {
		return chessmg.NoMove
	}
	return pv.Moves[0]
}

// Clone copies the line so later searches cannot overwrite it.
func (pv PVLine) Clone() PVLine {
	return PVLine{Moves: append([]chessmg.Move(nil), pv.Moves...)}
}

func (pv PVLine) String() string {
	parts := make([]string, len(pv.Moves))
	for i, m := range pv.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// prepend returns m followed by line in a fresh slice.
func prepend(m chessmg.Move, line []chessmg.Move) []chessmg.Move {
	out := make([]chessmg.Move, 0, len(line)+1)
	out = append(out, m)
	return append(out, line...)
}

// isMateScore reports whether score is a forced mate for either side.
func isMateScore(score float32) bool {
	return math32.Abs(score) >= Checkmate
}

// getMateOrCPScore renders a side-to-move score as "cp N" (centipawns) or
// "mate N" where N counts our moves, negative when we are the ones mated.
func getMateOrCPScore(score float32, pv PVLine) string {
	if isMateScore(score) {
		mateIn := (len(pv.Moves) + 1) / 2
		if score < 0 {
			mateIn = -mateIn
		}
		return fmt.Sprintf("mate %d", mateIn)
	}
	return fmt.Sprintf("cp %d", int(math32.Floor(score*100+0.5)))
}
