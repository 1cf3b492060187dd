package engine

import (
	"sort"

	"github.com/spampots/ChessApp/chessmg"
)

type scoredMove struct {
	move  chessmg.Move
	score float32
}

// Ordering bonuses on top of MVV-LVA.
const (
	promotionBonus   float32 = 9
	pawnCaptureBonus float32 = 2
)

// ScoreMove rates a move for ordering only:
//   - captures: 10 x victim value - attacker value (most valuable victim,
//     least valuable attacker)
//   - pawn reaching the first or last row: promotion bonus
//   - pawn changing file: pawn capture bonus, en passant included
func ScoreMove(m chessmg.Move) float32 {
	var score float32
	if m.IsCapture() {
		score += 10*PieceValue(m.Captured.Kind()) - PieceValue(m.Piece.Kind())
	}
	if m.Piece.Kind() == chessmg.Pawn {
		if m.To.Row == 0 || m.To.Row == 7 {
			score += promotionBonus
		}
		if m.From.Col != m.To.Col {
			score += pawnCaptureBonus
		}
	}
	return score
}

// orderMoves sorts moves in place, best ScoreMove first. Ties keep their
// generation order so the search stays deterministic.
func orderMoves(moves []chessmg.Move) {
	if len(moves) < 2 {
		return
	}
	list := make([]scoredMove, len(moves))
	for i, m := range moves {
		list[i] = scoredMove{move: m, score: ScoreMove(m)}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].score > list[j].score
	})
	for i := range list {
		moves[i] = list[i].move
	}
}

// OrderMoves returns a sorted copy of moves; the input is left untouched.
func OrderMoves(moves []chessmg.Move) []chessmg.Move {
	ordered := append([]chessmg.Move(nil), moves...)
	orderMoves(ordered)
	return ordered
}
