package engine

import (
	"math/rand"

	"github.com/spampots/ChessApp/chessmg"
)

// RandomMove picks uniformly among moves. ok is false for an empty list.
func RandomMove(rng *rand.Rand, moves []chessmg.Move) (m chessmg.Move, ok bool) {
	if len(moves) == 0 {
		return chessmg.NoMove, false
	}
	return moves[rng.Intn(len(moves))], true
}

func (e *Engine) randomMove(moves []chessmg.Move) (chessmg.Move, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return RandomMove(e.rng, moves)
}

// Fallback is the move to play when a search came back empty.
func (e *Engine) Fallback(moves []chessmg.Move) (chessmg.Move, bool) {
	return e.randomMove(moves)
}

func (e *Engine) shuffled(moves []chessmg.Move) []chessmg.Move {
	out := append([]chessmg.Move(nil), moves...)
	e.mu.Lock()
	e.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	e.mu.Unlock()
	return out
}

// greedy plays the move that leaves the opponent's best material reply as
// small as possible. Candidates are shuffled first so equal moves vary.
func (e *Engine) greedy(gs *chessmg.GameState, moves []chessmg.Move) Result {
	var r Result
	sign := colorSign(gs)
	best := Checkmate + 1 // lowest opponent score seen so far

	for _, m := range e.shuffled(moves) {
		r.Stats.Nodes++
		gs.ApplyMove(m)
		replies := gs.LegalMoves()

		var opponentBest float32
		switch {
		case gs.IsCheckmate():
			opponentBest = -Checkmate
		case gs.IsStalemate():
			opponentBest = Stalemate
		default:
			opponentBest = -Checkmate
			for _, reply := range replies {
				r.Stats.Nodes++
				gs.ApplyMove(reply)
				gs.LegalMoves()
				var score float32
				switch {
				case gs.IsCheckmate():
					score = Checkmate
				case gs.IsStalemate():
					score = Stalemate
				default:
					b := gs.Board()
					score = -sign * ScoreMaterial(&b)
					r.Stats.LeafEvals++
				}
				opponentBest = Max(opponentBest, score)
				gs.UndoMove()
			}
		}
		gs.UndoMove()

		if opponentBest < best {
			best = opponentBest
			r.Move, r.Score, r.Found = m, -opponentBest, true
			r.PV = PVLine{Moves: []chessmg.Move{m}}
		}
	}
	return r
}
