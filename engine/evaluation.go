package engine

import (
	"github.com/spampots/ChessApp/chessmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	Checkmate float32 = 1000
	Stalemate float32 = 0

	DefaultDepth = 3
)

// Material values in pawns. The king carries no material.
var pieceValues = [7]float32{
	chessmg.Pawn:   1,
	chessmg.Knight: 3,
	chessmg.Bishop: 3.3,
	chessmg.Rook:   5,
	chessmg.Queen:  10,
	chessmg.King:   0,
}

// positionWeight scales the piece-square tables down to pawn units.
const positionWeight float32 = 0.01

// Piece-square tables, written from White's side with White's back rank on
// the bottom row. White looks up [7-row][col], Black [row][col].
var pieceSquareTables = [7][8][8]int8{
	chessmg.Pawn: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 5, 5, -5, -5, 5, 5, 5},
		{1, 1, 2, 3, 3, 2, 1, 1},
		{0, 0, 0, 2, 2, 0, 0, 0},
		{0, 0, 0, -2, -2, 0, 0, 0},
		{1, -1, -2, 0, 0, -2, -1, 1},
		{1, 2, 2, -2, -2, 2, 2, 1},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	chessmg.Knight: {
		{-5, -4, -3, -3, -3, -3, -4, -5},
		{-4, -2, 0, 1, 1, 0, -2, -4},
		{-3, 1, 2, 3, 3, 2, 1, -3},
		{-3, 0, 3, 4, 4, 3, 0, -3},
		{-3, 1, 3, 4, 4, 3, 1, -3},
		{-3, 0, 2, 3, 3, 2, 0, -3},
		{-4, -2, 0, 0, 0, 0, -2, -4},
		{-5, -4, -3, -3, -3, -3, -4, -5},
	},
	chessmg.Bishop: {
		{-2, -1, -1, -1, -1, -1, -1, -2},
		{-1, 0, 0, 0, 0, 0, 0, -1},
		{-1, 0, 1, 1, 1, 1, 0, -1},
		{-1, 1, 1, 1, 1, 1, 1, -1},
		{-1, 0, 1, 1, 1, 1, 0, -1},
		{-1, 1, 1, 1, 1, 1, 1, -1},
		{-1, 1, 0, 0, 0, 0, 1, -1},
		{-2, -1, -1, -1, -1, -1, -1, -2},
	},
	chessmg.Rook: {
		{0, 0, 1, 2, 2, 1, 0, 0},
		{-2, 0, 0, 0, 0, 0, 0, -2},
		{-2, 0, 0, 0, 0, 0, 0, -2},
		{-2, 0, 0, 0, 0, 0, 0, -2},
		{-2, 0, 0, 0, 0, 0, 0, -2},
		{-2, 0, 0, 0, 0, 0, 0, -2},
		{2, 2, 2, 2, 2, 2, 2, 2},
		{0, 0, 1, 2, 2, 1, 0, 0},
	},
	chessmg.Queen: {
		{-2, -1, -1, 0, 0, -1, -1, -2},
		{-1, 0, 0, 0, 0, 0, 0, -1},
		{-1, 0, 1, 1, 1, 1, 0, -1},
		{0, 0, 1, 1, 1, 1, 0, 0},
		{0, 0, 1, 1, 1, 1, 0, 0},
		{-1, 1, 1, 1, 1, 1, 0, -1},
		{-1, 0, 1, 0, 0, 0, 0, -1},
		{-2, -1, -1, 0, 0, -1, -1, -2},
	},
	chessmg.King: {
		{-3, -4, -4, -5, -5, -4, -4, -3},
		{-3, -4, -4, -5, -5, -4, -4, -3},
		{-3, -4, -4, -5, -5, -4, -4, -3},
		{-3, -4, -4, -5, -5, -4, -4, -3},
		{-2, -3, -3, -4, -4, -3, -3, -2},
		{-1, -2, -2, -2, -2, -2, -2, -1},
		{2, 2, 0, 0, 0, 0, 2, 2},
		{2, 3, 1, 0, 0, 1, 3, 2},
	},
}

// PieceValue returns the material value of k in pawns.
func PieceValue(k chessmg.Kind) float32 {
	if k > chessmg.King {
		return 0
	}
	return pieceValues[k]
}

// PositionValue is the piece-square bonus of p standing on s, before scaling
// and from p's own point of view.
func PositionValue(p chessmg.Piece, s chessmg.Square) int8 {
	k := p.Kind()
	if k == chessmg.NoKind || k > chessmg.King {
		return 0
	}
	if p.Color() == chessmg.White {
		return pieceSquareTables[k][7-s.Row][s.Col]
	}
	return pieceSquareTables[k][s.Row][s.Col]
}

// ScoreMaterial counts material only: positive favours White.
func ScoreMaterial(b *chessmg.Board) float32 {
	var score float32
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b[row][col]
			if p == chessmg.NoPiece {
				continue
			}
			if p.Color() == chessmg.White {
				score += pieceValues[p.Kind()]
			} else {
				score -= pieceValues[p.Kind()]
			}
		}
	}
	return score
}

// ScoreBoard is the static evaluation from White's point of view. The
// terminal flags come from the last LegalMoves call on gs: a mated White
// scores -Checkmate, a mated Black +Checkmate, stalemate Stalemate.
func ScoreBoard(gs *chessmg.GameState) float32 {
	if gs.IsCheckmate() {
		if gs.WhiteToMove() {
			return -Checkmate
		}
		return Checkmate
	}
	if gs.IsStalemate() {
		return Stalemate
	}

	b := gs.Board()
	var score float32
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b[row][col]
			if p == chessmg.NoPiece {
				continue
			}
			total := pieceValues[p.Kind()] + positionWeight*float32(PositionValue(p, chessmg.Sq(row, col)))
			if p.Color() == chessmg.White {
				score += total
			} else {
				score -= total
			}
		}
	}
	return score
}
