package chessmg

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// castleRookSquares returns the rook's start and end squares for a castling
// king move: kingside h->f, queenside a->d.
func castleRookSquares(m Move) (from, to Square) {
	row := m.To.Row
	if m.To.Col > m.From.Col {
		return Sq(row, 7), Sq(row, 5)
	}
	return Sq(row, 0), Sq(row, 3)
}

// ApplyMove plays m on the board without any legality check. m must have been
// built against the current position.
func (gs *GameState) ApplyMove(m Move) {
	gs.undoLog = append(gs.undoLog, undoInfo{
		prevEnPassant: gs.enPassant,
		prevHalfmove:  gs.halfmoveClock,
		prevFullmove:  gs.fullmoveNumber,
	})

	gs.board.set(m.From, NoPiece)
	if m.IsPromotion() {
		promotion := m.Promotion
		if !validPromotion(promotion) {
			promotion = Queen
		}
		gs.board.set(m.To, PieceOf(m.Piece.Color(), promotion))
	} else {
		gs.board.set(m.To, m.Piece)
	}

	// The captured pawn sits beside the start square, not on the target.
	if m.Flag == FlagEnPassant {
		gs.board.set(Sq(m.From.Row, m.To.Col), NoPiece)
	}

	if m.Flag == FlagCastle {
		rookFrom, rookTo := castleRookSquares(m)
		gs.board.set(rookTo, gs.board.At(rookFrom))
		gs.board.set(rookFrom, NoPiece)
	}

	gs.moveLog = append(gs.moveLog, m)
	mover := m.Piece.Color()
	gs.sideToMove = mover.Other()

	if m.Piece.Kind() == King {
		gs.kings[mover] = m.To
	}

	if m.Piece.Kind() == Pawn && abs(m.From.Row-m.To.Row) == 2 {
		gs.enPassant = Sq((m.From.Row+m.To.Row)/2, m.From.Col)
	} else {
		gs.enPassant = NoSquare
	}

	if m.Piece.Kind() == Pawn || m.IsCapture() {
		gs.halfmoveClock = 0
	} else {
		gs.halfmoveClock++
	}
	if mover == Black {
		gs.fullmoveNumber++
	}

	gs.updateCastlingRights(m)
	gs.castleLog = append(gs.castleLog, gs.castling)
}

// UndoMove takes back the last applied move. It does nothing when no move
// has been played.
func (gs *GameState) UndoMove() {
	if len(gs.moveLog) == 0 {
		return
	}
	last := len(gs.moveLog) - 1
	m := gs.moveLog[last]
	u := gs.undoLog[last]
	gs.moveLog = gs.moveLog[:last]
	gs.undoLog = gs.undoLog[:last]

	gs.board.set(m.From, m.Piece)
	if m.Flag == FlagEnPassant {
		gs.board.set(m.To, NoPiece)
		gs.board.set(Sq(m.From.Row, m.To.Col), m.Captured)
	} else {
		gs.board.set(m.To, m.Captured)
	}

	if m.Flag == FlagCastle {
		rookFrom, rookTo := castleRookSquares(m)
		gs.board.set(rookFrom, gs.board.At(rookTo))
		gs.board.set(rookTo, NoPiece)
	}

	mover := m.Piece.Color()
	gs.sideToMove = mover
	if m.Piece.Kind() == King {
		gs.kings[mover] = m.From
	}

	gs.enPassant = u.prevEnPassant
	gs.halfmoveClock = u.prevHalfmove
	gs.fullmoveNumber = u.prevFullmove

	gs.castleLog = gs.castleLog[:len(gs.castleLog)-1]
	gs.castling = gs.castleLog[len(gs.castleLog)-1]
}
