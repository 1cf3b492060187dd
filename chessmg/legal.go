package chessmg

// IsSquareAttacked reports whether any piece of the side not to move could
// reach s with an ordinary capture pattern. Pawns attack diagonally only, so
// a straight pawn push never counts. Castling is never considered.
func (gs *GameState) IsSquareAttacked(s Square) bool {
	return gs.attackedBy(s, gs.sideToMove.Other())
}

// attackedBy looks outward from s for an attacker of color them.
func (gs *GameState) attackedBy(s Square, them Color) bool {
	// A pawn of color them attacks s from one row behind s, seen from them.
	pawnRow := s.Row - pawnDir(them)
	for _, dc := range [2]int{-1, 1} {
		from := Sq(pawnRow, s.Col+dc)
		if from.OnBoard() && gs.board.At(from) == PieceOf(them, Pawn) {
			return true
		}
	}
	if gs.stepAttack(s, knightOffsets[:], PieceOf(them, Knight)) {
		return true
	}
	if gs.stepAttack(s, kingOffsets[:], PieceOf(them, King)) {
		return true
	}
	if gs.rayAttack(s, rookDirs[:], PieceOf(them, Rook), PieceOf(them, Queen)) {
		return true
	}
	return gs.rayAttack(s, bishopDirs[:], PieceOf(them, Bishop), PieceOf(them, Queen))
}

func (gs *GameState) stepAttack(s Square, offsets []offset, attacker Piece) bool {
	for _, o := range offsets {
		from := Sq(s.Row+o.dr, s.Col+o.dc)
		if from.OnBoard() && gs.board.At(from) == attacker {
			return true
		}
	}
	return false
}

func (gs *GameState) rayAttack(s Square, dirs []offset, slider, queen Piece) bool {
	for _, d := range dirs {
		from := Sq(s.Row+d.dr, s.Col+d.dc)
		for from.OnBoard() {
			p := gs.board.At(from)
			if p != NoPiece {
				if p == slider || p == queen {
					return true
				}
				break
			}
			from = Sq(from.Row+d.dr, from.Col+d.dc)
		}
	}
	return false
}

// InCheck reports whether the side to move has its king attacked.
func (gs *GameState) InCheck() bool {
	return gs.IsSquareAttacked(gs.kings[gs.sideToMove])
}

// castlingMoves appends castling moves for the king on (row, col). The caller
// has already verified the king is not in check.
func (gs *GameState) castlingMoves(row, col int, moves []Move) []Move {
	us := gs.sideToMove
	// Rights only survive while king and rook are on their home squares, but
	// a hand-built position may disagree, so check the corner too.
	if row != homeRow(us) || col != 4 {
		return moves
	}
	king := Sq(row, col)
	if gs.castling.Kingside(us) && gs.board[row][7] == PieceOf(us, Rook) {
		if gs.board[row][col+1] == NoPiece && gs.board[row][col+2] == NoPiece &&
			!gs.IsSquareAttacked(Sq(row, col+1)) && !gs.IsSquareAttacked(Sq(row, col+2)) {
			moves = append(moves, NewMove(king, Sq(row, col+2), &gs.board, NoKind, FlagCastle))
		}
	}
	if gs.castling.Queenside(us) && gs.board[row][0] == PieceOf(us, Rook) {
		if gs.board[row][col-1] == NoPiece && gs.board[row][col-2] == NoPiece && gs.board[row][col-3] == NoPiece &&
			!gs.IsSquareAttacked(Sq(row, col-1)) && !gs.IsSquareAttacked(Sq(row, col-2)) {
			moves = append(moves, NewMove(king, Sq(row, col-2), &gs.board, NoKind, FlagCastle))
		}
	}
	return moves
}

// LegalMoves returns the moves of the side to move that do not leave its own
// king attacked, in generation order, castling last. It records checkmate or
// stalemate when the list is empty and clears both flags otherwise.
func (gs *GameState) LegalMoves() []Move {
	savedEnPassant := gs.enPassant
	savedCastling := gs.castling

	moves := gs.GeneratePseudoMovesInto(make([]Move, 0, 64))
	king := gs.kings[gs.sideToMove]
	inCheck := gs.IsSquareAttacked(king)
	if !inCheck {
		moves = gs.castlingMoves(king.Row, king.Col, moves)
	}

	mover := gs.sideToMove
	legal := moves[:0]
	for _, m := range moves {
		gs.ApplyMove(m)
		gs.sideToMove = mover
		exposed := gs.InCheck()
		gs.sideToMove = mover.Other()
		gs.UndoMove()
		if !exposed {
			legal = append(legal, m)
		}
	}

	if len(legal) == 0 {
		gs.checkmate = inCheck
		gs.stalemate = !inCheck
	} else {
		gs.checkmate = false
		gs.stalemate = false
	}

	gs.enPassant = savedEnPassant
	gs.castling = savedCastling
	return legal
}

// HasLegalMoves reports whether the side to move can play anything. Unlike
// LegalMoves it leaves the terminal flags alone.
func (gs *GameState) HasLegalMoves() bool {
	checkmate, stalemate := gs.checkmate, gs.stalemate
	n := len(gs.LegalMoves())
	gs.checkmate, gs.stalemate = checkmate, stalemate
	return n > 0
}

// TryMove matches the user move from->to against the legal moves and applies
// the match. promotion is used when the matched move promotes; NoKind means
// queen. It reports false, leaving the state untouched, when nothing matches.
func (gs *GameState) TryMove(from, to Square, promotion Kind) (Move, bool) {
	if !from.OnBoard() || !to.OnBoard() {
		return NoMove, false
	}
	candidate := NewMove(from, to, &gs.board, promotion, FlagNone)
	for _, m := range gs.LegalMoves() {
		if m.Equal(candidate) {
			m = m.WithPromotion(promotion)
			gs.ApplyMove(m)
			return m, true
		}
	}
	return NoMove, false
}
