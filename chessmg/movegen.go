package chessmg

type offset struct{ dr, dc int }

var (
	knightOffsets = [8]offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8]offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {-1, -1}, {-1, 1}, {1, -1}}
	rookDirs      = [4]offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs    = [4]offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// pawnDir is the row step of c's pawns: White moves towards row 0.
func pawnDir(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// pawnHomeRow is the row c's pawns start on.
func pawnHomeRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// GeneratePseudoMoves returns every move of the side to move that obeys the
// piece movement rules, without checking king safety and without castling.
func (gs *GameState) GeneratePseudoMoves() []Move {
	return gs.GeneratePseudoMovesInto(make([]Move, 0, 64))
}

// GeneratePseudoMovesInto appends the pseudo-legal moves to moves and returns
// the extended slice, so callers can reuse one buffer.
func (gs *GameState) GeneratePseudoMovesInto(moves []Move) []Move {
	us := gs.sideToMove
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := gs.board[row][col]
			if p == NoPiece || p.Color() != us {
				continue
			}
			from := Sq(row, col)
			switch p.Kind() {
			case Pawn:
				moves = gs.pawnMoves(from, us, moves)
			case Knight:
				moves = gs.stepMoves(from, us, knightOffsets[:], moves)
			case Bishop:
				moves = gs.slideMoves(from, us, bishopDirs[:], moves)
			case Rook:
				moves = gs.slideMoves(from, us, rookDirs[:], moves)
			case Queen:
				moves = gs.slideMoves(from, us, bishopDirs[:], moves)
				moves = gs.slideMoves(from, us, rookDirs[:], moves)
			case King:
				moves = gs.stepMoves(from, us, kingOffsets[:], moves)
			}
		}
	}
	return moves
}

func (gs *GameState) pawnMoves(from Square, us Color, moves []Move) []Move {
	dir := pawnDir(us)
	one := Sq(from.Row+dir, from.Col)
	if !one.OnBoard() {
		return moves
	}
	if gs.board.At(one) == NoPiece {
		moves = append(moves, NewMove(from, one, &gs.board, NoKind, FlagNone))
		two := Sq(from.Row+2*dir, from.Col)
		if from.Row == pawnHomeRow(us) && gs.board.At(two) == NoPiece {
			moves = append(moves, NewMove(from, two, &gs.board, NoKind, FlagNone))
		}
	}
	for _, dc := range [2]int{-1, 1} {
		to := Sq(from.Row+dir, from.Col+dc)
		if !to.OnBoard() {
			continue
		}
		target := gs.board.At(to)
		if target != NoPiece && target.Color() != us {
			moves = append(moves, NewMove(from, to, &gs.board, NoKind, FlagNone))
		} else if to == gs.enPassant {
			moves = append(moves, NewMove(from, to, &gs.board, NoKind, FlagEnPassant))
		}
	}
	return moves
}

// stepMoves handles knights and kings: fixed offsets, one step each.
func (gs *GameState) stepMoves(from Square, us Color, offsets []offset, moves []Move) []Move {
	for _, o := range offsets {
		to := Sq(from.Row+o.dr, from.Col+o.dc)
		if !to.OnBoard() {
			continue
		}
		target := gs.board.At(to)
		if target == NoPiece || target.Color() != us {
			moves = append(moves, NewMove(from, to, &gs.board, NoKind, FlagNone))
		}
	}
	return moves
}

// slideMoves casts rays until the edge, an own piece (excluded) or an enemy
// piece (included).
func (gs *GameState) slideMoves(from Square, us Color, dirs []offset, moves []Move) []Move {
	for _, d := range dirs {
		to := Sq(from.Row+d.dr, from.Col+d.dc)
		for to.OnBoard() {
			target := gs.board.At(to)
			if target != NoPiece && target.Color() == us {
				break
			}
			moves = append(moves, NewMove(from, to, &gs.board, NoKind, FlagNone))
			if target != NoPiece {
				break
			}
			to = Sq(to.Row+d.dr, to.Col+d.dc)
		}
	}
	return moves
}
