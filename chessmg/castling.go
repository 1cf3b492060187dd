package chessmg

// CastlingRights holds the four independent castling permissions. It is a
// plain value: copying it snapshots it.
type CastlingRights struct {
	WhiteKingside  bool
	BlackKingside  bool
	WhiteQueenside bool
	BlackQueenside bool
}

// AllCastlingRights is the initial set of rights.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Kingside reports the kingside right of c.
func (cr CastlingRights) Kingside(c Color) bool {
	if c == White {
		return cr.WhiteKingside
	}
	return cr.BlackKingside
}

// Queenside reports the queenside right of c.
func (cr CastlingRights) Queenside(c Color) bool {
	if c == White {
		return cr.WhiteQueenside
	}
	return cr.BlackQueenside
}

func (cr *CastlingRights) revokeKingside(c Color) {
	if c == White {
		cr.WhiteKingside = false
	} else {
		cr.BlackKingside = false
	}
}

func (cr *CastlingRights) revokeQueenside(c Color) {
	if c == White {
		cr.WhiteQueenside = false
	} else {
		cr.BlackQueenside = false
	}
}

// String renders the FEN castling field.
func (cr CastlingRights) String() string {
	s := ""
	if cr.WhiteKingside {
		s += "K"
	}
	if cr.WhiteQueenside {
		s += "Q"
	}
	if cr.BlackKingside {
		s += "k"
	}
	if cr.BlackQueenside {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// homeRow is the back row of c: 7 for White, 0 for Black.
func homeRow(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// updateCastlingRights revokes rights after m has been played: a king move
// drops both rights of its side, a rook leaving its corner drops that side's
// right, and a rook captured on its corner drops the victim's right.
func (gs *GameState) updateCastlingRights(m Move) {
	mover := m.Piece.Color()
	switch m.Piece.Kind() {
	case King:
		gs.castling.revokeKingside(mover)
		gs.castling.revokeQueenside(mover)
	case Rook:
		if m.From.Row == homeRow(mover) {
			if m.From.Col == 0 {
				gs.castling.revokeQueenside(mover)
			} else if m.From.Col == 7 {
				gs.castling.revokeKingside(mover)
			}
		}
	}

	if m.Captured.Kind() == Rook {
		victim := m.Captured.Color()
		if m.To.Row == homeRow(victim) {
			if m.To.Col == 0 {
				gs.castling.revokeQueenside(victim)
			} else if m.To.Col == 7 {
				gs.castling.revokeKingside(victim)
			}
		}
	}
}
