package chessmg

import (
	"strings"

	"github.com/pkg/errors"
)

// Flag marks the special moves that need extra board surgery.
type Flag uint8

// Move flags
const (
	FlagNone      Flag = 0
	FlagCastle    Flag = 1
	FlagEnPassant Flag = 2
	// (Promotion is derived from the moved piece and the end row)
)

// Move describes one ply. The moved and captured pieces are read from the
// board when the move is built, so a Move is only valid against the position
// it was constructed from.
type Move struct {
	From, To  Square
	Piece     Piece // piece standing on From
	Captured  Piece // NoPiece for quiet moves; the enemy pawn for en passant
	Promotion Kind  // chosen promotion kind, Queen unless told otherwise
	Flag      Flag
}

// NoMove is the zero Move, used where "none" must be expressed as a value.
var NoMove = Move{From: NoSquare, To: NoSquare}

// NewMove builds a Move from a board snapshot. promotion may be NoKind, in
// which case a promotion defaults to a queen.
func NewMove(from, to Square, b *Board, promotion Kind, flag Flag) Move {
	m := Move{
		From:     from,
		To:       to,
		Piece:    b.At(from),
		Captured: b.At(to),
		Flag:     flag,
	}
	if flag == FlagEnPassant {
		m.Captured = PieceOf(m.Piece.Color().Other(), Pawn)
	}
	m.Promotion = NoKind
	if m.IsPromotion() {
		m.Promotion = Queen
		if validPromotion(promotion) {
			m.Promotion = promotion
		}
	}
	return m
}

func validPromotion(k Kind) bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

// IsPromotion reports whether a pawn reaches the first or last row.
func (m Move) IsPromotion() bool {
	return m.Piece.Kind() == Pawn && (m.To.Row == 0 || m.To.Row == 7)
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool { return m.Flag == FlagEnPassant }

// IsCastle reports whether the move is a castling king move.
func (m Move) IsCastle() bool { return m.Flag == FlagCastle }

// IsCapture reports whether an enemy piece is taken.
func (m Move) IsCapture() bool { return m.Captured != NoPiece }

// IsZero reports whether m is NoMove or the zero value.
func (m Move) IsZero() bool { return m == NoMove || m == Move{} }

// Equal compares start and end squares only, so a move typed in by a user
// without any metadata matches the fully described generated move.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To
}

// WithPromotion returns a copy of m promoting to k. Non-promotions and
// unknown kinds leave the move untouched.
func (m Move) WithPromotion(k Kind) Move {
	if m.IsPromotion() && validPromotion(k) {
		m.Promotion = k
	}
	return m
}

// String returns long algebraic notation: "e2e4", "e1g1", "a7a8n".
func (m Move) String() string {
	if m.IsZero() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// ParseSquare converts "e4" into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errors.Wrapf(ErrInvalidSquare, "%q", s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, errors.Wrapf(ErrInvalidSquare, "%q out of range", s)
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

// ParsePromotion maps "q", "r", "b", "n" onto a Kind.
func ParsePromotion(s string) (Kind, error) {
	if len(s) != 1 {
		return NoKind, errors.Wrapf(ErrInvalidPromotion, "%q", s)
	}
	k := KindFromLetter(s[0])
	if !validPromotion(k) {
		return NoKind, errors.Wrapf(ErrInvalidPromotion, "%q", s)
	}
	return k, nil
}

// ParseMove reads long algebraic notation against the current board. The
// returned candidate carries no special flags; match it against LegalMoves
// (see TryMove) before applying it.
func ParseMove(gs *GameState, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, errors.Wrapf(ErrInvalidMove, "%q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, errors.WithMessagef(err, "move %q", s)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, errors.WithMessagef(err, "move %q", s)
	}
	promotion := NoKind
	if len(s) == 5 {
		if promotion, err = ParsePromotion(s[4:]); err != nil {
			return NoMove, errors.WithMessagef(err, "move %q", s)
		}
	}
	return NewMove(from, to, &gs.board, promotion, FlagNone), nil
}
