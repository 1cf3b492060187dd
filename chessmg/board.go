package chessmg

import "strings"

// Piece packs a color and a kind into one byte.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece | 8) so that
	// - piece & 7 gives the kind in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// Kind is a colorless piece type used for table lookups.
type Kind uint8

const (
	NoKind Kind = 0
	Pawn   Kind = 1
	Knight Kind = 2
	Bishop Kind = 3
	Rook   Kind = 4
	Queen  Kind = 5
	King   Kind = 6
)

var kindLetters = [7]byte{'-', 'p', 'N', 'B', 'R', 'Q', 'K'}

// Letter returns the upper-case piece letter, or 'p' for pawns.
func (k Kind) Letter() byte {
	if k > King {
		return '?'
	}
	return kindLetters[k]
}

// KindFromLetter maps "Q", "r", "n"... onto a Kind. Case is ignored.
func KindFromLetter(ch byte) Kind {
	switch ch {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	}
	return NoKind
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Kind returns the colorless type of the piece.
func (p Piece) Kind() Kind { return Kind(p & 7) }

// Color returns the owner of the piece. NoPiece reports White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool { return p == NoPiece }

// String renders the two character code used in board dumps: "wK", "bp", "--".
func (p Piece) String() string {
	if p == NoPiece {
		return "--"
	}
	var sb strings.Builder
	if p.Color() == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(p.Kind().Letter())
	return sb.String()
}

// PieceOf combines a side and a kind into a Piece.
func PieceOf(c Color, k Kind) Piece {
	if k == NoKind || k > King {
		return NoPiece
	}
	if c == Black {
		return Piece(k) | 8
	}
	return Piece(k)
}

// Square is a (row, col) pair. Row 0 is rank 8, col 0 is file a.
type Square struct {
	Row, Col int
}

// NoSquare marks an absent square (no en passant target, unknown king).
var NoSquare = Square{Row: -1, Col: -1}

// Sq is shorthand for Square{row, col}.
func Sq(row, col int) Square { return Square{Row: row, Col: col} }

// OnBoard reports whether both coordinates are in [0,7].
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// String returns the algebraic coordinate, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{byte('a' + s.Col), byte('8' - s.Row)})
}

// Board is the 8x8 grid indexed [row][col]. It is a value type: assigning a
// Board copies it.
type Board [8][8]Piece

// At returns the piece on s. s must be on the board.
func (b *Board) At(s Square) Piece { return b[s.Row][s.Col] }

func (b *Board) set(s Square, p Piece) { b[s.Row][s.Col] = p }

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingBoard returns the standard initial placement.
func StartingBoard() Board {
	var b Board
	for col := 0; col < 8; col++ {
		b[0][col] = PieceOf(Black, backRank[col])
		b[1][col] = BlackPawn
		b[6][col] = WhitePawn
		b[7][col] = PieceOf(White, backRank[col])
	}
	return b
}

// String draws the board with rank 8 on top, one two-character code per square.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteByte(byte('8' - row))
		for col := 0; col < 8; col++ {
			sb.WriteByte(' ')
			sb.WriteString(b[row][col].String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a  b  c  d  e  f  g  h\n")
	return sb.String()
}
