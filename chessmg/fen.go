package chessmg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar converts a FEN character to the corresponding Piece constant.
func pieceFromChar(ch rune) Piece {
	if ch > 'z' {
		return NoPiece
	}
	k := KindFromLetter(byte(ch))
	if k == NoKind {
		return NoPiece
	}
	if ch >= 'a' && ch <= 'z' {
		return PieceOf(Black, k)
	}
	return PieceOf(White, k)
}

// charFromPiece converts a Piece constant to its FEN character.
func charFromPiece(p Piece) byte {
	ch := p.Kind().Letter()
	if ch == 'p' {
		ch = 'P'
	}
	if p.Color() == Black {
		ch += 'a' - 'A'
	}
	return ch
}

// ParseFEN builds a GameState from a FEN string. The castling log is seeded
// with the parsed rights and the kings are located once here; afterwards
// they are tracked move by move. Halfmove and fullmove fields are optional.
func ParseFEN(fen string) (*GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.Wrap(ErrInvalidFEN, "not enough fields")
	}

	gs := &GameState{
		enPassant:      NoSquare,
		kings:          [2]Square{NoSquare, NoSquare},
		fullmoveNumber: 1,
	}

	// 1. Piece placement; FEN lists rank 8 first, which is row 0.
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.Wrapf(ErrInvalidFEN, "%d ranks", len(ranks))
	}
	for row, rankStr := range ranks {
		col := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			p := pieceFromChar(ch)
			if p == NoPiece {
				return nil, errors.Wrapf(ErrInvalidFEN, "unrecognized piece %q", ch)
			}
			if col >= 8 {
				return nil, errors.Wrapf(ErrInvalidFEN, "rank %d too long", 8-row)
			}
			gs.board[row][col] = p
			if p.Kind() == King {
				gs.kings[p.Color()] = Sq(row, col)
			}
			col++
		}
		if col != 8 {
			return nil, errors.Wrapf(ErrInvalidFEN, "rank %d does not have 8 columns", 8-row)
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		gs.sideToMove = White
	case "b":
		gs.sideToMove = Black
	default:
		return nil, errors.Wrapf(ErrInvalidFEN, "side to move %q", fields[1])
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				gs.castling.WhiteKingside = true
			case 'Q':
				gs.castling.WhiteQueenside = true
			case 'k':
				gs.castling.BlackKingside = true
			case 'q':
				gs.castling.BlackQueenside = true
			default:
				return nil, errors.Wrapf(ErrInvalidFEN, "castling character %q", ch)
			}
		}
	}
	gs.castleLog = []CastlingRights{gs.castling}

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, errors.Wrap(ErrInvalidFEN, err.Error())
		}
		gs.enPassant = sq
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, errors.Wrapf(ErrInvalidFEN, "halfmove clock %q", fields[4])
		}
		gs.halfmoveClock = n
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, errors.Wrapf(ErrInvalidFEN, "fullmove number %q", fields[5])
		}
		gs.fullmoveNumber = n
	}

	if err := gs.validate(); err != nil {
		return nil, errors.Wrap(ErrInvalidFEN, err.Error())
	}
	return gs, nil
}

// validate collects every structural problem of a freshly parsed position.
func (gs *GameState) validate() error {
	var result *multierror.Error

	var kings [2]int
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := gs.board[row][col]
			switch p.Kind() {
			case King:
				kings[p.Color()]++
			case Pawn:
				if row == 0 || row == 7 {
					result = multierror.Append(result, fmt.Errorf("pawn on back rank %s", Sq(row, col)))
				}
			}
		}
	}
	for _, c := range []Color{White, Black} {
		if kings[c] != 1 {
			result = multierror.Append(result, fmt.Errorf("%s has %d kings", c, kings[c]))
		}
	}

	for _, c := range []Color{White, Black} {
		row := homeRow(c)
		if (gs.castling.Kingside(c) || gs.castling.Queenside(c)) && gs.board[row][4] != PieceOf(c, King) {
			result = multierror.Append(result, fmt.Errorf("%s may castle but its king is not on %s", c, Sq(row, 4)))
		}
		if gs.castling.Kingside(c) && gs.board[row][7] != PieceOf(c, Rook) {
			result = multierror.Append(result, fmt.Errorf("%s may castle kingside without a rook on %s", c, Sq(row, 7)))
		}
		if gs.castling.Queenside(c) && gs.board[row][0] != PieceOf(c, Rook) {
			result = multierror.Append(result, fmt.Errorf("%s may castle queenside without a rook on %s", c, Sq(row, 0)))
		}
	}

	if gs.enPassant != NoSquare {
		// The target sits behind a pawn of the side that just moved.
		want := 2
		if gs.sideToMove == Black {
			want = 5
		}
		mover := gs.sideToMove.Other()
		pawnSq := Sq(gs.enPassant.Row+pawnDir(mover), gs.enPassant.Col)
		if gs.enPassant.Row != want || gs.PieceAt(pawnSq) != PieceOf(mover, Pawn) || gs.board.At(gs.enPassant) != NoPiece {
			result = multierror.Append(result, fmt.Errorf("en passant square %s does not follow a double pawn push", gs.enPassant))
		}
	}

	if kings[White] == 1 && kings[Black] == 1 && gs.attackedBy(gs.kings[gs.sideToMove.Other()], gs.sideToMove) {
		result = multierror.Append(result, fmt.Errorf("%s king is in check with %s to move", gs.sideToMove.Other(), gs.sideToMove))
	}

	return result.ErrorOrNil()
}

// FEN renders the position as a FEN string.
func (gs *GameState) FEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := gs.board[row][col]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	// 2. Side to move
	if gs.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	// 3. Castling rights, 4. en passant square
	sb.WriteString(gs.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(gs.enPassant.String())

	// 5. Halfmove clock, 6. fullmove number
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(gs.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(gs.fullmoveNumber))
	return sb.String()
}
