package chessmg

import (
	"errors"
	"testing"
)

func square(t *testing.T, coord string) Square {
	t.Helper()
	sq, err := ParseSquare(coord)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", coord, err)
	}
	return sq
}

func TestNewGameState(t *testing.T) {
	gs := NewGameState()

	pieces := 0
	b := gs.Board()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if b[row][col] != NoPiece {
				pieces++
			}
		}
	}
	if pieces != 32 {
		t.Fatalf("expected 32 pieces, got %d", pieces)
	}
	if !gs.WhiteToMove() {
		t.Fatalf("expected White to move")
	}
	if gs.CastlingRights() != AllCastlingRights {
		t.Fatalf("expected all castling rights, got %s", gs.CastlingRights())
	}
	if gs.EnPassant() != NoSquare {
		t.Fatalf("expected no en passant target, got %s", gs.EnPassant())
	}
	if gs.KingSquare(White) != square(t, "e1") || gs.KingSquare(Black) != square(t, "e8") {
		t.Fatalf("unexpected king squares %s %s", gs.KingSquare(White), gs.KingSquare(Black))
	}
	if gs.FEN() != FENStartPos {
		t.Fatalf("FEN mismatch: got %q want %q", gs.FEN(), FENStartPos)
	}

	moves := gs.LegalMoves()
	if len(moves) != 20 {
		t.Fatalf("expected 20 legal moves, got %d", len(moves))
	}
	var pawns, knights int
	for _, m := range moves {
		switch m.Piece.Kind() {
		case Pawn:
			pawns++
		case Knight:
			knights++
		default:
			t.Fatalf("unexpected mover in %s: %s", m, m.Piece)
		}
	}
	if pawns != 16 || knights != 4 {
		t.Fatalf("expected 16 pawn and 4 knight moves, got %d and %d", pawns, knights)
	}
	if gs.IsCheckmate() || gs.IsStalemate() || gs.Status() != Ongoing {
		t.Fatalf("fresh game should be ongoing, got %s", gs.Status())
	}
}

func TestSquareCoordinates(t *testing.T) {
	tests := []struct {
		coord string
		want  Square
	}{
		{"a8", Sq(0, 0)},
		{"h1", Sq(7, 7)},
		{"e4", Sq(4, 4)},
		{"d7", Sq(1, 3)},
	}
	for _, tt := range tests {
		got := square(t, tt.coord)
		if got != tt.want {
			t.Fatalf("ParseSquare(%q) = %v, want %v", tt.coord, got, tt.want)
		}
		if got.String() != tt.coord {
			t.Fatalf("String() = %q, want %q", got.String(), tt.coord)
		}
	}

	for _, bad := range []string{"", "i1", "a9", "e", "e44"} {
		if _, err := ParseSquare(bad); !errors.Is(err, ErrInvalidSquare) {
			t.Fatalf("ParseSquare(%q): expected ErrInvalidSquare, got %v", bad, err)
		}
	}
}

func TestPieceCodes(t *testing.T) {
	if WhiteKing.String() != "wK" || BlackPawn.String() != "bp" || NoPiece.String() != "--" {
		t.Fatalf("unexpected piece codes %s %s %s", WhiteKing, BlackPawn, NoPiece)
	}
	if PieceOf(Black, Queen) != BlackQueen || BlackQueen.Kind() != Queen || BlackQueen.Color() != Black {
		t.Fatalf("PieceOf/Kind/Color disagree for black queen")
	}
}

func TestNewMoveSnapshot(t *testing.T) {
	gs, err := ParseFEN("4k3/1P6/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	b := gs.Board()

	ep := NewMove(square(t, "e5"), square(t, "d6"), &b, NoKind, FlagEnPassant)
	if ep.Captured != BlackPawn {
		t.Fatalf("en passant should capture a black pawn, got %s", ep.Captured)
	}
	if !ep.IsEnPassant() || ep.IsPromotion() {
		t.Fatalf("unexpected flags on %s", ep)
	}

	promo := NewMove(square(t, "b7"), square(t, "b8"), &b, NoKind, FlagNone)
	if !promo.IsPromotion() || promo.Promotion != Queen {
		t.Fatalf("expected default queen promotion, got %+v", promo)
	}
	if promo.String() != "b7b8q" {
		t.Fatalf("String() = %q", promo.String())
	}
	under := NewMove(square(t, "b7"), square(t, "b8"), &b, Knight, FlagNone)
	if under.Promotion != Knight || under.String() != "b7b8n" {
		t.Fatalf("expected knight promotion, got %+v", under)
	}
	if !under.Equal(promo) {
		t.Fatalf("moves with the same squares should be equal")
	}
}

func TestParseMove(t *testing.T) {
	gs := NewGameState()
	m, err := ParseMove(gs, "g1f3")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m.Piece != WhiteKnight || m.From != square(t, "g1") || m.To != square(t, "f3") {
		t.Fatalf("unexpected move %+v", m)
	}
	for _, bad := range []string{"g1", "g1f9", "e7e8x", "zz11"} {
		if _, err := ParseMove(gs, bad); err == nil {
			t.Fatalf("ParseMove(%q) should fail", bad)
		}
	}
}
