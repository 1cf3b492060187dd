package chessmg

import (
	"math/rand"
	"testing"
)

// snapshot is everything apply/undo must restore.
type snapshot struct {
	board     Board
	side      Color
	kings     [2]Square
	enPassant Square
	castling  CastlingRights
	halfmove  int
	fullmove  int
	plies     int
	logLen    int
}

func takeSnapshot(gs *GameState) snapshot {
	return snapshot{
		board:     gs.board,
		side:      gs.sideToMove,
		kings:     gs.kings,
		enPassant: gs.enPassant,
		castling:  gs.castling,
		halfmove:  gs.halfmoveClock,
		fullmove:  gs.fullmoveNumber,
		plies:     len(gs.moveLog),
		logLen:    len(gs.castleLog),
	}
}

func playMoves(t *testing.T, gs *GameState, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, err := ParseMove(gs, s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		if _, ok := gs.TryMove(m.From, m.To, m.Promotion); !ok {
			t.Fatalf("move %s rejected in %s", s, gs.FEN())
		}
	}
}

func TestApplyUndoRoundTripRandomPlay(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	games := 40
	if testing.Short() {
		games = 8
	}
	for g := 0; g < games; g++ {
		gs := NewGameState()
		for ply := 0; ply < 80; ply++ {
			moves := gs.LegalMoves()
			if len(moves) == 0 {
				break
			}
			before := takeSnapshot(gs)
			beforeFEN := gs.FEN()
			for _, m := range moves {
				gs.ApplyMove(m)
				if len(gs.castleLog) != len(gs.moveLog)+1 {
					t.Fatalf("castle log out of step after %s: %d rights, %d moves", m, len(gs.castleLog), len(gs.moveLog))
				}
				if got := gs.board.At(gs.kings[White]); got != WhiteKing {
					t.Fatalf("white king cache %s holds %s after %s", gs.kings[White], got, m)
				}
				if got := gs.board.At(gs.kings[Black]); got != BlackKing {
					t.Fatalf("black king cache %s holds %s after %s", gs.kings[Black], got, m)
				}
				gs.UndoMove()
				if after := takeSnapshot(gs); after != before {
					t.Fatalf("game %d ply %d: %s did not round-trip from %s\nbefore %+v\nafter  %+v", g, ply, m, beforeFEN, before, after)
				}
			}
			gs.ApplyMove(moves[rng.Intn(len(moves))])
		}
	}
}

func TestUndoOnEmptyHistoryIsNoop(t *testing.T) {
	gs := NewGameState()
	before := takeSnapshot(gs)
	gs.UndoMove()
	if takeSnapshot(gs) != before {
		t.Fatalf("undo with no history changed the state")
	}
}

func TestEnPassantCapture(t *testing.T) {
	gs := NewGameState()
	playMoves(t, gs, "e2e4", "a7a6", "e4e5", "d7d5")

	if gs.EnPassant() != square(t, "d6") {
		t.Fatalf("expected en passant target d6, got %s", gs.EnPassant())
	}

	var ep Move
	for _, m := range gs.LegalMoves() {
		if m.IsEnPassant() {
			ep = m
		}
	}
	if ep.From != square(t, "e5") || ep.To != square(t, "d6") {
		t.Fatalf("expected e5d6 en passant, got %+v", ep)
	}

	gs.ApplyMove(ep)
	if gs.PieceAt(square(t, "d5")) != NoPiece {
		t.Fatalf("captured pawn still on d5")
	}
	if gs.PieceAt(square(t, "d6")) != WhitePawn {
		t.Fatalf("capturing pawn not on d6")
	}
	if gs.EnPassant() != NoSquare {
		t.Fatalf("en passant target should clear after the capture")
	}

	gs.UndoMove()
	if gs.PieceAt(square(t, "d5")) != BlackPawn || gs.PieceAt(square(t, "e5")) != WhitePawn || gs.PieceAt(square(t, "d6")) != NoPiece {
		t.Fatalf("undo did not restore the en passant position:\n%s", gs.board.String())
	}
	if gs.EnPassant() != square(t, "d6") {
		t.Fatalf("undo should restore the en passant target, got %s", gs.EnPassant())
	}
}

func TestEnPassantExpiresAfterOneMove(t *testing.T) {
	gs := NewGameState()
	playMoves(t, gs, "e2e4", "a7a6", "e4e5", "f7f5", "h2h3", "h7h6")

	for _, m := range gs.LegalMoves() {
		if m.IsEnPassant() {
			t.Fatalf("en passant %s offered one move too late", m)
		}
	}
}

func TestCastlingMovesRook(t *testing.T) {
	gs, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	m, ok := gs.TryMove(square(t, "e1"), square(t, "g1"), NoKind)
	if !ok || !m.IsCastle() {
		t.Fatalf("kingside castling rejected")
	}
	if gs.PieceAt(square(t, "f1")) != WhiteRook || gs.PieceAt(square(t, "h1")) != NoPiece {
		t.Fatalf("rook not relocated:\n%s", gs.board.String())
	}
	if gs.KingSquare(White) != square(t, "g1") {
		t.Fatalf("king cache not updated: %s", gs.KingSquare(White))
	}
	cr := gs.CastlingRights()
	if cr.WhiteKingside || cr.WhiteQueenside || !cr.BlackKingside || !cr.BlackQueenside {
		t.Fatalf("unexpected rights after white castled: %s", cr)
	}

	m, ok = gs.TryMove(square(t, "e8"), square(t, "c8"), NoKind)
	if !ok || !m.IsCastle() {
		t.Fatalf("queenside castling rejected")
	}
	if gs.PieceAt(square(t, "d8")) != BlackRook || gs.PieceAt(square(t, "a8")) != NoPiece {
		t.Fatalf("rook not relocated:\n%s", gs.board.String())
	}

	gs.UndoMove()
	gs.UndoMove()
	if gs.FEN() != "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1" {
		t.Fatalf("undo did not restore castling position: %s", gs.FEN())
	}
}

func TestCastlingRightsRevocation(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  CastlingRights
	}{
		{
			name:  "KingMove",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"e1e2"},
			want:  CastlingRights{BlackKingside: true, BlackQueenside: true},
		},
		{
			name:  "RookMove",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"h1h2", "a8a7"},
			want:  CastlingRights{WhiteQueenside: true, BlackKingside: true},
		},
		{
			name:  "RookCaptured",
			fen:   "r3k2r/8/8/8/8/8/6B1/R3K2R w KQkq - 0 1",
			moves: []string{"g2a8"},
			want:  CastlingRights{WhiteKingside: true, WhiteQueenside: true, BlackKingside: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			playMoves(t, gs, tt.moves...)
			if gs.CastlingRights() != tt.want {
				t.Fatalf("rights = %s, want %s", gs.CastlingRights(), tt.want)
			}
			for range tt.moves {
				gs.UndoMove()
			}
			if gs.CastlingRights() != AllCastlingRights {
				t.Fatalf("undo should restore all rights, got %s", gs.CastlingRights())
			}
		})
	}
}

func TestPromotion(t *testing.T) {
	gs, err := ParseFEN("8/P6k/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	m, ok := gs.TryMove(square(t, "a7"), square(t, "a8"), Rook)
	if !ok {
		t.Fatalf("promotion rejected")
	}
	if !m.IsPromotion() || m.Promotion != Rook {
		t.Fatalf("unexpected move %+v", m)
	}
	if gs.PieceAt(square(t, "a8")) != WhiteRook {
		t.Fatalf("expected a white rook on a8, got %s", gs.PieceAt(square(t, "a8")))
	}
	gs.UndoMove()
	if gs.PieceAt(square(t, "a7")) != WhitePawn || gs.PieceAt(square(t, "a8")) != NoPiece {
		t.Fatalf("undo did not restore the pawn")
	}

	m, ok = gs.TryMove(square(t, "a7"), square(t, "a8"), NoKind)
	if !ok || m.Promotion != Queen || gs.PieceAt(square(t, "a8")) != WhiteQueen {
		t.Fatalf("default promotion should be a queen, got %+v", m)
	}
}

func TestTryMoveRejectsIllegal(t *testing.T) {
	gs := NewGameState()
	before := takeSnapshot(gs)
	for _, pair := range [][2]string{{"e2", "e5"}, {"e1", "e2"}, {"e7", "e5"}, {"d4", "d5"}} {
		if _, ok := gs.TryMove(square(t, pair[0]), square(t, pair[1]), NoKind); ok {
			t.Fatalf("%s%s should be rejected", pair[0], pair[1])
		}
	}
	if _, ok := gs.TryMove(NoSquare, square(t, "e4"), NoKind); ok {
		t.Fatalf("off-board start square should be rejected")
	}
	if takeSnapshot(gs) != before {
		t.Fatalf("rejected moves changed the state")
	}
}

func TestClockCounters(t *testing.T) {
	gs := NewGameState()
	playMoves(t, gs, "g1f3", "g8f6", "f3g1")
	if gs.HalfmoveClock() != 3 || gs.FullmoveNumber() != 2 {
		t.Fatalf("clocks = %d/%d, want 3/2", gs.HalfmoveClock(), gs.FullmoveNumber())
	}
	playMoves(t, gs, "e7e5")
	if gs.HalfmoveClock() != 0 || gs.FullmoveNumber() != 3 {
		t.Fatalf("clocks = %d/%d, want 0/3", gs.HalfmoveClock(), gs.FullmoveNumber())
	}
}
