package chessmg

// undoInfo keeps the scalar state a move overwrites so UndoMove can put it back.
type undoInfo struct {
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
}

// GameState owns the board and everything needed to play on it.
//
// A GameState is a single mutable resource. Search and legality probing
// mutate it in place and must pair every ApplyMove with one UndoMove before
// returning to their caller. It is not safe for concurrent use; give each
// goroutine its own Clone.
type GameState struct {
	board      Board
	sideToMove Color

	// King squares are updated on every king move and never found by scanning.
	kings [2]Square

	enPassant Square
	castling  CastlingRights

	checkmate bool
	stalemate bool

	halfmoveClock  int
	fullmoveNumber int

	moveLog   []Move
	undoLog   []undoInfo
	castleLog []CastlingRights // len(castleLog) == len(moveLog)+1
}

// NewGameState returns the standard starting position with White to move.
func NewGameState() *GameState {
	gs := &GameState{
		board:          StartingBoard(),
		sideToMove:     White,
		kings:          [2]Square{Sq(7, 4), Sq(0, 4)},
		enPassant:      NoSquare,
		castling:       AllCastlingRights,
		fullmoveNumber: 1,
	}
	gs.castleLog = []CastlingRights{gs.castling}
	return gs
}

// Clone returns an independent deep copy, logs included.
func (gs *GameState) Clone() *GameState {
	c := *gs
	c.moveLog = append([]Move(nil), gs.moveLog...)
	c.undoLog = append([]undoInfo(nil), gs.undoLog...)
	c.castleLog = append([]CastlingRights(nil), gs.castleLog...)
	return &c
}

// Board returns a copy of the grid.
func (gs *GameState) Board() Board { return gs.board }

// PieceAt returns the piece on s, or NoPiece when s is off the board.
func (gs *GameState) PieceAt(s Square) Piece {
	if !s.OnBoard() {
		return NoPiece
	}
	return gs.board.At(s)
}

// SideToMove reports which side is to play.
func (gs *GameState) SideToMove() Color { return gs.sideToMove }

// WhiteToMove is true when it is White's turn.
func (gs *GameState) WhiteToMove() bool { return gs.sideToMove == White }

// KingSquare returns the cached king location of c.
func (gs *GameState) KingSquare(c Color) Square { return gs.kings[c] }

// EnPassant returns the current en passant target square or NoSquare.
func (gs *GameState) EnPassant() Square { return gs.enPassant }

// CastlingRights returns the current rights.
func (gs *GameState) CastlingRights() CastlingRights { return gs.castling }

// IsCheckmate is set by the last LegalMoves call.
func (gs *GameState) IsCheckmate() bool { return gs.checkmate }

// IsStalemate is set by the last LegalMoves call.
func (gs *GameState) IsStalemate() bool { return gs.stalemate }

// HalfmoveClock counts plies since the last capture or pawn move.
func (gs *GameState) HalfmoveClock() int { return gs.halfmoveClock }

// FullmoveNumber starts at 1 and increments after Black's move.
func (gs *GameState) FullmoveNumber() int { return gs.fullmoveNumber }

// MoveLog returns a copy of the applied moves, oldest first.
func (gs *GameState) MoveLog() []Move { return append([]Move(nil), gs.moveLog...) }

// LastMove returns the most recent move, if any.
func (gs *GameState) LastMove() (Move, bool) {
	if len(gs.moveLog) == 0 {
		return NoMove, false
	}
	return gs.moveLog[len(gs.moveLog)-1], true
}

// Ply is the number of moves applied since the state was created.
func (gs *GameState) Ply() int { return len(gs.moveLog) }

// Status summarises the position from the side to move's point of view.
type Status uint8

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// Status combines the terminal flags of the last LegalMoves call with a
// fresh check test.
func (gs *GameState) Status() Status {
	switch {
	case gs.checkmate:
		return Checkmate
	case gs.stalemate:
		return Stalemate
	case gs.InCheck():
		return Check
	}
	return Ongoing
}
