// Package oracle runs independent chess move generators against a FEN so the
// home-grown generator can be cross-checked. Every oracle follows the same
// convention as chessmg: a promotion is only explored as a queen promotion.
package oracle

import (
	"fmt"
	"sort"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

// Oracle is an external move generator.
type Oracle interface {
	Name() string
	// Perft counts leaf nodes to depth, queen promotions only.
	Perft(fen string, depth int) (uint64, error)
	// Moves lists the legal moves as sorted from-to coordinates ("e2e4"),
	// with the four promotions of one pawn push folded into one entry.
	Moves(fen string) ([]string, error)
}

// All returns every available oracle.
func All() []Oracle {
	return []Oracle{Dragontooth{}, Goose{}, Notnil{}}
}

func sortedSet(set map[string]struct{}) []string {
	keys := maps.Keys(set)
	sort.Strings(keys)
	return keys
}

// Dragontooth wraps github.com/dylhunn/dragontoothmg.
type Dragontooth struct{}

func (Dragontooth) Name() string { return "dragontoothmg" }

func (Dragontooth) parse(fen string) (b dragontoothmg.Board, err error) {
	// ParseFen panics on malformed input instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("dragontoothmg: parse %q: %v", fen, r)
		}
	}()
	return dragontoothmg.ParseFen(fen), nil
}

func (d Dragontooth) Perft(fen string, depth int) (uint64, error) {
	b, err := d.parse(fen)
	if err != nil {
		return 0, err
	}
	return dragontoothPerft(&b, depth), nil
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	var nodes uint64
	for i := range moves {
		if p := moves[i].Promote(); p != 0 && p != dragontoothmg.Queen {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		undo := b.Apply(moves[i])
		nodes += dragontoothPerft(b, depth-1)
		undo()
	}
	return nodes
}

func (d Dragontooth) Moves(fen string) ([]string, error) {
	b, err := d.parse(fen)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{})
	moves := b.GenerateLegalMoves()
	for i := range moves {
		set[moves[i].String()[:4]] = struct{}{}
	}
	return sortedSet(set), nil
}

// Goose wraps the published GooseEngineMG move generator.
type Goose struct{}

func (Goose) Name() string { return "goosemg" }

func goosePromotionAllowed(m goosemg.Move) bool {
	p := m.PromotionPiece()
	return p == goosemg.NoPiece || p == goosemg.WhiteQueen || p == goosemg.BlackQueen
}

func (Goose) Perft(fen string, depth int) (uint64, error) {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return 0, errors.Wrap(err, "goosemg")
	}
	return goosePerft(b, depth), nil
}

func goosePerft(b *goosemg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateMoves() {
		if !goosePromotionAllowed(m) {
			continue
		}
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		nodes += goosePerft(b, depth-1)
		b.UnmakeMove(m, st)
	}
	return nodes
}

func (Goose) Moves(fen string) ([]string, error) {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, errors.Wrap(err, "goosemg")
	}
	set := make(map[string]struct{})
	for _, m := range b.GenerateMoves() {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		b.UnmakeMove(m, st)
		set[m.String()[:4]] = struct{}{}
	}
	return sortedSet(set), nil
}

// Notnil wraps github.com/notnil/chess.
type Notnil struct{}

func (Notnil) Name() string { return "notnil/chess" }

func notnilPosition(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, errors.Wrap(err, "notnil/chess")
	}
	return chess.NewGame(opt).Position(), nil
}

func (Notnil) Perft(fen string, depth int) (uint64, error) {
	pos, err := notnilPosition(fen)
	if err != nil {
		return 0, err
	}
	return notnilPerft(pos, depth), nil
}

func notnilPerft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range pos.ValidMoves() {
		if p := m.Promo(); p != chess.NoPieceType && p != chess.Queen {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += notnilPerft(pos.Update(m), depth-1)
	}
	return nodes
}

func (Notnil) Moves(fen string) ([]string, error) {
	pos, err := notnilPosition(fen)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{})
	for _, m := range pos.ValidMoves() {
		set[m.String()[:4]] = struct{}{}
	}
	return sortedSet(set), nil
}

// MoveDiff lists the moves only one side generated.
type MoveDiff struct {
	Missing []string // generated by the oracle only
	Extra   []string // generated by chessmg only
}

func (d *MoveDiff) String() string {
	return fmt.Sprintf("missing %v, extra %v", d.Missing, d.Extra)
}

// Compare diffs our from-to strings against an oracle's sorted list. It
// returns nil when both sets agree.
func Compare(ours, theirs []string) *MoveDiff {
	mine := make(map[string]struct{}, len(ours))
	for _, s := range ours {
		mine[s] = struct{}{}
	}
	other := make(map[string]struct{}, len(theirs))
	for _, s := range theirs {
		other[s] = struct{}{}
	}
	d := &MoveDiff{}
	for _, s := range sortedSet(other) {
		if _, ok := mine[s]; !ok {
			d.Missing = append(d.Missing, s)
		}
	}
	for _, s := range sortedSet(mine) {
		if _, ok := other[s]; !ok {
			d.Extra = append(d.Extra, s)
		}
	}
	if len(d.Missing) == 0 && len(d.Extra) == 0 {
		return nil
	}
	return d
}

// Mismatch describes a perft disagreement.
type Mismatch struct {
	Oracle string
	Want   uint64
	Got    uint64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %d, chessmg: %d", m.Oracle, m.Want, m.Got)
}
