package engine

import (
	"context"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// RootMove is one legal move from a position, with the branch it leads to.
type RootMove struct {
	Piece *chess.Piece
	To    chess.Square
	Board *Board // Position after the move; promotions are made to a queen
}

// Label returns the move as "e2e4".
func (m RootMove) Label() string {
	return m.Piece.Square.String() + m.To.String()
}

// RootMoves returns every legal move of the side to move, each applied to
// its own branch. Moves are ordered by label so output is stable.
func RootMoves(b *Board) []RootMove {
	if b.gameOver || b.promotionPending {
		return nil
	}
	var moves []RootMove
	for p, dests := range b.LegalMoves() {
		for _, to := range dests {
			child, err := b.Branch(p, to)
			if err != nil {
				// LegalMoves only offers moves Branch accepts.
				panic(err)
			}
			if child.promotionPending {
				if _, err := child.Promote(child.PromotablePawn(), chess.Queen); err != nil {
					panic(err)
				}
			}
			moves = append(moves, RootMove{Piece: p, To: to, Board: child})
		}
	}
	return sortByLabel(moves)
}

// Perft counts the move paths of the given length from the position.
// Each promotion counts once, as a promotion to a queen.
func Perft(b *Board, depth int) uint64 {
	n, _ := PerftContext(context.Background(), b, depth)
	return n
}

// PerftContext is Perft that gives up once ctx is done, returning 0 and
// ctx.Err(). The context is checked at every interior node.
func PerftContext(ctx context.Context, b *Board, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if b.gameOver || b.promotionPending {
		return 0, nil
	}
	if depth == 1 {
		var n uint64
		for _, dests := range b.LegalMoves() {
			n += uint64(len(dests))
		}
		return n, nil
	}
	var n uint64
	for _, m := range RootMoves(b) {
		c, err := PerftContext(ctx, m.Board, depth-1)
		if err != nil {
			return 0, err
		}
		n += c
	}
	return n, nil
}

// MoveCount is the number of move paths below one root move.
type MoveCount struct {
	Label string
	Nodes uint64
}

// Divide splits Perft(b, depth) by root move, in label order, on the
// calling goroutine. The counts sum to Perft(b, depth). A done ctx stops
// the count and its error is returned with no counts.
func Divide(ctx context.Context, b *Board, depth int) ([]MoveCount, error) {
	if depth <= 0 {
		return nil, nil
	}
	roots := RootMoves(b)
	out := make([]MoveCount, 0, len(roots))
	for _, m := range roots {
		n, err := PerftContext(ctx, m.Board, depth-1)
		if err != nil {
			return nil, err
		}
		out = append(out, MoveCount{Label: m.Label(), Nodes: n})
	}
	return out, nil
}

// sortByLabel orders moves by label. Labels are unique per position.
func sortByLabel(moves []RootMove) []RootMove {
	byLabel := make(map[string]RootMove, len(moves))
	labels := make([]string, 0, len(moves))
	for _, m := range moves {
		byLabel[m.Label()] = m
		labels = append(labels, m.Label())
	}
	slices.Sort(labels)
	sorted := make([]RootMove, 0, len(moves))
	for _, l := range labels {
		sorted = append(sorted, byLabel[l])
	}
	return sorted
}
