// Package testutil provides shared test utilities for the rules engine.
// These utilities build fixture positions and compare results so that
// package tests stay short and consistent.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// InitialFEN is the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var kindByLetter = map[byte]chess.Kind{
	'P': chess.Pawn,
	'N': chess.Knight,
	'B': chess.Bishop,
	'R': chess.Rook,
	'Q': chess.Queen,
	'K': chess.King,
}

// PiecesFromFEN reads the placement, side-to-move and castling fields of a
// FEN string into a piece set. Kings and rooks are castle-eligible only
// when the castling field names their side; missing fields default to
// White to move and no castling. This is a fixture reader for tests, not
// a full FEN parser: en passant and the clocks are ignored.
func PiecesFromFEN(fen string) ([]*chess.Piece, chess.Colour, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, chess.White, fmt.Errorf("empty FEN")
	}
	rows := strings.Split(fields[0], "/")
	if len(rows) != chess.BoardSize {
		return nil, chess.White, fmt.Errorf("FEN placement has %d ranks, want %d", len(rows), chess.BoardSize)
	}

	toMove := chess.White
	if len(fields) > 1 && fields[1] == "b" {
		toMove = chess.Black
	}
	castling := "-"
	if len(fields) > 2 {
		castling = fields[2]
	}

	var pieces []*chess.Piece
	for i, row := range rows {
		rank := chess.LastRank - i
		file := chess.FirstFile
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			colour := chess.White
			upper := c
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
				upper = c - ('a' - 'A')
			}
			kind, ok := kindByLetter[upper]
			if !ok {
				return nil, chess.White, fmt.Errorf("unknown piece %q in FEN", c)
			}
			sq := chess.Sq(rank, file)
			p := chess.NewPiece(0, kind, colour, sq)
			p.CastleEligible = castleEligible(kind, colour, sq, castling)
			pieces = append(pieces, p)
			file++
		}
		if file != chess.BoardSize {
			return nil, chess.White, fmt.Errorf("FEN rank %d has %d files", rank+1, file)
		}
	}
	return pieces, toMove, nil
}

// castleEligible applies the castling field to a king or rook on its
// standard square.
func castleEligible(kind chess.Kind, colour chess.Colour, sq chess.Square, castling string) bool {
	kingside, queenside := "K", "Q"
	if colour == chess.Black {
		kingside, queenside = "k", "q"
	}
	if sq.Rank != chess.BackRank(colour) {
		return false
	}
	switch kind {
	case chess.King:
		return sq.File == 4 && (strings.Contains(castling, kingside) || strings.Contains(castling, queenside))
	case chess.Rook:
		return (sq.File == chess.LastFile && strings.Contains(castling, kingside)) ||
			(sq.File == chess.FirstFile && strings.Contains(castling, queenside))
	}
	return false
}

// MustBoard builds an engine board from a FEN fixture.
// It calls t.Fatal if the fixture or the resulting position is invalid.
func MustBoard(t testing.TB, fen string, opts ...engine.Option) *engine.Board {
	t.Helper()
	pieces, toMove, err := PiecesFromFEN(fen)
	if err != nil {
		t.Fatalf("PiecesFromFEN(%q): %v", fen, err)
	}
	opts = append([]engine.Option{engine.WithToMove(toMove)}, opts...)
	b, err := engine.NewBoardFromPieces(pieces, opts...)
	if err != nil {
		t.Fatalf("NewBoardFromPieces(%q): %v", fen, err)
	}
	return b
}

// MustLookAt returns the piece on a square given as "e4".
// It calls t.Fatal if the square is malformed or empty.
func MustLookAt(t testing.TB, b *engine.Board, square string) *chess.Piece {
	t.Helper()
	sq := MustSquare(t, square)
	p, err := b.LookAt(sq.Rank, sq.File)
	if err != nil {
		t.Fatalf("LookAt(%s): %v", square, err)
	}
	if p == nil {
		t.Fatalf("LookAt(%s) = nil, want a piece\n%s", square, b)
	}
	return p
}

// MustSquare parses a square given as "e4".
func MustSquare(t testing.TB, square string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(square)
	if !ok {
		t.Fatalf("malformed square %q", square)
	}
	return sq
}

// Squares parses a list of squares given as "e4", ignoring malformed ones.
func Squares(squares ...string) []chess.Square {
	out := make([]chess.Square, 0, len(squares))
	for _, s := range squares {
		if sq, ok := chess.ParseSquare(s); ok {
			out = append(out, sq)
		}
	}
	return out
}

// SquareNames renders squares as sorted names, for stable comparisons.
func SquareNames(squares []chess.Square) []string {
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.String())
	}
	slices.Sort(names)
	return names
}
