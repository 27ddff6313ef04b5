package chess

import "fmt"

// Ray is an ordered run of squares leading away from a piece, nearest
// first. Leaping pieces produce one-square rays.
type Ray []Square

// Piece is a single chess piece. Position is an attribute of the piece;
// a board owns the set of live pieces.
type Piece struct {
	ID             int
	Kind           Kind
	Colour         Colour
	Square         Square
	Capturable     bool
	CastleEligible bool
}

// NewPiece creates a piece with the default flags for its kind: kings are
// not capturable, and kings and rooks start castle-eligible.
func NewPiece(id int, kind Kind, colour Colour, sq Square) *Piece {
	return &Piece{
		ID:             id,
		Kind:           kind,
		Colour:         colour,
		Square:         sq,
		Capturable:     kind != King,
		CastleEligible: kind == King || kind == Rook,
	}
}

// Clone returns an independent copy of the piece.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// String returns e.g. "White Knight g1".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s %s", p.Colour, p.Kind, p.Square)
}

var (
	knightOffsets = [][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets   = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	diagonalDirs  = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	straightDirs  = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	queenDirs     = append(append([][2]int{}, straightDirs...), diagonalDirs...)
)

// Rays returns the unobstructed movement geometry of the piece from its
// current square. Sliding rays stop at the board edge; leaper rays may
// name off-board squares, which callers discard. A pawn yields its push
// ray only (one step, or two from its start rank); captures come from
// AttackRays. Castling is not geometry and is not included.
func (p *Piece) Rays() []Ray {
	switch p.Kind {
	case Pawn:
		dir := ColourOffset(p.Colour)
		push := Ray{p.Square.Offset(dir, 0)}
		if p.Square.Rank == PawnStartRank(p.Colour) {
			push = append(push, p.Square.Offset(2*dir, 0))
		}
		return []Ray{push}
	case Knight:
		return leaperRays(p.Square, knightOffsets)
	case Bishop:
		return slidingRays(p.Square, diagonalDirs)
	case Rook:
		return slidingRays(p.Square, straightDirs)
	case Queen:
		return slidingRays(p.Square, queenDirs)
	case King:
		return leaperRays(p.Square, kingOffsets)
	}
	return nil
}

// AttackRays returns the squares the piece attacks, as rays. It differs
// from Rays only for pawns, which attack their two forward diagonals.
func (p *Piece) AttackRays() []Ray {
	if p.Kind != Pawn {
		return p.Rays()
	}
	dir := ColourOffset(p.Colour)
	return []Ray{
		{p.Square.Offset(dir, -1)},
		{p.Square.Offset(dir, 1)},
	}
}

func leaperRays(from Square, offsets [][2]int) []Ray {
	rays := make([]Ray, 0, len(offsets))
	for _, o := range offsets {
		rays = append(rays, Ray{from.Offset(o[0], o[1])})
	}
	return rays
}

func slidingRays(from Square, dirs [][2]int) []Ray {
	rays := make([]Ray, 0, len(dirs))
	for _, d := range dirs {
		var ray Ray
		for sq := from.Offset(d[0], d[1]); sq.Valid(); sq = sq.Offset(d[0], d[1]) {
			ray = append(ray, sq)
		}
		rays = append(rays, ray)
	}
	return rays
}
