package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// recordCastleRooks stores, per colour, the rooks the king may castle
// with: the nearest castle-eligible rook on the king's rank on each side,
// at least three files away. Later lookups go through these IDs only.
func (b *Board) recordCastleRooks() {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := b.King(colour)
		if king == nil || !king.CastleEligible {
			continue
		}
		var rooks castleRooks
		kingsideDist, queensideDist := chess.BoardSize, chess.BoardSize
		for _, p := range b.Pieces(colour) {
			if p.Kind != chess.Rook || !p.CastleEligible || p.Square.Rank != king.Square.Rank {
				continue
			}
			dist := p.Square.File - king.Square.File
			switch {
			case dist >= 3 && dist < kingsideDist:
				rooks.kingside, kingsideDist = p.ID, dist
			case dist <= -3 && -dist < queensideDist:
				rooks.queenside, queensideDist = p.ID, -dist
			}
		}
		b.rooks[colour] = rooks
	}
}

// castleRook returns the recorded rook on the given side of the king if
// it is still live, unmoved and on the king's rank.
func (b *Board) castleRook(king *chess.Piece, dir int) *chess.Piece {
	id := b.rooks[king.Colour].queenside
	if dir > 0 {
		id = b.rooks[king.Colour].kingside
	}
	rook := b.byID(id)
	if rook == nil || rook.Kind != chess.Rook || rook.Colour != king.Colour ||
		!rook.CastleEligible || rook.Square.Rank != king.Square.Rank {
		return nil
	}
	return rook
}

// castlingRays returns the castling destinations open to the king: two
// files towards a recorded rook. The king must not be in check, every
// square between king and rook must be empty and the square the king
// crosses must not be attacked. The landing square is left to the
// check-safety filter.
func (b *Board) castlingRays(king *chess.Piece) []chess.Ray {
	if !king.CastleEligible || b.IsInCheck(king.Colour) {
		return nil
	}
	var rays []chess.Ray
	for _, dir := range []int{1, -1} {
		rook := b.castleRook(king, dir)
		if rook == nil {
			continue
		}
		if !b.emptyBetween(king.Square, rook.Square) {
			continue
		}
		if b.IsSquareAttacked(king.Square.Offset(0, dir), king.Colour.Opposite()) {
			continue
		}
		rays = append(rays, chess.Ray{king.Square.Offset(0, 2*dir)})
	}
	return rays
}

// emptyBetween reports whether all squares strictly between two squares
// on the same rank are empty.
func (b *Board) emptyBetween(from, to chess.Square) bool {
	dir := sign(to.File - from.File)
	for sq := from.Offset(0, dir); sq != to; sq = sq.Offset(0, dir) {
		if b.at(sq) != nil {
			return false
		}
	}
	return true
}

// castlingRookFor returns the rook that moves with the king when the king
// travels from its square to to, or nil if the move is not a castle.
func (b *Board) castlingRookFor(king *chess.Piece, to chess.Square) *chess.Piece {
	if king.Kind != chess.King || !king.CastleEligible || to.Rank != king.Square.Rank {
		return nil
	}
	delta := to.File - king.Square.File
	if abs(delta) < 2 {
		return nil
	}
	rook := b.castleRook(king, sign(delta))
	if rook == nil || !b.emptyBetween(king.Square, rook.Square) {
		return nil
	}
	return rook
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
