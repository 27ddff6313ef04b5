package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// PossibleDestinations returns the candidate rays for a piece before
// obstruction is resolved. Pawn pushes are cut at the first occupied
// square and pawn diagonals appear only onto capturable enemy pieces.
// A king's castling candidates are appended as one-square rays.
// A piece that is not live on this board has none.
func (b *Board) PossibleDestinations(p *chess.Piece) []chess.Ray {
	if !b.owns(p) {
		return nil
	}
	return b.possibleDestinations(p)
}

func (b *Board) possibleDestinations(p *chess.Piece) []chess.Ray {
	switch p.Kind {
	case chess.Pawn:
		return b.pawnDestinations(p)
	case chess.King:
		return append(p.Rays(), b.castlingRays(p)...)
	}
	return p.Rays()
}

// pawnDestinations applies the occupancy rules pawns move by.
func (b *Board) pawnDestinations(p *chess.Piece) []chess.Ray {
	var rays []chess.Ray

	var push chess.Ray
	for _, sq := range p.Rays()[0] {
		if !sq.Valid() || b.at(sq) != nil {
			break
		}
		push = append(push, sq)
	}
	if len(push) > 0 {
		rays = append(rays, push)
	}

	for _, ray := range p.AttackRays() {
		target := b.at(ray[0])
		if target != nil && target.Colour != p.Colour && target.Capturable {
			rays = append(rays, ray)
		}
	}
	return rays
}

// PseudoLegalDestinations resolves the rays of PossibleDestinations
// against the board: off-board squares are dropped, a friendly piece
// blocks its square and everything beyond, a capturable enemy is
// included and then blocks, a non-capturable enemy is excluded and blocks.
// The result is not filtered for leaving the mover's king attacked.
func (b *Board) PseudoLegalDestinations(p *chess.Piece) []chess.Square {
	if !b.owns(p) {
		return nil
	}
	return b.pseudoLegalDestinations(p)
}

func (b *Board) pseudoLegalDestinations(p *chess.Piece) []chess.Square {
	var out []chess.Square
	for _, ray := range b.possibleDestinations(p) {
		for _, sq := range ray {
			if !sq.Valid() {
				break
			}
			occupant := b.at(sq)
			if occupant == nil {
				out = append(out, sq)
				continue
			}
			if occupant.Colour != p.Colour && occupant.Capturable {
				out = append(out, sq)
			}
			break // Blocked
		}
	}
	return out
}

// LegalDestinations returns the squares the piece may move to: its
// pseudo-legal destinations that do not leave its own king attacked.
// Pieces of either colour may be queried regardless of whose turn it is.
func (b *Board) LegalDestinations(p *chess.Piece) []chess.Square {
	if !b.owns(p) {
		return nil
	}
	var out []chess.Square
	for _, to := range b.pseudoLegalDestinations(p) {
		if b.leavesKingSafe(p, to) {
			out = append(out, to)
		}
	}
	return out
}

// leavesKingSafe makes the move, tests the mover's king and unmakes it.
func (b *Board) leavesKingSafe(p *chess.Piece, to chess.Square) bool {
	u := b.makeMove(p, to)
	safe := !b.IsInCheck(p.Colour)
	b.unmakeMove(u)
	return safe
}

// LegalMoves returns every piece of the side to move that has at least
// one legal destination, mapped to those destinations.
func (b *Board) LegalMoves() map[*chess.Piece][]chess.Square {
	moves := make(map[*chess.Piece][]chess.Square)
	for _, p := range b.Pieces(b.toMove) {
		if dests := b.LegalDestinations(p); len(dests) > 0 {
			moves[p] = dests
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (b *Board) HasLegalMoves(colour chess.Colour) bool {
	for _, p := range b.Pieces(colour) {
		for _, to := range b.pseudoLegalDestinations(p) {
			if b.leavesKingSafe(p, to) {
				return true
			}
		}
	}
	return false
}
