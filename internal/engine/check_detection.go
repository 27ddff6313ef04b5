package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
func (b *Board) IsInCheck(colour chess.Colour) bool {
	king := b.King(colour)
	if king == nil {
		return false // No king found
	}
	return b.IsSquareAttacked(king.Square, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour attacks sq.
// Attacks come from geometry and obstruction alone: they never consult
// legality, castling or check-safety, so this is safe to call from
// inside the legality filter.
func (b *Board) IsSquareAttacked(sq chess.Square, byColour chess.Colour) bool {
	for _, p := range b.pieces {
		if p.Colour != byColour {
			continue
		}
		if b.attacks(p, sq) {
			return true
		}
	}
	return false
}

// attacks reports whether p attacks target, scanning each attack ray
// until it leaves the board or meets the first occupied square.
func (b *Board) attacks(p *chess.Piece, target chess.Square) bool {
	for _, ray := range p.AttackRays() {
		for _, sq := range ray {
			if !sq.Valid() {
				break
			}
			if sq == target {
				return true
			}
			if b.at(sq) != nil {
				break // Blocked
			}
		}
	}
	return false
}

// Attackers returns the pieces of byColour attacking sq.
func (b *Board) Attackers(sq chess.Square, byColour chess.Colour) []*chess.Piece {
	var out []*chess.Piece
	for _, p := range b.pieces {
		if p.Colour == byColour && b.attacks(p, sq) {
			out = append(out, p)
		}
	}
	return out
}
