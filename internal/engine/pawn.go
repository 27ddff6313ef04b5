package engine

import (
	"github.com/apex/log"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// CanPromote returns true if any pawn stands on its last rank.
func (b *Board) CanPromote() bool {
	for _, p := range b.pieces {
		if promotable(p) {
			return true
		}
	}
	return false
}

// PromotablePawn returns the pawn awaiting promotion, or nil.
func (b *Board) PromotablePawn() *chess.Piece {
	for _, p := range b.pieces {
		if promotable(p) {
			return p
		}
	}
	return nil
}

func promotable(p *chess.Piece) bool {
	return p.Kind == chess.Pawn && p.Square.Rank == chess.PromotionRank(p.Colour)
}

// Promote replaces a pawn standing on its last rank with a new piece of
// the chosen kind, same colour and square, and returns the new piece.
// The pawn instance leaves the board, so a second call with it fails.
// Once no promotion is pending the game state is evaluated.
func (b *Board) Promote(pawn *chess.Piece, kind chess.Kind) (*chess.Piece, error) {
	if err := b.validatePromotion(pawn, kind); err != nil {
		e := &errors.MoveError{Err: err, Op: "promote", To: kind.String()}
		if pawn != nil {
			e.Piece = pawn.Kind.String()
			e.Colour = pawn.Colour.String()
			e.From = pawn.Square.String()
		}
		return nil, e
	}

	promoted := chess.NewPiece(b.newID(), kind, pawn.Colour, pawn.Square)
	promoted.CastleEligible = false
	for i, p := range b.pieces {
		if p == pawn {
			b.pieces[i] = promoted
			break
		}
	}

	b.logger.WithFields(log.Fields{
		"side":   promoted.Colour.String(),
		"square": promoted.Square.String(),
		"kind":   kind.String(),
	}).Debug("pawn promoted")

	b.promotionPending = b.CanPromote()
	if !b.promotionPending {
		b.evaluate()
	}
	return promoted, nil
}

func (b *Board) validatePromotion(pawn *chess.Piece, kind chess.Kind) error {
	switch {
	case b.gameOver:
		return errors.ErrGameOver
	case !b.owns(pawn) || !promotable(pawn):
		return errors.ErrPromotionNotEligible
	}
	switch kind {
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		return nil
	}
	return errors.ErrInvalidPromotion
}
