package engine

import (
	"github.com/apex/log"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveResult describes a successfully applied move.
type MoveResult struct {
	Piece    *chess.Piece // The piece that moved
	From     chess.Square
	To       chess.Square
	Captured *chess.Piece // Captured piece, nil if none
	Castled  bool         // True if the rook moved with the king
	Promote  bool         // True if the move left a pawn awaiting promotion
	Status   Status       // State after the move; InProgress while a promotion is pending
}

// Move applies a move of piece p to square to. It is the only way to
// change the position: the move must be one of p's legal destinations,
// p must belong to the side to move and the game must still be running.
// On success the turn passes to the other side and the game state is
// re-evaluated, unless the move left a pawn awaiting promotion, in which
// case evaluation waits for Promote.
func (b *Board) Move(p *chess.Piece, to chess.Square) (MoveResult, error) {
	if err := b.validateMove(p, to); err != nil {
		return MoveResult{}, moveError("move", p, to, err)
	}

	from := p.Square
	u := b.makeMove(p, to)
	if u.captured != nil {
		b.captured = append(b.captured, u.captured)
	}
	b.toMove = b.toMove.Opposite()
	b.promotionPending = b.CanPromote()
	if b.promotionPending {
		b.status = InProgress
	} else {
		b.evaluate()
	}

	res := MoveResult{
		Piece:    p,
		From:     from,
		To:       to,
		Captured: u.captured,
		Castled:  u.rook != nil,
		Promote:  b.promotionPending,
		Status:   b.status,
	}
	b.logMove(res)
	return res, nil
}

// validateMove checks every precondition of Move, in order of precedence.
func (b *Board) validateMove(p *chess.Piece, to chess.Square) error {
	switch {
	case b.gameOver:
		return errors.ErrGameOver
	case !to.Valid():
		return errors.ErrInvalidSquare
	case !b.owns(p):
		return errors.ErrPieceNotOnBoard
	case b.promotionPending:
		return errors.ErrPromotionPending
	case p.Colour != b.toMove:
		return errors.ErrNotPlayersTurn
	case !slices.Contains(b.LegalDestinations(p), to):
		return errors.ErrIllegalMove
	}
	return nil
}

// undo records what makeMove changed so unmakeMove can reverse it.
type undo struct {
	piece    *chess.Piece
	from     chess.Square
	eligible bool

	captured   *chess.Piece
	capturedAt int

	rook         *chess.Piece
	rookFrom     chess.Square
	rookEligible bool
}

// makeMove relocates p, removing any piece on to and moving the rook
// when the move is a castle. It touches only piece positions, flags and
// the live set; turn, captures and game state are left to the caller.
func (b *Board) makeMove(p *chess.Piece, to chess.Square) undo {
	u := undo{piece: p, from: p.Square, eligible: p.CastleEligible}

	if rook := b.castlingRookFor(p, to); rook != nil {
		u.rook = rook
		u.rookFrom = rook.Square
		u.rookEligible = rook.CastleEligible
		rook.Square = p.Square.Offset(0, sign(to.File-p.Square.File))
		rook.CastleEligible = false
	} else if target := b.at(to); target != nil && target != p {
		u.captured = target
		u.capturedAt = slices.Index(b.pieces, target)
		b.pieces = slices.Delete(b.pieces, u.capturedAt, u.capturedAt+1)
	}

	p.Square = to
	if p.Kind == chess.King || p.Kind == chess.Rook {
		p.CastleEligible = false
	}
	return u
}

// unmakeMove reverses a makeMove, restoring the live set in its original order.
func (b *Board) unmakeMove(u undo) {
	u.piece.Square = u.from
	u.piece.CastleEligible = u.eligible
	if u.rook != nil {
		u.rook.Square = u.rookFrom
		u.rook.CastleEligible = u.rookEligible
	}
	if u.captured != nil {
		b.pieces = slices.Insert(b.pieces, u.capturedAt, u.captured)
	}
}

// moveError wraps err with the context of the refused request.
func moveError(op string, p *chess.Piece, to chess.Square, err error) error {
	e := &errors.MoveError{Err: err, Op: op, To: to.String()}
	if p != nil {
		e.Piece = p.Kind.String()
		e.Colour = p.Colour.String()
		e.From = p.Square.String()
	}
	return e
}

func (b *Board) logMove(res MoveResult) {
	ctx := b.logger.WithFields(log.Fields{
		"piece": res.Piece.Kind.String(),
		"side":  res.Piece.Colour.String(),
		"from":  res.From.String(),
		"to":    res.To.String(),
	})
	if res.Captured != nil {
		ctx = ctx.WithField("captured", res.Captured.Kind.String())
	}
	if res.Castled {
		ctx = ctx.WithField("castled", true)
	}
	ctx.Debug("move applied")
}
