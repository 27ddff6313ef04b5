package engine

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// quiet is the logger handed to branches; hypothetical moves are not events.
var quiet log.Interface = &log.Logger{Handler: discard.New(), Level: log.FatalLevel}

// Copy creates a deep copy of the board. Every piece is a new instance
// carrying the same ID, so the copy shares nothing with b.
func (b *Board) Copy() *Board {
	c := *b
	c.pieces = make([]*chess.Piece, len(b.pieces))
	for i, p := range b.pieces {
		c.pieces[i] = p.Clone()
	}
	c.captured = make([]*chess.Piece, len(b.captured))
	for i, p := range b.captured {
		c.captured[i] = p.Clone()
	}
	return &c
}

// Branch returns a copy of the board with the move applied to the copy's
// instance of p. The board itself is never changed. The move is
// validated exactly as Move would validate it on b.
func (b *Board) Branch(p *chess.Piece, to chess.Square) (*Board, error) {
	if !b.owns(p) {
		return nil, moveError("branch", p, to, errors.ErrPieceNotOnBoard)
	}
	c := b.Copy()
	c.logger = quiet
	if _, err := c.Move(c.byID(p.ID), to); err != nil {
		if moveErr, ok := err.(*errors.MoveError); ok {
			moveErr.Op = "branch"
		}
		return nil, err
	}
	return c, nil
}

// Counterpart returns this board's instance of a piece from another board
// sharing its history, such as the source of a branch. It returns nil if
// the piece is not live here.
func (b *Board) Counterpart(p *chess.Piece) *chess.Piece {
	if p == nil {
		return nil
	}
	return b.byID(p.ID)
}
