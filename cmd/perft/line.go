package main

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// parsedMove is a move label such as "e7e8q" split into its parts.
type parsedMove struct {
	from, to chess.Square
	promote  chess.Kind
}

// parseMove parses a coordinate move label. The promotion letter is
// optional and defaults to a queen.
func parseMove(label string) (parsedMove, error) {
	if len(label) != 4 && len(label) != 5 {
		return parsedMove{}, errors.Wrapf(errors.ErrInvalidSquare, "move %q", label)
	}
	from, ok := chess.ParseSquare(label[0:2])
	if !ok {
		return parsedMove{}, errors.Wrapf(errors.ErrInvalidSquare, "move %q", label)
	}
	to, ok := chess.ParseSquare(label[2:4])
	if !ok {
		return parsedMove{}, errors.Wrapf(errors.ErrInvalidSquare, "move %q", label)
	}

	m := parsedMove{from: from, to: to, promote: chess.Queen}
	if len(label) == 5 {
		k, ok := chess.KindFromLetter(label[4])
		if !ok || k == chess.Pawn || k == chess.King {
			return parsedMove{}, errors.Wrapf(errors.ErrInvalidPromotion, "move %q", label)
		}
		m.promote = k
	}
	return m, nil
}

// playLine plays each move of line on b in order, promoting where a move
// leaves a pawn on its last rank.
func playLine(b *engine.Board, line []string) error {
	for i, label := range line {
		m, err := parseMove(label)
		if err != nil {
			return err
		}
		p, err := b.LookAt(m.from.Rank, m.from.File)
		if err != nil {
			return errors.Wrapf(err, "move %d (%s)", i+1, label)
		}
		if p == nil {
			return errors.Wrapf(errors.ErrIllegalMove, "move %d (%s): %s is empty", i+1, label, m.from)
		}
		res, err := b.Move(p, m.to)
		if err != nil {
			return errors.Wrapf(err, "move %d (%s)", i+1, label)
		}
		if res.Promote {
			if _, err := b.Promote(b.PromotablePawn(), m.promote); err != nil {
				return errors.Wrapf(err, "move %d (%s)", i+1, label)
			}
		}
	}
	return nil
}
