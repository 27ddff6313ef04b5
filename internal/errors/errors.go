// Package errors provides sentinel errors and error types for the rules
// engine. It defines the conditions under which a move or promotion is
// refused and a wrapper type that keeps the move context while allowing
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a destination outside the piece's legal set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNotPlayersTurn indicates a move by the side not on move.
	ErrNotPlayersTurn = errors.New("not player's turn")

	// ErrGameOver indicates the game has already ended.
	ErrGameOver = errors.New("game already over")

	// ErrInvalidSquare indicates coordinates outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrPromotionNotEligible indicates a promotion request for a piece
	// that is not a pawn standing on its last rank.
	ErrPromotionNotEligible = errors.New("promotion not eligible")

	// ErrPromotionPending indicates a move attempted while a pawn still
	// waits to be promoted.
	ErrPromotionPending = errors.New("promotion pending")

	// ErrInvalidPromotion indicates a promotion to a kind other than
	// knight, bishop, rook or queen.
	ErrInvalidPromotion = errors.New("invalid promotion kind")

	// ErrPieceNotOnBoard indicates a piece that is not live on this board.
	ErrPieceNotOnBoard = errors.New("piece not on board")

	// ErrInvalidPosition indicates a piece set that cannot form a board.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the piece being moved and
// the requested destination. It implements the error interface and
// supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Op     string // "move", "branch" or "promote"
	Piece  string // Piece kind, e.g. "Knight" (if known)
	Colour string // Colour of the piece (if known)
	From   string // Source square, e.g. "g1" (if known)
	To     string // Destination or promotion kind (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}

	if e.Colour != "" || e.Piece != "" {
		parts = append(parts, strings.TrimSpace(e.Colour+" "+e.Piece))
	}

	if e.From != "" && e.To != "" {
		parts = append(parts, fmt.Sprintf("%s-%s", e.From, e.To))
	} else if e.From != "" {
		parts = append(parts, e.From)
	} else if e.To != "" {
		parts = append(parts, e.To)
	}

	context := strings.Join(parts, " ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
