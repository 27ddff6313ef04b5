package engine

import (
	"github.com/apex/log"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Status is the state of the game for the side to move.
type Status int

const (
	InProgress Status = iota
	Check
	Checkmate
	Stalemate
	DrawMaterial
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"InProgress", "Check", "Checkmate", "Stalemate", "DrawMaterial"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Terminal reports whether the status ends the game.
func (s Status) Terminal() bool {
	return s == Checkmate || s == Stalemate || s == DrawMaterial
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func (b *Board) IsCheckmate() bool {
	return b.IsInCheck(b.toMove) && !b.HasLegalMoves(b.toMove)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func (b *Board) IsStalemate() bool {
	return !b.IsInCheck(b.toMove) && !b.HasLegalMoves(b.toMove)
}

// evaluate recomputes status, game-over and result for the side to move.
// A side with no legal move is mated or stalemated; otherwise the game is
// drawn once neither side has mating material.
func (b *Board) evaluate() {
	inCheck := b.IsInCheck(b.toMove)

	switch {
	case !b.HasLegalMoves(b.toMove):
		if inCheck {
			b.finish(Checkmate, winner(b.toMove.Opposite()))
		} else {
			b.finish(Stalemate, Draw)
		}
	case HasInsufficientMaterial(b):
		b.finish(DrawMaterial, Draw)
	case inCheck:
		b.status = Check
	default:
		b.status = InProgress
	}
}

// finish moves the board into a terminal state. Terminal states are sticky.
func (b *Board) finish(status Status, result Result) {
	b.status = status
	b.gameOver = true
	b.result = result
	b.logger.WithFields(log.Fields{
		"status": status.String(),
		"result": result.String(),
	}).Info("game over")
}

// HasInsufficientMaterial returns true if neither side can mate: no
// pawn, rook or queen remains and each side has at most a king and one
// minor piece.
func HasInsufficientMaterial(b *Board) bool {
	counts := [2]int{}
	for _, p := range b.pieces {
		switch p.Kind {
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}
		counts[p.Colour]++
	}
	return counts[chess.White] < 3 && counts[chess.Black] < 3
}
