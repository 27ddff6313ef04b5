// Package engine provides chess move validation and board manipulation.
package engine

import (
	"fmt"

	"github.com/apex/log"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Result is the outcome of a finished game.
type Result int

const (
	NoResult Result = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the string representation of a result.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// winner returns the result for a win by the given colour.
func winner(c chess.Colour) Result {
	if c == chess.White {
		return WhiteWins
	}
	return BlackWins
}

// castleRooks holds the IDs of the rooks a king may castle with.
// Zero means no rook on that side.
type castleRooks struct {
	kingside  int
	queenside int
}

// Board holds the live pieces and all game state.
// A Board is not safe for concurrent use; boards produced by Branch
// share nothing with their source and may be used independently.
type Board struct {
	pieces   []*chess.Piece
	toMove   chess.Colour
	captured []*chess.Piece

	gameOver         bool
	result           Result
	status           Status
	promotionPending bool

	// Rooks recorded per colour when the board was built.
	rooks [2]castleRooks

	nextID int
	logger log.Interface
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger used for move and game-state events.
func WithLogger(l log.Interface) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithToMove sets the side to move for a board built from pieces.
func WithToMove(c chess.Colour) Option {
	return func(b *Board) {
		b.toMove = c
	}
}

// backRank is the standard piece order from the a-file to the h-file.
var backRank = []chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// NewInitialBoard creates a board in the standard starting position.
func NewInitialBoard(opts ...Option) *Board {
	pieces := make([]*chess.Piece, 0, 32)
	id := 0
	add := func(kind chess.Kind, colour chess.Colour, sq chess.Square) {
		id++
		pieces = append(pieces, chess.NewPiece(id, kind, colour, sq))
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for file, kind := range backRank {
			add(kind, colour, chess.Sq(chess.BackRank(colour), file))
		}
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			add(chess.Pawn, colour, chess.Sq(chess.PawnStartRank(colour), file))
		}
	}

	b, err := NewBoardFromPieces(pieces, opts...)
	if err != nil {
		// The standard layout always validates.
		panic(err)
	}
	return b
}

// NewBoardFromPieces creates a board from a supplied piece set. The pieces
// are copied; IDs of zero are assigned fresh values. The set must hold
// exactly one king per colour, every piece on the board and no two pieces
// on the same square. The game state is evaluated for the side to move,
// so a supplied position may already be over.
func NewBoardFromPieces(pieces []*chess.Piece, opts ...Option) (*Board, error) {
	b := &Board{
		toMove: chess.White,
		logger: log.Log,
	}
	for _, opt := range opts {
		opt(b)
	}

	for _, p := range pieces {
		if p.ID > b.nextID {
			b.nextID = p.ID
		}
	}

	occupied := make(map[chess.Square]bool, len(pieces))
	ids := make(map[int]bool, len(pieces))
	kings := [2]int{}
	for _, src := range pieces {
		p := src.Clone()
		if !p.Square.Valid() {
			return nil, errors.Wrapf(errors.ErrInvalidPosition, "%s %s off the board at %s", p.Colour, p.Kind, p.Square)
		}
		if occupied[p.Square] {
			return nil, errors.Wrapf(errors.ErrInvalidPosition, "two pieces on %s", p.Square)
		}
		occupied[p.Square] = true
		if p.ID == 0 || ids[p.ID] {
			p.ID = b.newID()
		}
		ids[p.ID] = true
		if p.Kind == chess.King {
			kings[p.Colour]++
			p.Capturable = false
		}
		b.pieces = append(b.pieces, p)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			return nil, errors.Wrapf(errors.ErrInvalidPosition, "%s has %d kings", colour, kings[colour])
		}
	}

	b.recordCastleRooks()
	b.promotionPending = b.CanPromote()
	if !b.promotionPending {
		b.evaluate()
	}
	return b, nil
}

func (b *Board) newID() int {
	b.nextID++
	return b.nextID
}

// ToMove returns the side to move.
func (b *Board) ToMove() chess.Colour {
	return b.toMove
}

// Captured returns the captured pieces in capture order.
func (b *Board) Captured() []*chess.Piece {
	return slices.Clone(b.captured)
}

// GameOver reports whether the game has ended.
func (b *Board) GameOver() bool {
	return b.gameOver
}

// Result returns the game result, NoResult while the game is running.
func (b *Board) Result() Result {
	return b.result
}

// Status returns the state computed after the last move.
func (b *Board) Status() Status {
	return b.status
}

// PromotionPending reports whether a pawn waits to be promoted.
func (b *Board) PromotionPending() bool {
	return b.promotionPending
}

// LookAt returns the piece on the given square, or nil if it is empty.
func (b *Board) LookAt(rank, file int) (*chess.Piece, error) {
	sq := chess.Sq(rank, file)
	if !sq.Valid() {
		return nil, errors.Wrapf(errors.ErrInvalidSquare, "square %s", sq)
	}
	return b.at(sq), nil
}

// at returns the piece on sq, or nil. Off-board squares are empty.
func (b *Board) at(sq chess.Square) *chess.Piece {
	for _, p := range b.pieces {
		if p.Square == sq {
			return p
		}
	}
	return nil
}

// Pieces returns the live pieces of the given colour.
func (b *Board) Pieces(colour chess.Colour) []*chess.Piece {
	var out []*chess.Piece
	for _, p := range b.pieces {
		if p.Colour == colour {
			out = append(out, p)
		}
	}
	return out
}

// AllPieces returns every live piece.
func (b *Board) AllPieces() []*chess.Piece {
	return slices.Clone(b.pieces)
}

// King returns the king of the given colour, or nil.
func (b *Board) King(colour chess.Colour) *chess.Piece {
	for _, p := range b.pieces {
		if p.Kind == chess.King && p.Colour == colour {
			return p
		}
	}
	return nil
}

// byID returns the live piece with the given ID, or nil.
func (b *Board) byID(id int) *chess.Piece {
	if id == 0 {
		return nil
	}
	for _, p := range b.pieces {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// owns reports whether p is one of this board's live pieces.
func (b *Board) owns(p *chess.Piece) bool {
	return p != nil && slices.Contains(b.pieces, p)
}

// String renders the board with White at the bottom, for debugging.
func (b *Board) String() string {
	var out []byte
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		out = append(out, byte('1'+rank), ' ')
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			c := byte('.')
			if p := b.at(chess.Sq(rank, file)); p != nil {
				c = p.Kind.Letter()
				if p.Colour == chess.Black {
					c += 'a' - 'A'
				}
			}
			out = append(out, c)
		}
		out = append(out, '\n')
	}
	out = append(out, "  abcdefgh\n"...)
	return string(out) + fmt.Sprintf("%s to move\n", b.toMove)
}
