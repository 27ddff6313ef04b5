// Package chess provides core chess types: colours, piece kinds, squares
// and the per-kind movement geometry of a piece.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// KindFromLetter maps a piece letter of either case to its kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return NumKinds, false
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Constants for board dimensions.
const (
	BoardSize = 8
	FirstRank = 0
	LastRank  = BoardSize - 1
	FirstFile = 0
	LastFile  = BoardSize - 1
)

// Square is a (rank, file) coordinate. Rank 0 is White's back rank and
// file 0 is the a-file.
type Square struct {
	Rank int
	File int
}

// Sq is shorthand for Square{Rank: rank, File: file}.
func Sq(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Rank >= FirstRank && s.Rank <= LastRank && s.File >= FirstFile && s.File <= LastFile
}

// Offset returns the square dr ranks and df files away. The result may be
// off the board.
func (s Square) Offset(dr, df int) Square {
	return Square{Rank: s.Rank + dr, File: s.File + df}
}

// String renders the square as "e4". Off-board squares print as (r,f).
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Rank, s.File)
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare parses a square name such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return Square{}, false
	}
	sq := Square{Rank: int(s[1]) - '1', File: int(s[0]) - 'a'}
	return sq, sq.Valid()
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PawnStartRank returns the rank pawns of the colour start on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return FirstRank + 1
	}
	return LastRank - 1
}

// PromotionRank returns the last rank for pawns of the colour.
func PromotionRank(colour Colour) int {
	if colour == White {
		return LastRank
	}
	return FirstRank
}

// BackRank returns the rank the colour's pieces start on.
func BackRank(colour Colour) int {
	if colour == White {
		return FirstRank
	}
	return LastRank
}
