package engine_test

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// TestNewInitialBoard tests creating a standard initial board
func TestNewInitialBoard(t *testing.T) {
	b := engine.NewInitialBoard()

	if b.ToMove() != chess.White {
		t.Errorf("NewInitialBoard().ToMove() = %v, want White", b.ToMove())
	}
	if b.GameOver() {
		t.Error("NewInitialBoard().GameOver() = true, want false")
	}
	if got := b.Status(); got != engine.InProgress {
		t.Errorf("NewInitialBoard().Status() = %v, want InProgress", got)
	}
	if len(b.Captured()) != 0 {
		t.Errorf("NewInitialBoard().Captured() = %v, want empty", b.Captured())
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		pieces := b.Pieces(colour)
		if len(pieces) != 16 {
			t.Errorf("%s has %d pieces, want 16", colour, len(pieces))
		}
		counts := map[chess.Kind]int{}
		for _, p := range pieces {
			counts[p.Kind]++
		}
		want := map[chess.Kind]int{
			chess.Pawn: 8, chess.Knight: 2, chess.Bishop: 2,
			chess.Rook: 2, chess.Queen: 1, chess.King: 1,
		}
		testutil.AssertEqual(t, counts, want, "%s material", colour)

		king := b.King(colour)
		testutil.AssertEqual(t, king.Square, chess.Sq(chess.BackRank(colour), 4), "%s king square", colour)
		testutil.AssertFalse(t, king.Capturable, "%s king capturable", colour)
		testutil.AssertTrue(t, king.CastleEligible, "%s king castle-eligible", colour)
	}
}

func TestSetupInitialPosition(t *testing.T) {
	b := engine.NewInitialBoard()

	tests := []struct {
		square string
		kind   chess.Kind
		colour chess.Colour
	}{
		{"a1", chess.Rook, chess.White},
		{"b1", chess.Knight, chess.White},
		{"c1", chess.Bishop, chess.White},
		{"d1", chess.Queen, chess.White},
		{"e1", chess.King, chess.White},
		{"h1", chess.Rook, chess.White},
		{"e2", chess.Pawn, chess.White},
		{"e7", chess.Pawn, chess.Black},
		{"a8", chess.Rook, chess.Black},
		{"d8", chess.Queen, chess.Black},
		{"e8", chess.King, chess.Black},
		{"g8", chess.Knight, chess.Black},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			p := testutil.MustLookAt(t, b, tt.square)
			if p.Kind != tt.kind || p.Colour != tt.colour {
				t.Errorf("LookAt(%s) = %s %s, want %s %s", tt.square, p.Colour, p.Kind, tt.colour, tt.kind)
			}
		})
	}

	for rank := 2; rank <= 5; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p, err := b.LookAt(rank, file)
			testutil.AssertNoError(t, err)
			if p != nil {
				t.Errorf("LookAt(%d, %d) = %s, want empty", rank, file, p)
			}
		}
	}
}

func TestLookAt_InvalidSquare(t *testing.T) {
	b := engine.NewInitialBoard()

	for _, sq := range []chess.Square{{Rank: -1, File: 0}, {Rank: 8, File: 0}, {Rank: 0, File: 8}, {Rank: 3, File: -2}} {
		p, err := b.LookAt(sq.Rank, sq.File)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidSquare, "LookAt(%d, %d)", sq.Rank, sq.File)
		if p != nil {
			t.Errorf("LookAt(%d, %d) = %s, want nil", sq.Rank, sq.File, p)
		}
	}
}

func TestNewBoardFromPieces_Invalid(t *testing.T) {
	king := func(c chess.Colour, sq chess.Square) *chess.Piece {
		return chess.NewPiece(0, chess.King, c, sq)
	}

	tests := []struct {
		name   string
		pieces []*chess.Piece
	}{
		{"no kings", nil},
		{"missing black king", []*chess.Piece{king(chess.White, chess.Sq(0, 4))}},
		{"two white kings", []*chess.Piece{
			king(chess.White, chess.Sq(0, 4)),
			king(chess.White, chess.Sq(0, 0)),
			king(chess.Black, chess.Sq(7, 4)),
		}},
		{"overlapping squares", []*chess.Piece{
			king(chess.White, chess.Sq(0, 4)),
			king(chess.Black, chess.Sq(7, 4)),
			chess.NewPiece(0, chess.Rook, chess.White, chess.Sq(7, 4)),
		}},
		{"off the board", []*chess.Piece{
			king(chess.White, chess.Sq(0, 4)),
			king(chess.Black, chess.Sq(8, 4)),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.NewBoardFromPieces(tt.pieces)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidPosition)
		})
	}
}

func TestNewBoardFromPieces_CopiesPieces(t *testing.T) {
	pieces, _, err := testutil.PiecesFromFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)

	b, err := engine.NewBoardFromPieces(pieces)
	testutil.AssertNoError(t, err)

	pawn := testutil.MustLookAt(t, b, "e2")
	for _, p := range pieces {
		if p == pawn {
			t.Fatal("board shares a piece instance with the supplied set")
		}
	}
	if pawn.ID == 0 {
		t.Error("pawn.ID = 0, want a fresh ID")
	}

	pieces[0].Square = chess.Sq(5, 5)
	testutil.AssertEqual(t, len(b.AllPieces()), 3)
	testutil.AssertEqual(t, testutil.MustLookAt(t, b, "e8").Kind, chess.King)
}

// TestMove_EndToEnd pushes the king's pawn two squares from the start.
func TestMove_EndToEnd(t *testing.T) {
	b := engine.NewInitialBoard()
	pawn, err := b.LookAt(1, 4)
	testutil.AssertNoError(t, err)

	res, err := b.Move(pawn, chess.Sq(3, 4))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, b.ToMove(), chess.Black)
	testutil.AssertEqual(t, len(b.Captured()), 0)
	testutil.AssertEqual(t, res.From, chess.Sq(1, 4))
	testutil.AssertEqual(t, res.To, chess.Sq(3, 4))
	testutil.AssertTrue(t, res.Captured == nil, "no capture")
	testutil.AssertEqual(t, res.Status, engine.InProgress)

	moved, err := b.LookAt(3, 4)
	testutil.AssertNoError(t, err)
	if moved == nil || moved.Kind != chess.Pawn || moved.Colour != chess.White {
		t.Fatalf("LookAt(3, 4) = %v, want White Pawn", moved)
	}
	empty, err := b.LookAt(1, 4)
	testutil.AssertNoError(t, err)
	if empty != nil {
		t.Errorf("LookAt(1, 4) = %s, want nil", empty)
	}
}

func TestMove_Capture(t *testing.T) {
	b := testutil.MustBoard(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	pawn := testutil.MustLookAt(t, b, "e4")
	victim := testutil.MustLookAt(t, b, "d5")

	res, err := b.Move(pawn, testutil.MustSquare(t, "d5"))
	testutil.AssertNoError(t, err)

	if res.Captured != victim {
		t.Errorf("res.Captured = %v, want %v", res.Captured, victim)
	}
	captured := b.Captured()
	if len(captured) != 1 || captured[0] != victim {
		t.Errorf("Captured() = %v, want [%v]", captured, victim)
	}
	testutil.AssertEqual(t, len(b.Pieces(chess.Black)), 1)
	testutil.AssertEqual(t, testutil.MustLookAt(t, b, "d5").Colour, chess.White)
}

func TestMove_Errors(t *testing.T) {
	t.Run("not players turn", func(t *testing.T) {
		b := engine.NewInitialBoard()
		_, err := b.Move(testutil.MustLookAt(t, b, "e7"), testutil.MustSquare(t, "e5"))
		testutil.AssertErrorIs(t, err, errors.ErrNotPlayersTurn)
	})

	t.Run("illegal destination", func(t *testing.T) {
		b := engine.NewInitialBoard()
		_, err := b.Move(testutil.MustLookAt(t, b, "e2"), testutil.MustSquare(t, "e5"))
		testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	})

	t.Run("capture own piece", func(t *testing.T) {
		b := engine.NewInitialBoard()
		_, err := b.Move(testutil.MustLookAt(t, b, "a1"), testutil.MustSquare(t, "a2"))
		testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	})

	t.Run("capture the king", func(t *testing.T) {
		b := testutil.MustBoard(t, "4k3/8/8/8/4R3/8/8/K7 w - - 0 1")
		_, err := b.Move(testutil.MustLookAt(t, b, "e4"), testutil.MustSquare(t, "e8"))
		testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	})

	t.Run("invalid square", func(t *testing.T) {
		b := engine.NewInitialBoard()
		_, err := b.Move(testutil.MustLookAt(t, b, "e2"), chess.Sq(8, 4))
		testutil.AssertErrorIs(t, err, errors.ErrInvalidSquare)
	})

	t.Run("piece from another board", func(t *testing.T) {
		b := engine.NewInitialBoard()
		other := engine.NewInitialBoard()
		_, err := b.Move(testutil.MustLookAt(t, other, "e2"), testutil.MustSquare(t, "e4"))
		testutil.AssertErrorIs(t, err, errors.ErrPieceNotOnBoard)
	})

	t.Run("nil piece", func(t *testing.T) {
		b := engine.NewInitialBoard()
		_, err := b.Move(nil, testutil.MustSquare(t, "e4"))
		testutil.AssertErrorIs(t, err, errors.ErrPieceNotOnBoard)
	})

	t.Run("refused move leaves board unchanged", func(t *testing.T) {
		b := engine.NewInitialBoard()
		pawn := testutil.MustLookAt(t, b, "e2")
		_, err := b.Move(pawn, testutil.MustSquare(t, "e5"))
		testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
		testutil.AssertEqual(t, pawn.Square, testutil.MustSquare(t, "e2"))
		testutil.AssertEqual(t, b.ToMove(), chess.White)
	})
}

func TestMove_ErrorContext(t *testing.T) {
	b := engine.NewInitialBoard()
	_, err := b.Move(testutil.MustLookAt(t, b, "g1"), testutil.MustSquare(t, "g3"))

	var moveErr *errors.MoveError
	if !asMoveError(err, &moveErr) {
		t.Fatalf("Move() error = %T, want *errors.MoveError", err)
	}
	testutil.AssertEqual(t, moveErr.Piece, "Knight")
	testutil.AssertEqual(t, moveErr.From, "g1")
	testutil.AssertEqual(t, moveErr.To, "g3")
	testutil.AssertEqual(t, moveErr.Op, "move")
}

func asMoveError(err error, target **errors.MoveError) bool {
	e, ok := err.(*errors.MoveError)
	if ok {
		*target = e
	}
	return ok
}

func TestMove_TurnAlternates(t *testing.T) {
	b := engine.NewInitialBoard()
	moves := [][2]string{{"g1", "f3"}, {"g8", "f6"}, {"f3", "g1"}, {"f6", "g8"}}
	want := chess.White
	for _, m := range moves {
		testutil.AssertEqual(t, b.ToMove(), want, "before %s-%s", m[0], m[1])
		_, err := b.Move(testutil.MustLookAt(t, b, m[0]), testutil.MustSquare(t, m[1]))
		testutil.AssertNoError(t, err, "%s-%s", m[0], m[1])
		want = want.Opposite()
	}
	testutil.AssertEqual(t, b.ToMove(), chess.White)
}
