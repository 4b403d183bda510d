package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatMove(t *testing.T) {
	t.Run("step and jump chain", func(t *testing.T) {
		step, err := FormatMove(board, NewStep(Jaguar, vertex(t, 3, 3), vertex(t, 4, 3)))
		require.NoError(t, err)
		require.Equal(t, "o m 3 3 4 3", step)

		dog, err := FormatMove(board, NewStep(Dog, vertex(t, 6, 3), vertex(t, 7, 3)))
		require.NoError(t, err)
		require.Equal(t, "c m 6 3 7 3", dog)

		jump, err := FormatMove(board, NewJump(vertex(t, 5, 3), vertex(t, 3, 3), vertex(t, 1, 3)))
		require.NoError(t, err)
		require.Equal(t, "o s 2 5 3 3 3 1 3", jump)
	})

	t.Run("refusing moves that cannot be written", func(t *testing.T) {
		_, err := FormatMove(board, NewStep(Empty, 0, 1))
		require.ErrorIs(t, err, ErrUnknownSide)

		_, err = FormatMove(board, Move{Side: Jaguar, Kind: Jump, Path: []int{0}})
		require.ErrorIs(t, err, ErrMalformedMove)

		_, err = FormatMove(board, Move{Side: Dog, Kind: Step, Path: []int{0, 1, 2}})
		require.ErrorIs(t, err, ErrMalformedMove)

		_, err = FormatMove(board, NewStep(Dog, 0, board.Len()))
		require.ErrorIs(t, err, ErrUnknownCoord)

		_, err = FormatMove(board, Move{Side: Dog, Kind: Kind(7), Path: []int{0, 1}})
		require.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("null moves", func(t *testing.T) {
		require.Equal(t, "o n", NullMove(Jaguar))
		require.Equal(t, "c n", NullMove(Dog))
	})
}

func TestParseMove(t *testing.T) {
	t.Run("reading what FormatMove writes", func(t *testing.T) {
		for _, m := range []Move{
			NewStep(Jaguar, vertex(t, 3, 3), vertex(t, 4, 4)),
			NewStep(Dog, vertex(t, 7, 5), vertex(t, 7, 3)),
			NewJump(vertex(t, 5, 3), vertex(t, 3, 3)),
			NewJump(vertex(t, 5, 3), vertex(t, 3, 3), vertex(t, 1, 3)),
		} {
			text, err := FormatMove(board, m)
			require.NoError(t, err)

			got, err := ParseMove(board, text)

			require.NoError(t, err)
			require.True(t, got.Equal(m), "%q decoded to %v", text, got)
		}
	})

	t.Run("reading back every legal move of random games", func(t *testing.T) {
		for _, s := range playouts(t, 5, 10, 60) {
			for _, side := range []Piece{Jaguar, Dog} {
				s = s.Copy()
				s.SetToMove(side)
				for _, m := range s.LegalMoves() {
					text, err := FormatMove(board, m)
					require.NoError(t, err)

					got, err := ParseMove(board, text)

					require.NoError(t, err)
					require.True(t, got.Equal(m), "%q decoded to %v", text, got)
				}
			}
		}
	})

	t.Run("tolerating extra whitespace", func(t *testing.T) {
		got, err := ParseMove(board, "  c   m 3 1\t4 1 \n")

		require.NoError(t, err)
		require.True(t, got.Equal(NewStep(Dog, vertex(t, 3, 1), vertex(t, 4, 1))))
	})

	t.Run("reporting the null move", func(t *testing.T) {
		got, err := ParseMove(board, "c n")

		require.ErrorIs(t, err, ErrNullMove)
		require.Equal(t, Dog, got.Side)
		require.Empty(t, got.Path)
	})

	t.Run("rejecting malformed text", func(t *testing.T) {
		cases := []struct {
			text string
			err  error
		}{
			{"", ErrMalformedMove},
			{"o", ErrMalformedMove},
			{"x m 3 3 4 3", ErrUnknownSide},
			{"oo m 3 3 4 3", ErrUnknownSide},
			{"o q 3 3 4 3", ErrUnknownKind},
			{"o mm 3 3 4 3", ErrUnknownKind},
			{"o m 3 3", ErrMalformedMove},
			{"o m 3 3 4 3 5 3", ErrMalformedMove},
			{"o m a 3 4 3", ErrMalformedMove},
			{"o m 3 3 9 9", ErrUnknownCoord},
			{"o m 6 1 5 1", ErrUnknownCoord},
			{"o s", ErrMalformedMove},
			{"o s x 5 3 3 3", ErrMalformedMove},
			{"o s 0 5 3", ErrMalformedMove},
			{"o s 2 5 3 3 3", ErrMalformedMove},
			{"o n 3 3", ErrMalformedMove},
		}
		for _, c := range cases {
			_, err := ParseMove(board, c.text)

			require.ErrorIs(t, err, c.err, "text %q", c.text)
			var perr *ParseError
			require.ErrorAs(t, err, &perr, "text %q", c.text)
			require.Equal(t, c.text, perr.Input)
		}
	})

	t.Run("describing what went wrong", func(t *testing.T) {
		_, err := ParseMove(board, "o m 1 1")

		require.EqualError(t, err, `parse "o m 1 1": malformed move: want 2 coordinates, got 2 numbers`)
	})
}

func TestParseSide(t *testing.T) {
	side, err := ParseSide("o")
	require.NoError(t, err)
	require.Equal(t, Jaguar, side)

	side, err = ParseSide("c")
	require.NoError(t, err)
	require.Equal(t, Dog, side)

	_, err = ParseSide("-")
	require.ErrorIs(t, err, ErrUnknownSide)
}
