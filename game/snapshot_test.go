package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestLoadSnapshot(t *testing.T) {
	t.Run("reading the opening", func(t *testing.T) {
		s := load(t, InitialBoard, Jaguar)

		require.Equal(t, InitialDogs, s.Dogs())
		require.Equal(t, vertex(t, 3, 3), s.JaguarPos())
		require.Equal(t, Jaguar, s.ToMove())
		require.Equal(t, Coord{Row: 7, Col: 5}, board.Bounds())
	})

	t.Run("writing back the same text", func(t *testing.T) {
		for _, snapshot := range []string{InitialBoard, chain, looseMidpoint, trapped} {
			require.Equal(t, snapshot, load(t, snapshot, Dog).FormatSnapshot())
		}
	})

	t.Run("round trip through random games", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		s := opening(t)
		for ply := 0; ply < 60 && !s.IsTerminal(); ply++ {
			moves := s.LegalMoves()
			if len(moves) == 0 {
				break
			}
			s = s.Play(moves[rng.Intn(len(moves))])

			back := NewState(board)
			require.NoError(t, back.LoadSnapshot(s.FormatSnapshot(), s.ToMove()))
			require.Equal(t, s, back)
		}
	})

	t.Run("accepting CRLF line endings", func(t *testing.T) {
		s := load(t, strings.ReplaceAll(InitialBoard, "\n", "\r\n"), Dog)

		require.Equal(t, InitialBoard, s.FormatSnapshot())
		require.Equal(t, Dog, s.ToMove())
	})

	t.Run("rejecting bad boards", func(t *testing.T) {
		cases := map[string]string{
			"missing rows":    "#######\n#ccccc#\n",
			"unknown glyph":   strings.Replace(InitialBoard, "#ccocc#", "#ccxcc#", 1),
			"two jaguars":     strings.Replace(InitialBoard, "#ccocc#", "#cooco#", 1),
			"piece on a hole": strings.Replace(InitialBoard, "# --- #", "#c--- #", 1),
			"position twice":  strings.Replace(InitialBoard, "#ccccc#\n#ccocc#", "#ccccc#cc\n#ccocc#", 1),
			"empty":           "",
			"short row":       strings.Replace(InitialBoard, "#-----#\n# --- #", "#---\n# --- #", 1),
		}
		for name, snapshot := range cases {
			s := opening(t)

			err := s.LoadSnapshot(snapshot, Jaguar)

			require.ErrorIs(t, err, ErrMalformedBoard, name)
			require.Equal(t, InitialBoard, s.FormatSnapshot(), "%s: a failed load should leave the state alone", name)
		}
	})

	t.Run("rejecting a non-side to move", func(t *testing.T) {
		err := NewState(board).LoadSnapshot(InitialBoard, Empty)

		require.ErrorIs(t, err, ErrUnknownSide)
	})

	t.Run("a board without a jaguar", func(t *testing.T) {
		s := load(t, strings.Replace(InitialBoard, "#ccocc#", "#cc-cc#", 1), Dog)

		require.Equal(t, NoVertex, s.JaguarPos())
		require.Equal(t, Dog, s.Winner(), "No jaguar means no jaguar move")
	})
}

func TestParseTurnMessage(t *testing.T) {
	t.Run("splitting side, previous move and board", func(t *testing.T) {
		msg, err := ParseTurnMessage("c\no m 3 3 4 3\n" + InitialBoard)

		require.NoError(t, err)
		require.Equal(t, Dog, msg.Side)
		require.Equal(t, "o m 3 3 4 3", msg.LastMove)
		require.Equal(t, InitialBoard, msg.Board)
	})

	t.Run("the first turn has no previous move", func(t *testing.T) {
		msg, err := ParseTurnMessage("o\n\n" + InitialBoard)

		require.NoError(t, err)
		require.Equal(t, Jaguar, msg.Side)
		require.Empty(t, msg.LastMove)
	})

	t.Run("padding around the side glyph is ignored", func(t *testing.T) {
		msg, err := ParseTurnMessage(" c \n\n" + InitialBoard)

		require.NoError(t, err)
		require.Equal(t, Dog, msg.Side)
	})

	t.Run("rejecting broken messages", func(t *testing.T) {
		_, err := ParseTurnMessage("o\n")
		require.ErrorIs(t, err, ErrMalformedBoard)

		_, err = ParseTurnMessage("\n\n" + InitialBoard)
		require.ErrorIs(t, err, ErrUnknownSide)

		_, err = ParseTurnMessage("x\n\n" + InitialBoard)
		require.ErrorIs(t, err, ErrUnknownSide)

		_, err = ParseTurnMessage("ox\n\n" + InitialBoard)
		require.ErrorIs(t, err, ErrUnknownSide, "The whole side line must be one glyph")
	})
}

func TestNewGame(t *testing.T) {
	s, err := NewGame(board)
	require.NoError(t, err)
	require.Equal(t, InitialBoard, s.FormatSnapshot())

	small, err := buildFrom(t, "0\n1 4\n*--*\n", DefaultLimits)
	require.NoError(t, err)
	_, err = NewGame(small)
	require.ErrorIs(t, err, ErrMalformedBoard, "The opening only fits the standard board")
}
