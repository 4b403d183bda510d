package game

import (
	"fmt"
	"strings"
)

// Bounds returns the largest row and column used by any vertex.
func (g *Graph) Bounds() Coord {
	var b Coord
	for _, v := range g.vertices {
		b.Row = max(b.Row, v.Coord.Row)
		b.Col = max(b.Col, v.Coord.Col)
	}
	return b
}

// LoadSnapshot replaces the position with a controller board and gives the
// move to side. In the board text '#' resets the column, a newline advances
// the row and every other byte advances the column; bytes landing on a vertex
// must be one of "o", "c" or "-". On error s is left unchanged.
func (s *State) LoadSnapshot(board string, side Piece) error {
	if !side.IsSide() {
		return &ParseError{Err: ErrUnknownSide, Input: side.String()}
	}

	g := s.graph
	cells := make([]Piece, g.Len())
	seen := make([]bool, g.Len())
	covered, jaguars := 0, 0

	row, col := 0, 0
	for i := 0; i < len(board); i++ {
		ch := board[i]
		switch ch {
		case GlyphBorder:
			col = 0
			continue
		case '\n':
			row++
			col = 0
			continue
		case '\r':
			continue
		}
		col++

		v, ok := g.IndexOf(Coord{Row: row, Col: col})
		if !ok {
			if ch == GlyphJaguar || ch == GlyphDog {
				return parseErrorf(ErrMalformedBoard, board, "piece %q off the board at (%d,%d)", ch, row, col)
			}
			continue
		}
		if seen[v] {
			return parseErrorf(ErrMalformedBoard, board, "position (%d,%d) given twice", row, col)
		}

		switch ch {
		case GlyphJaguar:
			cells[v] = Jaguar
			jaguars++
		case GlyphDog:
			cells[v] = Dog
		case GlyphEmpty:
			cells[v] = Empty
		default:
			return parseErrorf(ErrMalformedBoard, board, "unexpected %q at (%d,%d)", ch, row, col)
		}
		seen[v] = true
		covered++
	}

	if covered != g.Len() {
		return parseErrorf(ErrMalformedBoard, board, "covers %d of %d positions", covered, g.Len())
	}
	if jaguars > 1 {
		return parseErrorf(ErrMalformedBoard, board, "%d jaguars", jaguars)
	}

	s.Reset()
	for v, p := range cells {
		if p != Empty {
			s.Place(v, p)
		}
	}
	s.toMove = side
	return nil
}

// FormatSnapshot renders the position as a controller board, framed by '#'
// with blanks where the grid has no vertex.
func (s *State) FormatSnapshot() string {
	g := s.graph
	b := g.Bounds()

	var sb strings.Builder
	for row := 0; row <= b.Row+1; row++ {
		for col := 0; col <= b.Col+1; col++ {
			if row == 0 || row == b.Row+1 || col == 0 || col == b.Col+1 {
				sb.WriteByte(GlyphBorder)
				continue
			}
			v, ok := g.IndexOf(Coord{Row: row, Col: col})
			if !ok {
				sb.WriteByte(' ')
				continue
			}
			switch s.cells[v] {
			case Jaguar:
				sb.WriteByte(GlyphJaguar)
			case Dog:
				sb.WriteByte(GlyphDog)
			default:
				sb.WriteByte(GlyphEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TurnMessage is what the match controller sends a player each turn.
type TurnMessage struct {
	Side     Piece  // side expected to move
	LastMove string // the opponent's previous move text, possibly empty
	Board    string
}

// ParseTurnMessage splits "<side>\n<previous move>\n<board>".
func ParseTurnMessage(msg string) (TurnMessage, error) {
	parts := strings.SplitN(msg, "\n", 3)
	if len(parts) != 3 {
		return TurnMessage{}, parseErrorf(ErrMalformedBoard, msg, "want side, previous move and board lines")
	}

	sideText := strings.TrimSpace(parts[0])
	if sideText == "" {
		return TurnMessage{}, parseErrorf(ErrUnknownSide, msg, "empty side line")
	}
	side, err := ParseSide(sideText)
	if err != nil {
		return TurnMessage{}, fmt.Errorf("turn message: %w", err)
	}

	return TurnMessage{
		Side:     side,
		LastMove: strings.TrimSpace(parts[1]),
		Board:    parts[2],
	}, nil
}

// InitialBoard is the opening position on the default board: the jaguar in
// the centre and fourteen dogs filling the top rows.
const InitialBoard = "#######\n" +
	"#ccccc#\n" +
	"#ccccc#\n" +
	"#ccocc#\n" +
	"#-----#\n" +
	"#-----#\n" +
	"# --- #\n" +
	"#- - -#\n" +
	"#######\n"

// NewGame returns the opening position over g with the jaguar to move. g must
// be the default board or share its coordinates.
func NewGame(g *Graph) (*State, error) {
	s := NewState(g)
	if err := s.LoadSnapshot(InitialBoard, Jaguar); err != nil {
		return nil, fmt.Errorf("initial board: %w", err)
	}
	return s, nil
}
