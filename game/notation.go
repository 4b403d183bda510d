package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Controller glyphs.
const (
	GlyphJaguar = 'o'
	GlyphDog    = 'c'
	GlyphEmpty  = '-'
	GlyphBorder = '#'

	GlyphStep = 'm'
	GlyphJump = 's'
	GlyphNull = 'n'
)

// SideGlyph returns the controller glyph of a side.
func SideGlyph(side Piece) (byte, bool) {
	switch side {
	case Jaguar:
		return GlyphJaguar, true
	case Dog:
		return GlyphDog, true
	default:
		return 0, false
	}
}

// ParseSide decodes a side glyph.
func ParseSide(text string) (Piece, error) {
	if len(text) == 1 {
		switch text[0] {
		case GlyphJaguar:
			return Jaguar, nil
		case GlyphDog:
			return Dog, nil
		}
	}
	return Empty, &ParseError{Err: ErrUnknownSide, Input: text}
}

// NullMove is the reply of a side with nothing to play.
func NullMove(side Piece) string {
	glyph, ok := SideGlyph(side)
	if !ok {
		glyph = '?'
	}
	return fmt.Sprintf("%c %c", glyph, GlyphNull)
}

// FormatMove renders m as controller text: "<side> m r c r c" for a step and
// "<side> s <hops> r c ... r c" for a jump chain.
func FormatMove(g *Graph, m Move) (string, error) {
	glyph, ok := SideGlyph(m.Side)
	if !ok {
		return "", fmt.Errorf("format move: %w: %v", ErrUnknownSide, m.Side)
	}
	if len(m.Path) < 2 {
		return "", fmt.Errorf("format move: %w: path of %d vertices", ErrMalformedMove, len(m.Path))
	}

	var sb strings.Builder
	switch m.Kind {
	case Step:
		if len(m.Path) != 2 {
			return "", fmt.Errorf("format move: %w: step with %d vertices", ErrMalformedMove, len(m.Path))
		}
		fmt.Fprintf(&sb, "%c %c", glyph, GlyphStep)
	case Jump:
		fmt.Fprintf(&sb, "%c %c %d", glyph, GlyphJump, m.Hops())
	default:
		return "", fmt.Errorf("format move: %w: %v", ErrUnknownKind, m.Kind)
	}

	for _, v := range m.Path {
		if !g.Valid(v) {
			return "", fmt.Errorf("format move: %w: vertex %d", ErrUnknownCoord, v)
		}
		c := g.Coord(v)
		fmt.Fprintf(&sb, " %d %d", c.Row, c.Col)
	}
	return sb.String(), nil
}

// ParseMove decodes controller move text against g. A null move yields
// ErrNullMove.
func ParseMove(g *Graph, text string) (Move, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return Move{}, parseErrorf(ErrMalformedMove, text, "expected side and kind")
	}

	side, err := ParseSide(fields[0])
	if err != nil {
		return Move{}, &ParseError{Err: ErrUnknownSide, Input: text, Detail: fmt.Sprintf("side %q", fields[0])}
	}
	if len(fields[1]) != 1 {
		return Move{}, parseErrorf(ErrUnknownKind, text, "kind %q", fields[1])
	}

	var kind Kind
	positions := 2
	rest := fields[2:]
	switch fields[1][0] {
	case GlyphStep:
		kind = Step
	case GlyphJump:
		kind = Jump
		if len(rest) == 0 {
			return Move{}, parseErrorf(ErrMalformedMove, text, "missing hop count")
		}
		hops, err := strconv.Atoi(rest[0])
		if err != nil || hops < 1 {
			return Move{}, parseErrorf(ErrMalformedMove, text, "bad hop count %q", rest[0])
		}
		positions = hops + 1
		rest = rest[1:]
	case GlyphNull:
		if len(rest) != 0 {
			return Move{}, parseErrorf(ErrMalformedMove, text, "null move takes no coordinates")
		}
		return Move{Side: side}, ErrNullMove
	default:
		return Move{}, parseErrorf(ErrUnknownKind, text, "kind %q", fields[1])
	}

	if len(rest) != 2*positions {
		return Move{}, parseErrorf(ErrMalformedMove, text, "want %d coordinates, got %d numbers", positions, len(rest))
	}

	path := make([]int, positions)
	for k := range path {
		row, errRow := strconv.Atoi(rest[2*k])
		col, errCol := strconv.Atoi(rest[2*k+1])
		if errRow != nil || errCol != nil {
			return Move{}, parseErrorf(ErrMalformedMove, text, "bad coordinate %q %q", rest[2*k], rest[2*k+1])
		}
		c := Coord{Row: row, Col: col}
		v, ok := g.IndexOf(c)
		if !ok {
			return Move{}, parseErrorf(ErrUnknownCoord, text, "%v", c)
		}
		path[k] = v
	}
	return Move{Side: side, Kind: kind, Path: path}, nil
}
