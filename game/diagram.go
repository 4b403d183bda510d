package game

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Diagram glyphs.
const (
	GlyphPosition   = '*'
	GlyphHorizontal = '-'
	GlyphVertical   = '|'
	GlyphDiagDown   = '\\' // top-left to bottom-right
	GlyphDiagUp     = '/'  // top-right to bottom-left
)

// Scale is the number of diagram cells covered by one logical board position
// along each axis.
const Scale = 3

//go:embed boards/adugo.txt
var adugoDiagram string

// Diagram is the character grid a board graph is discovered from.
type Diagram struct {
	Expected int // vertex count announced by the header, 0 if unchecked
	Rows     int
	Cols     int
	cells    [][]byte
}

// DefaultDiagram returns the standard Adugo board: a 5x5 alquerque grid with
// the triangular den below it.
func DefaultDiagram() *Diagram {
	d, err := ReadDiagram(strings.NewReader(adugoDiagram))
	if err != nil {
		panic(fmt.Sprintf("embedded board is invalid: %v", err))
	}
	return d
}

// DefaultGraph builds the graph of DefaultDiagram.
func DefaultGraph() *Graph {
	g, err := BuildGraph(DefaultDiagram(), DefaultLimits)
	if err != nil {
		panic(fmt.Sprintf("embedded board is invalid: %v", err))
	}
	return g
}

// LoadDiagram reads a diagram file from disk.
func LoadDiagram(path string) (*Diagram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open diagram: %w", err)
	}
	defer f.Close()

	d, err := ReadDiagram(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// ReadDiagram parses a diagram: the expected vertex count on the first line,
// "rows cols" on the second, then the rows themselves. Short rows are padded
// with blanks and long rows are cut at cols.
func ReadDiagram(r io.Reader) (*Diagram, error) {
	scanner := bufio.NewScanner(r)

	header, ok := nextLine(scanner)
	if !ok {
		return nil, fmt.Errorf("%w: missing vertex count", ErrMalformedDiagram)
	}
	expected, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || expected < 0 {
		return nil, fmt.Errorf("%w: bad vertex count %q", ErrMalformedDiagram, header)
	}

	header, ok = nextLine(scanner)
	if !ok {
		return nil, fmt.Errorf("%w: missing dimensions", ErrMalformedDiagram)
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: bad dimensions %q", ErrMalformedDiagram, header)
	}
	rows, errRows := strconv.Atoi(fields[0])
	cols, errCols := strconv.Atoi(fields[1])
	if errRows != nil || errCols != nil || rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: bad dimensions %q", ErrMalformedDiagram, header)
	}

	d := &Diagram{Expected: expected, Rows: rows, Cols: cols, cells: make([][]byte, rows)}
	for i := 0; i < rows; i++ {
		line, ok := nextLine(scanner)
		if !ok {
			return nil, fmt.Errorf("%w: got %d of %d rows", ErrTruncatedDiagram, i, rows)
		}
		row := make([]byte, cols)
		for j := range row {
			if j < len(line) {
				row[j] = line[j]
			} else {
				row[j] = ' '
			}
		}
		d.cells[i] = row
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read diagram: %w", err)
	}
	return d, nil
}

func nextLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimRight(scanner.Text(), "\r"), true
}

// At returns the glyph at a grid cell, or a blank outside the grid.
func (d *Diagram) At(row, col int) byte {
	if !d.inside(row, col) {
		return ' '
	}
	return d.cells[row][col]
}

func (d *Diagram) inside(row, col int) bool {
	return row >= 0 && row < d.Rows && col >= 0 && col < d.Cols
}

func (d *Diagram) isPosition(row, col int) bool {
	return d.inside(row, col) && d.cells[row][col] == GlyphPosition
}

// boardCoord maps a grid cell to its logical board coordinate.
func boardCoord(row, col int) Coord {
	return Coord{Row: row/Scale + 1, Col: col/Scale + 1}
}
