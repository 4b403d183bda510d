package game

import (
	"fmt"

	"github.com/samber/lo"
)

// NoVertex marks an absent vertex id.
const NoVertex = -1

// Coord is a logical board coordinate, 1-based.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Vertex is one playable position of the board.
type Vertex struct {
	ID        int
	Coord     Coord
	Neighbors []int // in discovery order
}

func (v Vertex) Degree() int {
	return len(v.Neighbors)
}

// Limits bounds the size of a graph under construction.
type Limits struct {
	Vertices  int
	Neighbors int // per vertex
}

var DefaultLimits = Limits{Vertices: 64, Neighbors: 8}

// Graph is the board topology. It is immutable once BuildGraph returns and
// may be shared freely between states.
type Graph struct {
	vertices []Vertex
	byCoord  map[Coord]int
}

func (g *Graph) Len() int {
	return len(g.vertices)
}

func (g *Graph) Valid(id int) bool {
	return id >= 0 && id < len(g.vertices)
}

// Vertex returns a copy of the vertex; its neighbor slice must not be modified.
func (g *Graph) Vertex(id int) Vertex {
	return g.vertices[id]
}

func (g *Graph) Coord(id int) Coord {
	return g.vertices[id].Coord
}

func (g *Graph) Neighbors(id int) []int {
	return g.vertices[id].Neighbors
}

func (g *Graph) Degree(id int) int {
	if !g.Valid(id) {
		return 0
	}
	return len(g.vertices[id].Neighbors)
}

func (g *Graph) IsNeighbor(a, b int) bool {
	if !g.Valid(a) || !g.Valid(b) {
		return false
	}
	return lo.Contains(g.vertices[a].Neighbors, b)
}

// IndexOf finds the vertex at a board coordinate.
func (g *Graph) IndexOf(c Coord) (int, bool) {
	id, ok := g.byCoord[c]
	return id, ok
}

// Midpoint returns the vertex halfway between a and b, the square a jump from
// a to b passes over. There is none when the coordinates are not an even
// distance apart on both axes or no vertex sits at the average.
func (g *Graph) Midpoint(a, b int) (int, bool) {
	if !g.Valid(a) || !g.Valid(b) || a == b {
		return NoVertex, false
	}
	ca, cb := g.vertices[a].Coord, g.vertices[b].Coord
	if (ca.Row+cb.Row)%2 != 0 || (ca.Col+cb.Col)%2 != 0 {
		return NoVertex, false
	}
	return g.IndexOf(Coord{Row: (ca.Row + cb.Row) / 2, Col: (ca.Col + cb.Col) / 2})
}

// direction is a probe used during discovery: a grid step and the edge glyph
// expected when travelling along it.
type direction struct {
	dr, dc int
	glyph  byte
}

// Probe order is part of the neighbor ordering contract.
var directions = []direction{
	{0, 1, GlyphHorizontal},
	{0, -1, GlyphHorizontal},
	{1, 0, GlyphVertical},
	{-1, 0, GlyphVertical},
	{1, 1, GlyphDiagDown},
	{1, -1, GlyphDiagUp},
	{-1, 1, GlyphDiagUp},
	{-1, -1, GlyphDiagDown},
}

// builder is a graph under construction. It is owned by BuildGraph and never
// escapes it.
type builder struct {
	diagram *Diagram
	limits  Limits
	graph   *Graph
	ids     map[[2]int]int // grid cell -> vertex id
}

// BuildGraph discovers the board graph drawn in the diagram. Only positions
// reachable along drawn edges from a scanned position become vertices, which
// for a well-formed diagram is all of them.
func BuildGraph(d *Diagram, limits Limits) (*Graph, error) {
	if limits.Vertices <= 0 || limits.Neighbors <= 0 {
		return nil, &BuildError{Err: fmt.Errorf("%w: limits %+v", ErrMalformedDiagram, limits), Row: -1, Col: -1}
	}
	b := &builder{
		diagram: d,
		limits:  limits,
		graph:   &Graph{byCoord: make(map[Coord]int)},
		ids:     make(map[[2]int]int),
	}

	for i := 0; i < d.Rows; i++ {
		for j := 0; j < d.Cols; j++ {
			if !d.isPosition(i, j) {
				continue
			}
			id, created, err := b.vertexAt(i, j)
			if err != nil {
				return nil, err
			}
			if created {
				if err := b.explore(i, j, id); err != nil {
					return nil, err
				}
			}
		}
	}

	if d.Expected > 0 && d.Expected != b.graph.Len() {
		return nil, &BuildError{
			Err: fmt.Errorf("%w: header says %d, found %d", ErrVertexCount, d.Expected, b.graph.Len()),
			Row: -1,
			Col: -1,
		}
	}
	return b.graph, nil
}

// vertexAt returns the vertex registered for a grid cell, creating it first if
// needed.
func (b *builder) vertexAt(row, col int) (id int, created bool, err error) {
	if id, ok := b.ids[[2]int{row, col}]; ok {
		return id, false, nil
	}
	if b.graph.Len() >= b.limits.Vertices {
		return NoVertex, false, &BuildError{
			Err: fmt.Errorf("%w: limit %d", ErrTooManyVertices, b.limits.Vertices),
			Row: row,
			Col: col,
		}
	}

	id = b.graph.Len()
	coord := boardCoord(row, col)
	if other, dup := b.graph.byCoord[coord]; dup {
		return NoVertex, false, &BuildError{
			Err: fmt.Errorf("%w: vertex %d already sits at %v", ErrMalformedDiagram, other, coord),
			Row: row,
			Col: col,
		}
	}
	b.graph.vertices = append(b.graph.vertices, Vertex{ID: id, Coord: coord})
	b.graph.byCoord[coord] = id
	b.ids[[2]int{row, col}] = id
	return id, true, nil
}

// explore follows every edge leaving the vertex at (row, col), depth first.
func (b *builder) explore(row, col, id int) error {
	for _, dir := range directions {
		r, c := row+dir.dr, col+dir.dc
		if b.diagram.At(r, c) != dir.glyph {
			continue
		}

		for {
			r += dir.dr
			c += dir.dc
			if !b.diagram.inside(r, c) {
				break
			}
			if b.diagram.isPosition(r, c) {
				neighbor, created, err := b.vertexAt(r, c)
				if err != nil {
					return err
				}
				if err := b.addEdge(id, neighbor, r, c); err != nil {
					return err
				}
				if created {
					if err := b.explore(r, c, neighbor); err != nil {
						return err
					}
				}
				break
			}
			if b.diagram.At(r, c) != dir.glyph {
				break
			}
		}
	}
	return nil
}

// addEdge links two vertices in both directions without duplicating entries.
func (b *builder) addEdge(a, n, row, col int) error {
	if a == n {
		return nil
	}
	for _, pair := range [][2]int{{a, n}, {n, a}} {
		v := &b.graph.vertices[pair[0]]
		if lo.Contains(v.Neighbors, pair[1]) {
			continue
		}
		if len(v.Neighbors) >= b.limits.Neighbors {
			return &BuildError{
				Err: fmt.Errorf("%w: vertex %d has %d", ErrTooManyNeighbors, pair[0], b.limits.Neighbors),
				Row: row,
				Col: col,
			}
		}
		v.Neighbors = append(v.Neighbors, pair[1])
	}
	return nil
}
