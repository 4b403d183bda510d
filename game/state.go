package game

import (
	"fmt"
	"slices"
)

// State is a board position: occupancy of every vertex of a shared graph, the
// cached jaguar vertex, the live dog count and the side to move.
type State struct {
	graph  *Graph
	cells  []Piece
	jaguar int
	dogs   int
	toMove Piece
}

// NewState returns an empty board over g with the jaguar to move.
func NewState(g *Graph) *State {
	s := &State{graph: g, cells: make([]Piece, g.Len())}
	s.Reset()
	return s
}

// Reset empties the board. The side to move is set back to the jaguar.
func (s *State) Reset() {
	clear(s.cells)
	s.jaguar = NoVertex
	s.dogs = 0
	s.toMove = Jaguar
}

// Copy returns an independent deep copy. Only the graph is shared.
func (s *State) Copy() *State {
	return &State{
		graph:  s.graph,
		cells:  slices.Clone(s.cells),
		jaguar: s.jaguar,
		dogs:   s.dogs,
		toMove: s.toMove,
	}
}

func (s *State) Graph() *Graph {
	return s.graph
}

func (s *State) At(v int) Piece {
	return s.cells[v]
}

func (s *State) IsEmpty(v int) bool {
	return s.cells[v] == Empty
}

// JaguarPos returns the jaguar's vertex, or NoVertex when it is not placed.
func (s *State) JaguarPos() int {
	return s.jaguar
}

func (s *State) Dogs() int {
	return s.dogs
}

func (s *State) ToMove() Piece {
	return s.toMove
}

// Player is the side to move, matching the searcher's vocabulary.
func (s *State) Player() Piece {
	return s.toMove
}

func (s *State) SetToMove(side Piece) {
	if !side.IsSide() {
		panic(fmt.Sprintf("cannot give the move to %v", side))
	}
	s.toMove = side
}

// Place puts p on vertex v, keeping the dog count and the jaguar cache in
// step. Placing the jaguar lifts it from wherever it stood before.
func (s *State) Place(v int, p Piece) {
	s.mustBeValid(v)
	switch s.cells[v] {
	case Dog:
		s.dogs--
	case Jaguar:
		s.jaguar = NoVertex
	}
	if p == Jaguar && s.jaguar != NoVertex {
		s.cells[s.jaguar] = Empty
	}

	s.cells[v] = p
	switch p {
	case Dog:
		s.dogs++
	case Jaguar:
		s.jaguar = v
	}
}

// Apply plays a move in place. The move must already be legal; only contract
// violations such as unknown vertices are caught, and they panic.
func (s *State) Apply(m Move) {
	if len(m.Path) < 2 {
		panic(fmt.Sprintf("apply %v: path too short", m))
	}
	for _, v := range m.Path {
		s.mustBeValid(v)
	}

	switch m.Kind {
	case Step:
		from, to := m.Path[0], m.Path[1]
		s.cells[from] = Empty
		s.cells[to] = m.Side
		if m.Side == Jaguar {
			s.jaguar = to
		}
	case Jump:
		for i := 1; i < len(m.Path); i++ {
			current, landing := m.Path[i-1], m.Path[i]
			mid, ok := s.graph.Midpoint(current, landing)
			if !ok {
				panic(fmt.Sprintf("apply %v: no vertex between %d and %d", m, current, landing))
			}
			s.cells[current] = Empty
			if s.cells[mid] == Dog {
				s.dogs--
			}
			s.cells[mid] = Empty
			s.cells[landing] = Jaguar
		}
		s.jaguar = m.To()
	default:
		panic(fmt.Sprintf("apply %v: unknown kind", m))
	}

	s.toMove = s.toMove.Opponent()
}

// Play returns the position after m, leaving s untouched.
func (s *State) Play(m Move) *State {
	next := s.Copy()
	next.Apply(m)
	return next
}

func (s *State) mustBeValid(v int) {
	if !s.graph.Valid(v) {
		panic(fmt.Sprintf("vertex %d out of range [0, %d)", v, s.graph.Len()))
	}
}
