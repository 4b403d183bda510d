package game

import "slices"

// IsLegal reports whether m can be played from s. It never mutates s.
func (s *State) IsLegal(m Move) bool {
	if len(m.Path) < 2 || !m.Side.IsSide() {
		return false
	}
	for _, v := range m.Path {
		if !s.graph.Valid(v) {
			return false
		}
	}
	if s.cells[m.From()] != m.Side || m.From() == m.To() {
		return false
	}

	switch m.Kind {
	case Step:
		return len(m.Path) == 2 && s.canStep(m.Path[0], m.Path[1])
	case Jump:
		if m.Side != Jaguar || m.From() != s.jaguar {
			return false
		}
		return s.canChain(m.Path)
	default:
		return false
	}
}

func (s *State) canStep(from, to int) bool {
	return s.graph.IsNeighbor(from, to) && s.cells[to] == Empty
}

// canChain checks every hop of a jump chain against the board as it stands
// after the previous hops.
func (s *State) canChain(path []int) bool {
	cells := s.cells
	if len(path) > 2 {
		cells = slices.Clone(s.cells)
	}
	for i := 1; i < len(path); i++ {
		current, landing := path[i-1], path[i]
		mid, ok := s.hop(cells, current, landing)
		if !ok {
			return false
		}
		if i == len(path)-1 {
			break
		}
		cells[current] = Empty
		cells[mid] = Empty
		cells[landing] = Jaguar
	}
	return true
}

// hop validates a single jump. The jumped vertex only needs to be adjacent to
// one end of the hop, not both.
func (s *State) hop(cells []Piece, current, landing int) (mid int, ok bool) {
	mid, ok = s.graph.Midpoint(current, landing)
	if !ok {
		return NoVertex, false
	}
	if !s.graph.IsNeighbor(mid, current) && !s.graph.IsNeighbor(mid, landing) {
		return NoVertex, false
	}
	if cells[mid] != Dog || cells[landing] != Empty {
		return NoVertex, false
	}
	return mid, true
}

// LegalMoves generates moves for the side to move, capped at MoveLimit.
func (s *State) LegalMoves() []Move {
	return s.GenerateMoves(MoveLimit)
}

// GenerateMoves enumerates legal moves for the side to move in a fixed order;
// see movesFor. Output is silently truncated at limit (MoveLimit if limit <= 0).
func (s *State) GenerateMoves(limit int) []Move {
	return s.movesFor(s.toMove, limit)
}

// CountMoves counts the moves side would have if it were its turn.
func (s *State) CountMoves(side Piece) int {
	return len(s.movesFor(side, MoveLimit))
}

// movesFor lists dog steps by vertex id then neighbor order. For the jaguar it
// lists steps in neighbor order, then single jumps landing on a neighbor of an
// adjacent dog (by dog, then by the dog's neighbors), then any remaining
// single jump IsLegal accepts, by landing id. Each landing appears once.
// Longer chains are reached one hop per ply.
func (s *State) movesFor(side Piece, limit int) []Move {
	if limit <= 0 {
		limit = MoveLimit
	}
	var moves []Move

	switch side {
	case Dog:
		for v, p := range s.cells {
			if p != Dog {
				continue
			}
			for _, n := range s.graph.Neighbors(v) {
				if !s.canStep(v, n) {
					continue
				}
				moves = append(moves, NewStep(Dog, v, n))
				if len(moves) == limit {
					return moves
				}
			}
		}
	case Jaguar:
		j := s.jaguar
		if !s.graph.Valid(j) {
			return nil
		}
		for _, n := range s.graph.Neighbors(j) {
			if !s.canStep(j, n) {
				continue
			}
			moves = append(moves, NewStep(Jaguar, j, n))
			if len(moves) == limit {
				return moves
			}
		}
		jumped := make([]bool, s.graph.Len())
		jump := func(landing int) bool {
			if landing == j || jumped[landing] {
				return false
			}
			if _, ok := s.hop(s.cells, j, landing); !ok {
				return false
			}
			jumped[landing] = true
			moves = append(moves, NewJump(j, landing))
			return len(moves) == limit
		}
		for _, dog := range s.graph.Neighbors(j) {
			if s.cells[dog] != Dog {
				continue
			}
			for _, landing := range s.graph.Neighbors(dog) {
				if jump(landing) {
					return moves
				}
			}
		}
		// Remaining single jumps, such as over a dog not next to the jaguar.
		for landing := 0; landing < s.graph.Len(); landing++ {
			if jump(landing) {
				return moves
			}
		}
	}
	return moves
}

// jaguarCanMove is cheaper than generating the jaguar's full move list.
func (s *State) jaguarCanMove() bool {
	return len(s.movesFor(Jaguar, 1)) > 0
}

// Winner returns the winning side, or Empty while the game is undecided. The
// dog count is checked before the jaguar's mobility.
func (s *State) Winner() Piece {
	if s.dogs <= JaguarWinThreshold {
		return Jaguar
	}
	if !s.jaguarCanMove() {
		return Dog
	}
	return Empty
}

// IsTerminal reports whether either side has won.
func (s *State) IsTerminal() bool {
	return s.Winner() != Empty
}
