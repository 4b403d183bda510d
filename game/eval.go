package game

import "github.com/samber/lo"

// Weights of the static evaluation terms.
type Weights struct {
	Material       int // per dog below MaterialBase
	JaguarMobility int // per jaguar move
	DogMobility    int // per dog move, subtracted
	Degree         int // per neighbor of the jaguar's vertex
	Adjacent       int // per dog touching the jaguar, subtracted
}

// MaterialBase is the dog count at which the material term is zero. It sits
// one below InitialDogs, so the opening already scores -Material.
const MaterialBase = InitialDogs - 1

var DefaultWeights = Weights{
	Material:       30,
	JaguarMobility: 3,
	DogMobility:    2,
	Degree:         2,
	Adjacent:       5,
}

// Evaluate scores a non-terminal position for side: positive is good for
// side. The score is computed for the jaguar and negated for the dogs.
func Evaluate(s *State, side Piece, w Weights) int {
	material := MaterialBase - s.Dogs()
	jaguarMoves := s.CountMoves(Jaguar)
	dogMoves := s.CountMoves(Dog)
	degree := s.Graph().Degree(s.JaguarPos())
	adjacent := AdjacentDogs(s)

	score := w.Material*material +
		w.JaguarMobility*jaguarMoves -
		w.DogMobility*dogMoves +
		w.Degree*degree -
		w.Adjacent*adjacent

	switch side {
	case Jaguar:
		return score
	case Dog:
		return -score
	default:
		return 0
	}
}

// AdjacentDogs counts the dogs on vertices next to the jaguar.
func AdjacentDogs(s *State) int {
	j := s.JaguarPos()
	if !s.Graph().Valid(j) {
		return 0
	}
	return lo.CountBy(s.Graph().Neighbors(j), func(v int) bool {
		return s.At(v) == Dog
	})
}
