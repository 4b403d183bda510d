package game

import (
	"fmt"
	"slices"
)

// Kind distinguishes a simple step from a jump chain.
type Kind uint8

const (
	Step Kind = iota
	Jump
)

func (k Kind) String() string {
	if k == Jump {
		return "jump"
	}
	return "step"
}

// Move is a transient move value. Path holds vertex ids: origin then
// destination for a step, origin then every landing for a jump chain.
type Move struct {
	Side Piece
	Kind Kind
	Path []int
}

func NewStep(side Piece, from, to int) Move {
	return Move{Side: side, Kind: Step, Path: []int{from, to}}
}

func NewJump(path ...int) Move {
	return Move{Side: Jaguar, Kind: Jump, Path: slices.Clone(path)}
}

func (m Move) From() int {
	if len(m.Path) == 0 {
		return NoVertex
	}
	return m.Path[0]
}

func (m Move) To() int {
	if len(m.Path) == 0 {
		return NoVertex
	}
	return m.Path[len(m.Path)-1]
}

// Hops is the number of single jumps in a chain, or 1 for a step.
func (m Move) Hops() int {
	return len(m.Path) - 1
}

func (m Move) Equal(other Move) bool {
	return m.Side == other.Side && m.Kind == other.Kind && slices.Equal(m.Path, other.Path)
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s %v", m.Side, m.Kind, m.Path)
}
