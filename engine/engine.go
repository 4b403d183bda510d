package engine

import (
	"fmt"

	"adugo/game"
	"adugo/searcher"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns a move for the side to move in state. It returns
	// searcher.ErrNoMove if there is none.
	FindMove(state *game.State) (game.Move, searcher.SearchMetric, error)
}

// SearchAgent plays the moves chosen by a game tree searcher.
type SearchAgent struct {
	Searcher *searcher.Searcher
}

func NewSearchAgent(s *searcher.Searcher) *SearchAgent {
	return &SearchAgent{Searcher: s}
}

func (a *SearchAgent) FindMove(state *game.State) (game.Move, searcher.SearchMetric, error) {
	if state.ToMove() != a.Searcher.Side {
		return game.Move{}, searcher.SearchMetric{}, fmt.Errorf("search agent for %v asked to move for %v", a.Searcher.Side, state.ToMove())
	}
	move, result, err := a.Searcher.ChooseMove(state)
	return move, result.Metric, err
}

// RandomAgent plays a uniformly random legal move.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(state *game.State) (game.Move, searcher.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, searcher.SearchMetric{}, searcher.ErrNoMove
	}
	return moves[a.rng.Intn(len(moves))], searcher.SearchMetric{}, nil
}
