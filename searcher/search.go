package searcher

import (
	"errors"
	"math"

	"adugo/game"

	"github.com/rs/zerolog/log"
)

// Result describes a root decision.
type Result struct {
	Index  int // position of the move in the root move list
	Score  int
	Moves  int // number of root moves considered
	Metric SearchMetric
}

// terminal scores a decided position from the searcher's side.
func (s *Searcher) terminal(state *game.State) (int, bool) {
	switch state.Winner() {
	case s.Side:
		return s.WinScore, true
	case s.Side.Opponent():
		return s.LoseScore, true
	}
	return 0, false
}

// Minimax returns the value of state searched to depth plies. maximizing is
// true when the searcher's side is to move.
func (s *Searcher) Minimax(state *game.State, depth int, maximizing bool) int {
	s.metrics.AddNode()
	if score, done := s.terminal(state); done {
		return score
	}
	if depth <= 0 {
		s.metrics.AddLeaf()
		return game.Evaluate(state, s.Side, s.Weights)
	}

	moves := state.GenerateMoves(s.MoveLimit)
	if len(moves) == 0 {
		return 0
	}

	best := math.MinInt
	if !maximizing {
		best = math.MaxInt
	}
	for _, move := range moves {
		score := s.Minimax(state.Play(move), depth-1, !maximizing)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}

// AlphaBeta is Minimax with pruning. Called with the window (LoseScore,
// WinScore) it returns the same value as Minimax as long as every heuristic
// score lies strictly inside that window. A window of (math.MinInt,
// math.MaxInt) matches Minimax for any scores.
func (s *Searcher) AlphaBeta(state *game.State, depth, alpha, beta int, maximizing bool) int {
	s.metrics.AddNode()
	if score, done := s.terminal(state); done {
		return score
	}
	if depth <= 0 {
		s.metrics.AddLeaf()
		return game.Evaluate(state, s.Side, s.Weights)
	}

	moves := state.GenerateMoves(s.MoveLimit)
	if len(moves) == 0 {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, move := range moves {
			best = max(best, s.AlphaBeta(state.Play(move), depth-1, alpha, beta, false))
			alpha = max(alpha, best)
			if alpha >= beta {
				s.metrics.AddCutoff()
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, move := range moves {
		best = min(best, s.AlphaBeta(state.Play(move), depth-1, alpha, beta, true))
		beta = min(beta, best)
		if alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}
	return best
}

func (s *Searcher) search(state *game.State, depth int, maximizing bool) int {
	if s.Algorithm == MinimaxSearch {
		return s.Minimax(state, depth, maximizing)
	}
	return s.AlphaBeta(state, depth, s.LoseScore, s.WinScore, maximizing)
}

// ChooseMove searches every root move to Depth-1 further plies and returns
// the best one. Ties keep the earliest move in generation order.
func (s *Searcher) ChooseMove(state *game.State) (game.Move, Result, error) {
	if state == nil {
		return game.Move{}, Result{}, errors.New("choose move: nil state")
	}
	if err := s.Validate(); err != nil {
		return game.Move{}, Result{}, err
	}

	moves := state.GenerateMoves(s.MoveLimit)
	if len(moves) == 0 {
		return game.Move{}, Result{}, ErrNoMove
	}

	s.metrics.Start(s.Algorithm, s.Depth)
	maximizing := state.ToMove() == s.Side
	chosen := Result{Index: -1, Moves: len(moves)}
	for i, move := range moves {
		score := s.search(state.Play(move), s.Depth-1, !maximizing)
		better := score > chosen.Score
		if !maximizing {
			better = score < chosen.Score
		}
		if chosen.Index < 0 || better {
			chosen.Index, chosen.Score = i, score
		}
	}
	chosen.Metric = s.metrics.Complete()

	log.Debug().
		Str("side", s.Side.String()).
		Str("algorithm", string(s.Algorithm)).
		Int("depth", s.Depth).
		Int("moves", len(moves)).
		Int("score", chosen.Score).
		Int("nodes", chosen.Metric.Nodes).
		Msgf("chose %v", moves[chosen.Index])

	return moves[chosen.Index], chosen, nil
}
