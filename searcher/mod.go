package searcher

import (
	"errors"
	"fmt"

	"adugo/game"
)

// Score sentinels for decided positions, outside the range of game.Evaluate.
const (
	WinScore  = 10000
	LoseScore = -WinScore
)

const DefaultDepth = 6

var (
	// ErrNoMove is returned when the side to move has no legal move at the
	// root. It is a normal game outcome, not a failure.
	ErrNoMove        = errors.New("no legal move")
	ErrInvalidConfig = errors.New("invalid search config")
)

type Algorithm string

const (
	AlphaBetaSearch Algorithm = "alphabeta"
	MinimaxSearch   Algorithm = "minimax"
)

// ParseAlgorithm accepts the names used in configuration files.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case AlphaBetaSearch, "alpha-beta", "":
		return AlphaBetaSearch, nil
	case MinimaxSearch:
		return MinimaxSearch, nil
	}
	return "", fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, name)
}

// Config holds everything a search needs besides the position.
type Config struct {
	Side      game.Piece // side the scores are oriented to
	Depth     int
	WinScore  int
	LoseScore int
	Weights   game.Weights
	MoveLimit int
	Algorithm Algorithm
}

func (c Config) Validate() error {
	if !c.Side.IsSide() {
		return fmt.Errorf("%w: side %v", ErrInvalidConfig, c.Side)
	}
	if c.Depth < 1 {
		return fmt.Errorf("%w: depth %d", ErrInvalidConfig, c.Depth)
	}
	if c.WinScore <= c.LoseScore {
		return fmt.Errorf("%w: win score %d not above lose score %d", ErrInvalidConfig, c.WinScore, c.LoseScore)
	}
	if c.MoveLimit < 1 {
		return fmt.Errorf("%w: move limit %d", ErrInvalidConfig, c.MoveLimit)
	}
	if c.Algorithm != AlphaBetaSearch && c.Algorithm != MinimaxSearch {
		return fmt.Errorf("%w: algorithm %q", ErrInvalidConfig, c.Algorithm)
	}
	return nil
}

type Option func(s *Searcher)

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		s.Depth = depth
	}
}

// WithScores sets the scores of decided positions. They must lie outside the
// range of game.Evaluate under the searcher's weights: alpha-beta searches
// the window (lose, win) and only matches Minimax when no heuristic score
// falls outside it.
func WithScores(win, lose int) Option {
	return func(s *Searcher) {
		s.WinScore = win
		s.LoseScore = lose
	}
}

func WithWeights(w game.Weights) Option {
	return func(s *Searcher) {
		s.Weights = w
	}
}

func WithMoveLimit(limit int) Option {
	return func(s *Searcher) {
		if limit > 0 {
			s.MoveLimit = limit
		}
	}
}

func WithAlgorithm(a Algorithm) Option {
	return func(s *Searcher) {
		s.Algorithm = a
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = NewCollector()
	}
}

// Searcher picks moves for one side by fixed-depth game tree search.
type Searcher struct {
	Config
	metrics Collector
}

func NewSearcher(side game.Piece, options ...Option) *Searcher {
	s := &Searcher{ // Default values
		Config: Config{
			Side:      side,
			Depth:     DefaultDepth,
			WinScore:  WinScore,
			LoseScore: LoseScore,
			Weights:   game.DefaultWeights,
			MoveLimit: game.MoveLimit,
			Algorithm: AlphaBetaSearch,
		},
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}
