package experiments

import (
	"errors"
	"fmt"
	"time"

	"adugo/engine"
	"adugo/game"
	"adugo/searcher"

	"github.com/rs/zerolog/log"
)

// AgentConfig describes one side of a matchup. A zero Depth plays random
// legal moves.
type AgentConfig struct {
	ID        int
	Depth     int
	Algorithm searcher.Algorithm
}

func (c AgentConfig) String() string {
	if c.Depth == 0 {
		return fmt.Sprintf("agent %d (random)", c.ID)
	}
	return fmt.Sprintf("agent %d (%s depth %d)", c.ID, c.Algorithm, c.Depth)
}

type Matchup struct {
	Jaguar AgentConfig
	Dogs   AgentConfig
}

// Tally sums the games of one matchup.
type Tally struct {
	Matchup
	Games      int
	JaguarWins int
	DogWins    int
	Unfinished int // stopped at the turn limit
	Captures   int
	Turns      int
	Duration   time.Duration
}

// Baseline pairs each side of m against a random opponent, after m itself.
func Baseline(m Matchup) []Matchup {
	random := AgentConfig{ID: 0}
	return []Matchup{
		m,
		{Jaguar: m.Jaguar, Dogs: random},
		{Jaguar: random, Dogs: m.Dogs},
	}
}

// Run plays games of each matchup from start. Random agents are seeded by
// game number so repeated runs give the same tallies.
func Run(start *game.State, matchUps []Matchup, games, maxTurns int) ([]Tally, error) {
	if start == nil {
		return nil, errors.New("need a starting position")
	}
	if games < 1 {
		return nil, fmt.Errorf("need at least one game per matchup, got %d", games)
	}
	tallies := make([]Tally, 0, len(matchUps))
	count := 0

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between jaguar=%v and dogs=%v...", mi+1, len(matchUps), matchup.Jaguar, matchup.Dogs)

		tally := Tally{Matchup: matchup}
		for i := 0; i < games; i++ {
			count++
			gameMetric, err := runGame(start, matchup, uint64(count), maxTurns)
			if err != nil {
				return tallies, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			tally.add(gameMetric)
			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %v", mi+1, len(matchUps), i+1, gameMetric.Winner)
		}
		tallies = append(tallies, tally)

		log.Info().
			Int("jaguar_wins", tally.JaguarWins).
			Int("dog_wins", tally.DogWins).
			Int("unfinished", tally.Unfinished).
			Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}
	return tallies, nil
}

func (t *Tally) add(m engine.GameMetric) {
	t.Games++
	switch m.Winner {
	case game.Jaguar:
		t.JaguarWins++
	case game.Dog:
		t.DogWins++
	default:
		t.Unfinished++
	}
	t.Captures += m.Captures
	t.Turns += m.Turns
	t.Duration += m.Duration
}

func runGame(start *game.State, m Matchup, seed uint64, maxTurns int) (engine.GameMetric, error) {
	e, err := engine.NewEngine(start,
		createAgent(game.Jaguar, m.Jaguar, seed),
		createAgent(game.Dog, m.Dogs, seed+1<<32))
	if err != nil {
		return engine.GameMetric{}, err
	}
	result, _, err := e.Run(maxTurns)
	return result, err
}

func createAgent(side game.Piece, config AgentConfig, seed uint64) engine.Agent {
	if config.Depth == 0 {
		return engine.NewRandomAgent(seed)
	}
	options := []searcher.Option{searcher.WithDepth(config.Depth)}
	if config.Algorithm != "" {
		options = append(options, searcher.WithAlgorithm(config.Algorithm))
	}
	return engine.NewSearchAgent(searcher.NewSearcher(side, options...))
}
