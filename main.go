package main

import (
	"fmt"
	"os"

	"adugo/config"
	"adugo/engine"
	"adugo/experiments"
	"adugo/game"
	"adugo/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	level, _ := cfg.LogLevel()
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Debug().Msgf("loaded config: %v", cfg.AllSettings())

	g, err := loadBoard(cfg.Board())
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build the board")
	}
	log.Info().Msgf("board has %d positions", g.Len())

	start, err := loadOpening(cfg.Opening(), g)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot set up the opening")
	}

	if cfg.Games() > 1 {
		runMatchups(cfg, start)
		return
	}

	jaguar := searcher.NewSearcher(game.Jaguar, cfg.SearchOptions(game.Jaguar)...)
	dogs := searcher.NewSearcher(game.Dog, cfg.SearchOptions(game.Dog)...)
	e, err := engine.NewEngine(start, engine.NewSearchAgent(jaguar), engine.NewSearchAgent(dogs))
	if err != nil {
		log.Fatal().Err(err).Msg("cannot start the game")
	}

	result, moves, err := e.Run(cfg.MaxTurns())
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	for i, line := range engine.Transcript(g, moves) {
		log.Debug().Msgf("%3d. %s", i+1, line)
	}
	log.Info().
		Str("winner", result.Winner.String()).
		Int("turns", result.Turns).
		Int("captures", result.Captures).
		Dur("duration", result.Duration).
		Msg("game over")
	os.Stdout.WriteString(e.State.FormatSnapshot())
}

func loadBoard(path string) (*game.Graph, error) {
	if path == "" {
		return game.DefaultGraph(), nil
	}
	d, err := game.LoadDiagram(path)
	if err != nil {
		return nil, err
	}
	return game.BuildGraph(d, game.DefaultLimits)
}

func runMatchups(cfg *config.Config, start *game.State) {
	matchup := experiments.Matchup{
		Jaguar: experiments.AgentConfig{ID: 1, Depth: cfg.Depth(game.Jaguar), Algorithm: cfg.Algorithm()},
		Dogs:   experiments.AgentConfig{ID: 2, Depth: cfg.Depth(game.Dog), Algorithm: cfg.Algorithm()},
	}
	tallies, err := experiments.Run(start, experiments.Baseline(matchup), cfg.Games(), cfg.MaxTurns())
	if err != nil {
		log.Fatal().Err(err).Msg("experiment aborted")
	}
	for _, t := range tallies {
		log.Info().
			Str("jaguar", t.Jaguar.String()).
			Str("dogs", t.Dogs.String()).
			Int("games", t.Games).
			Int("jaguar_wins", t.JaguarWins).
			Int("dog_wins", t.DogWins).
			Int("unfinished", t.Unfinished).
			Int("captures", t.Captures).
			Dur("duration", t.Duration).
			Msg("matchup")
	}
}

// loadOpening reads the opening position with the jaguar to move, or the
// standard opening when path is empty.
func loadOpening(path string, g *game.Graph) (*game.State, error) {
	if path == "" {
		return game.NewGame(g)
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	start := game.NewState(g)
	if err := start.LoadSnapshot(string(text), game.Jaguar); err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return start, nil
}
