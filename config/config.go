package config

import (
	"errors"
	"fmt"
	"strings"

	"adugo/game"
	"adugo/meta"
	"adugo/searcher"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("invalid configuration")

// Config layers command-line flags over ADUGO_* environment variables over an
// optional YAML file over built-in defaults.
type Config struct {
	*viper.Viper
}

func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("adugo", pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.String("board", "", "board diagram file, the built-in board if empty")
	fs.String("opening", "", "opening position file in controller board format, required when --board uses other coordinates")
	fs.String("log-level", meta.DEFAULT_LOG_LEVEL, "debug, info, warn, error or disabled")
	fs.Int("max-turns", meta.MAX_TURNS, "turn limit of a self-play game")
	fs.Int("jaguar-depth", meta.DEFAULT_DEPTH, "search depth of the jaguar")
	fs.Int("dog-depth", meta.DEFAULT_DEPTH, "search depth of the dogs")
	fs.String("algorithm", meta.DEFAULT_ALGORITHM, "alphabeta or minimax")
	fs.Int("games", meta.DEFAULT_GAMES, "games per matchup, more than one also plays both sides against random agents")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	v.SetEnvPrefix(meta.ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	c.Viper = v
	return c.validate()
}

func (c *Config) validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.MaxTurns() < 1 {
		return fmt.Errorf("%w: max-turns %d", ErrInvalid, c.MaxTurns())
	}
	if c.Games() < 1 {
		return fmt.Errorf("%w: games %d", ErrInvalid, c.Games())
	}
	for _, side := range []game.Piece{game.Jaguar, game.Dog} {
		if d := c.Depth(side); d < 1 {
			return fmt.Errorf("%w: %v depth %d", ErrInvalid, side, d)
		}
	}
	if _, err := searcher.ParseAlgorithm(c.GetString("algorithm")); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Board is the diagram path, empty for the built-in board.
func (c *Config) Board() string {
	return c.GetString("board")
}

// Opening is the opening position path, empty for game.InitialBoard.
func (c *Config) Opening() string {
	return c.GetString("opening")
}

func (c *Config) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.GetString("log-level"))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log-level: %w", ErrInvalid, err)
	}
	return level, nil
}

func (c *Config) MaxTurns() int {
	return c.GetInt("max-turns")
}

func (c *Config) Games() int {
	return c.GetInt("games")
}

func (c *Config) Depth(side game.Piece) int {
	if side == game.Dog {
		return c.GetInt("dog-depth")
	}
	return c.GetInt("jaguar-depth")
}

func (c *Config) Algorithm() searcher.Algorithm {
	// validated by Load
	algorithm, _ := searcher.ParseAlgorithm(c.GetString("algorithm"))
	return algorithm
}

// SearchOptions configures a searcher for side.
func (c *Config) SearchOptions(side game.Piece) []searcher.Option {
	return []searcher.Option{
		searcher.WithDepth(c.Depth(side)),
		searcher.WithAlgorithm(c.Algorithm()),
	}
}
