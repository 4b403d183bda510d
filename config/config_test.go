package config

import (
	"os"
	"path/filepath"
	"testing"

	"adugo/game"
	"adugo/meta"
	"adugo/searcher"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := &Config{}
	err := cfg.Load(args)
	return cfg, err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults without flags, env or file", func(t *testing.T) {
		cfg, err := load(t)

		require.NoError(t, err)
		require.Equal(t, "", cfg.Board())
		require.Equal(t, "", cfg.Opening())
		require.Equal(t, meta.MAX_TURNS, cfg.MaxTurns())
		require.Equal(t, meta.DEFAULT_DEPTH, cfg.Depth(game.Jaguar))
		require.Equal(t, meta.DEFAULT_DEPTH, cfg.Depth(game.Dog))
		require.Equal(t, 1, cfg.Games())
		require.Equal(t, searcher.AlphaBetaSearch, cfg.Algorithm())
		level, err := cfg.LogLevel()
		require.NoError(t, err)
		require.Equal(t, zerolog.InfoLevel, level)
	})

	t.Run("flags override defaults", func(t *testing.T) {
		cfg, err := load(t, "--jaguar-depth", "3", "--dog-depth=2", "--log-level", "debug", "--algorithm", "minimax")

		require.NoError(t, err)
		require.Equal(t, 3, cfg.Depth(game.Jaguar))
		require.Equal(t, 2, cfg.Depth(game.Dog))
		level, err := cfg.LogLevel()
		require.NoError(t, err)
		require.Equal(t, zerolog.DebugLevel, level)

		s := searcher.NewSearcher(game.Dog, cfg.SearchOptions(game.Dog)...)
		require.Equal(t, 2, s.Depth)
		require.Equal(t, searcher.MinimaxSearch, s.Algorithm)
	})

	t.Run("environment overrides defaults but not flags", func(t *testing.T) {
		t.Setenv("ADUGO_MAX_TURNS", "42")
		t.Setenv("ADUGO_DOG_DEPTH", "4")
		t.Setenv("ADUGO_GAMES", "7")

		cfg, err := load(t, "--dog-depth", "5")

		require.NoError(t, err)
		require.Equal(t, 42, cfg.MaxTurns())
		require.Equal(t, 5, cfg.Depth(game.Dog))
		require.Equal(t, 7, cfg.Games())
	})

	t.Run("reading a YAML file", func(t *testing.T) {
		path := writeFile(t, "adugo.yaml", "board: boards/custom.txt\nopening: boards/custom-opening.txt\nmax-turns: 80\njaguar-depth: 4\n")

		cfg, err := load(t, "--config", path, "--jaguar-depth", "2")

		require.NoError(t, err)
		require.Equal(t, "boards/custom.txt", cfg.Board())
		require.Equal(t, "boards/custom-opening.txt", cfg.Opening())
		require.Equal(t, 80, cfg.MaxTurns())
		require.Equal(t, 2, cfg.Depth(game.Jaguar), "Flags should win over the file")
	})

	t.Run("rejecting bad values", func(t *testing.T) {
		for _, args := range [][]string{
			{"--jaguar-depth", "0"},
			{"--max-turns=0"},
			{"--games", "0"},
			{"--algorithm", "mcts"},
			{"--log-level", "loud"},
		} {
			_, err := load(t, args...)
			require.ErrorIs(t, err, ErrInvalid, "args %v", args)
		}
	})

	t.Run("failing on unknown flags and missing files", func(t *testing.T) {
		_, err := load(t, "--depth", "3")
		require.Error(t, err)

		_, err = load(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorContains(t, err, "read config")
	})
}
