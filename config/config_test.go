package config

import (
	"bytes"
	"flag"
	"os"
	"testing"

	"naipe/meta"

	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the test and restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestParseWar(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		unsetEnv(t, "WAR_LOG_LEVEL", "WAR_SEED")

		cfg, err := ParseWar()

		require.NoError(t, err)
		require.Equal(t, "warn", cfg.LogLevel)
		require.Zero(t, cfg.Seed)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("WAR_LOG_LEVEL", "debug")
		t.Setenv("WAR_SEED", "12")

		cfg, err := ParseWar()

		require.NoError(t, err)
		require.Equal(t, War{LogLevel: "debug", Seed: 12}, cfg)
	})

	t.Run("bad seed", func(t *testing.T) {
		t.Setenv("WAR_SEED", "minus one")

		_, err := ParseWar()

		require.Error(t, err)
	})
}

func TestParseSimulate(t *testing.T) {
	t.Run("flags override environment", func(t *testing.T) {
		unsetEnv(t, "WAR_SIM_MAX_TICKS", "WAR_SIM_FACE_DOWN", "WAR_SIM_OUT_DIR")
		t.Setenv("WAR_SIM_GAMES", "7")
		t.Setenv("WAR_SIM_SEED", "3")
		fs := flag.NewFlagSet("simulate", flag.ContinueOnError)

		cfg, err := ParseSimulate(fs, []string{"-seed", "10", "-out", "records"})

		require.NoError(t, err)
		require.Equal(t, 7, cfg.Games)
		require.Equal(t, uint64(10), cfg.Seed)
		require.Equal(t, "records", cfg.OutDir)
		require.Equal(t, 3, cfg.FaceDown)
		require.Equal(t, meta.MAX_TICKS, cfg.MaxTicks)
	})

	t.Run("face down must be positive", func(t *testing.T) {
		for _, arg := range []string{"0", "-2"} {
			fs := flag.NewFlagSet("simulate", flag.ContinueOnError)

			_, err := ParseSimulate(fs, []string{"-face-down", arg})

			require.Error(t, err, "face down %s", arg)
		}
	})

	t.Run("games must be positive", func(t *testing.T) {
		fs := flag.NewFlagSet("simulate", flag.ContinueOnError)

		_, err := ParseSimulate(fs, []string{"-games", "0"})

		require.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("filters below level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger("warn", &buf)
		require.NoError(t, err)

		logger.Info().Msg("hidden")
		logger.Warn().Msg("shown")

		require.NotContains(t, buf.String(), "hidden")
		require.Contains(t, buf.String(), "shown")
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := NewLogger("loud", &bytes.Buffer{})

		require.Error(t, err)
	})
}
