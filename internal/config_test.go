package internal

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"pressure-lab/domain"
	"testing"

	"github.com/Netflix/go-env"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestConfig_From_Environment(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", "/tmp/pressure")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("REJECT_SAME_UNIT", "true")
	t.Setenv("DEFAULT_FROM_UNIT", "atm")
	t.Setenv("DEFAULT_TO_UNIT", "mmHg")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.NoError(err)
	req.Equal(Config{
		BadgerFilepath:  "/tmp/pressure",
		LogLevel:        "DEBUG",
		RejectSameUnit:  true,
		DefaultFromUnit: "atm",
		DefaultToUnit:   "mmHg",
	}, config)
	req.NoError(config.CheckUnits(domain.PressureUnits))
}

func TestConfig_CheckUnits_Rejects_Unknown_Units(t *testing.T) {
	req := require.New(t)
	config := Config{DefaultFromUnit: "kPa", DefaultToUnit: "inHg"}

	err := config.CheckUnits(domain.PressureUnits)

	req.Error(err)
	req.Contains(err.Error(), "DEFAULT_TO_UNIT")
}

func TestConfig_BadgerPath(t *testing.T) {
	t.Run("should use BADGER_FILEPATH when set", func(t *testing.T) {
		req := require.New(t)
		path, err := Config{BadgerFilepath: "/data/pressure"}.BadgerPath()
		req.NoError(err)
		req.Equal("/data/pressure", path)
	})

	t.Run("should default to a directory under the user config directory", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("BADGER_FILEPATH", "")
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		var config Config
		_, err := env.UnmarshalFromEnviron(&config)
		req.NoError(err)
		req.Empty(config.BadgerFilepath)

		path, err := config.BadgerPath()
		req.NoError(err)
		configDir, err := os.UserConfigDir()
		req.NoError(err)
		req.Equal(filepath.Join(configDir, DefaultBadgerDir), path)
	})
}

func TestBuildBadgerOpts(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelWarn} {
		opts := BuildBadgerOpts(ctx, dir, logs.GetLoggerFromLevel(level))
		req.Equal(dir, opts.Dir)
		req.Equal(dir, opts.ValueDir)
		req.False(opts.InMemory)
	}
}
