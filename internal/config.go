package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"pressure-lab/domain"

	"github.com/dgraph-io/badger/v4"
)

// DefaultBadgerDir is where the history lives, under the user config directory, when BADGER_FILEPATH is unset.
const DefaultBadgerDir = "pressure-lab/history"

type Config struct {
	BadgerFilepath  string `env:"BADGER_FILEPATH"`
	LogLevel        string `env:"LOG_LEVEL,default=WARN"`
	RejectSameUnit  bool   `env:"REJECT_SAME_UNIT,default=false"`
	DefaultFromUnit string `env:"DEFAULT_FROM_UNIT,default=kPa"`
	DefaultToUnit   string `env:"DEFAULT_TO_UNIT,default=psi"`
}

// CheckUnits rejects default units the registry does not know.
func (c Config) CheckUnits(registry domain.IRegistry) error {
	for name, id := range map[string]string{
		"DEFAULT_FROM_UNIT": c.DefaultFromUnit,
		"DEFAULT_TO_UNIT":   c.DefaultToUnit,
	} {
		if !registry.Has(id) {
			return fmt.Errorf("%s must be a known unit, got %q", name, id)
		}
	}
	return nil
}

// BadgerPath returns BADGER_FILEPATH, or DefaultBadgerDir under os.UserConfigDir when it is unset.
func (c Config) BadgerPath() (string, error) {
	if c.BadgerFilepath != "" {
		return c.BadgerFilepath, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("no BADGER_FILEPATH and no user config directory: %w", err)
	}
	return filepath.Join(dir, DefaultBadgerDir), nil
}

// BuildBadgerOpts keeps badger quiet unless the application itself logs at debug level.
func BuildBadgerOpts(ctx context.Context, path string, logger *slog.Logger) badger.Options {
	opts := badger.DefaultOptions(path)
	if logger.Enabled(ctx, slog.LevelDebug) {
		return opts.WithLoggingLevel(badger.DEBUG)
	}
	return opts.WithLoggingLevel(badger.ERROR)
}
