package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"pressure-lab/domain"
	"pressure-lab/internal"
	"pressure-lab/repositories"
	"pressure-lab/services"
	"pressure-lab/ui"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes on top of the ones returned by the terminal commands.
const (
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "pressure: %v\n", err)
	}
	os.Exit(code)
}

// run wires configuration, storage and services, then hands over to the terminal.
// Returning instead of exiting lets the deferred database close run.
func run(args []string) (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	registry := domain.PressureUnits
	if err := config.CheckUnits(registry); err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB). Failing to open it is not fatal: the history stays in memory.
	var store repositories.IKeyValueStore
	if db, err := openDatabase(config, log); err != nil {
		log.Warn("Persistent history disabled", "error", err)
	} else {
		defer func() {
			log.Debug("Closing BadgerDB...")
			_ = db.Close()
		}()
		store = repositories.NewBadgerStore(db)
	}

	// 3. Services
	history, err := services.NewHistoryStore(log, store, registry)
	if err != nil {
		return exitRuntime, fmt.Errorf("history setup failed: %w", err)
	}
	converter := services.NewConverterService(log, registry, history,
		services.WithRejectSameUnit(config.RejectSameUnit),
		services.WithDefaultSelection(config.DefaultFromUnit, config.DefaultToUnit),
	)

	// 4. Terminal
	return ui.NewTerminal(converter, os.Stdin, os.Stdout).Run(args), nil
}

func openDatabase(config internal.Config, log *slog.Logger) (*badger.DB, error) {
	path, err := config.BadgerPath()
	if err != nil {
		return nil, err
	}
	log.Debug("Opening BadgerDB", "path", path)
	return repositories.OpenBadger(internal.BuildBadgerOpts(context.Background(), path, log))
}
