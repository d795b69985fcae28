package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"pressure-lab/domain"
	"pressure-lab/internal"
	"pressure-lab/repositories"
	"pressure-lab/services"
	"pressure-lab/ui"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// Dumps the persisted conversion history without going through the history store,
// so dropped entries are reported instead of silently skipped.
func main() {
	dbPath := flag.String("db", os.Getenv("BADGER_FILEPATH"), "Path to badger DB (defaults to the CLI's history directory)")
	key := flag.String("key", services.HistoryStorageKey, "History key to decode")
	flag.Parse()

	path, err := internal.Config{BadgerFilepath: *dbPath}.BadgerPath()
	if err != nil {
		log.Fatal(err)
	}

	db, err := openDB(path)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	raw, entries, dropped, err := readHistory(repositories.NewBadgerStore(db), *key)
	if err != nil {
		log.Fatal(err)
	}

	table := ui.NewTable(os.Stdout, []string{"#", "Timestamp", "Value", "From", "To", "Result"})

	for i, e := range entries {
		table.Append([]string{
			strconv.Itoa(i),
			e.Timestamp,
			strconv.FormatFloat(e.Value, 'g', -1, 64),
			e.From,
			e.To,
			strconv.FormatFloat(e.Result, 'g', -1, 64),
		})
	}
	table.Render()

	fmt.Printf("\n%d valid, %d dropped, %d bytes\n", len(entries), dropped, len(raw))
}

// readHistory treats an absent key as an empty history.
func readHistory(store repositories.IKeyValueStore, key string) ([]byte, []domain.HistoryEntry, int, error) {
	raw, err := store.Get(key)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("reading %q: %w", key, err)
	}
	if len(raw) == 0 {
		return nil, nil, 0, nil
	}
	validator, err := domain.NewEntryValidator(domain.PressureUnits)
	if err != nil {
		return nil, nil, 0, err
	}
	entries, dropped, err := services.DecodeHistory(raw, validator)
	if err != nil {
		return raw, nil, 0, err
	}
	return raw, entries, dropped, nil
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		// A crashed writer leaves a log that must be truncated before a read-only open succeeds.
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			_ = db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
