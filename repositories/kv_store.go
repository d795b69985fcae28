//go:generate go run go.uber.org/mock/mockgen -source=kv_store.go -destination=../mocks/mock_kv_store.go -package=mocks
package repositories

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// IKeyValueStore is the persistent storage the history is written to.
// Get returns a nil value and no error when the key is absent.
type IKeyValueStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

type BadgerStore struct {
	db *badger.DB
}

// volatile is implemented by stores whose content does not outlive the process.
type volatile interface {
	InMemory() bool
}

func NewBadgerStore(db *badger.DB) IKeyValueStore {
	return &BadgerStore{db: db}
}

func OpenBadger(options badger.Options) (*badger.DB, error) {
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	return db, nil
}

func (b BadgerStore) InMemory() bool {
	return b.db.Opts().InMemory
}

func (b BadgerStore) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", key, err)
	}
	return value, nil
}

func (b BadgerStore) Set(key string, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// Remove is a no-op for a missing key.
func (b BadgerStore) Remove(key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// CheckWritable writes then removes key. An in-memory store fails the check
// since nothing written to it survives the process.
func CheckWritable(store IKeyValueStore, key string) error {
	if store == nil {
		return fmt.Errorf("no store configured")
	}
	if v, ok := store.(volatile); ok && v.InMemory() {
		return fmt.Errorf("store is in memory only")
	}
	if err := store.Set(key, []byte("1")); err != nil {
		return err
	}
	return store.Remove(key)
}
