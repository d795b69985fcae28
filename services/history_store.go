//go:generate go run go.uber.org/mock/mockgen -source=history_store.go -destination=../mocks/mock_history_store.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"pressure-lab/domain"
	"pressure-lab/errors"
	"pressure-lab/repositories"

	"github.com/samber/lo"
)

const (
	HistoryStorageKey = "pressure-converter-history-v1"

	// WritableCheckKey is written then removed once at startup.
	WritableCheckKey = "__pressure_converter__"
)

type IHistoryStore interface {
	Append(entry domain.HistoryEntry)
	Clear()
	Load() []domain.HistoryEntry
	Snapshot() []domain.HistoryEntry
	IsPersistenceAvailable() bool
}

// HistoryStore owns the most-recent-first conversion log.
// It is the only writer of HistoryStorageKey and is not safe for concurrent use.
type HistoryStore struct {
	log        *slog.Logger
	store      repositories.IKeyValueStore
	validator  *domain.EntryValidator
	entries    []domain.HistoryEntry
	persistent bool
}

// NewHistoryStore checks store is writable once and loads the persisted history.
// A nil, in-memory or failing store leaves the history in memory for the life of the process.
func NewHistoryStore(log *slog.Logger, store repositories.IKeyValueStore, registry domain.IRegistry) (*HistoryStore, error) {
	validator, err := domain.NewEntryValidator(registry)
	if err != nil {
		return nil, err
	}
	h := &HistoryStore{log: log, store: store, validator: validator}

	if err := repositories.CheckWritable(store, WritableCheckKey); err != nil {
		log.Warn("History kept in memory only", "reason", errors.ErrPersistenceUnavailable, "error", err)
	} else {
		h.persistent = true
	}

	h.Load()
	return h, nil
}

func (h *HistoryStore) IsPersistenceAvailable() bool {
	return h.persistent
}

// Append records entry at the front, evicting the oldest entries past MaxHistoryEntries.
// An invalid entry is logged and dropped.
func (h *HistoryStore) Append(entry domain.HistoryEntry) {
	if err := h.validator.Validate(entry); err != nil {
		h.log.Warn("Rejected history entry", "error", fmt.Errorf("%w: %v", errors.ErrInvalidHistoryEntry, err))
		return
	}
	entries := make([]domain.HistoryEntry, 0, len(h.entries)+1)
	entries = append(entries, entry)
	entries = append(entries, h.entries...)
	h.entries = lo.Slice(entries, 0, domain.MaxHistoryEntries)
	h.persist()
}

// Clear empties the history. Clearing an empty history does not touch the store.
func (h *HistoryStore) Clear() {
	if len(h.entries) == 0 {
		return
	}
	h.entries = nil
	h.persist()
}

// Load replaces the in-memory history with what the store holds.
// Unreadable payloads give an empty history.
func (h *HistoryStore) Load() []domain.HistoryEntry {
	entries, err := h.load()
	if err != nil {
		h.log.Warn("History could not be loaded", "error", err)
		entries = nil
	}
	h.entries = entries
	return h.Snapshot()
}

func (h *HistoryStore) Snapshot() []domain.HistoryEntry {
	snapshot := make([]domain.HistoryEntry, len(h.entries))
	copy(snapshot, h.entries)
	return snapshot
}

func (h *HistoryStore) persist() {
	if !h.persistent {
		return
	}
	if err := h.save(); err != nil {
		h.log.Warn("History not persisted", "error", err)
	}
}

func (h *HistoryStore) load() ([]domain.HistoryEntry, error) {
	if !h.persistent {
		return nil, nil
	}
	data, err := h.store.Get(HistoryStorageKey)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	entries, dropped, err := DecodeHistory(data, h.validator)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		h.log.Debug("Dropped invalid history entries", "count", dropped)
	}
	return entries, nil
}

// save writes the whole history, or removes the key when there is nothing to keep.
func (h *HistoryStore) save() error {
	if !h.persistent {
		return errors.ErrPersistenceUnavailable
	}
	if len(h.entries) == 0 {
		return h.store.Remove(HistoryStorageKey)
	}
	data, err := encodeHistory(h.entries)
	if err != nil {
		return fmt.Errorf("history encoding failed: %w", err)
	}
	return h.store.Set(HistoryStorageKey, data)
}
