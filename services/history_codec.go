package services

import (
	"encoding/json"
	"fmt"
	"pressure-lab/domain"
	"pressure-lab/errors"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Older payloads used longer field names; they are read but never written.
var (
	valueFields  = []string{"value", "inputValue"}
	fromFields   = []string{"from", "fromUnit"}
	toFields     = []string{"to", "toUnit"}
	resultFields = []string{"result", "resultValue"}
)

func encodeHistory(entries []domain.HistoryEntry) ([]byte, error) {
	return json.Marshal(entries)
}

// DecodeHistory keeps every valid entry of a persisted payload and reports how many were dropped.
// Only a payload that is not a JSON array is an error; invalid entries are dropped one by one.
func DecodeHistory(data []byte, validator *domain.EntryValidator) ([]domain.HistoryEntry, int, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, 0, fmt.Errorf("history payload is not an array: %w", err)
	}
	entries := lo.FilterMap(raws, func(raw json.RawMessage, _ int) (domain.HistoryEntry, bool) {
		entry, err := decodeEntry(raw)
		if err != nil {
			return domain.HistoryEntry{}, false
		}
		return entry, validator.Validate(entry) == nil
	})
	return lo.Slice(entries, 0, domain.MaxHistoryEntries), len(raws) - len(entries), nil
}

func decodeEntry(raw json.RawMessage) (domain.HistoryEntry, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return domain.HistoryEntry{}, fmt.Errorf("%w: not an object", errors.ErrInvalidHistoryEntry)
	}
	timestamp, ok := fields["timestamp"].(string)
	if !ok {
		return domain.HistoryEntry{}, fmt.Errorf("%w: timestamp", errors.ErrInvalidHistoryEntry)
	}
	from, ok := pick(fields, fromFields).(string)
	if !ok {
		return domain.HistoryEntry{}, fmt.Errorf("%w: from", errors.ErrInvalidHistoryEntry)
	}
	to, ok := pick(fields, toFields).(string)
	if !ok {
		return domain.HistoryEntry{}, fmt.Errorf("%w: to", errors.ErrInvalidHistoryEntry)
	}
	value, ok := toFinite(pick(fields, valueFields))
	if !ok {
		return domain.HistoryEntry{}, fmt.Errorf("%w: value", errors.ErrInvalidHistoryEntry)
	}
	result, ok := toFinite(pick(fields, resultFields))
	if !ok {
		return domain.HistoryEntry{}, fmt.Errorf("%w: result", errors.ErrInvalidHistoryEntry)
	}
	return domain.HistoryEntry{
		Timestamp: timestamp,
		Value:     value,
		From:      from,
		To:        to,
		Result:    result,
	}, nil
}

// pick returns the first field present, in the order of names.
func pick(fields map[string]any, names []string) any {
	for _, name := range names {
		if v, ok := fields[name]; ok {
			return v
		}
	}
	return nil
}

// toFinite accepts JSON numbers and numeric strings.
func toFinite(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, domain.IsFinite(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil && domain.IsFinite(f)
	default:
		return 0, false
	}
}
