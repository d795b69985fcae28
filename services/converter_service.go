//go:generate go run go.uber.org/mock/mockgen -source=converter_service.go -destination=../mocks/mock_converter_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"pressure-lab/domain"
	"pressure-lab/errors"
	"time"
)

const (
	defaultFromUnit = "kPa"
	defaultToUnit   = "psi"
)

type IConverterService interface {
	Convert(raw, fromID, toID string) (Conversion, error)
	RecordConversion(value float64, fromID, toID string, result float64)
	GetHistorySnapshot() []domain.HistoryEntry
	ClearHistory()
	Units() []domain.Unit
	Lookup(id string) (domain.Unit, bool)
	DefaultSelection() (string, string)
	IsPersistenceAvailable() bool
}

// Conversion is what the UI needs to render one successful conversion.
type Conversion struct {
	Input           float64
	Result          float64
	From            domain.Unit
	To              domain.Unit
	FormattedInput  string
	FormattedOutput string
}

// Summary reads as "1,000 kPa = 145.037738 psi".
func (c Conversion) Summary() string {
	return fmt.Sprintf("%s %s = %s %s", c.FormattedInput, c.From.Symbol, c.FormattedOutput, c.To.Symbol)
}

type ConverterService struct {
	log            *slog.Logger
	registry       domain.IRegistry
	history        IHistoryStore
	rejectSameUnit bool
	defaultFrom    string
	defaultTo      string
	now            func() time.Time
}

type ConverterOption func(*ConverterService)

// WithRejectSameUnit makes Convert fail with ErrSameUnit when both units are identical.
func WithRejectSameUnit(reject bool) ConverterOption {
	return func(s *ConverterService) {
		s.rejectSameUnit = reject
	}
}

// WithDefaultSelection overrides the kPa -> psi pair offered at startup.
func WithDefaultSelection(fromID, toID string) ConverterOption {
	return func(s *ConverterService) {
		if fromID != "" {
			s.defaultFrom = fromID
		}
		if toID != "" {
			s.defaultTo = toID
		}
	}
}

func WithClock(now func() time.Time) ConverterOption {
	return func(s *ConverterService) {
		s.now = now
	}
}

func NewConverterService(log *slog.Logger, registry domain.IRegistry, history IHistoryStore, opts ...ConverterOption) IConverterService {
	s := &ConverterService{
		log:         log,
		registry:    registry,
		history:     history,
		defaultFrom: defaultFromUnit,
		defaultTo:   defaultToUnit,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert parses raw, resolves both unit ids and converts.
// Errors are checked in this order: ErrMissingValue, ErrInvalidNumber, ErrUnknownUnit, ErrSameUnit.
func (s *ConverterService) Convert(raw, fromID, toID string) (Conversion, error) {
	value, err := domain.ParseValue(raw)
	if err != nil {
		return Conversion{}, err
	}
	from, ok := s.registry.Lookup(fromID)
	if !ok {
		return Conversion{}, fmt.Errorf("%w: %q", errors.ErrUnknownUnit, fromID)
	}
	to, ok := s.registry.Lookup(toID)
	if !ok {
		return Conversion{}, fmt.Errorf("%w: %q", errors.ErrUnknownUnit, toID)
	}
	if s.rejectSameUnit && from.ID == to.ID {
		return Conversion{}, fmt.Errorf("%w: %s", errors.ErrSameUnit, from.ID)
	}

	result := domain.Convert(value, from, to)
	return Conversion{
		Input:           value,
		Result:          result,
		From:            from,
		To:              to,
		FormattedInput:  domain.FormatForDisplay(value),
		FormattedOutput: domain.FormatForDisplay(result),
	}, nil
}

func (s *ConverterService) RecordConversion(value float64, fromID, toID string, result float64) {
	s.history.Append(domain.NewHistoryEntry(s.now(), value, fromID, toID, result))
}

func (s *ConverterService) GetHistorySnapshot() []domain.HistoryEntry {
	return s.history.Snapshot()
}

// ClearHistory assumes the caller already asked the user for confirmation.
func (s *ConverterService) ClearHistory() {
	s.history.Clear()
	s.log.Debug("History cleared")
}

func (s *ConverterService) Units() []domain.Unit {
	return s.registry.Units()
}

func (s *ConverterService) Lookup(id string) (domain.Unit, bool) {
	return s.registry.Lookup(id)
}

// DefaultSelection returns the configured pair, falling back to the first unit
// of the registry for any unknown id and moving the destination off the source when they coincide.
func (s *ConverterService) DefaultSelection() (string, string) {
	units := s.registry.Units()
	if len(units) == 0 {
		return "", ""
	}
	from, to := s.defaultFrom, s.defaultTo
	if !s.registry.Has(from) {
		from = units[0].ID
	}
	if !s.registry.Has(to) {
		to = units[0].ID
	}
	if from == to {
		for _, u := range units {
			if u.ID != from {
				to = u.ID
				break
			}
		}
	}
	return from, to
}

func (s *ConverterService) IsPersistenceAvailable() bool {
	return s.history.IsPersistenceAvailable()
}
