package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// MaxHistoryEntries bounds both the in-memory and the persisted history.
const MaxHistoryEntries = 20

// HistoryEntry is one recorded conversion. The json names are the persisted schema.
type HistoryEntry struct {
	Timestamp string  `json:"timestamp" validate:"required"`
	Value     float64 `json:"value" validate:"finite"`
	From      string  `json:"from" validate:"unit"`
	To        string  `json:"to" validate:"unit"`
	Result    float64 `json:"result" validate:"finite"`
}

// NewHistoryEntry stamps a conversion with at, in UTC RFC 3339.
func NewHistoryEntry(at time.Time, value float64, from, to string, result float64) HistoryEntry {
	return HistoryEntry{
		Timestamp: at.UTC().Format(time.RFC3339Nano),
		Value:     value,
		From:      from,
		To:        to,
		Result:    result,
	}
}

// EntryValidator checks entries against a registry: numbers finite, unit ids known.
type EntryValidator struct {
	validate *validator.Validate
}

func NewEntryValidator(registry IRegistry) (*EntryValidator, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		return IsFinite(fl.Field().Float())
	}); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation("unit", func(fl validator.FieldLevel) bool {
		return registry.Has(fl.Field().String())
	}); err != nil {
		return nil, err
	}
	return &EntryValidator{validate: validate}, nil
}

func (v *EntryValidator) Validate(entry HistoryEntry) error {
	return v.validate.Struct(entry)
}
