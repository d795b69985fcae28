package domain

import (
	"fmt"
	"math"
	"pressure-lab/errors"
	"strconv"
	"strings"
)

// Convert routes value through the base unit: value * from.FactorToBase / to.FactorToBase.
// Same-unit conversions return value untouched so identity holds exactly.
func Convert(value float64, from, to Unit) float64 {
	if from.ID == to.ID {
		return value
	}
	return value * from.FactorToBase / to.FactorToBase
}

// ParseValue turns raw user input into a finite float64.
func ParseValue(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, errors.ErrMissingValue
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || !IsFinite(value) {
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidNumber, trimmed)
	}
	return value, nil
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
