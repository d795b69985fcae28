package domain

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	// CannotCompute replaces any non-finite value on screen.
	CannotCompute = "無法計算"

	zeroThreshold     = 1e-12
	fixedLowerBound   = 1e-3
	fixedUpperBound   = 1e6
	fractionDigits    = 6
	timestampLayout   = "2006/01/02 15:04:05"
	exponentSeparator = "e"
)

// FormatForDisplay renders a pressure value with a fixed, locale-independent policy:
//   - magnitudes below 1e-12 are zero
//   - zero and magnitudes in [1e-3, 1e6) use grouped fixed notation with at most 6 fraction digits
//   - anything else uses scientific notation with 6 mantissa digits, trailing zeros trimmed (1.5e9)
func FormatForDisplay(value float64) string {
	if !IsFinite(value) {
		return CannotCompute
	}
	if math.Abs(value) < zeroThreshold {
		value = 0
	}
	// Rounding may carry a value across a boundary (999999.9999999 -> 1e6),
	// so the notation is picked on the rounded value.
	var rounded float64
	if inFixedRange(value) {
		rounded = roundTo(value, 'f')
	} else {
		rounded = roundTo(value, 'e')
	}
	if inFixedRange(rounded) {
		return formatFixed(rounded)
	}
	return formatScientific(rounded)
}

func inFixedRange(value float64) bool {
	abs := math.Abs(value)
	return abs == 0 || (abs >= fixedLowerBound && abs < fixedUpperBound)
}

func roundTo(value float64, notation byte) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, notation, fractionDigits, 64), 64)
	if err != nil {
		return value
	}
	return rounded
}

func formatFixed(value float64) string {
	if value == 0 {
		// drops the sign of negative zero
		return "0"
	}
	return humanize.Commaf(value)
}

func formatScientific(value float64) string {
	formatted := strconv.FormatFloat(value, 'e', fractionDigits, 64)
	mantissa, exponent, found := strings.Cut(formatted, exponentSeparator)
	if !found {
		return formatted
	}
	mantissa = strings.TrimRight(mantissa, "0")
	mantissa = strings.TrimSuffix(mantissa, ".")
	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return formatted
	}
	return mantissa + exponentSeparator + strconv.Itoa(exp)
}

// FormatTimestamp shows an RFC 3339 timestamp in local time, or returns it unchanged if it does not parse.
func FormatTimestamp(timestamp string) string {
	t, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return timestamp
	}
	return t.Local().Format(timestampLayout)
}
