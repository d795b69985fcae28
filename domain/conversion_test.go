package domain

import (
	"pressure-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustUnit(t *testing.T, id string) Unit {
	t.Helper()
	u, ok := PressureUnits.Lookup(id)
	require.True(t, ok, "unit %s", id)
	return u
}

func TestConvert_Kilopascal_To_Pascal(t *testing.T) {
	req := require.New(t)

	result := Convert(1000, mustUnit(t, "kPa"), mustUnit(t, "Pa"))

	req.Equal(1_000_000.0, result)
	req.Equal("1e6", FormatForDisplay(result))
}

func TestConvert_Atmosphere_To_Psi(t *testing.T) {
	req := require.New(t)

	result := Convert(1, mustUnit(t, "atm"), mustUnit(t, "psi"))

	req.InDelta(14.6959487755, result, 1e-9)
	req.Equal("14.695949", FormatForDisplay(result))
}

func TestConvert_Identity_Is_Exact(t *testing.T) {
	req := require.New(t)
	for _, u := range PressureUnits.Units() {
		for _, x := range []float64{0, 1, -3.75, 0.1 + 0.2, 123456.789, 6.02e23} {
			req.Equal(x, Convert(x, u, u), "unit %s", u.ID)
		}
	}
}

func TestConvert_Is_Transitive_Through_The_Base_Unit(t *testing.T) {
	req := require.New(t)
	units := PressureUnits.Units()
	x := 123.456

	for _, u := range units {
		for _, v := range units {
			for _, w := range units {
				direct := Convert(x, u, w)
				chained := Convert(Convert(x, u, v), v, w)
				req.InEpsilon(direct, chained, 1e-12, "%s -> %s -> %s", u.ID, v.ID, w.ID)
			}
		}
	}
}

func TestParseValue(t *testing.T) {
	t.Run("should reject empty or blank input as missing", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "\t\n"} {
			_, err := ParseValue(raw)
			require.ErrorIs(t, err, errors.ErrMissingValue)
		}
	})

	t.Run("should reject non numbers and non finite values", func(t *testing.T) {
		for _, raw := range []string{"abc", "12kPa", "NaN", "Inf", "-Infinity", "1e400"} {
			_, err := ParseValue(raw)
			require.ErrorIs(t, err, errors.ErrInvalidNumber, raw)
		}
	})

	t.Run("should accept trimmed decimals and exponents", func(t *testing.T) {
		req := require.New(t)
		for raw, expected := range map[string]float64{
			" 101.325 ": 101.325,
			"-5":        -5,
			"1e3":       1000,
			"0":         0,
		} {
			value, err := ParseValue(raw)
			req.NoError(err)
			req.Equal(expected, value)
		}
	})
}
