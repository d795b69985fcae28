package domain

import "math"

// BaseUnitID is the unit every conversion is routed through.
const BaseUnitID = "Pa"

type Unit struct {
	ID           string
	DisplayName  string
	Symbol       string
	FactorToBase float64
}

// Label is the text shown in unit pickers, e.g. "千帕 (kPa)".
func (u Unit) Label() string {
	return u.DisplayName + " (" + u.Symbol + ")"
}

func (u Unit) validFactor() bool {
	return u.FactorToBase > 0 && !math.IsInf(u.FactorToBase, 0) && !math.IsNaN(u.FactorToBase)
}

// PressureUnits is the process-wide registry, in the order units are offered to the user.
var PressureUnits = MustRegistry(
	Unit{ID: "Pa", DisplayName: "帕", Symbol: "Pa", FactorToBase: 1},
	Unit{ID: "kPa", DisplayName: "千帕", Symbol: "kPa", FactorToBase: 1_000},
	Unit{ID: "MPa", DisplayName: "兆帕", Symbol: "MPa", FactorToBase: 1_000_000},
	Unit{ID: "bar", DisplayName: "巴", Symbol: "bar", FactorToBase: 100_000},
	Unit{ID: "atm", DisplayName: "標準大氣壓", Symbol: "atm", FactorToBase: 101_325},
	Unit{ID: "psi", DisplayName: "磅/平方英吋", Symbol: "psi", FactorToBase: 6_894.757293168},
	Unit{ID: "torr", DisplayName: "托", Symbol: "Torr", FactorToBase: 133.3223684211},
	Unit{ID: "mmHg", DisplayName: "毫米汞柱", Symbol: "mmHg", FactorToBase: 133.322387415},
)
