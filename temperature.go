// Package matterbridge holds the temperature-unit normalization and
// conversion layer shared by the device bridge and the settings UI.
// Every function is pure and total: unknown or missing units degrade
// to "no conversion", never to an error.
package matterbridge

import (
	"strconv"
	"strings"
)

// Canonical temperature unit tokens. Normalization reduces every
// recognized alias to one of these; other labels (e.g. "KELVIN") pass
// through in transformed form and never convert.
const (
	UnitCelsius    = "C"
	UnitFahrenheit = "F"
)

// TemperatureConverter is one entry of a conversion table: the
// canonical aliases it accepts and the transform it applies.
type TemperatureConverter struct {
	Units   []string
	Convert func(v float64) float64
}

var (
	celsiusAliases    = []string{UnitCelsius, "CELSIUS", "DEGREE_CELSIUS", "DEGREES_CELSIUS"}
	fahrenheitAliases = []string{UnitFahrenheit, "FAHRENHEIT", "DEGREE_FAHRENHEIT", "DEGREES_FAHRENHEIT"}
)

// ToCelsiusConverters bring a source-unit value into Celsius. Adding a
// unit family needs one entry here and one in FromCelsiusConverters;
// conversion always pivots through Celsius, so no pairwise matrix.
var ToCelsiusConverters = []TemperatureConverter{
	{Units: celsiusAliases, Convert: func(v float64) float64 { return v }},
	{Units: fahrenheitAliases, Convert: func(v float64) float64 { return (v - 32) * 5 / 9 }},
}

// FromCelsiusConverters bring a Celsius value into the target unit.
var FromCelsiusConverters = []TemperatureConverter{
	{Units: celsiusAliases, Convert: func(v float64) float64 { return v }},
	{Units: fahrenheitAliases, Convert: func(v float64) float64 { return v*9/5 + 32 }},
}

var canonicalUnits = map[string]string{
	"C":                  UnitCelsius,
	"CELSIUS":            UnitCelsius,
	"DEGREE_CELSIUS":     UnitCelsius,
	"DEGREES_CELSIUS":    UnitCelsius,
	"F":                  UnitFahrenheit,
	"FAHRENHEIT":         UnitFahrenheit,
	"DEGREE_FAHRENHEIT":  UnitFahrenheit,
	"DEGREES_FAHRENHEIT": UnitFahrenheit,
}

// NormalizeTemperatureUnit reduces a free-form unit label ("degree
// fahrenheit", "°C") to its canonical token. Labels outside the
// Celsius/Fahrenheit families are returned in transformed form
// unchanged; an empty label yields "".
func NormalizeTemperatureUnit(unit string) string {
	if unit == "" {
		return ""
	}
	u := strings.ToUpper(strings.TrimSpace(unit))
	u = strings.ReplaceAll(u, "°", "")
	u = strings.ReplaceAll(u, "-", "_")
	u = strings.ReplaceAll(u, " ", "_")
	if canonical, ok := canonicalUnits[u]; ok {
		return canonical
	}
	return u
}

// ConversionResult reports the outcome of a unit conversion. Unit is
// the best-known unit of Value: the target when converted, the source
// when unconverted and recognized, "" otherwise.
type ConversionResult struct {
	Value     float64 `json:"value"`
	Converted bool    `json:"converted"`
	Unit      string  `json:"unit,omitempty"` // C | F | ""
}

// ConvertTemperatureValue converts value between temperature units by
// pivoting through Celsius. Unknown units, a missing target, and
// same-unit requests return the value unchanged with Converted false.
func ConvertTemperatureValue(value float64, fromUnit, toUnit string) ConversionResult {
	from := NormalizeTemperatureUnit(fromUnit)
	to := NormalizeTemperatureUnit(toUnit)
	unconverted := ConversionResult{Value: value, Unit: displayUnit(from)}
	if from == "" || to == "" || from == to {
		return unconverted
	}
	fromConv := findTemperatureConverter(ToCelsiusConverters, from)
	toConv := findTemperatureConverter(FromCelsiusConverters, to)
	if fromConv == nil || toConv == nil {
		// e.g. Kelvin: recognized label, no table entry
		return unconverted
	}
	celsius := fromConv.Convert(value)
	return ConversionResult{Value: toConv.Convert(celsius), Converted: true, Unit: displayUnit(to)}
}

func findTemperatureConverter(table []TemperatureConverter, unit string) *TemperatureConverter {
	for i := range table {
		for _, u := range table[i].Units {
			if u == unit {
				return &table[i]
			}
		}
	}
	return nil
}

func displayUnit(unit string) string {
	if unit == UnitCelsius || unit == UnitFahrenheit {
		return unit
	}
	return ""
}

// ResolveTemperatureTargetUnit picks the effective output unit from
// the layered settings. The device mode overrides the system target;
// "" means no conversion is wanted.
func ResolveTemperatureTargetUnit(systemTarget SystemConversionTarget, deviceMode DeviceConversionMode) string {
	switch deviceMode {
	case DeviceConversionNone:
		return ""
	case DeviceConversionForceCelsius:
		return UnitCelsius
	case DeviceConversionForceFahrenheit:
		return UnitFahrenheit
	}
	switch systemTarget {
	case SystemConversionCelsius:
		return UnitCelsius
	case SystemConversionFahrenheit:
		return UnitFahrenheit
	}
	return ""
}

// TemperatureUnitSymbol returns the display glyph for a unit label,
// or "" for units without one (Kelvin, unknown, missing).
func TemperatureUnitSymbol(unit string) string {
	switch NormalizeTemperatureUnit(unit) {
	case UnitCelsius:
		return "°C"
	case UnitFahrenheit:
		return "°F"
	}
	return ""
}

// FormatTemperatureValue renders a value with its unit glyph, e.g.
// "21.5°C". Units without a glyph render the bare number.
func FormatTemperatureValue(value float64, unit string) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + TemperatureUnitSymbol(unit)
}
