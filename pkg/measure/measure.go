// Package measure converts and formats land-area quantities.
//
// Square meters is the authoritative unit; square feet, acres, hectares and
// gunthas are derived by fixed factors. The package is pure and stateless:
// it consumes plain numbers and returns plain structured values, so no CMS
// or transport types leak into it. Absent data is modeled with nil
// measurements and the "N/A" display sentinel rather than errors, because
// area fields are frequently incomplete on in-progress content records.
package measure

import (
	"fmt"
	"math"

	dErrors "plotdesk/pkg/domain-errors"
)

// Unit identifies an area unit accepted by conversion and formatting
// operations. Values are case-sensitive with no aliases.
type Unit string

const (
	UnitSquareMeters Unit = "sqm"
	UnitSquareFeet   Unit = "sqft"
	UnitAcres        Unit = "acres"
	UnitHectares     Unit = "hectares"
	UnitGunthas      Unit = "gunthas"
)

// Conversion constants, expressed as square meters per unit (or units per
// square meter for square feet). Survey paperwork in Maharashtra quotes all
// five units, so the factors must match the published ones exactly.
const (
	SquareFeetPerSquareMeter = 10.764
	SquareMetersPerAcre      = 4047.0
	SquareMetersPerHectare   = 10000.0
	SquareMetersPerGuntha    = 101.17
)

// Measurement is a land-area quantity. SquareMeters is authoritative; the
// remaining fields are derived and regenerated whenever a measurement is
// constructed. Instances are immutable: "editing" a single unit value means
// converting it back to square meters and constructing a fresh instance.
type Measurement struct {
	SquareMeters float64 `json:"squareMeters"`
	SquareFeet   float64 `json:"squareFeet"`
	Acres        float64 `json:"acres"`
	Hectares     float64 `json:"hectares"`
	Gunthas      float64 `json:"gunthas"`
}

// ParseUnit validates a raw unit string. Unknown units (including case
// variants) are rejected.
func ParseUnit(raw string) (Unit, error) {
	switch Unit(raw) {
	case UnitSquareMeters, UnitSquareFeet, UnitAcres, UnitHectares, UnitGunthas:
		return Unit(raw), nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown area unit %q", raw))
	}
}

// FromSquareMeters constructs a Measurement from an authoritative
// square-meter value. Non-positive and non-finite values are rejected.
func FromSquareMeters(sqm float64) (*Measurement, error) {
	if math.IsNaN(sqm) || math.IsInf(sqm, 0) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "area must be a finite number")
	}
	if sqm <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "area must be greater than zero")
	}
	return &Measurement{
		SquareMeters: sqm,
		SquareFeet:   sqm * SquareFeetPerSquareMeter,
		Acres:        sqm / SquareMetersPerAcre,
		Hectares:     sqm / SquareMetersPerHectare,
		Gunthas:      sqm / SquareMetersPerGuntha,
	}, nil
}

// FromUnit constructs a Measurement from a value expressed in any supported
// unit. The value is converted to square meters first, then every derived
// field is regenerated, so a manual edit of a single unit wins over stale
// derived values.
func FromUnit(value float64, unit Unit) (*Measurement, error) {
	sqm, err := ToSquareMeters(value, unit)
	if err != nil {
		return nil, err
	}
	return FromSquareMeters(sqm)
}

// ToSquareMeters converts a value in the given unit back to square meters.
func ToSquareMeters(value float64, unit Unit) (float64, error) {
	switch unit {
	case UnitSquareMeters:
		return value, nil
	case UnitSquareFeet:
		return value / SquareFeetPerSquareMeter, nil
	case UnitAcres:
		return value * SquareMetersPerAcre, nil
	case UnitHectares:
		return value * SquareMetersPerHectare, nil
	case UnitGunthas:
		return value * SquareMetersPerGuntha, nil
	default:
		return 0, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown area unit %q", unit))
	}
}

// Value returns the measurement's magnitude in the given unit.
func (m *Measurement) Value(unit Unit) (float64, error) {
	switch unit {
	case UnitSquareMeters:
		return m.SquareMeters, nil
	case UnitSquareFeet:
		return m.SquareFeet, nil
	case UnitAcres:
		return m.Acres, nil
	case UnitHectares:
		return m.Hectares, nil
	case UnitGunthas:
		return m.Gunthas, nil
	default:
		return 0, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown area unit %q", unit))
	}
}

// Sum adds the square-meter values of all present measurements and
// reconstructs a fresh Measurement so derived fields stay consistent.
// Nil entries are skipped. The result is nil when no entry is present:
// "no data" is distinct from a zero-area total.
func Sum(measurements []*Measurement) *Measurement {
	present := false
	total := 0.0
	for _, m := range measurements {
		if m == nil {
			continue
		}
		present = true
		total += m.SquareMeters
	}
	if !present {
		return nil
	}
	summed, err := FromSquareMeters(total)
	if err != nil {
		// Present entries with a non-positive total (zero-valued inputs).
		// Still a present result, just not derivable.
		return &Measurement{SquareMeters: total}
	}
	return summed
}

// Percentage returns part as a percentage of total, or 0 when either side is
// absent or the total is zero.
func Percentage(part, total *Measurement) float64 {
	if part == nil || total == nil || total.SquareMeters == 0 {
		return 0
	}
	return part.SquareMeters / total.SquareMeters * 100
}
