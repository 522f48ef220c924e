package measure

import (
	"fmt"
	"math"
)

// ValidationResult reports advisory consistency findings. Errors are
// human-readable strings for editors, never returned as Go errors: survey
// data for real plots is inherently imprecise, so validation informs but
// does not block.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// relativeTolerance is the accepted drift between a supplied derived field
// and the value recomputed from square meters.
const relativeTolerance = 0.01

// Absolute floors below which a derived-field difference is never flagged.
// These tolerate display rounding on small magnitudes (an acreage stored
// with two decimals can be off by up to 0.005 without being wrong).
const (
	floorSquareFeet = 1.0
	floorAcres      = 0.01
	floorHectares   = 0.01
	floorGunthas    = 0.1
)

// Validate recomputes each derived field from SquareMeters and flags fields
// that differ from the recomputed value by more than 1%, subject to the
// absolute floors. Zero-valued derived fields are treated as absent and
// skipped. A nil measurement or non-positive square meters is invalid.
func Validate(m *Measurement) ValidationResult {
	if m == nil {
		return ValidationResult{Valid: false, Errors: []string{"no measurement provided"}}
	}
	if m.SquareMeters <= 0 || math.IsNaN(m.SquareMeters) || math.IsInf(m.SquareMeters, 0) {
		return ValidationResult{Valid: false, Errors: []string{"squareMeters must be a positive finite number"}}
	}

	expected, _ := FromSquareMeters(m.SquareMeters)

	var errs []string
	check := func(field string, got, want, floor float64) {
		if got == 0 {
			return
		}
		diff := math.Abs(got - want)
		if diff <= floor {
			return
		}
		if diff/want > relativeTolerance {
			errs = append(errs, fmt.Sprintf(
				"%s is %s but %s expected from %s sq.m",
				field, trimFloat(got), trimFloat(want), trimFloat(m.SquareMeters)))
		}
	}

	check("squareFeet", m.SquareFeet, expected.SquareFeet, floorSquareFeet)
	check("acres", m.Acres, expected.Acres, floorAcres)
	check("hectares", m.Hectares, expected.Hectares, floorHectares)
	check("gunthas", m.Gunthas, expected.Gunthas, floorGunthas)

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func trimFloat(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
