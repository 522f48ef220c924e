package measure

import (
	"fmt"
	"math"
)

// BreakdownPart is one named slice of a total area, such as "plotted",
// "roads" or "open_space".
type BreakdownPart struct {
	Name string       `json:"name"`
	Area *Measurement `json:"area"`
}

// CheckBreakdown verifies that the parts of a breakdown add up to the parent
// total within 1%. Violations are returned as warning strings, not errors:
// survey rounding routinely leaves small gaps. A nil total or an empty part
// list yields no warnings.
func CheckBreakdown(total *Measurement, parts []BreakdownPart) []string {
	if total == nil || len(parts) == 0 {
		return nil
	}

	areas := make([]*Measurement, 0, len(parts))
	for _, p := range parts {
		areas = append(areas, p.Area)
	}
	partTotal := Sum(areas)
	if partTotal == nil {
		return nil
	}

	diff := math.Abs(partTotal.SquareMeters - total.SquareMeters)
	if total.SquareMeters > 0 && diff/total.SquareMeters > relativeTolerance {
		return []string{fmt.Sprintf(
			"breakdown parts total %s sq.m but parent total is %s sq.m (%.1f%% apart)",
			trimFloat(partTotal.SquareMeters), trimFloat(total.SquareMeters),
			diff/total.SquareMeters*100)}
	}
	return nil
}
