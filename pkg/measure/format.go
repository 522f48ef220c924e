package measure

import (
	"fmt"
	"strconv"
	"strings"
)

// NotAvailable is the display sentinel for absent measurements. It is a
// valid formatting outcome, not an error.
const NotAvailable = "N/A"

// FormatOptions controls Format output.
type FormatOptions struct {
	// ShowUnit appends the unit label ("sq.m", "acres", ...).
	ShowUnit bool
	// Precision is the number of decimal places.
	Precision int
	// IndianFormat groups digits the Indian way (12,34,567) instead of the
	// western 1,234,567.
	IndianFormat bool
}

var unitLabels = map[Unit]string{
	UnitSquareMeters: "sq.m",
	UnitSquareFeet:   "sq.ft",
	UnitAcres:        "acres",
	UnitHectares:     "hectares",
	UnitGunthas:      "gunthas",
}

// Label returns the display label for a unit, or the raw unit string for
// unknown units.
func Label(unit Unit) string {
	if label, ok := unitLabels[unit]; ok {
		return label
	}
	return string(unit)
}

// Format renders the measurement's value in the requested unit. A nil
// measurement or unknown unit renders as the "N/A" sentinel.
func Format(m *Measurement, unit Unit, opts FormatOptions) string {
	if m == nil {
		return NotAvailable
	}
	value, err := m.Value(unit)
	if err != nil {
		return NotAvailable
	}

	var out string
	if opts.IndianFormat {
		out = FormatIndianNumber(value, opts.Precision)
	} else {
		out = groupDigits(strconv.FormatFloat(value, 'f', opts.Precision, 64), 3)
	}
	if opts.ShowUnit {
		out += " " + Label(unit)
	}
	return out
}

// FormatSmart picks a human-appropriate unit by magnitude:
//
//	>= 10 acres (40,470 sq.m)  -> acres only, 1 decimal
//	>= 1 acre  (4,047 sq.m)    -> "acres (gunthas)"
//	>  1,000 sq.m              -> "sq.m (sq.ft)"
//	otherwise                  -> plain sq.m, 2 decimals
//
// Exactly 4,047 and 40,470 sq.m land in the upper band; exactly 1,000 sq.m
// stays plain.
func FormatSmart(m *Measurement) string {
	if m == nil {
		return NotAvailable
	}
	switch {
	case m.SquareMeters >= 10*SquareMetersPerAcre:
		return fmt.Sprintf("%.1f acres", m.Acres)
	case m.SquareMeters >= SquareMetersPerAcre:
		return fmt.Sprintf("%.2f acres (%.1f gunthas)", m.Acres, m.Gunthas)
	case m.SquareMeters > 1000:
		return fmt.Sprintf("%s sq.m (%s sq.ft)",
			FormatIndianNumber(m.SquareMeters, 0),
			FormatIndianNumber(m.SquareFeet, 0))
	default:
		return fmt.Sprintf("%.2f sq.m", m.SquareMeters)
	}
}

// FormatIndianNumber renders v with Indian digit grouping: the rightmost
// group has three digits, every group above it has two (12,34,567).
func FormatIndianNumber(v float64, precision int) string {
	return groupDigits(strconv.FormatFloat(v, 'f', precision, 64), 2)
}

// groupDigits inserts comma separators into a formatted decimal string. The
// rightmost integer group always has three digits; upperSize is the width of
// every group above it (3 for western grouping, 2 for Indian).
func groupDigits(formatted string, upperSize int) string {
	neg := strings.HasPrefix(formatted, "-")
	if neg {
		formatted = formatted[1:]
	}
	intPart := formatted
	frac := ""
	if dot := strings.IndexByte(formatted, '.'); dot >= 0 {
		intPart = formatted[:dot]
		frac = formatted[dot:]
	}

	var b strings.Builder
	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		groups := make([]string, 0, len(head)/upperSize+1)
		for len(head) > upperSize {
			groups = append(groups, head[len(head)-upperSize:])
			head = head[:len(head)-upperSize]
		}
		groups = append(groups, head)
		for i := len(groups) - 1; i >= 0; i-- {
			b.WriteString(groups[i])
			b.WriteByte(',')
		}
		b.WriteString(intPart[len(intPart)-3:])
	} else {
		b.WriteString(intPart)
	}
	b.WriteString(frac)

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
