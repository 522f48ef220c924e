package measure

import (
	"math"
	"testing"
)

func TestFromSquareMetersRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		sqm  float64
	}{
		{"zero", 0},
		{"negative", -42.5},
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromSquareMeters(tc.sqm); err == nil {
				t.Fatalf("expected error for %v", tc.sqm)
			}
		})
	}
}

func TestFromSquareMetersDerivesAllUnits(t *testing.T) {
	m, err := FromSquareMeters(4047)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.SquareMeters != 4047 {
		t.Fatalf("square meters changed: %v", m.SquareMeters)
	}
	assertClose(t, "squareFeet", m.SquareFeet, 4047*10.764)
	assertClose(t, "acres", m.Acres, 1.0)
	assertClose(t, "hectares", m.Hectares, 0.4047)
	assertClose(t, "gunthas", m.Gunthas, 4047/101.17)
}

func TestRoundTripThroughEveryUnit(t *testing.T) {
	units := []Unit{UnitSquareMeters, UnitSquareFeet, UnitAcres, UnitHectares, UnitGunthas}
	inputs := []float64{1, 101.17, 1000, 4047, 40470, 123456.78}

	for _, sqm := range inputs {
		m, err := FromSquareMeters(sqm)
		if err != nil {
			t.Fatalf("construct %v: %v", sqm, err)
		}
		for _, unit := range units {
			value, err := m.Value(unit)
			if err != nil {
				t.Fatalf("value in %s: %v", unit, err)
			}
			back, err := ToSquareMeters(value, unit)
			if err != nil {
				t.Fatalf("convert back from %s: %v", unit, err)
			}
			if rel := math.Abs(back-sqm) / sqm; rel > 0.001 {
				t.Fatalf("round trip %v via %s drifted %.4f%%", sqm, unit, rel*100)
			}
		}
	}
}

func TestDerivedValuesAreMonotonic(t *testing.T) {
	small, err := FromSquareMeters(999.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	large, err := FromSquareMeters(1000.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !(small.SquareFeet < large.SquareFeet) {
		t.Errorf("square feet not monotonic")
	}
	if !(small.Acres < large.Acres) {
		t.Errorf("acres not monotonic")
	}
	if !(small.Hectares < large.Hectares) {
		t.Errorf("hectares not monotonic")
	}
	if !(small.Gunthas < large.Gunthas) {
		t.Errorf("gunthas not monotonic")
	}
}

func TestToSquareMetersRejectsUnknownUnit(t *testing.T) {
	for _, raw := range []string{"", "SQFT", "sq.ft", "acre", "guntha"} {
		if _, err := ToSquareMeters(1, Unit(raw)); err == nil {
			t.Errorf("expected error for unit %q", raw)
		}
		if _, err := ParseUnit(raw); err == nil {
			t.Errorf("expected parse error for unit %q", raw)
		}
	}
}

func TestFromUnitRegeneratesDerivedFields(t *testing.T) {
	// An editor overriding the acre figure wins; everything else follows.
	m, err := FromUnit(2.5, UnitAcres)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, "squareMeters", m.SquareMeters, 2.5*4047)
	assertClose(t, "gunthas", m.Gunthas, 2.5*4047/101.17)
}

func TestSum(t *testing.T) {
	t.Run("empty list is absent", func(t *testing.T) {
		if got := Sum(nil); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
		if got := Sum([]*Measurement{}); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("all nil entries is absent", func(t *testing.T) {
		if got := Sum([]*Measurement{nil, nil}); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("present entries are totalled and re-derived", func(t *testing.T) {
		m1, _ := FromSquareMeters(100)
		m2, _ := FromSquareMeters(200)

		got := Sum([]*Measurement{m1, nil, m2})
		if got == nil {
			t.Fatal("expected a present result")
		}
		assertClose(t, "squareMeters", got.SquareMeters, 300)
		assertClose(t, "squareFeet", got.SquareFeet, 300*10.764)
		assertClose(t, "acres", got.Acres, 300.0/4047)
	})
}

func TestPercentage(t *testing.T) {
	part, _ := FromSquareMeters(250)
	total, _ := FromSquareMeters(1000)

	if got := Percentage(part, total); math.Abs(got-25) > 1e-9 {
		t.Fatalf("expected 25, got %v", got)
	}
	if got := Percentage(nil, total); got != 0 {
		t.Fatalf("expected 0 for absent part, got %v", got)
	}
	if got := Percentage(part, nil); got != 0 {
		t.Fatalf("expected 0 for absent total, got %v", got)
	}
	if got := Percentage(part, &Measurement{}); got != 0 {
		t.Fatalf("expected 0 for zero total, got %v", got)
	}
}

func TestValidate(t *testing.T) {
	t.Run("freshly constructed measurement is valid", func(t *testing.T) {
		m, _ := FromSquareMeters(12345)
		res := Validate(m)
		if !res.Valid || len(res.Errors) != 0 {
			t.Fatalf("expected valid, got %+v", res)
		}
	})

	t.Run("nil measurement is invalid", func(t *testing.T) {
		if res := Validate(nil); res.Valid {
			t.Fatal("expected invalid")
		}
	})

	t.Run("non-positive square meters is invalid", func(t *testing.T) {
		if res := Validate(&Measurement{SquareMeters: 0}); res.Valid {
			t.Fatal("expected invalid")
		}
	})

	t.Run("drifted derived field is flagged", func(t *testing.T) {
		m, _ := FromSquareMeters(10000)
		edited := *m
		edited.SquareFeet = m.SquareFeet * 1.05 // 5% off

		res := Validate(&edited)
		if res.Valid || len(res.Errors) != 1 {
			t.Fatalf("expected one error, got %+v", res)
		}
	})

	t.Run("rounding-level drift is tolerated", func(t *testing.T) {
		m, _ := FromSquareMeters(150)
		edited := *m
		edited.Acres = 0.04   // true value 0.03707, diff under the 0.01 floor
		edited.Gunthas = 1.54 // true value 1.4826, diff under the 0.1 floor

		res := Validate(&edited)
		if !res.Valid {
			t.Fatalf("expected rounding drift to pass, got %+v", res)
		}
	})

	t.Run("zero derived fields are treated as absent", func(t *testing.T) {
		res := Validate(&Measurement{SquareMeters: 500})
		if !res.Valid {
			t.Fatalf("expected valid, got %+v", res)
		}
	})
}

func TestCheckBreakdown(t *testing.T) {
	total, _ := FromSquareMeters(1000)

	t.Run("consistent parts produce no warnings", func(t *testing.T) {
		plotted, _ := FromSquareMeters(700)
		roads, _ := FromSquareMeters(295)
		warnings := CheckBreakdown(total, []BreakdownPart{
			{Name: "plotted", Area: plotted},
			{Name: "roads", Area: roads},
		})
		if len(warnings) != 0 {
			t.Fatalf("unexpected warnings: %v", warnings)
		}
	})

	t.Run("gap beyond tolerance warns", func(t *testing.T) {
		plotted, _ := FromSquareMeters(700)
		roads, _ := FromSquareMeters(200)
		warnings := CheckBreakdown(total, []BreakdownPart{
			{Name: "plotted", Area: plotted},
			{Name: "roads", Area: roads},
		})
		if len(warnings) != 1 {
			t.Fatalf("expected one warning, got %v", warnings)
		}
	})

	t.Run("missing total or parts is quiet", func(t *testing.T) {
		if w := CheckBreakdown(nil, []BreakdownPart{{Name: "plotted"}}); w != nil {
			t.Fatalf("unexpected warnings: %v", w)
		}
		if w := CheckBreakdown(total, nil); w != nil {
			t.Fatalf("unexpected warnings: %v", w)
		}
		if w := CheckBreakdown(total, []BreakdownPart{{Name: "plotted"}}); w != nil {
			t.Fatalf("unexpected warnings for all-absent parts: %v", w)
		}
	})
}

func assertClose(t *testing.T, field string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > math.Abs(want)*1e-9 {
		t.Fatalf("%s: got %v, want %v", field, got, want)
	}
}
