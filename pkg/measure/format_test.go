package measure

import "testing"

func TestFormatIndianNumber(t *testing.T) {
	cases := []struct {
		value     float64
		precision int
		want      string
	}{
		{100, 0, "100"},
		{1000, 0, "1,000"},
		{12345, 0, "12,345"},
		{1234567, 0, "12,34,567"},
		{12345678, 0, "1,23,45,678"},
		{1234567.891, 2, "12,34,567.89"},
		{999.4, 0, "999"},
		{-1234567, 0, "-12,34,567"},
	}
	for _, tc := range cases {
		if got := FormatIndianNumber(tc.value, tc.precision); got != tc.want {
			t.Errorf("FormatIndianNumber(%v, %d) = %q, want %q", tc.value, tc.precision, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	m, err := FromSquareMeters(1234567)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		m    *Measurement
		unit Unit
		opts FormatOptions
		want string
	}{
		{
			name: "absent measurement is the sentinel",
			m:    nil,
			unit: UnitSquareMeters,
			want: NotAvailable,
		},
		{
			name: "indian grouping",
			m:    m,
			unit: UnitSquareMeters,
			opts: FormatOptions{IndianFormat: true},
			want: "12,34,567",
		},
		{
			name: "western grouping",
			m:    m,
			unit: UnitSquareMeters,
			want: "1,234,567",
		},
		{
			name: "unit label",
			m:    m,
			unit: UnitHectares,
			opts: FormatOptions{ShowUnit: true, Precision: 2},
			want: "123.46 hectares",
		},
		{
			name: "indian grouping with unit and precision",
			m:    m,
			unit: UnitSquareFeet,
			opts: FormatOptions{ShowUnit: true, IndianFormat: true},
			want: "1,32,88,879 sq.ft",
		},
		{
			name: "unknown unit is the sentinel",
			m:    m,
			unit: Unit("bigha"),
			want: NotAvailable,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.m, tc.unit, tc.opts); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatSmartThresholds(t *testing.T) {
	cases := []struct {
		sqm  float64
		want string
	}{
		// Band edges: one acre and ten acres are inclusive, 1000 sq.m is not.
		{999, "999.00 sq.m"},
		{1000, "1000.00 sq.m"},
		{1000.6, "1,001 sq.m (10,770 sq.ft)"},
		{4046.999, "4,047 sq.m (43,562 sq.ft)"},
		{4047, "1.00 acres (40.0 gunthas)"},
		{5000, "1.24 acres (49.4 gunthas)"},
		{40469.999, "10.00 acres (400.0 gunthas)"},
		{40470, "10.0 acres"},
		{50000, "12.4 acres"},
	}
	for _, tc := range cases {
		m, err := FromSquareMeters(tc.sqm)
		if err != nil {
			t.Fatalf("construct %v: %v", tc.sqm, err)
		}
		if got := FormatSmart(m); got != tc.want {
			t.Errorf("FormatSmart(%v) = %q, want %q", tc.sqm, got, tc.want)
		}
	}
}

func TestFormatSmartAbsent(t *testing.T) {
	if got := FormatSmart(nil); got != NotAvailable {
		t.Fatalf("got %q, want %q", got, NotAvailable)
	}
}
