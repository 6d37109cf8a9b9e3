package emu

import (
	"errors"
	"math"
	"testing"
)

func TestToEMU_Defaults(t *testing.T) {
	c := NewConverter(0, Dimension{}, nil)

	tests := []struct {
		name     string
		input    Dimension
		expected int64
	}{
		{"12pt", Pt(12), 152400},
		{"18pt", Pt(18), 228600},
		{"11pt", Pt(11), 139700},
		{"16px at 96dpi", Px(16), 152400},
		{"1px at 96dpi", Px(1), 9525},
		{"1in", Dimension{Value: 1, Unit: UnitIn}, 914400},
		{"2.54cm", Dimension{Value: 2.54, Unit: UnitCm}, 914400},
		{"25.4mm", Dimension{Value: 25.4, Unit: UnitMm}, 914400},
		{"1em against 16pt base", Dimension{Value: 1, Unit: UnitEm}, 203200},
		{"1rem against 16pt base", Dimension{Value: 1, Unit: UnitRem}, 203200},
		{"100% of base", Dimension{Value: 100, Unit: UnitPercent}, 203200},
		{"50% of base", Dimension{Value: 50, Unit: UnitPercent}, 101600},
		{"unitless ratio 1.0", Dimension{Value: 1, Unit: UnitUnitless}, 203200},
		{"unitless ratio 0.5", Dimension{Value: 0.5, Unit: UnitUnitless}, 101600},
		{"zero", Pt(0), 0},
		{"negative points", Pt(-6), -76200},
		{"fractional points", Pt(1.5), 19050},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ToEMU(tt.input)
			if err != nil {
				t.Fatalf("ToEMU(%v) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ToEMU(%v) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToEMU_NotANumber(t *testing.T) {
	c := NewConverter(0, Dimension{}, nil)

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := c.ToEMU(Pt(v)); !errors.Is(err, ErrNotANumber) {
			t.Errorf("ToEMU(%v) error = %v, want ErrNotANumber", v, err)
		}
	}
}

func TestToEMU_ConfigurableDPI(t *testing.T) {
	c := NewConverter(72, Dimension{}, nil)

	got, err := c.ToEMU(Px(1))
	if err != nil {
		t.Fatalf("ToEMU(1px) error = %v", err)
	}
	// at 72 dpi a pixel is exactly a point
	if got != PerPoint {
		t.Errorf("ToEMU(1px at 72dpi) = %d, want %d", got, PerPoint)
	}
}

func TestToEMU_ConfigurableBaseSize(t *testing.T) {
	c := NewConverter(0, Pt(10), nil)

	got, err := c.ToEMU(Dimension{Value: 2, Unit: UnitEm})
	if err != nil {
		t.Fatalf("ToEMU(2em) error = %v", err)
	}
	if got != 2*10*PerPoint {
		t.Errorf("ToEMU(2em against 10pt base) = %d, want %d", got, 2*10*PerPoint)
	}
}

func TestNewConverter_RelativeBaseFallsBack(t *testing.T) {
	c := NewConverter(0, Dimension{Value: 2, Unit: UnitEm}, nil)

	if c.BaseEMU() != roundEMU(DefaultBaseSizePt*float64(PerPoint)) {
		t.Errorf("BaseEMU() = %d, want default base", c.BaseEMU())
	}
}

func TestFromEMU_RoundTrip(t *testing.T) {
	c := NewConverter(0, Dimension{}, nil)

	tests := []struct {
		name  string
		input Dimension
	}{
		{"whole points", Pt(12)},
		{"fractional points", Pt(11.3)},
		{"pixels", Px(17)},
		{"fractional pixels", Px(1.25)},
		{"em", Dimension{Value: 1.15, Unit: UnitEm}},
		{"percent", Dimension{Value: 37.5, Unit: UnitPercent}},
		{"ratio", Dimension{Value: 0.33, Unit: UnitUnitless}},
		{"inches", Dimension{Value: 0.75, Unit: UnitIn}},
		{"millimeters", Dimension{Value: 3.17, Unit: UnitMm}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := c.ToEMU(tt.input)
			if err != nil {
				t.Fatalf("ToEMU(%v) error = %v", tt.input, err)
			}
			back, err := c.FromEMU(v, tt.input.Unit)
			if err != nil {
				t.Fatalf("FromEMU(%d, %s) error = %v", v, tt.input.Unit, err)
			}
			v2, err := c.ToEMU(back)
			if err != nil {
				t.Fatalf("ToEMU(%v) error = %v", back, err)
			}
			if !WithinTolerance(v, v2, 1) {
				t.Errorf("round trip drifted: %d -> %v -> %d", v, back, v2)
			}
		})
	}
}

func TestParseEMU(t *testing.T) {
	c := NewConverter(0, Dimension{}, nil)

	tests := []struct {
		input    string
		expected int64
	}{
		{"12pt", 152400},
		{"18pt", 228600},
		{"16px", 152400},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := c.ParseEMU(tt.input)
			if err != nil {
				t.Fatalf("ParseEMU(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseEMU(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}

	if _, err := c.ParseEMU("calibri"); !errors.Is(err, ErrNotANumber) {
		t.Errorf("ParseEMU(keyword) error = %v, want ErrNotANumber", err)
	}
}

func TestApproxEqual(t *testing.T) {
	c := NewConverter(0, Dimension{}, nil)

	tests := []struct {
		name     string
		a, b     Dimension
		expected bool
	}{
		{"identical", Pt(12), Pt(12), true},
		{"point equals pixels", Pt(12), Px(16), true}, // both 152400 EMU
		{"within one EMU", Pt(12), Pt(12.00005), true},
		{"clearly different", Pt(12), Pt(12.1), false},
		{"relative equals absolute", Dimension{Value: 1, Unit: UnitEm}, Pt(16), true},
		{"negative vs positive", Pt(-1), Pt(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ApproxEqual(tt.a, tt.b); got != tt.expected {
				t.Errorf("ApproxEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestApproxEqualTol(t *testing.T) {
	c := NewConverter(0, Dimension{}, nil)

	a, b := Pt(12), Pt(12.001) // 12.7 EMU apart
	if c.ApproxEqual(a, b) {
		t.Error("expected difference above default tolerance")
	}
	if !c.ApproxEqualTol(a, b, 20) {
		t.Error("expected equality within widened tolerance")
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		a, b, tol int64
		expected  bool
	}{
		{"equal", 100, 100, 0, true},
		{"one apart default", 100, 101, 1, true},
		{"two apart default", 100, 102, 1, false},
		{"order independent", 101, 100, 1, true},
		{"negative values", -100, -101, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinTolerance(tt.a, tt.b, tt.tol); got != tt.expected {
				t.Errorf("WithinTolerance(%d, %d, %d) = %v, want %v", tt.a, tt.b, tt.tol, got, tt.expected)
			}
		})
	}
}

func TestDimension_String(t *testing.T) {
	tests := []struct {
		input    Dimension
		expected string
	}{
		{Pt(12), "12pt"},
		{Pt(1.5), "1.5pt"},
		{Px(16), "16px"},
		{Dimension{Value: 50, Unit: UnitPercent}, "50%"},
		{Dimension{Value: 1.15, Unit: UnitUnitless}, "1.15"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.input.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
